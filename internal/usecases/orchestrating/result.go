package orchestrating

import (
	"fmt"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// MacroResult é o retorno de todo macro: um objeto com o sinal de
// sucesso, nunca um erro propagado. Falhas parciais entram em Errors;
// apenas a entidade âncora do macro derruba Success.
type MacroResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func failure(format string, args ...interface{}) *MacroResult {
	return &MacroResult{
		Success: false,
		Message: fmt.Sprintf(format, args...),
	}
}

// FullCampaignPayload agrega tudo que foi criado por CreateFullCampaign.
type FullCampaignPayload struct {
	Campaign           domain.Record   `json:"campaign"`
	TargetingTemplates []domain.Record `json:"targeting_templates,omitempty"`
	LineItems          []domain.Record `json:"line_items"`
	Creatives          []domain.Record `json:"creatives,omitempty"`
	Associations       []domain.Record `json:"associations,omitempty"`
	Assets             []domain.Record `json:"assets,omitempty"`
}

// ClonePayload agrega a árvore criada por CloneCampaign.
type ClonePayload struct {
	Campaign     domain.Record   `json:"campaign"`
	LineItems    []domain.Record `json:"line_items"`
	Associations []domain.Record `json:"associations,omitempty"`
}

// BulkStatusPayload contabiliza o resultado de BulkUpdateCampaignStatus.
type BulkStatusPayload struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// BulkLineItemsPayload agrega os line items criados por BulkCreateLineItems.
type BulkLineItemsPayload struct {
	LineItems []domain.Record `json:"line_items"`
}
