package beeswaxclient

import (
	"strings"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// Tabelas de aliases de compatibilidade: a API aceitou historicamente
// nomes de campos diferentes para o mesmo conceito. O cliente aceita
// ambos e envia apenas a forma atual.
var (
	campaignAliases = map[string]string{
		"name":   "campaign_name",
		"budget": "campaign_budget",
	}

	lineItemAliases = map[string]string{
		"name":   "line_item_name",
		"budget": "line_item_budget",
	}

	creativeAliases = map[string]string{
		"name": "creative_name",
	}
)

// creativeTypeCodes mapeia os valores textuais de tipo de criativo para
// os códigos numéricos exigidos pela API atual.
var creativeTypeCodes = map[string]int{
	"display": domain.CreativeTypeDisplay,
	"banner":  domain.CreativeTypeDisplay,
	"video":   domain.CreativeTypeVideo,
	"native":  domain.CreativeTypeNative,
}

// applyAliases copia cada campo legado para o nome atual e remove o
// alias, de forma que apenas uma das formas seja enviada. Quando ambos
// estão presentes, o nome atual prevalece.
func applyAliases(body domain.Record, aliases map[string]string) {
	for legacy, current := range aliases {
		value, ok := body[legacy]
		if !ok {
			continue
		}
		if _, exists := body[current]; !exists {
			body[current] = value
		}
		delete(body, legacy)
	}
}

// prepareCreativeBody normaliza o tipo de criativo textual para o
// código numérico. Valores não reconhecidos passam adiante sem
// alteração: a API remota é quem decide rejeitá-los.
func prepareCreativeBody(body domain.Record) {
	raw, ok := body["creative_type"].(string)
	if !ok {
		return
	}
	if code, known := creativeTypeCodes[strings.ToLower(raw)]; known {
		body["creative_type"] = code
	}
}

// Campos atribuídos pelo sistema remoto que nunca devem ser reenviados
// ao reutilizar um registro como molde (clonagem).
var (
	CampaignReadOnlyFields = []string{
		"campaign_id",
		"create_date",
		"update_date",
		"push_status",
		"push_update",
		"account_id",
		"campaign_spend",
		"campaign_impressions",
	}

	LineItemReadOnlyFields = []string{
		"line_item_id",
		"create_date",
		"update_date",
		"push_status",
		"push_update",
		"account_id",
		"line_item_spend",
		"line_item_impressions",
	}

	CreativeLineItemReadOnlyFields = []string{
		"cli_id",
		"create_date",
		"update_date",
	}
)

// StripServerOwned retorna uma cópia do registro sem os campos de
// propriedade do servidor.
func StripServerOwned(rec domain.Record, fields []string) domain.Record {
	stripped := make(domain.Record, len(rec))
	for key, value := range rec {
		stripped[key] = value
	}
	for _, field := range fields {
		delete(stripped, field)
	}
	return stripped
}
