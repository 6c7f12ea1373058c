package beeswaxclient

import (
	"context"
	"fmt"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// Códigos inteiros do esquema legado de line item.
var (
	legacyBiddingStrategyCodes = map[string]int{
		domain.BiddingStrategyCPM: 0,
		domain.BiddingStrategyCPC: 1,
	}

	legacyPacingCodes = map[string]int{
		domain.PacingNone:     0,
		domain.PacingLifetime: 1,
		domain.PacingDaily:    2,
	}
)

// CreateLineItemParams são os parâmetros do helper de criação de line
// item. Campos de data e tipo de orçamento omitidos são herdados da
// campanha pai.
type CreateLineItemParams struct {
	CampaignID      int64
	Name            string
	Budget          int64
	BudgetType      *int
	BiddingStrategy string
	BidValue        float64
	Pacing          string
	StartDate       string
	EndDate         string
	Extra           domain.Record
}

// CreateLineItem cria um line item inativo sob uma campanha existente,
// herdando da campanha os padrões não informados. A inexistência da
// campanha pai é um erro fatal do helper, não uma resposta estruturada.
func (c *BeeswaxClient) CreateLineItem(ctx context.Context, params CreateLineItemParams) (*domain.Response, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("o nome do line item é obrigatório")
	}
	if params.BiddingStrategy != "" && params.BidValue <= 0 {
		return nil, fmt.Errorf("valor de lance inválido: %v", params.BidValue)
	}

	campaignResp, err := c.campaigns.Find(ctx, params.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaignResp.Success {
		return nil, fmt.Errorf("campanha %d não encontrada: %w", params.CampaignID, domain.ErrNotFound)
	}

	var campaign domain.Campaign
	if err := domain.Decode(campaignResp.First(), &campaign); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a campanha pai: %w", err)
	}

	body := domain.Record{
		"campaign_id":       params.CampaignID,
		"advertiser_id":     campaign.AdvertiserID,
		"line_item_name":    params.Name,
		"line_item_budget":  params.Budget,
		"line_item_type_id": 0,
		// Line items nascem inativos: a ativação só é válida depois que
		// as associações de criativos existem.
		"active": false,
	}

	// Herança dos padrões da campanha
	if params.BudgetType != nil {
		body["budget_type"] = *params.BudgetType
	} else {
		body["budget_type"] = campaign.BudgetType
	}
	if params.StartDate != "" {
		body["start_date"] = params.StartDate
	} else if campaign.StartDate != "" {
		body["start_date"] = campaign.StartDate
	}
	if params.EndDate != "" {
		body["end_date"] = params.EndDate
	} else if campaign.EndDate != "" {
		body["end_date"] = campaign.EndDate
	}

	if params.BiddingStrategy != "" {
		c.applyBidding(body, params)
	}

	for key, value := range params.Extra {
		body[key] = value
	}

	return c.lineItems.Create(ctx, body)
}

// applyBidding monta a configuração de lances conforme o esquema de
// line item configurado no cliente.
func (c *BeeswaxClient) applyBidding(body domain.Record, params CreateLineItemParams) {
	bidField := params.BiddingStrategy + "_bid"

	if c.opts.LineItemSchema == LineItemSchemaV2 {
		bidding := domain.Record{
			"bidding_strategy": params.BiddingStrategy,
			"values": domain.Record{
				bidField: params.BidValue,
			},
		}
		if params.Pacing != "" {
			bidding["pacing"] = params.Pacing
		}
		body["bidding"] = bidding
		return
	}

	if code, ok := legacyBiddingStrategyCodes[params.BiddingStrategy]; ok {
		body["bidding_strategy"] = code
	}
	body[bidField] = params.BidValue
	if code, ok := legacyPacingCodes[params.Pacing]; ok {
		body["pacing"] = code
	}
}
