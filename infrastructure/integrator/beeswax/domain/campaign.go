package domain

// Tipos de orçamento aceitos pela API. O tipo determina como o valor
// numérico do orçamento é interpretado pelo sistema remoto.
const (
	BudgetTypeSpend           = 0 // gasto em unidades menores da moeda (centavos)
	BudgetTypeImpressions     = 1 // total de impressões
	BudgetTypeSpendWithVendor = 2 // gasto incluindo taxas de fornecedores
)

// Campaign é o contêiner orçado e datado de line items de um anunciante.
type Campaign struct {
	CampaignID     int64                  `json:"campaign_id" mapstructure:"campaign_id"`
	AdvertiserID   int64                  `json:"advertiser_id" mapstructure:"advertiser_id"`
	CampaignName   string                 `json:"campaign_name" mapstructure:"campaign_name"`
	CampaignBudget int64                  `json:"campaign_budget" mapstructure:"campaign_budget"`
	BudgetType     int                    `json:"budget_type" mapstructure:"budget_type"`
	DailyBudget    int64                  `json:"daily_budget,omitempty" mapstructure:"daily_budget"`
	StartDate      string                 `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate        string                 `json:"end_date,omitempty" mapstructure:"end_date"`
	Active         bool                   `json:"active" mapstructure:"active"`
	CreateDate     string                 `json:"create_date,omitempty" mapstructure:"create_date"`
	UpdateDate     string                 `json:"update_date,omitempty" mapstructure:"update_date"`
	Extra          map[string]interface{} `json:"-" mapstructure:",remain"`
}

// CampaignPerformance agrega métricas de entrega de uma campanha,
// obtidas do endpoint de relatórios.
type CampaignPerformance struct {
	CampaignID  int64   `json:"campaign_id" mapstructure:"campaign_id"`
	Impressions int64   `json:"impressions" mapstructure:"impressions"`
	Clicks      int64   `json:"clicks" mapstructure:"clicks"`
	Conversions int64   `json:"conversions" mapstructure:"conversions"`
	Spend       float64 `json:"spend" mapstructure:"spend"`
}
