package domain

// Estratégias de bidding conhecidas. A API aceita outras; estas são as
// usadas pelos helpers deste cliente.
const (
	BiddingStrategyCPM = "cpm"
	BiddingStrategyCPC = "cpc"
)

// Modos de pacing do gasto de um line item.
const (
	PacingNone     = "none"
	PacingLifetime = "lifetime"
	PacingDaily    = "daily"
)

// Bidding descreve a configuração de lances de um line item no esquema
// atual (objetos nomeados). No esquema legado os mesmos conceitos são
// codificados em campos inteiros no corpo do line item.
type Bidding struct {
	Strategy string                 `json:"bidding_strategy" mapstructure:"bidding_strategy"`
	Values   map[string]interface{} `json:"values,omitempty" mapstructure:"values"`
	Pacing   string                 `json:"pacing,omitempty" mapstructure:"pacing"`
}

// SpendBudget define os tetos de gasto de um line item.
type SpendBudget struct {
	Lifetime    int64 `json:"lifetime,omitempty" mapstructure:"lifetime"`
	Daily       int64 `json:"daily,omitempty" mapstructure:"daily"`
	IncludeFees bool  `json:"include_fees,omitempty" mapstructure:"include_fees"`
}

// FrequencyCap limita quantas vezes um usuário vê anúncios do line item.
type FrequencyCap struct {
	IDType   string `json:"id_type,omitempty" mapstructure:"id_type"`
	Limit    int    `json:"limit" mapstructure:"limit"`
	Duration int    `json:"duration" mapstructure:"duration"`
}

// LineItem é a unidade de entrega de anúncios dentro de uma campanha.
// Um line item nunca deve ser ativado antes de todas as suas associações
// de criativos existirem.
type LineItem struct {
	LineItemID     int64                  `json:"line_item_id" mapstructure:"line_item_id"`
	CampaignID     int64                  `json:"campaign_id" mapstructure:"campaign_id"`
	AdvertiserID   int64                  `json:"advertiser_id" mapstructure:"advertiser_id"`
	LineItemName   string                 `json:"line_item_name" mapstructure:"line_item_name"`
	LineItemBudget int64                  `json:"line_item_budget" mapstructure:"line_item_budget"`
	BudgetType     int                    `json:"budget_type" mapstructure:"budget_type"`
	Bidding        *Bidding               `json:"bidding,omitempty" mapstructure:"bidding"`
	SpendBudget    *SpendBudget           `json:"spend_budget,omitempty" mapstructure:"spend_budget"`
	FrequencyCaps  []FrequencyCap         `json:"frequency_caps,omitempty" mapstructure:"frequency_caps"`
	StartDate      string                 `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate        string                 `json:"end_date,omitempty" mapstructure:"end_date"`
	Active         bool                   `json:"active" mapstructure:"active"`
	CreateDate     string                 `json:"create_date,omitempty" mapstructure:"create_date"`
	UpdateDate     string                 `json:"update_date,omitempty" mapstructure:"update_date"`
	Extra          map[string]interface{} `json:"-" mapstructure:",remain"`
}
