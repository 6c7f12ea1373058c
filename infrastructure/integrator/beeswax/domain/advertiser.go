package domain

// Advertiser é a conta de topo que possui campanhas e criativos.
type Advertiser struct {
	AdvertiserID    int64                  `json:"advertiser_id" mapstructure:"advertiser_id"`
	AdvertiserName  string                 `json:"advertiser_name" mapstructure:"advertiser_name"`
	Active          bool                   `json:"active" mapstructure:"active"`
	DefaultClickURL string                 `json:"default_click_url,omitempty" mapstructure:"default_click_url"`
	CreateDate      string                 `json:"create_date,omitempty" mapstructure:"create_date"`
	UpdateDate      string                 `json:"update_date,omitempty" mapstructure:"update_date"`
	Extra           map[string]interface{} `json:"-" mapstructure:",remain"`
}
