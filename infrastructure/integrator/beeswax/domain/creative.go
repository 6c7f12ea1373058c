package domain

// Tipos de criativo, conforme os códigos numéricos da API remota.
const (
	CreativeTypeDisplay = 0
	CreativeTypeVideo   = 1
	CreativeTypeNative  = 2
)

// Creative é a peça de anúncio servida por um line item. Um criativo
// nunca deve ser ativado antes de ter conteúdo utilizável (um asset
// carregado ou equivalente).
type Creative struct {
	CreativeID   int64                  `json:"creative_id" mapstructure:"creative_id"`
	AdvertiserID int64                  `json:"advertiser_id" mapstructure:"advertiser_id"`
	CreativeName string                 `json:"creative_name" mapstructure:"creative_name"`
	CreativeType int                    `json:"creative_type" mapstructure:"creative_type"`
	Width        int                    `json:"width,omitempty" mapstructure:"width"`
	Height       int                    `json:"height,omitempty" mapstructure:"height"`
	ClickURL     string                 `json:"click_url,omitempty" mapstructure:"click_url"`
	Active       bool                   `json:"active" mapstructure:"active"`
	CreateDate   string                 `json:"create_date,omitempty" mapstructure:"create_date"`
	UpdateDate   string                 `json:"update_date,omitempty" mapstructure:"update_date"`
	Extra        map[string]interface{} `json:"-" mapstructure:",remain"`
}

// CreativeLineItem é a associação ponderada entre um criativo e um
// line item. O peso determina a proporção de entrega entre criativos
// do mesmo line item.
type CreativeLineItem struct {
	CLIID      int64                  `json:"cli_id" mapstructure:"cli_id"`
	CreativeID int64                  `json:"creative_id" mapstructure:"creative_id"`
	LineItemID int64                  `json:"line_item_id" mapstructure:"line_item_id"`
	Weighting  int                    `json:"weighting" mapstructure:"weighting"`
	Active     bool                   `json:"active" mapstructure:"active"`
	Extra      map[string]interface{} `json:"-" mapstructure:",remain"`
}

// CreativeAsset é o conteúdo binário (imagem, vídeo) de um anunciante,
// referenciado por criativos.
type CreativeAsset struct {
	CreativeAssetID   int64                  `json:"creative_asset_id" mapstructure:"creative_asset_id"`
	AdvertiserID      int64                  `json:"advertiser_id" mapstructure:"advertiser_id"`
	CreativeAssetName string                 `json:"creative_asset_name" mapstructure:"creative_asset_name"`
	SizeInBytes       int64                  `json:"size_in_bytes,omitempty" mapstructure:"size_in_bytes"`
	MimeType          string                 `json:"mime_type,omitempty" mapstructure:"mime_type"`
	Active            bool                   `json:"active" mapstructure:"active"`
	Extra             map[string]interface{} `json:"-" mapstructure:",remain"`
}
