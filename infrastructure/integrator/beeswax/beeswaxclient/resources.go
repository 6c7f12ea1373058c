package beeswaxclient

// Configurações declarativas dos recursos REST expostos pela API.
var (
	advertiserConfig = ResourceConfig{
		Name:    "advertiser",
		Path:    "/advertiser",
		IDField: "advertiser_id",
	}

	campaignConfig = ResourceConfig{
		Name:         "campaign",
		Path:         "/campaign",
		IDField:      "campaign_id",
		StrictCreate: true,
		Aliases:      campaignAliases,
	}

	creativeConfig = ResourceConfig{
		Name:         "creative",
		Path:         "/creative",
		IDField:      "creative_id",
		StrictCreate: true,
		Aliases:      creativeAliases,
		PrepareBody:  prepareCreativeBody,
	}

	creativeLineItemConfig = ResourceConfig{
		Name:    "creative_line_item",
		Path:    "/creative_line_item",
		IDField: "cli_id",
	}

	creativeAssetConfig = ResourceConfig{
		Name:    "creative_asset",
		Path:    "/creative_asset",
		IDField: "creative_asset_id",
	}

	// Targeting templates foram descontinuados: apenas leitura, e a
	// consulta é melhor esforço.
	targetingTemplateConfig = ResourceConfig{
		Name:           "targeting_template",
		Path:           "/targeting_template",
		IDField:        "targeting_template_id",
		WritesDisabled: true,
	}

	segmentConfig = ResourceConfig{
		Name:    "segment",
		Path:    "/segment",
		IDField: "segment_id",
	}

	reportConfig = ResourceConfig{
		Name:    "report",
		Path:    "/report",
		IDField: "report_id",
	}
)

// lineItemConfigFor escolhe o recurso de line item conforme o esquema
// configurado. O esquema legado usa o endpoint clássico com campos
// codificados em inteiros; o v2 usa o endpoint versionado com objetos
// nomeados. Qual é o vigente depende do ambiente remoto.
func lineItemConfigFor(schema string) ResourceConfig {
	if schema == LineItemSchemaV2 {
		return ResourceConfig{
			Name:    "line_item",
			Path:    "/v2/line-items",
			IDField: "line_item_id",
			Aliases: lineItemAliases,
		}
	}
	return ResourceConfig{
		Name:         "line_item",
		Path:         "/line_item",
		IDField:      "line_item_id",
		StrictCreate: true,
		Aliases:      lineItemAliases,
	}
}
