package beeswaxclient

import (
	"context"
	"fmt"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// UploadCreativeAssetParams descreve o asset binário a ser criado e
// carregado para um anunciante.
type UploadCreativeAssetParams struct {
	AdvertiserID int64
	Name         string
	Content      []byte
	MimeType     string
}

// UploadCreativeAsset cria o registro de asset e em seguida envia o
// conteúdo binário para o endpoint de upload do asset recém-criado.
func (c *BeeswaxClient) UploadCreativeAsset(ctx context.Context, params UploadCreativeAssetParams) (*domain.Response, error) {
	if len(params.Content) == 0 {
		return domain.Failure(400, "o conteúdo do asset não pode ser vazio"), nil
	}

	body := domain.Record{
		"advertiser_id":       params.AdvertiserID,
		"creative_asset_name": params.Name,
		"size_in_bytes":       len(params.Content),
		"active":              false,
	}
	if params.MimeType != "" {
		body["mime_type"] = params.MimeType
	}

	created, err := c.creativeAssets.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	if !created.Success {
		return created, nil
	}

	id, ok := extractID(created, "creative_asset_id")
	if !ok {
		return nil, fmt.Errorf("resposta de criação do asset sem id")
	}

	uploadPath := fmt.Sprintf("/creative_asset/upload/%v", id)
	if _, err := c.transport.Upload(ctx, uploadPath, params.Name, params.Content); err != nil {
		return nil, fmt.Errorf("erro ao enviar o conteúdo do asset: %w", err)
	}

	return c.creativeAssets.Find(ctx, id)
}
