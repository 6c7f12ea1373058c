package orchestrating

import (
	"context"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/beeswaxclient"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_integrator.go -package=mocks

// AdServingIntegrator define as operações do cliente da API consumidas
// pelos macros. É uma projeção plana da superfície de recursos, o que
// mantém os macros testáveis com mocks.
type AdServingIntegrator interface {
	FindCampaign(ctx context.Context, id interface{}) (*domain.Response, error)
	CreateCampaign(ctx context.Context, body domain.Record) (*domain.Response, error)
	EditCampaign(ctx context.Context, id interface{}, body domain.Record, failOnNotFound bool) (*domain.Response, error)

	CreateLineItem(ctx context.Context, params beeswaxclient.CreateLineItemParams) (*domain.Response, error)
	CreateLineItemRecord(ctx context.Context, body domain.Record) (*domain.Response, error)
	QueryAllLineItems(ctx context.Context, filter domain.Record) (*domain.Response, error)

	CreateCreative(ctx context.Context, body domain.Record) (*domain.Response, error)
	CreateCreativeLineItem(ctx context.Context, body domain.Record) (*domain.Response, error)
	QueryAllCreativeLineItems(ctx context.Context, filter domain.Record) (*domain.Response, error)

	CreateTargetingTemplate(ctx context.Context, body domain.Record) (*domain.Response, error)
	UploadCreativeAsset(ctx context.Context, params beeswaxclient.UploadCreativeAssetParams) (*domain.Response, error)
	QueryReports(ctx context.Context, filter domain.Record) (*domain.Response, error)
}

// integrator adapta o BeeswaxClient à interface consumida pelos macros.
type integrator struct {
	client *beeswaxclient.BeeswaxClient
}

// NewIntegrator cria o adaptador padrão sobre um cliente real.
func NewIntegrator(client *beeswaxclient.BeeswaxClient) AdServingIntegrator {
	return &integrator{client: client}
}

func (i *integrator) FindCampaign(ctx context.Context, id interface{}) (*domain.Response, error) {
	return i.client.Campaigns().Find(ctx, id)
}

func (i *integrator) CreateCampaign(ctx context.Context, body domain.Record) (*domain.Response, error) {
	return i.client.Campaigns().Create(ctx, body)
}

func (i *integrator) EditCampaign(ctx context.Context, id interface{}, body domain.Record, failOnNotFound bool) (*domain.Response, error) {
	return i.client.Campaigns().Edit(ctx, id, body, failOnNotFound)
}

func (i *integrator) CreateLineItem(ctx context.Context, params beeswaxclient.CreateLineItemParams) (*domain.Response, error) {
	return i.client.CreateLineItem(ctx, params)
}

func (i *integrator) CreateLineItemRecord(ctx context.Context, body domain.Record) (*domain.Response, error) {
	return i.client.LineItems().Create(ctx, body)
}

func (i *integrator) QueryAllLineItems(ctx context.Context, filter domain.Record) (*domain.Response, error) {
	return i.client.LineItems().QueryAll(ctx, filter)
}

func (i *integrator) CreateCreative(ctx context.Context, body domain.Record) (*domain.Response, error) {
	return i.client.Creatives().Create(ctx, body)
}

func (i *integrator) CreateCreativeLineItem(ctx context.Context, body domain.Record) (*domain.Response, error) {
	return i.client.CreativeLineItems().Create(ctx, body)
}

func (i *integrator) QueryAllCreativeLineItems(ctx context.Context, filter domain.Record) (*domain.Response, error) {
	return i.client.CreativeLineItems().QueryAll(ctx, filter)
}

func (i *integrator) CreateTargetingTemplate(ctx context.Context, body domain.Record) (*domain.Response, error) {
	return i.client.TargetingTemplates().Create(ctx, body)
}

func (i *integrator) UploadCreativeAsset(ctx context.Context, params beeswaxclient.UploadCreativeAssetParams) (*domain.Response, error) {
	return i.client.UploadCreativeAsset(ctx, params)
}

func (i *integrator) QueryReports(ctx context.Context, filter domain.Record) (*domain.Response, error) {
	return i.client.Reports().QueryAll(ctx, filter)
}
