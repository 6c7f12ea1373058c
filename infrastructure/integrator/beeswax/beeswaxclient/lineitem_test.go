package beeswaxclient

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/internal/beeswaxtest"
)

func seedParentCampaign(t *testing.T, server *beeswaxtest.Server) int64 {
	t.Helper()

	return server.Seed("campaign", domain.Record{
		"advertiser_id": int64(9),
		"campaign_name": "Pai",
		"budget_type":   domain.BudgetTypeImpressions,
		"start_date":    "2026-09-01",
		"end_date":      "2026-09-30",
	})
}

func TestCreateLineItem_HerdaPadroesDaCampanha(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))
	campaignID := seedParentCampaign(t, server)

	resp, err := client.CreateLineItem(context.Background(), CreateLineItemParams{
		CampaignID: campaignID,
		Name:       "Line item herdeiro",
		Budget:     1000,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	created := resp.First()
	assert.Equal(t, "Line item herdeiro", created["line_item_name"])
	assert.EqualValues(t, domain.BudgetTypeImpressions, created["budget_type"])
	assert.Equal(t, "2026-09-01", created["start_date"])
	assert.Equal(t, "2026-09-30", created["end_date"])
	assert.Equal(t, false, created["active"])
}

func TestCreateLineItem_ParametrosSobrepoemHeranca(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))
	campaignID := seedParentCampaign(t, server)

	budgetType := domain.BudgetTypeSpend
	resp, err := client.CreateLineItem(context.Background(), CreateLineItemParams{
		CampaignID: campaignID,
		Name:       "Line item próprio",
		Budget:     1000,
		BudgetType: &budgetType,
		StartDate:  "2026-10-01",
		Extra:      domain.Record{"notes": "teste"},
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	created := resp.First()
	assert.EqualValues(t, domain.BudgetTypeSpend, created["budget_type"])
	assert.Equal(t, "2026-10-01", created["start_date"])
	// O fim continua herdado da campanha
	assert.Equal(t, "2026-09-30", created["end_date"])
	assert.Equal(t, "teste", created["notes"])
}

func TestCreateLineItem_Validacao(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))
	campaignID := seedParentCampaign(t, server)

	tests := []struct {
		name   string
		params CreateLineItemParams
	}{
		{
			name:   "Nome ausente",
			params: CreateLineItemParams{CampaignID: campaignID, Budget: 100},
		},
		{
			name: "Lance inválido para a estratégia",
			params: CreateLineItemParams{
				CampaignID:      campaignID,
				Name:            "LI",
				Budget:          100,
				BiddingStrategy: domain.BiddingStrategyCPM,
				BidValue:        0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CreateLineItem(context.Background(), tt.params)
			assert.Error(t, err)
		})
	}
}

func TestCreateLineItem_CampanhaInexistente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	_, err := client.CreateLineItem(context.Background(), CreateLineItemParams{
		CampaignID: 404,
		Name:       "Órfão",
		Budget:     100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCreateLineItem_EsquemaDeLances(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		check  func(t *testing.T, created domain.Record)
	}{
		{
			name:   "Esquema legado usa códigos inteiros",
			schema: LineItemSchemaLegacy,
			check: func(t *testing.T, created domain.Record) {
				assert.EqualValues(t, 0, created["bidding_strategy"])
				assert.EqualValues(t, 2.5, created["cpm_bid"])
				assert.EqualValues(t, 2, created["pacing"])
			},
		},
		{
			name:   "Esquema v2 usa objeto de lances nomeado",
			schema: LineItemSchemaV2,
			check: func(t *testing.T, created domain.Record) {
				bidding, ok := created["bidding"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, domain.BiddingStrategyCPM, bidding["bidding_strategy"])
				assert.Equal(t, domain.PacingDaily, bidding["pacing"])

				values, ok := bidding["values"].(map[string]interface{})
				require.True(t, ok)
				assert.EqualValues(t, 2.5, values["cpm_bid"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := beeswaxtest.New()
			defer server.Close()

			client, err := NewClient(Options{
				APIRoot:        server.URL,
				Email:          "ops@example.com",
				Password:       "secret",
				LineItemSchema: tt.schema,
			})
			require.NoError(t, err)
			require.NoError(t, client.Authenticate(context.Background()))
			campaignID := seedParentCampaign(t, server)

			resp, err := client.CreateLineItem(context.Background(), CreateLineItemParams{
				CampaignID:      campaignID,
				Name:            "LI com lance",
				Budget:          100,
				BiddingStrategy: domain.BiddingStrategyCPM,
				BidValue:        2.5,
				Pacing:          domain.PacingDaily,
			})
			require.NoError(t, err)
			require.True(t, resp.Success)
			tt.check(t, resp.First())
		})
	}
}

func TestUploadCreativeAsset(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	content := []byte("binário do criativo")
	resp, err := client.UploadCreativeAsset(context.Background(), UploadCreativeAssetParams{
		AdvertiserID: 9,
		Name:         "banner.png",
		Content:      content,
		MimeType:     "image/png",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	asset := resp.First()
	assert.Equal(t, "banner.png", asset["creative_asset_name"])
	assert.EqualValues(t, len(content), asset["size_in_bytes"])

	id := fmt.Sprint(asset["creative_asset_id"])
	assert.Equal(t, content, server.UploadedContent(id))
}

func TestUploadCreativeAsset_ConteudoVazio(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	resp, err := client.UploadCreativeAsset(context.Background(), UploadCreativeAssetParams{
		AdvertiserID: 9,
		Name:         "vazio.png",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, 400, resp.Code)
}
