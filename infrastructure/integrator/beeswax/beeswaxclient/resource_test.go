package beeswaxclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/internal/beeswaxtest"
)

func TestResource_CreateHidrataORegistro(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	resp, err := client.Campaigns().Create(context.Background(), domain.Record{
		"advertiser_id": 1,
		"name":          "Lançamento",
		"budget":        10000,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// O endpoint de criação ecoa só o id; o cliente deve devolver o
	// registro completo
	created := resp.First()
	require.NotNil(t, created)
	assert.Equal(t, "Lançamento", created["campaign_name"])

	found, err := client.Campaigns().Find(context.Background(), created["campaign_id"])
	require.NoError(t, err)
	assert.Equal(t, created["campaign_id"], found.First()["campaign_id"])
}

func TestResource_CreateHidrataComIdGrande(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	// O próximo id atribuído será 7000000; a hidratação filtra por esse
	// id depois de decodificá-lo de JSON como float64
	server.Seed("campaign", domain.Record{"campaign_id": int64(6999999)})

	resp, err := client.Campaigns().Create(context.Background(), domain.Record{
		"advertiser_id": 1,
		"name":          "Id alto",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	created := resp.First()
	assert.EqualValues(t, 7000000, created["campaign_id"])
	assert.Equal(t, "Id alto", created["campaign_name"])
}

func TestResource_CreateCorpoVazio(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	resp, err := client.Campaigns().Create(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestResource_FindInexistente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	resp, err := client.Campaigns().Find(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestResource_QueryAllParaNaPaginaCurta(t *testing.T) {
	tests := []struct {
		name         string
		records      int
		wantRequests int
	}{
		{
			// Múltiplo exato do tamanho de página: a API não informa a
			// contagem total, então uma página extra é necessária para
			// detectar o fim
			name:         "Múltiplo exato do tamanho de página",
			records:      pageSize * 2,
			wantRequests: 3,
		},
		{
			name:         "Última página curta",
			records:      pageSize + 25,
			wantRequests: 2,
		},
		{
			name:         "Sem registros",
			records:      0,
			wantRequests: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := beeswaxtest.New()
			defer server.Close()

			client := newTestClient(t, server)
			require.NoError(t, client.Authenticate(context.Background()))

			for i := 0; i < tt.records; i++ {
				server.Seed("campaign", domain.Record{
					"campaign_name": fmt.Sprintf("Campanha %d", i),
				})
			}

			resp, err := client.Campaigns().QueryAll(context.Background(), nil)
			require.NoError(t, err)
			assert.Len(t, resp.Payload, tt.records)
			assert.Equal(t, tt.wantRequests, server.Requests("/campaign"))
		})
	}
}

func TestResource_DeleteInexistente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	// Por padrão o "não encontrado" é engolido em resposta estruturada
	resp, err := client.Campaigns().Delete(context.Background(), 123, false)
	require.NoError(t, err)
	assert.False(t, resp.Success)

	// Com failOnNotFound o chamador quer o erro
	_, err = client.Campaigns().Delete(context.Background(), 123, true)
	require.Error(t, err)

	var reqErr *domain.RequestError
	assert.True(t, errors.As(err, &reqErr))
}

func TestResource_EditInexistente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	resp, err := client.Campaigns().Edit(context.Background(), 123, domain.Record{"active": true}, false)
	require.NoError(t, err)
	assert.False(t, resp.Success)

	_, err = client.Campaigns().Edit(context.Background(), 123, domain.Record{"active": true}, true)
	require.Error(t, err)
}

func TestResource_EditAtualizaCampos(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	id := server.Seed("campaign", domain.Record{"campaign_name": "Original", "active": false})

	resp, err := client.Campaigns().Edit(context.Background(), id, domain.Record{"active": true}, false)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, true, resp.First()["active"])
}

func TestResource_TargetingTemplateDescontinuado(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client, err := NewClient(Options{
		APIRoot:  server.URL,
		Email:    "ops@example.com",
		Password: "secret",
		Retry:    &RetryPolicy{Retries: 0, RetryDelay: ExponentialDelay, RetryCondition: DefaultRetryCondition},
	})
	require.NoError(t, err)
	require.NoError(t, client.Authenticate(context.Background()))

	// Escrita rejeitada com erro estruturado de descontinuação
	resp, err := client.TargetingTemplates().Create(context.Background(), domain.Record{"name": "geo"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusGone, resp.Code)

	// Consulta é melhor esforço: falha remota vira resultado vazio
	server.FlakyStatus = http.StatusInternalServerError
	server.FlakyPaths["/targeting_template"] = 100

	queried, err := client.TargetingTemplates().Query(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, queried.Success)
	assert.Empty(t, queried.Payload)
}

func TestResource_QueryFiltra(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	server.Seed("line_item", domain.Record{"campaign_id": 1, "line_item_name": "A"})
	server.Seed("line_item", domain.Record{"campaign_id": 2, "line_item_name": "B"})
	server.Seed("line_item", domain.Record{"campaign_id": 1, "line_item_name": "C"})

	resp, err := client.LineItems().QueryAll(context.Background(), domain.Record{"campaign_id": 1})
	require.NoError(t, err)
	assert.Len(t, resp.Payload, 2)
}
