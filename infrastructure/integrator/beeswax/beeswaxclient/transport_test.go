package beeswaxclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/internal/beeswaxtest"
)

func TestDefaultRetryCondition(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "Falha 5xx em GET é transitória",
			err:  &HTTPError{StatusCode: http.StatusInternalServerError, Method: http.MethodGet},
			want: true,
		},
		{
			name: "Falha 5xx em POST não é repetida",
			err:  &HTTPError{StatusCode: http.StatusInternalServerError, Method: http.MethodPost},
			want: false,
		},
		{
			name: "401 não é transitório",
			err:  &HTTPError{StatusCode: http.StatusUnauthorized, Method: http.MethodGet},
			want: false,
		},
		{
			name: "Falha lógica do envelope não é transitória",
			err:  &domain.RequestError{StatusCode: http.StatusOK, Message: "rejected"},
			want: false,
		},
		{
			name: "Erro de rede é transitório",
			err:  errors.New("connection refused"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultRetryCondition(tt.err))
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	tests := []struct {
		name   string
		params domain.Record
		want   string
	}{
		{
			name:   "Float64 grande sem notação científica",
			params: domain.Record{"campaign_id": float64(7000000)},
			want:   "campaign_id=7000000",
		},
		{
			name:   "Float64 fracionário preserva as casas",
			params: domain.Record{"cpm_bid": 2.5},
			want:   "cpm_bid=2.5",
		},
		{
			name:   "Int64",
			params: domain.Record{"campaign_id": int64(42)},
			want:   "campaign_id=42",
		},
		{
			name:   "Texto é escapado",
			params: domain.Record{"sort_by": "campaign id"},
			want:   "sort_by=campaign+id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeQuery(tt.params))
		})
	}
}

func TestExponentialDelay(t *testing.T) {
	assert.Equal(t, 250*time.Millisecond, ExponentialDelay(0))
	assert.Equal(t, 500*time.Millisecond, ExponentialDelay(1))
	assert.Equal(t, time.Second, ExponentialDelay(2))
}

func TestTransport_RetryEmFalhaTransitoria(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client, err := NewClient(Options{
		APIRoot:  server.URL,
		Email:    "ops@example.com",
		Password: "secret",
		Retry: &RetryPolicy{
			Retries:        3,
			RetryDelay:     func(int) time.Duration { return time.Millisecond },
			RetryCondition: DefaultRetryCondition,
		},
	})
	require.NoError(t, err)
	require.NoError(t, client.Authenticate(context.Background()))

	id := server.Seed("campaign", domain.Record{"campaign_name": "Resiliente"})

	// As duas primeiras tentativas falham com 500; a terceira passa
	server.FlakyStatus = http.StatusInternalServerError
	server.FlakyPaths["/campaign"] = 2

	resp, err := client.Campaigns().Find(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, server.Requests("/campaign"))
}

func TestTransport_SemRetryParaCriacao(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	server.FlakyStatus = http.StatusInternalServerError
	server.FlakyPaths["/campaign/strict"] = 1

	_, err := client.Campaigns().Create(context.Background(), domain.Record{"campaign_name": "X"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, 1, server.Requests("/campaign/strict"))
}

func TestTransport_EsgotamentoDeTentativas(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client, err := NewClient(Options{
		APIRoot:  server.URL,
		Email:    "ops@example.com",
		Password: "secret",
		Retry: &RetryPolicy{
			Retries:        1,
			RetryDelay:     func(int) time.Duration { return time.Millisecond },
			RetryCondition: DefaultRetryCondition,
		},
	})
	require.NoError(t, err)
	require.NoError(t, client.Authenticate(context.Background()))

	server.FlakyStatus = http.StatusServiceUnavailable
	server.FlakyPaths["/campaign"] = 10

	_, err = client.Campaigns().Query(context.Background(), nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	// 1 tentativa original + 1 retry
	assert.Equal(t, 2, server.Requests("/campaign"))
}
