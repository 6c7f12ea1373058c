package beeswaxclient

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/internal/beeswaxtest"
)

func newTestClient(t *testing.T, server *beeswaxtest.Server) *BeeswaxClient {
	t.Helper()

	client, err := NewClient(Options{
		APIRoot:  server.URL,
		Email:    "ops@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_ConfiguracaoObrigatoria(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{
			name: "Sem URL raiz",
			opts: Options{Email: "ops@example.com", Password: "secret"},
			want: domain.ErrMissingAPIRoot,
		},
		{
			name: "Sem credenciais",
			opts: Options{APIRoot: "https://api.example.com/rest"},
			want: domain.ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSession_AutenticacaoSingleFlight(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()
	server.LoginDelay = 100 * time.Millisecond

	client := newTestClient(t, server)

	// N chamadas concorrentes antes da primeira resolver devem resultar
	// em exatamente uma chamada de login na rede
	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Authenticate(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, server.LoginCalls())
	assert.NotEmpty(t, client.session.Token())
}

func TestSession_FalhaDeAutenticacao(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()
	server.FailLogin = true

	client := newTestClient(t, server)

	err := client.Authenticate(context.Background())
	require.Error(t, err)

	var authErr *domain.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestSession_RenovacaoTransparente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	id := server.Seed("campaign", domain.Record{"campaign_name": "Ativa"})

	// Expira a sessão: a próxima requisição recebe 401, o cliente deve
	// reautenticar uma única vez e repetir a chamada
	server.ExpireSession()

	resp, err := client.Campaigns().Find(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, server.LoginCalls())
}

func TestSession_SegundaFalhaNaoAutorizadaEhPropagada(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))

	// Mesmo com reautenticação bem-sucedida, o servidor continua
	// rejeitando: o segundo 401 deve ser devolvido, sem loop infinito
	server.RejectRequests = true

	_, err := client.Campaigns().Find(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.Equal(t, 2, server.LoginCalls())
}

func TestSession_RotacaoDeCookie(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client := newTestClient(t, server)
	require.NoError(t, client.Authenticate(context.Background()))
	first := client.session.Token()

	// O servidor passa a emitir outro token; a reautenticação após a
	// expiração deve capturar o cookie rotacionado
	server.ExpireSession()
	require.NoError(t, client.Authenticate(context.Background()))

	assert.NotEqual(t, first, client.session.Token())
}

func TestSession_KeepAliveRenovaPeriodicamente(t *testing.T) {
	server := beeswaxtest.New()
	defer server.Close()

	client, err := NewClient(Options{
		APIRoot:           server.URL,
		Email:             "ops@example.com",
		Password:          "secret",
		KeepAliveInterval: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, client.Authenticate(context.Background()))
	require.Equal(t, 1, server.LoginCalls())

	require.NoError(t, client.StartKeepAlive())
	// Iniciar de novo enquanto já roda é inofensivo
	require.NoError(t, client.StartKeepAlive())
	defer client.StopKeepAlive()

	assert.Eventually(t, func() bool {
		return server.LoginCalls() >= 3
	}, 3*time.Second, 10*time.Millisecond, "o keep-alive deveria reautenticar periodicamente")

	client.StopKeepAlive()

	// Uma renovação em voo pode terminar logo após o Stop; o que não
	// pode haver é renovação nova depois de assentada a parada
	time.Sleep(100 * time.Millisecond)
	calls := server.LoginCalls()
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, calls, server.LoginCalls())
}
