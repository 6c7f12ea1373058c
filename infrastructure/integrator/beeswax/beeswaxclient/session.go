package beeswaxclient

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"golang.org/x/sync/singleflight"
)

const (
	sessionCookieName = "sessionid"
	authenticatePath  = "/authenticate"
	authenticateKey   = "authenticate"
)

// Session guarda o estado de autenticação do cliente: o token opaco de
// sessão e a garantia de no máximo uma tentativa de login em voo.
type Session struct {
	email    string
	password string

	mu    sync.RWMutex
	token string

	group     singleflight.Group
	transport *Transport
}

// NewSession cria uma sessão não autenticada para as credenciais dadas.
func NewSession(email, password string) *Session {
	return &Session{
		email:    email,
		password: password,
	}
}

// Token retorna o token de sessão atual, ou vazio se não autenticado.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Authenticate envia as credenciais ao endpoint de login. Chamadas
// concorrentes enquanto um login está em andamento recebem o resultado
// dessa mesma tentativa, evitando uma avalanche de logins quando várias
// requisições falham ao mesmo tempo com sessão expirada.
func (s *Session) Authenticate(ctx context.Context) error {
	_, err, _ := s.group.Do(authenticateKey, func() (interface{}, error) {
		return nil, s.login(ctx)
	})
	return err
}

// login executa a troca de credenciais. Não há retry automático para a
// autenticação em si: uma falha é devolvida imediatamente ao chamador.
func (s *Session) login(ctx context.Context) error {
	credentials := domain.Record{
		"email":          s.email,
		"password":       s.password,
		"keep_logged_in": true,
	}

	_, err := s.transport.exchange(ctx, http.MethodPost, authenticatePath, credentials)
	if err != nil {
		return authenticationError(err)
	}

	if s.Token() == "" {
		return &domain.AuthenticationError{
			StatusCode: http.StatusOK,
			Body:       "resposta de login sem cookie de sessão",
		}
	}

	logrus.Debug("Sessão autenticada com sucesso")
	return nil
}

// authenticationError converte falhas do transporte em um erro de
// autenticação carregando o status e o corpo remotos.
func authenticationError(err error) error {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return &domain.AuthenticationError{
			StatusCode: httpErr.StatusCode,
			Body:       httpErr.Body,
		}
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return &domain.AuthenticationError{
			StatusCode: reqErr.StatusCode,
			Body:       reqErr.Body,
		}
	}

	return err
}

// keepAlive reautentica a sessão periodicamente para evitar expiração
// durante execuções longas. Opcional: só roda após StartKeepAlive.
type keepAlive struct {
	client    *BeeswaxClient
	interval  time.Duration
	mu        sync.Mutex
	scheduler *gocron.Scheduler
}

func newKeepAlive(client *BeeswaxClient, interval time.Duration) *keepAlive {
	return &keepAlive{
		client:   client,
		interval: interval,
	}
}

// StartKeepAlive agenda a renovação periódica da sessão.
func (c *BeeswaxClient) StartKeepAlive() error {
	return c.keepAlive.start()
}

// StopKeepAlive interrompe a renovação periódica da sessão.
func (c *BeeswaxClient) StopKeepAlive() {
	c.keepAlive.stop()
}

func (k *keepAlive) start() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.scheduler != nil {
		return nil
	}

	scheduler := gocron.NewScheduler(time.Local)
	_, err := scheduler.Every(k.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), k.client.opts.Timeout)
		defer cancel()

		if err := k.client.Authenticate(ctx); err != nil {
			logrus.WithError(err).Error("Erro na renovação periódica da sessão")
			return
		}
		logrus.Debug("Sessão renovada pelo keep-alive")
	})
	if err != nil {
		return err
	}

	scheduler.StartAsync()
	k.scheduler = scheduler

	logrus.WithField("interval", k.interval.String()).Info("Keep-alive de sessão iniciado")
	return nil
}

func (k *keepAlive) stop() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.scheduler == nil {
		return
	}
	k.scheduler.Stop()
	k.scheduler = nil

	logrus.Info("Keep-alive de sessão encerrado")
}
