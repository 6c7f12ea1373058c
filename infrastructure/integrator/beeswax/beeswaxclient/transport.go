package beeswaxclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RetryPolicy controla o comportamento de retry do transporte diante de
// falhas transitórias.
type RetryPolicy struct {
	Retries        int
	RetryDelay     func(attempt int) time.Duration
	RetryCondition func(err error) bool
}

// DefaultRetryPolicy repete até 3 vezes falhas de rede e falhas 5xx de
// métodos idempotentes, com backoff exponencial no número da tentativa.
func DefaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		Retries:        3,
		RetryDelay:     ExponentialDelay,
		RetryCondition: DefaultRetryCondition,
	}
}

// ExponentialDelay calcula o atraso da tentativa: 250ms, 500ms, 1s, ...
func ExponentialDelay(attempt int) time.Duration {
	return 250 * time.Millisecond << uint(attempt)
}

// DefaultRetryCondition considera transitórios os erros de rede e as
// falhas 5xx de métodos idempotentes.
func DefaultRetryCondition(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError && isIdempotent(httpErr.Method)
	}

	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		// Falha lógica declarada pela API não é transitória
		return false
	}

	// Qualquer outro erro veio da camada de rede
	return true
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodHead:
		return true
	}
	return false
}

// HTTPError representa uma resposta com status HTTP de erro.
type HTTPError struct {
	StatusCode int
	Method     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("erro na resposta da API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// Unwrap mapeia 401 para o erro sentinela de sessão expirada.
func (e *HTTPError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return nil
}

func isUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// Transport executa as trocas HTTP com a API remota: codifica
// parâmetros, anexa o cookie de sessão e aplica a política de retry.
type Transport struct {
	rootURL    string
	httpClient *http.Client
	retry      *RetryPolicy
	session    *Session
}

// NewTransport cria um transporte apontando para a URL raiz da API.
func NewTransport(rootURL string, timeout time.Duration, retry *RetryPolicy, session *Session) *Transport {
	return &Transport{
		rootURL: strings.TrimRight(rootURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retry:   retry,
		session: session,
	}
}

// Do executa uma troca HTTP com retry. GET e DELETE codificam os
// parâmetros na query string; os demais métodos enviam o corpo em JSON.
func (t *Transport) Do(ctx context.Context, method, path string, params domain.Record) (*domain.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.retry.Retries; attempt++ {
		if attempt > 0 {
			delay := t.retry.RetryDelay(attempt - 1)
			logrus.WithFields(logrus.Fields{
				"method":  method,
				"path":    path,
				"attempt": attempt,
				"delay":   delay.String(),
			}).Warn("Repetindo requisição após falha transitória")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := t.exchange(ctx, method, path, params)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !t.retry.RetryCondition(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

func (t *Transport) exchange(ctx context.Context, method, path string, params domain.Record) (*domain.Response, error) {
	endpoint := t.rootURL + path

	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		if len(params) > 0 {
			endpoint = endpoint + "?" + encodeQuery(params)
		}
	} else if params != nil {
		encoded, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("erro ao codificar o corpo da requisição: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	t.decorate(req)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return t.handleResponse(method, resp)
}

// Upload envia conteúdo binário via multipart. Não há retry: o upload
// não é idempotente do ponto de vista da API remota.
func (t *Transport) Upload(ctx context.Context, path, filename string, content []byte) (*domain.Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("creative_content", filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário de upload: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("erro ao escrever o conteúdo do upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o formulário de upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.rootURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de upload: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	t.decorate(req)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar o upload: %w", err)
	}
	defer resp.Body.Close()

	return t.handleResponse(http.MethodPost, resp)
}

// decorate anexa o cookie de sessão e um id curto de requisição.
func (t *Transport) decorate(req *http.Request) {
	if token := t.session.Token(); token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	if requestID, err := gonanoid.Generate(requestIDAlphabet, 10); err == nil {
		req.Header.Set("X-Request-Id", requestID)
	}
}

// handleResponse decodifica o envelope da resposta. A API sobrepõe seu
// próprio sinal de sucesso dentro de respostas 200: um envelope com
// success=false é tratado como erro mesmo com status HTTP de sucesso.
func (t *Transport) handleResponse(method string, resp *http.Response) (*domain.Response, error) {
	t.rotateSessionCookie(resp)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Body:       string(raw),
		}
	}

	var envelope domain.Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !envelope.Success {
		if envelope.Code == http.StatusUnauthorized {
			return nil, &HTTPError{
				StatusCode: http.StatusUnauthorized,
				Method:     method,
				Body:       string(raw),
			}
		}
		return nil, &domain.RequestError{
			StatusCode: resp.StatusCode,
			Message:    envelope.Message,
			Body:       string(raw),
		}
	}

	return &envelope, nil
}

// rotateSessionCookie atualiza o token armazenado sempre que a resposta
// carrega um novo cookie de sessão.
func (t *Transport) rotateSessionCookie(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			t.session.setToken(cookie.Value)
		}
	}
}

func encodeQuery(params domain.Record) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, queryValue(value))
	}
	return values.Encode()
}

// queryValue formata um valor de query string. Números vindos de
// respostas JSON chegam como float64; %v os renderizaria em notação
// científica a partir de 1e6, corrompendo filtros por id.
func queryValue(value interface{}) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}
