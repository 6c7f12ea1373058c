// Package beeswaxtest contém um servidor falso da API remota para os
// testes do cliente: autenticação por cookie, CRUD em memória com o
// envelope padrão de resposta e paginação por offset.
package beeswaxtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

const sessionCookieName = "sessionid"

// resourceIDFields lista os recursos servidos e seus campos de identidade.
var resourceIDFields = map[string]string{
	"advertiser":         "advertiser_id",
	"campaign":           "campaign_id",
	"line_item":          "line_item_id",
	"creative":           "creative_id",
	"creative_line_item": "cli_id",
	"creative_asset":     "creative_asset_id",
	"targeting_template": "targeting_template_id",
	"segment":            "segment_id",
	"report":             "report_id",
}

// Server é a API falsa. Os campos exportados ajustam o comportamento
// por teste antes das requisições.
type Server struct {
	*httptest.Server

	// FailLogin faz o login responder 401.
	FailLogin bool
	// LoginDelay atrasa o login, útil para acumular chamadas concorrentes.
	LoginDelay time.Duration
	// FlakyStatus, quando não zero, é respondido uma vez por caminho em
	// FlakyPaths antes de a requisição passar.
	FlakyStatus int
	FlakyPaths  map[string]int
	// RejectRequests faz toda requisição autenticada responder 401,
	// mesmo com cookie válido.
	RejectRequests bool

	mu         sync.Mutex
	token      string
	loginCalls int
	requests   map[string]int
	stores     map[string][]domain.Record
	nextID     map[string]int64
	uploads    map[string][]byte
}

// New inicia o servidor falso com os recursos padrão.
func New() *Server {
	s := &Server{
		FlakyPaths: map[string]int{},
		token:      "token-1",
		requests:   map[string]int{},
		stores:     map[string][]domain.Record{},
		nextID:     map[string]int64{},
		uploads:    map[string][]byte{},
	}

	router := httprouter.New()
	router.POST("/authenticate", s.handleAuthenticate)
	router.POST("/creative_asset/upload/:id", s.authenticated(s.handleUpload))

	for name := range resourceIDFields {
		name := name
		router.GET("/"+name, s.authenticated(s.handleQuery(name)))
		router.POST("/"+name, s.authenticated(s.handleCreate(name)))
		router.POST("/"+name+"/strict", s.authenticated(s.handleCreate(name)))
		router.PUT("/"+name, s.authenticated(s.handleEdit(name)))
		router.DELETE("/"+name, s.authenticated(s.handleDelete(name)))
	}

	// Endpoint versionado do esquema atual de line items
	router.GET("/v2/line-items", s.authenticated(s.handleQuery("line_item")))
	router.POST("/v2/line-items", s.authenticated(s.handleCreate("line_item")))
	router.PUT("/v2/line-items", s.authenticated(s.handleEdit("line_item")))
	router.DELETE("/v2/line-items", s.authenticated(s.handleDelete("line_item")))

	chain := alice.New(s.flakyMiddleware, loggingMiddleware).Then(router)
	s.Server = httptest.NewServer(chain)
	return s
}

// LoginCalls retorna quantas chamadas de login o servidor recebeu.
func (s *Server) LoginCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginCalls
}

// Requests retorna quantas requisições um caminho recebeu.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// ExpireSession invalida o cookie de sessão corrente: a próxima
// requisição autenticada recebe 401 até um novo login.
func (s *Server) ExpireSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = fmt.Sprintf("token-%d", time.Now().UnixNano())
}

// Seed insere um registro diretamente no recurso, atribuindo id quando
// ausente, e retorna o id atribuído.
func (s *Server) Seed(resource string, rec domain.Record) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	idField := resourceIDFields[resource]
	id, ok := rec[idField].(int64)
	if !ok {
		s.nextID[resource]++
		id = s.nextID[resource]
		rec[idField] = id
	} else if id > s.nextID[resource] {
		s.nextID[resource] = id
	}

	s.stores[resource] = append(s.stores[resource], rec)
	return id
}

// Records retorna uma cópia rasa dos registros de um recurso.
func (s *Server) Records(resource string) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Record{}, s.stores[resource]...)
}

// UploadedContent retorna o binário recebido para um asset.
func (s *Server) UploadedContent(assetID string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads[assetID]
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.LoginDelay > 0 {
		time.Sleep(s.LoginDelay)
	}

	s.mu.Lock()
	s.loginCalls++
	failLogin := s.FailLogin
	token := s.token
	s.mu.Unlock()

	if failLogin {
		writeEnvelope(w, http.StatusUnauthorized, &domain.Response{
			Success: false,
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: token})
	writeEnvelope(w, http.StatusOK, &domain.Response{Success: true})
}

// authenticated exige o cookie de sessão vigente.
func (s *Server) authenticated(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		s.mu.Lock()
		token := s.token
		reject := s.RejectRequests
		s.mu.Unlock()

		cookie, err := r.Cookie(sessionCookieName)
		if reject || err != nil || cookie.Value != token {
			writeEnvelope(w, http.StatusUnauthorized, &domain.Response{
				Success: false,
				Code:    http.StatusUnauthorized,
				Message: "session expired",
			})
			return
		}
		next(w, r, params)
	}
}

func (s *Server) handleQuery(resource string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		query := r.URL.Query()

		rows := len(s.Records(resource))
		if raw := query.Get("rows"); raw != "" {
			rows, _ = strconv.Atoi(raw)
		}
		offset := 0
		if raw := query.Get("offset"); raw != "" {
			offset, _ = strconv.Atoi(raw)
		}

		var matched []domain.Record
		for _, rec := range s.Records(resource) {
			if matchesFilter(rec, query) {
				matched = append(matched, rec)
			}
		}

		if offset > len(matched) {
			offset = len(matched)
		}
		end := offset + rows
		if end > len(matched) {
			end = len(matched)
		}

		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: true,
			Payload: matched[offset:end],
		})
	}
}

func (s *Server) handleCreate(resource string) httprouter.Handle {
	idField := resourceIDFields[resource]

	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body domain.Record
		if err := decodeBody(r, &body); err != nil {
			writeEnvelope(w, http.StatusOK, &domain.Response{
				Success: false,
				Code:    http.StatusBadRequest,
				Message: "invalid request body",
			})
			return
		}

		delete(body, idField)
		id := s.Seed(resource, body)

		// Eco parcial de criação: apenas o id atribuído
		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: true,
			Payload: []domain.Record{{idField: id}},
		})
	}
}

func (s *Server) handleEdit(resource string) httprouter.Handle {
	idField := resourceIDFields[resource]

	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body domain.Record
		if err := decodeBody(r, &body); err != nil {
			writeEnvelope(w, http.StatusOK, &domain.Response{
				Success: false,
				Code:    http.StatusBadRequest,
				Message: "invalid request body",
			})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		target := fmt.Sprint(body[idField])
		for _, rec := range s.stores[resource] {
			if fmt.Sprint(rec[idField]) == target {
				for key, value := range body {
					if key != idField {
						rec[key] = value
					}
				}
				writeEnvelope(w, http.StatusOK, &domain.Response{
					Success: true,
					Payload: []domain.Record{rec},
				})
				return
			}
		}

		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: false,
			Message: fmt.Sprintf("%s %s not found to update", resource, target),
		})
	}
}

func (s *Server) handleDelete(resource string) httprouter.Handle {
	idField := resourceIDFields[resource]

	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		target := r.URL.Query().Get(idField)

		s.mu.Lock()
		defer s.mu.Unlock()

		for index, rec := range s.stores[resource] {
			if fmt.Sprint(rec[idField]) == target {
				s.stores[resource] = append(s.stores[resource][:index], s.stores[resource][index+1:]...)
				writeEnvelope(w, http.StatusOK, &domain.Response{Success: true})
				return
			}
		}

		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: false,
			Message: fmt.Sprintf("%s %s not found to delete", resource, target),
		})
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: false,
			Code:    http.StatusBadRequest,
			Message: "invalid multipart body",
		})
		return
	}

	file, _, err := r.FormFile("creative_content")
	if err != nil {
		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: false,
			Code:    http.StatusBadRequest,
			Message: "missing creative_content",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeEnvelope(w, http.StatusOK, &domain.Response{
			Success: false,
			Message: "upload read error",
		})
		return
	}

	s.mu.Lock()
	s.uploads[params.ByName("id")] = content
	s.mu.Unlock()

	writeEnvelope(w, http.StatusOK, &domain.Response{Success: true})
}

// flakyMiddleware responde FlakyStatus as primeiras N vezes que um
// caminho listado em FlakyPaths é requisitado, e conta as requisições.
func (s *Server) flakyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		remaining := s.FlakyPaths[r.URL.Path]
		if remaining > 0 {
			s.FlakyPaths[r.URL.Path] = remaining - 1
		}
		status := s.FlakyStatus
		s.mu.Unlock()

		if remaining > 0 && status != 0 {
			http.Error(w, "temporary failure", status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("Requisição recebida pelo servidor de teste")
		next.ServeHTTP(w, r)
	})
}

func matchesFilter(rec domain.Record, query map[string][]string) bool {
	for key, values := range query {
		switch key {
		case "rows", "offset", "sort_by":
			continue
		}
		if len(values) == 0 {
			continue
		}
		if fmt.Sprint(rec[key]) != values[0] {
			return false
		}
	}
	return true
}

func decodeBody(r *http.Request, body *domain.Record) error {
	return json.NewDecoder(r.Body).Decode(body)
}

func writeEnvelope(w http.ResponseWriter, status int, resp *domain.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
