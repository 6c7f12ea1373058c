package beeswaxclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// pageSize é o tamanho fixo de página usado por QueryAll.
const pageSize = 50

// requester é a dependência mínima de um Resource: executar uma
// requisição autenticada. Satisfeita pelo BeeswaxClient.
type requester interface {
	Request(ctx context.Context, method, path string, params domain.Record) (*domain.Response, error)
}

// ResourceConfig descreve declarativamente um recurso REST: caminho,
// campo de identidade, tabela de aliases de compatibilidade e ganchos
// de customização. Substitui herança por configuração.
type ResourceConfig struct {
	Name           string
	Path           string
	IDField        string
	StrictCreate   bool
	Aliases        map[string]string
	WritesDisabled bool
	PrepareBody    func(body domain.Record)
}

// Resource é o motor genérico de CRUD parametrizado por ResourceConfig.
type Resource struct {
	client requester
	cfg    ResourceConfig
}

func newResource(client requester, cfg ResourceConfig) *Resource {
	return &Resource{
		client: client,
		cfg:    cfg,
	}
}

// Config expõe a configuração do recurso (somente leitura).
func (r *Resource) Config() ResourceConfig {
	return r.cfg
}

// Find busca um registro pelo campo de identidade. Quando o registro
// não existe, retorna uma resposta estruturada de falha, não um erro:
// a ausência de um registro é um resultado de negócio, não uma exceção.
func (r *Resource) Find(ctx context.Context, id interface{}) (*domain.Response, error) {
	resp, err := r.Query(ctx, domain.Record{r.cfg.IDField: id})
	if err != nil {
		return nil, err
	}

	record := resp.First()
	if record == nil {
		return domain.NotFound(fmt.Sprintf("%s %v não encontrado", r.cfg.Name, id)), nil
	}

	return &domain.Response{
		Success: true,
		Payload: []domain.Record{record},
	}, nil
}

// Query retorna uma página de registros que casam com o filtro. Não há
// garantia de completude; para varredura completa use QueryAll.
func (r *Resource) Query(ctx context.Context, filter domain.Record) (*domain.Response, error) {
	resp, err := r.client.Request(ctx, http.MethodGet, r.cfg.Path, filter)
	if err != nil {
		if r.cfg.WritesDisabled {
			// Recurso descontinuado: consulta é melhor esforço
			logrus.WithError(err).WithField("resource", r.cfg.Name).
				Warn("Consulta a recurso descontinuado falhou; retornando vazio")
			return &domain.Response{Success: true}, nil
		}
		return nil, err
	}
	return resp, nil
}

// QueryAll varre todas as páginas do recurso ordenadas pelo campo de
// identidade, acumulando até uma página retornar menos registros que o
// tamanho de página. A API não informa contagem total, então a página
// curta é a única condição de parada determinística disponível.
func (r *Resource) QueryAll(ctx context.Context, filter domain.Record) (*domain.Response, error) {
	all := make([]domain.Record, 0, pageSize)

	for offset := 0; ; offset += pageSize {
		page := domain.Record{
			"rows":    pageSize,
			"offset":  offset,
			"sort_by": r.cfg.IDField,
		}
		for key, value := range filter {
			page[key] = value
		}

		resp, err := r.Query(ctx, page)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Payload...)
		if len(resp.Payload) < pageSize {
			break
		}
	}

	return &domain.Response{
		Success: true,
		Payload: all,
	}, nil
}

// Create cria um registro e o retorna hidratado: após a criação, o
// registro completo é buscado pelo id atribuído pelo sistema remoto,
// já que o endpoint de criação ecoa apenas uma resposta parcial.
func (r *Resource) Create(ctx context.Context, body domain.Record) (*domain.Response, error) {
	if r.cfg.WritesDisabled {
		return r.deprecated(), nil
	}
	if len(body) == 0 {
		return domain.Failure(http.StatusBadRequest, domain.ErrEmptyBody.Error()), nil
	}

	normalized := r.normalize(body)

	path := r.cfg.Path
	if r.cfg.StrictCreate {
		path += "/strict"
	}

	resp, err := r.client.Request(ctx, http.MethodPost, path, normalized)
	if err != nil {
		return nil, err
	}

	id, ok := extractID(resp, r.cfg.IDField)
	if !ok {
		// Sem id na resposta não há como hidratar; devolve o eco parcial
		return resp, nil
	}

	return r.Find(ctx, id)
}

// Edit altera um registro existente. Um "não encontrado" remoto vira
// resposta estruturada de falha, a menos que failOnNotFound peça o
// contrário.
func (r *Resource) Edit(ctx context.Context, id interface{}, body domain.Record, failOnNotFound bool) (*domain.Response, error) {
	if r.cfg.WritesDisabled {
		return r.deprecated(), nil
	}
	if len(body) == 0 {
		return domain.Failure(http.StatusBadRequest, domain.ErrEmptyBody.Error()), nil
	}

	normalized := r.normalize(body)
	normalized[r.cfg.IDField] = id

	resp, err := r.client.Request(ctx, http.MethodPut, r.cfg.Path, normalized)
	if err != nil {
		return r.handleNotFound(err, failOnNotFound)
	}
	return resp, nil
}

// Delete remove um registro. Simétrico a Edit quanto a "não encontrado".
func (r *Resource) Delete(ctx context.Context, id interface{}, failOnNotFound bool) (*domain.Response, error) {
	if r.cfg.WritesDisabled {
		return r.deprecated(), nil
	}

	resp, err := r.client.Request(ctx, http.MethodDelete, r.cfg.Path, domain.Record{r.cfg.IDField: id})
	if err != nil {
		return r.handleNotFound(err, failOnNotFound)
	}
	return resp, nil
}

func (r *Resource) handleNotFound(err error, failOnNotFound bool) (*domain.Response, error) {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && isNotFound(reqErr) && !failOnNotFound {
		return domain.NotFound(reqErr.Message), nil
	}
	return nil, err
}

func isNotFound(err *domain.RequestError) bool {
	return domain.IsNotFoundMessage(err.Message) || domain.IsNotFoundMessage(err.Body)
}

func (r *Resource) deprecated() *domain.Response {
	return domain.Failure(http.StatusGone,
		fmt.Sprintf("%s: %s", r.cfg.Name, domain.ErrWritesDisabled.Error()))
}

// normalize copia o corpo aplicando a tabela de aliases e o gancho de
// preparação do recurso. O chamador pode usar tanto o nome de campo
// legado quanto o atual; apenas a forma atual é enviada.
func (r *Resource) normalize(body domain.Record) domain.Record {
	normalized := make(domain.Record, len(body))
	for key, value := range body {
		normalized[key] = value
	}

	applyAliases(normalized, r.cfg.Aliases)

	if r.cfg.PrepareBody != nil {
		r.cfg.PrepareBody(normalized)
	}

	return normalized
}

// extractID obtém o id atribuído pelo sistema remoto na resposta de
// criação, aceitando tanto o campo de identidade do recurso quanto a
// chave genérica "id".
func extractID(resp *domain.Response, idField string) (interface{}, bool) {
	record := resp.First()
	if record == nil {
		return nil, false
	}
	if id, ok := record[idField]; ok && id != nil {
		return id, true
	}
	if id, ok := record["id"]; ok && id != nil {
		return id, true
	}
	return nil, false
}
