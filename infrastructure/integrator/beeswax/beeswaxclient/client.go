package beeswaxclient

import (
	"context"
	"time"

	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
)

// Esquemas de line item suportados pela API. Qual deles é o vigente
// depende do ambiente remoto; a escolha é feita por configuração.
const (
	LineItemSchemaLegacy = "legacy"
	LineItemSchemaV2     = "v2"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultKeepAliveInterval = 30 * time.Minute
)

// Options é a configuração aceita pelo cliente. APIRoot, Email e
// Password são obrigatórios; os demais campos possuem padrões.
type Options struct {
	APIRoot           string
	Email             string
	Password          string
	Timeout           time.Duration
	Retry             *RetryPolicy
	LineItemSchema    string
	KeepAliveInterval time.Duration
}

// Client é a superfície pública do cliente da API de ad serving.
type Client interface {
	Authenticate(ctx context.Context) error
	StartKeepAlive() error
	StopKeepAlive()

	Advertisers() *Resource
	Campaigns() *Resource
	LineItems() *Resource
	Creatives() *Resource
	CreativeLineItems() *Resource
	CreativeAssets() *Resource
	TargetingTemplates() *Resource
	Segments() *Resource
	Reports() *Resource

	CreateLineItem(ctx context.Context, params CreateLineItemParams) (*domain.Response, error)
	UploadCreativeAsset(ctx context.Context, params UploadCreativeAssetParams) (*domain.Response, error)
}

// BeeswaxClient implementa Client sobre uma sessão autenticada por
// cookie e um transporte HTTP com retry.
type BeeswaxClient struct {
	opts      Options
	session   *Session
	transport *Transport
	keepAlive *keepAlive

	advertisers        *Resource
	campaigns          *Resource
	lineItems          *Resource
	creatives          *Resource
	creativeLineItems  *Resource
	creativeAssets     *Resource
	targetingTemplates *Resource
	segments           *Resource
	reports            *Resource
}

// NewClient cria uma nova instância do cliente. Falha imediatamente se
// a URL raiz ou as credenciais estiverem ausentes (erro de configuração,
// não de conectividade).
func NewClient(opts Options) (*BeeswaxClient, error) {
	if opts.APIRoot == "" {
		return nil, domain.ErrMissingAPIRoot
	}
	if opts.Email == "" || opts.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Retry == nil {
		opts.Retry = DefaultRetryPolicy()
	}
	if opts.LineItemSchema == "" {
		opts.LineItemSchema = LineItemSchemaLegacy
	}
	if opts.KeepAliveInterval == 0 {
		opts.KeepAliveInterval = defaultKeepAliveInterval
	}

	session := NewSession(opts.Email, opts.Password)
	transport := NewTransport(opts.APIRoot, opts.Timeout, opts.Retry, session)
	session.transport = transport

	client := &BeeswaxClient{
		opts:      opts,
		session:   session,
		transport: transport,
	}
	client.keepAlive = newKeepAlive(client, opts.KeepAliveInterval)

	client.advertisers = newResource(client, advertiserConfig)
	client.campaigns = newResource(client, campaignConfig)
	client.lineItems = newResource(client, lineItemConfigFor(opts.LineItemSchema))
	client.creatives = newResource(client, creativeConfig)
	client.creativeLineItems = newResource(client, creativeLineItemConfig)
	client.creativeAssets = newResource(client, creativeAssetConfig)
	client.targetingTemplates = newResource(client, targetingTemplateConfig)
	client.segments = newResource(client, segmentConfig)
	client.reports = newResource(client, reportConfig)

	return client, nil
}

// Authenticate realiza o login na API remota. Chamadas concorrentes
// compartilham a mesma tentativa em andamento.
func (c *BeeswaxClient) Authenticate(ctx context.Context) error {
	return c.session.Authenticate(ctx)
}

// Request executa uma requisição autenticada. Uma falha de sessão
// expirada dispara exatamente uma reautenticação seguida de replay;
// uma segunda falha é devolvida ao chamador.
func (c *BeeswaxClient) Request(ctx context.Context, method, path string, params domain.Record) (*domain.Response, error) {
	resp, err := c.transport.Do(ctx, method, path, params)
	if err == nil || !isUnauthorized(err) {
		return resp, err
	}

	if authErr := c.session.Authenticate(ctx); authErr != nil {
		return nil, authErr
	}
	return c.transport.Do(ctx, method, path, params)
}

func (c *BeeswaxClient) Advertisers() *Resource        { return c.advertisers }
func (c *BeeswaxClient) Campaigns() *Resource          { return c.campaigns }
func (c *BeeswaxClient) LineItems() *Resource          { return c.lineItems }
func (c *BeeswaxClient) Creatives() *Resource          { return c.creatives }
func (c *BeeswaxClient) CreativeLineItems() *Resource  { return c.creativeLineItems }
func (c *BeeswaxClient) CreativeAssets() *Resource     { return c.creativeAssets }
func (c *BeeswaxClient) TargetingTemplates() *Resource { return c.targetingTemplates }
func (c *BeeswaxClient) Segments() *Resource           { return c.segments }
func (c *BeeswaxClient) Reports() *Resource            { return c.reports }
