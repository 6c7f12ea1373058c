package orchestrating

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/beeswaxclient"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/pkg/log"
)

const (
	defaultWeighting = 100

	// Pausa fixa entre iterações de clonagem de line items, para não
	// rajar a API remota. Não é backpressure, apenas espaçamento.
	defaultCloneDelay = 250 * time.Millisecond
)

// CreativeSpec descreve um criativo a ser criado sob um line item,
// com opcionalmente um asset e o peso da associação.
type CreativeSpec struct {
	Body      domain.Record
	Asset     *beeswaxclient.UploadCreativeAssetParams
	Weighting int
}

// LineItemSpec agrupa os parâmetros de um line item e seus criativos.
type LineItemSpec struct {
	Params    beeswaxclient.CreateLineItemParams
	Creatives []CreativeSpec
}

// CreateFullCampaignRequest descreve a árvore completa de campanha a
// ser montada em uma única operação lógica.
type CreateFullCampaignRequest struct {
	Campaign           domain.Record
	TargetingTemplates []domain.Record
	LineItems          []LineItemSpec
}

// CloneCampaignOptions são os ajustes aplicados sobre o molde clonado.
type CloneCampaignOptions struct {
	StartDate        string
	EndDate          string
	BudgetMultiplier float64
	// CloneCreatives omitido equivale a true: as associações de
	// criativos do original são recriadas nos novos line items.
	CloneCreatives *bool
}

// Orchestrator compõe múltiplas chamadas do cliente em operações
// multi-entidade com semântica de sucesso parcial.
type Orchestrator interface {
	CreateFullCampaign(ctx context.Context, req CreateFullCampaignRequest) *MacroResult
	CloneCampaign(ctx context.Context, campaignID int64, newName string, opts CloneCampaignOptions) *MacroResult
	BulkUpdateCampaignStatus(ctx context.Context, ids []int64, active bool) *MacroResult
	BulkCreateLineItems(ctx context.Context, campaignID int64, items []beeswaxclient.CreateLineItemParams) *MacroResult
	GetCampaignPerformance(ctx context.Context, campaignID int64) *MacroResult
}

// OrchestratorService implementa os macros sobre um AdServingIntegrator.
// As criações dentro de um macro são estritamente sequenciais, na ordem
// de entrada: criativos precisam do id do seu line item e associações
// precisam de ambos.
type OrchestratorService struct {
	integrator AdServingIntegrator
	cloneDelay time.Duration
}

// NewOrchestratorService cria o orquestrador de macros.
func NewOrchestratorService(integrator AdServingIntegrator) *OrchestratorService {
	return &OrchestratorService{
		integrator: integrator,
		cloneDelay: defaultCloneDelay,
	}
}

// CreateFullCampaign cria a campanha (inativa), os targeting templates
// pedidos (melhor esforço), e para cada line item seus criativos e
// associações. Apenas a falha da campanha em si é fatal: os demais
// fracassos são registrados como pulados e a operação segue.
func (s *OrchestratorService) CreateFullCampaign(ctx context.Context, req CreateFullCampaignRequest) *MacroResult {
	logger := log.ForContext(ctx)

	if len(req.Campaign) == 0 {
		return failure("a definição da campanha é obrigatória")
	}

	campaignBody := copyRecord(req.Campaign)
	campaignBody["active"] = false

	campaignResp, err := s.integrator.CreateCampaign(ctx, campaignBody)
	if err != nil {
		return failure("erro ao criar a campanha: %v", err)
	}
	if !campaignResp.Success {
		return failure("criação da campanha rejeitada: %s", campaignResp.Message)
	}

	campaign := campaignResp.First()
	campaignID := campaign["campaign_id"]

	payload := &FullCampaignPayload{
		Campaign:  campaign,
		LineItems: []domain.Record{},
	}
	var errs []string

	for _, template := range req.TargetingTemplates {
		resp, err := s.integrator.CreateTargetingTemplate(ctx, template)
		if err != nil || !resp.Success {
			errs = append(errs, describeFailure("targeting template ignorado", resp, err))
			continue
		}
		payload.TargetingTemplates = append(payload.TargetingTemplates, resp.First())
	}

	for _, item := range req.LineItems {
		params := item.Params
		params.CampaignID = toInt64(campaignID)

		lineItemResp, err := s.integrator.CreateLineItem(ctx, params)
		if err != nil || !lineItemResp.Success {
			message := describeFailure("line item pulado", lineItemResp, err)
			logger.WithField("line_item", params.Name).Warn(message)
			errs = append(errs, message)
			continue
		}

		lineItem := lineItemResp.First()
		payload.LineItems = append(payload.LineItems, lineItem)

		s.createCreatives(ctx, lineItem, item.Creatives, payload, &errs)
	}

	return &MacroResult{
		Success: true,
		Payload: payload,
		Errors:  errs,
	}
}

// createCreatives cria os criativos de um line item e suas associações.
// Um upload de asset que falha não aborta o criativo: ele é criado sem
// o asset e a falha fica registrada.
func (s *OrchestratorService) createCreatives(
	ctx context.Context,
	lineItem domain.Record,
	specs []CreativeSpec,
	payload *FullCampaignPayload,
	errs *[]string,
) {
	logger := log.ForContext(ctx)

	for _, spec := range specs {
		body := copyRecord(spec.Body)
		body["active"] = false
		if _, ok := body["advertiser_id"]; !ok {
			body["advertiser_id"] = lineItem["advertiser_id"]
		}

		if spec.Asset != nil {
			assetResp, err := s.integrator.UploadCreativeAsset(ctx, *spec.Asset)
			if err != nil || !assetResp.Success {
				message := describeFailure("upload de asset falhou; criativo segue sem asset", assetResp, err)
				logger.Warn(message)
				*errs = append(*errs, message)
			} else {
				asset := assetResp.First()
				payload.Assets = append(payload.Assets, asset)
				body["creative_asset_id"] = asset["creative_asset_id"]
			}
		}

		creativeResp, err := s.integrator.CreateCreative(ctx, body)
		if err != nil || !creativeResp.Success {
			*errs = append(*errs, describeFailure("criativo pulado", creativeResp, err))
			continue
		}

		creative := creativeResp.First()
		payload.Creatives = append(payload.Creatives, creative)

		weighting := spec.Weighting
		if weighting == 0 {
			weighting = defaultWeighting
		}

		associationResp, err := s.integrator.CreateCreativeLineItem(ctx, domain.Record{
			"creative_id":  creative["creative_id"],
			"line_item_id": lineItem["line_item_id"],
			"weighting":    weighting,
			"active":       true,
		})
		if err != nil || !associationResp.Success {
			*errs = append(*errs, describeFailure("associação criativo-line item falhou", associationResp, err))
			continue
		}
		payload.Associations = append(payload.Associations, associationResp.First())
	}
}

// CloneCampaign recria uma campanha e seus line items a partir de uma
// campanha existente, descartando os campos de propriedade do servidor
// e aplicando sobrescritas de nome, datas e multiplicador de orçamento.
func (s *OrchestratorService) CloneCampaign(ctx context.Context, campaignID int64, newName string, opts CloneCampaignOptions) *MacroResult {
	logger := log.ForContext(ctx)

	sourceResp, err := s.integrator.FindCampaign(ctx, campaignID)
	if err != nil {
		return failure("erro ao buscar a campanha de origem: %v", err)
	}
	if !sourceResp.Success {
		return failure("campanha de origem %d não encontrada", campaignID)
	}

	template := beeswaxclient.StripServerOwned(sourceResp.First(), beeswaxclient.CampaignReadOnlyFields)
	template["campaign_name"] = newName
	if opts.StartDate != "" {
		template["start_date"] = opts.StartDate
	}
	if opts.EndDate != "" {
		template["end_date"] = opts.EndDate
	}
	if opts.BudgetMultiplier > 0 {
		multiplyBudget(template, "campaign_budget", opts.BudgetMultiplier)
	}

	cloneResp, err := s.integrator.CreateCampaign(ctx, template)
	if err != nil {
		return failure("erro ao criar a campanha clonada: %v", err)
	}
	if !cloneResp.Success {
		return failure("criação da campanha clonada rejeitada: %s", cloneResp.Message)
	}

	clone := cloneResp.First()
	newCampaignID := clone["campaign_id"]

	payload := &ClonePayload{
		Campaign:  clone,
		LineItems: []domain.Record{},
	}
	var errs []string

	lineItemsResp, err := s.integrator.QueryAllLineItems(ctx, domain.Record{"campaign_id": campaignID})
	if err != nil {
		return &MacroResult{
			Success: true,
			Message: "campanha clonada, mas os line items de origem não puderam ser listados",
			Payload: payload,
			Errors:  []string{err.Error()},
		}
	}

	cloneCreatives := opts.CloneCreatives == nil || *opts.CloneCreatives

	for index, source := range lineItemsResp.Payload {
		if index > 0 && s.cloneDelay > 0 {
			time.Sleep(s.cloneDelay)
		}

		sourceID := source["line_item_id"]

		body := beeswaxclient.StripServerOwned(source, beeswaxclient.LineItemReadOnlyFields)
		body["campaign_id"] = newCampaignID
		if opts.BudgetMultiplier > 0 {
			multiplyBudget(body, "line_item_budget", opts.BudgetMultiplier)
		}

		created, err := s.integrator.CreateLineItemRecord(ctx, body)
		if err != nil || !created.Success {
			message := describeFailure("line item não clonado", created, err)
			logger.WithField("source_line_item", sourceID).Warn(message)
			errs = append(errs, message)
			continue
		}

		newLineItem := created.First()
		payload.LineItems = append(payload.LineItems, newLineItem)

		if !cloneCreatives {
			continue
		}

		s.cloneAssociations(ctx, sourceID, newLineItem["line_item_id"], payload, &errs)
	}

	return &MacroResult{
		Success: true,
		Payload: payload,
		Errors:  errs,
	}
}

// cloneAssociations recria as associações criativo-line item do line
// item de origem apontando para o line item recém-criado, preservando
// criativo e peso.
func (s *OrchestratorService) cloneAssociations(
	ctx context.Context,
	sourceLineItemID, newLineItemID interface{},
	payload *ClonePayload,
	errs *[]string,
) {
	associations, err := s.integrator.QueryAllCreativeLineItems(ctx, domain.Record{"line_item_id": sourceLineItemID})
	if err != nil {
		*errs = append(*errs, errors.Wrap(err, "erro ao listar associações de origem").Error())
		return
	}

	for _, association := range associations.Payload {
		body := beeswaxclient.StripServerOwned(association, beeswaxclient.CreativeLineItemReadOnlyFields)
		body["line_item_id"] = newLineItemID

		created, err := s.integrator.CreateCreativeLineItem(ctx, body)
		if err != nil || !created.Success {
			*errs = append(*errs, describeFailure("associação não clonada", created, err))
			continue
		}
		payload.Associations = append(payload.Associations, created.First())
	}
}

// BulkUpdateCampaignStatus ativa ou desativa campanhas uma a uma,
// contabilizando sucessos e falhas. A operação em lote nunca falha como
// um todo: apenas itens individuais podem falhar.
func (s *OrchestratorService) BulkUpdateCampaignStatus(ctx context.Context, ids []int64, active bool) *MacroResult {
	payload := &BulkStatusPayload{}

	for _, id := range ids {
		resp, err := s.integrator.EditCampaign(ctx, id, domain.Record{"active": active}, false)
		if err != nil || !resp.Success {
			payload.Failed++
			continue
		}
		payload.Updated++
	}

	return &MacroResult{
		Success: true,
		Payload: payload,
	}
}

// BulkCreateLineItems cria vários line items sob uma campanha. A
// inexistência da campanha é fatal; falhas individuais são coletadas e
// todos os itens são tentados, mas o sucesso global exige zero erros.
func (s *OrchestratorService) BulkCreateLineItems(ctx context.Context, campaignID int64, items []beeswaxclient.CreateLineItemParams) *MacroResult {
	campaignResp, err := s.integrator.FindCampaign(ctx, campaignID)
	if err != nil {
		return failure("erro ao verificar a campanha: %v", err)
	}
	if !campaignResp.Success {
		return failure("campanha %d não encontrada", campaignID)
	}

	payload := &BulkLineItemsPayload{LineItems: []domain.Record{}}
	var errs []string

	for _, params := range items {
		params.CampaignID = campaignID

		resp, err := s.integrator.CreateLineItem(ctx, params)
		if err != nil || !resp.Success {
			errs = append(errs, describeFailure("line item não criado", resp, err))
			continue
		}
		payload.LineItems = append(payload.LineItems, resp.First())
	}

	return &MacroResult{
		Success: len(errs) == 0,
		Payload: payload,
		Errors:  errs,
	}
}

// GetCampaignPerformance agrega as métricas de entrega de uma campanha
// a partir do endpoint de relatórios.
func (s *OrchestratorService) GetCampaignPerformance(ctx context.Context, campaignID int64) *MacroResult {
	campaignResp, err := s.integrator.FindCampaign(ctx, campaignID)
	if err != nil {
		return failure("erro ao verificar a campanha: %v", err)
	}
	if !campaignResp.Success {
		return failure("campanha %d não encontrada", campaignID)
	}

	rows, err := s.integrator.QueryReports(ctx, domain.Record{"campaign_id": campaignID})
	if err != nil {
		return failure("erro ao consultar relatórios: %v", err)
	}

	performance := &domain.CampaignPerformance{CampaignID: campaignID}
	for _, row := range rows.Payload {
		var entry domain.CampaignPerformance
		if err := domain.Decode(row, &entry); err != nil {
			continue
		}
		performance.Impressions += entry.Impressions
		performance.Clicks += entry.Clicks
		performance.Conversions += entry.Conversions
		performance.Spend += entry.Spend
	}

	return &MacroResult{
		Success: true,
		Payload: performance,
	}
}

func copyRecord(rec domain.Record) domain.Record {
	copied := make(domain.Record, len(rec))
	for key, value := range rec {
		copied[key] = value
	}
	return copied
}

// describeFailure resume uma falha vinda por erro ou por resposta
// estruturada em uma única mensagem.
func describeFailure(prefix string, resp *domain.Response, err error) string {
	if err != nil {
		return prefix + ": " + err.Error()
	}
	if resp != nil && resp.Message != "" {
		return prefix + ": " + resp.Message
	}
	return prefix
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

// multiplyBudget aplica o multiplicador ao campo de orçamento quando
// presente, arredondando para a unidade monetária inteira.
func multiplyBudget(rec domain.Record, key string, multiplier float64) {
	switch value := rec[key].(type) {
	case int64:
		rec[key] = int64(math.Round(float64(value) * multiplier))
	case int:
		rec[key] = int64(math.Round(float64(value) * multiplier))
	case float64:
		rec[key] = int64(math.Round(value * multiplier))
	}
}
