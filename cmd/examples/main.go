package main

import (
	"context"
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/beeswaxclient"
	"github.com/vfg2006/beeswax-client/infrastructure/integrator/beeswax/domain"
	"github.com/vfg2006/beeswax-client/internal/config"
	"github.com/vfg2006/beeswax-client/internal/usecases/orchestrating"
	"github.com/vfg2006/beeswax-client/pkg/log"
)

func main() {
	fullCampaign := flag.Bool("full-campaign", false, "cria uma campanha completa de demonstração")
	clone := flag.Int64("clone", 0, "clona a campanha com o id informado")
	keepAlive := flag.Bool("keep-alive", false, "mantém a sessão renovada periodicamente")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a configuração")
	}

	log.Setup(cfg.App.LogLevel)

	client, err := beeswaxclient.NewClient(cfg.ClientOptions())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao construir o cliente")
	}

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)
	logger.WithField("correlation_id", correlationID).Info("Iniciando exemplos do cliente")

	if err := client.Authenticate(ctx); err != nil {
		logger.WithError(err).Error("Erro ao autenticar")
		os.Exit(1)
	}

	if *keepAlive {
		if err := client.StartKeepAlive(); err != nil {
			logger.WithError(err).Warn("Keep-alive não pôde ser iniciado")
		}
		defer client.StopKeepAlive()
	}

	if err := listCampaigns(ctx, client); err != nil {
		logger.WithError(err).Error("Erro ao listar campanhas")
		os.Exit(1)
	}

	orchestrator := orchestrating.NewOrchestratorService(orchestrating.NewIntegrator(client))

	if *fullCampaign {
		runFullCampaign(ctx, orchestrator)
	}
	if *clone != 0 {
		runClone(ctx, orchestrator, *clone)
	}
}

func listCampaigns(ctx context.Context, client *beeswaxclient.BeeswaxClient) error {
	resp, err := client.Campaigns().QueryAll(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "consulta de campanhas falhou")
	}

	logger := log.ForContext(ctx)
	logger.Infof("Campanhas encontradas: %d", len(resp.Payload))
	for _, rec := range resp.Payload {
		var campaign domain.Campaign
		if err := domain.Decode(rec, &campaign); err != nil {
			continue
		}
		logger.WithFields(log.Fields{
			"campaign_id": campaign.CampaignID,
			"name":        campaign.CampaignName,
			"active":      campaign.Active,
		}).Info("Campanha")
	}
	return nil
}

func runFullCampaign(ctx context.Context, orchestrator orchestrating.Orchestrator) {
	logger := log.ForContext(ctx)

	result := orchestrator.CreateFullCampaign(ctx, orchestrating.CreateFullCampaignRequest{
		Campaign: domain.Record{
			"advertiser_id": 1,
			"name":          "Campanha de Demonstração",
			"budget":        100000,
			"start_date":    "2026-09-01",
			"end_date":      "2026-09-30",
		},
		LineItems: []orchestrating.LineItemSpec{
			{
				Params: beeswaxclient.CreateLineItemParams{
					Name:            "Line item display",
					Budget:          50000,
					BiddingStrategy: domain.BiddingStrategyCPM,
					BidValue:        250,
					Pacing:          domain.PacingDaily,
				},
				Creatives: []orchestrating.CreativeSpec{
					{
						Body: domain.Record{
							"name":          "Banner 300x250",
							"creative_type": "display",
							"width":         300,
							"height":        250,
							"click_url":     "https://example.com",
						},
					},
				},
			},
		},
	})

	logger.WithFields(log.Fields{
		"success": result.Success,
		"errors":  len(result.Errors),
	}).Info("Criação de campanha completa finalizada")
}

func runClone(ctx context.Context, orchestrator orchestrating.Orchestrator, campaignID int64) {
	logger := log.ForContext(ctx)

	result := orchestrator.CloneCampaign(ctx, campaignID, "Cópia de campanha", orchestrating.CloneCampaignOptions{
		BudgetMultiplier: 1.0,
	})

	logger.WithFields(log.Fields{
		"success": result.Success,
		"errors":  len(result.Errors),
	}).Info("Clonagem finalizada")
}
