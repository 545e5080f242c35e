package cmd

import (
	"agencyhub/api"
	"agencyhub/internal"
	"agencyhub/internal/app"
	"agencyhub/internal/calculator"
	"agencyhub/internal/insight"
	"agencyhub/internal/repository"
	"agencyhub/internal/service"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

type Dependencies struct {
	ApiHandler       *api.ApiHandler
	InsightDigestApp app.InsightDigestApp
	ExportService    service.ExportService
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	emailRepository, err := repository.NewEmailRepository(secrets.Email.Region, secrets.Email.FromEmail)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	clientRepository := repository.NewClientRepository(dbConn)
	opportunityRepository := repository.NewOpportunityRepository(dbConn)
	taskRepository := repository.NewTaskRepository(dbConn)
	organizationRepository := repository.NewOrganizationRepository(dbConn)
	savedStrategyRepository := repository.NewSavedStrategyRepository(dbConn)

	dashboardHandler := app.NewDashboardHandler(
		clientRepository,
		opportunityRepository,
		taskRepository,
		insight.NewEngine(),
	)

	emailService := service.NewEmailService(emailRepository)
	exportService := service.NewExportService(opportunityRepository)

	insightDigestApp := app.NewInsightDigestApp(
		organizationRepository,
		dashboardHandler,
		emailService,
	)

	apiHandler := &api.ApiHandler{
		Db:                      dbConn,
		DashboardHandler:        dashboardHandler,
		ClientRepository:        clientRepository,
		OpportunityRepository:   opportunityRepository,
		FilterExpressionService: calculator.NewFilterExpressionService(),
		ExportService:           exportService,
		GptRepository:           gptRepository,
		SavedStrategyRepository: savedStrategyRepository,
		ApiRequestRepository:    repository.ApiRequestRepositoryHandler{},
		SupabaseDecodeToken:     secrets.SupabaseJWTSecret,
	}

	return &Dependencies{
		ApiHandler:       apiHandler,
		InsightDigestApp: insightDigestApp,
		ExportService:    exportService,
	}, nil
}
