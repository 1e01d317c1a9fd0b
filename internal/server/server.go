package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/humanika/backoffice/api/handler"
	"github.com/humanika/backoffice/core/approval"
	"github.com/humanika/backoffice/core/article"
	"github.com/humanika/backoffice/core/document"
	"github.com/humanika/backoffice/core/event"
	"github.com/humanika/backoffice/core/finance"
	"github.com/humanika/backoffice/core/letter"
	"github.com/humanika/backoffice/core/user"
	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/core/workprogram"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/internal/store/postgres"
	"github.com/humanika/backoffice/pkg/audit"
	"github.com/humanika/backoffice/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// Services holds every initialized core service.
type Services struct {
	WorkflowService    *workflow.Service
	ApprovalService    *approval.Service
	WorkProgramService *workprogram.Service
	EventService       *event.Service
	FinanceService     *finance.Service
	DocumentService    *document.Service
	LetterService      *letter.Service
	ArticleService     *article.Service
	UserService        *user.Service

	ActivityLogRepository *postgres.ActivityLogRepository
	AuditLogger           *audit.Logger
}

type ServiceDeps struct {
	Config    *Config
	Logger    log.Logger
	Validator *validator.Validate
}

// InitServices opens the store and wires the repositories, the audit logger,
// the entity services, and the workflow engine together.
func InitServices(deps ServiceDeps) (*Services, *postgres.Store, error) {
	store, err := postgres.NewStore(&deps.Config.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing store: %w", err)
	}

	db := store.DB()
	activityLogRepository := postgres.NewActivityLogRepository(db)
	auditLogger := audit.NewLogger(activityLogRepository)

	approvalService := approval.NewService(approval.ServiceDeps{
		Repository:  postgres.NewApprovalRecordRepository(db),
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})

	workProgramService := workprogram.NewService(workprogram.ServiceDeps{
		Repository:  postgres.NewWorkProgramRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	eventService := event.NewService(event.ServiceDeps{
		Repository:  postgres.NewEventRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	financeService := finance.NewService(finance.ServiceDeps{
		Repository:  postgres.NewFinanceTransactionRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	documentService := document.NewService(document.ServiceDeps{
		Repository:  postgres.NewDocumentRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	letterService := letter.NewService(letter.ServiceDeps{
		Repository:  postgres.NewLetterRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	articleService := article.NewService(article.ServiceDeps{
		Repository:  postgres.NewArticleRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})
	userService := user.NewService(user.ServiceDeps{
		Repository:  postgres.NewUserRepository(db),
		Validator:   deps.Validator,
		Logger:      deps.Logger,
		AuditLogger: auditLogger,
	})

	workflowService := workflow.NewService(workflow.ServiceDeps{
		Adapters: map[domain.EntityType]workflow.EntityAdapter{
			domain.EntityTypeWorkProgram: workProgramService,
			domain.EntityTypeEvent:       eventService,
			domain.EntityTypeFinance:     financeService,
			domain.EntityTypeDocument:    documentService,
			domain.EntityTypeLetter:      letterService,
			domain.EntityTypeArticle:     articleService,
		},
		ApprovalService: approvalService,
		Authorizer:      workflow.NewRoleAuthorizer(userService),
		Transactor:      store,
		Logger:          deps.Logger,
		AuditLogger:     auditLogger,
	})

	return &Services{
		WorkflowService:    workflowService,
		ApprovalService:    approvalService,
		WorkProgramService: workProgramService,
		EventService:       eventService,
		FinanceService:     financeService,
		DocumentService:    documentService,
		LetterService:      letterService,
		ArticleService:     articleService,
		UserService:        userService,

		ActivityLogRepository: activityLogRepository,
		AuditLogger:           auditLogger,
	}, store, nil
}

// RunServer starts the HTTP server and blocks until the process receives an
// interrupt, then drains in-flight requests.
func RunServer(config *Config) error {
	logger := log.NewCtxLogger(config.LogLevel, []string{"request_id"})
	v := validator.New()

	services, _, err := InitServices(ServiceDeps{
		Config:    config,
		Logger:    logger,
		Validator: v,
	})
	if err != nil {
		return err
	}

	h := handler.NewHandler(handler.Deps{
		WorkflowService:    services.WorkflowService,
		ApprovalService:    services.ApprovalService,
		WorkProgramService: services.WorkProgramService,
		EventService:       services.EventService,
		FinanceService:     services.FinanceService,
		DocumentService:    services.DocumentService,
		LetterService:      services.LetterService,
		ArticleService:     services.ArticleService,
		UserService:        services.UserService,
		ActivityLogService: services.ActivityLogRepository,
		Logger:             logger,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		handler.RequestLogger(logger),
		handler.ActorMiddleware(config.Auth.HeaderKey),
	)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	h.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting server", "port", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Migrate applies pending database migrations.
func Migrate(config *Config) error {
	store, err := postgres.NewStore(&config.DB)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	return store.Migrate()
}
