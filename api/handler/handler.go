package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type workflowService interface {
	Submit(ctx context.Context, entityType domain.EntityType, entityID, submitterID string) (*workflow.Result, error)
	Review(ctx context.Context, entityType domain.EntityType, entityID, reviewerID string, decision domain.Decision, note string) (*workflow.Result, error)
	Archive(ctx context.Context, entityType domain.EntityType, entityID, actorID string) (*workflow.Result, error)
}

type approvalService interface {
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string) ([]*domain.ApprovalRecord, error)
	List(ctx context.Context, filter *domain.ListApprovalRecordsFilter) ([]*domain.ApprovalRecord, error)
}

type workProgramService interface {
	Create(ctx context.Context, wp *domain.WorkProgram) error
	GetByID(ctx context.Context, id string) (*domain.WorkProgram, error)
	Find(ctx context.Context, filter *domain.ListWorkProgramsFilter) ([]*domain.WorkProgram, error)
	Update(ctx context.Context, wp *domain.WorkProgram) error
	Delete(ctx context.Context, id string) error
}

type eventService interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Find(ctx context.Context, filter *domain.ListEventsFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type financeService interface {
	Create(ctx context.Context, t *domain.FinanceTransaction) error
	GetByID(ctx context.Context, id string) (*domain.FinanceTransaction, error)
	Find(ctx context.Context, filter *domain.ListFinanceTransactionsFilter) ([]*domain.FinanceTransaction, error)
	Update(ctx context.Context, t *domain.FinanceTransaction) error
	Delete(ctx context.Context, id string) error
}

type documentService interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	Find(ctx context.Context, filter *domain.ListDocumentsFilter) ([]*domain.Document, error)
	Update(ctx context.Context, d *domain.Document) error
	Delete(ctx context.Context, id string) error
}

type letterService interface {
	Create(ctx context.Context, l *domain.Letter) error
	GetByID(ctx context.Context, id string) (*domain.Letter, error)
	Find(ctx context.Context, filter *domain.ListLettersFilter) ([]*domain.Letter, error)
	Update(ctx context.Context, l *domain.Letter) error
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) error
	Unpublish(ctx context.Context, id string) error
}

type articleService interface {
	Create(ctx context.Context, a *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Find(ctx context.Context, filter *domain.ListArticlesFilter) ([]*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) error
	Delete(ctx context.Context, id string) error
}

type userService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Find(ctx context.Context, filter *domain.ListUsersFilter) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type activityLogService interface {
	List(ctx context.Context, filter *domain.ListActivityLogsFilter) ([]*domain.ActivityLog, error)
}

// Handler exposes the services over HTTP.
type Handler struct {
	workflowService    workflowService
	approvalService    approvalService
	workProgramService workProgramService
	eventService       eventService
	financeService     financeService
	documentService    documentService
	letterService      letterService
	articleService     articleService
	userService        userService
	activityLogService activityLogService

	logger log.Logger
}

type Deps struct {
	WorkflowService    workflowService
	ApprovalService    approvalService
	WorkProgramService workProgramService
	EventService       eventService
	FinanceService     financeService
	DocumentService    documentService
	LetterService      letterService
	ArticleService     articleService
	UserService        userService
	ActivityLogService activityLogService

	Logger log.Logger
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		workflowService:    deps.WorkflowService,
		approvalService:    deps.ApprovalService,
		workProgramService: deps.WorkProgramService,
		eventService:       deps.EventService,
		financeService:     deps.FinanceService,
		documentService:    deps.DocumentService,
		letterService:      deps.LetterService,
		articleService:     deps.ArticleService,
		userService:        deps.UserService,
		activityLogService: deps.ActivityLogService,
		logger:             deps.Logger,
	}
}

// RegisterRoutes attaches all endpoints under /v1.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	v1 := r.Group("/v1")

	v1.POST("/workflow/:entity_type/:id/submit", h.SubmitEntity)
	v1.POST("/workflow/:entity_type/:id/review", h.ReviewEntity)
	v1.POST("/workflow/:entity_type/:id/archive", h.ArchiveEntity)
	v1.GET("/workflow/:entity_type/:id/approvals", h.ListEntityApprovals)
	v1.GET("/approvals", h.ListApprovals)

	v1.POST("/work-programs", h.CreateWorkProgram)
	v1.GET("/work-programs", h.ListWorkPrograms)
	v1.GET("/work-programs/:id", h.GetWorkProgram)
	v1.PUT("/work-programs/:id", h.UpdateWorkProgram)
	v1.DELETE("/work-programs/:id", h.DeleteWorkProgram)

	v1.POST("/events", h.CreateEvent)
	v1.GET("/events", h.ListEvents)
	v1.GET("/events/:id", h.GetEvent)
	v1.PUT("/events/:id", h.UpdateEvent)
	v1.DELETE("/events/:id", h.DeleteEvent)

	v1.POST("/finance-transactions", h.CreateFinanceTransaction)
	v1.GET("/finance-transactions", h.ListFinanceTransactions)
	v1.GET("/finance-transactions/:id", h.GetFinanceTransaction)
	v1.PUT("/finance-transactions/:id", h.UpdateFinanceTransaction)
	v1.DELETE("/finance-transactions/:id", h.DeleteFinanceTransaction)

	v1.POST("/documents", h.CreateDocument)
	v1.GET("/documents", h.ListDocuments)
	v1.GET("/documents/:id", h.GetDocument)
	v1.PUT("/documents/:id", h.UpdateDocument)
	v1.DELETE("/documents/:id", h.DeleteDocument)

	v1.POST("/letters", h.CreateLetter)
	v1.GET("/letters", h.ListLetters)
	v1.GET("/letters/:id", h.GetLetter)
	v1.PUT("/letters/:id", h.UpdateLetter)
	v1.DELETE("/letters/:id", h.DeleteLetter)
	v1.POST("/letters/:id/publish", h.PublishLetter)
	v1.POST("/letters/:id/unpublish", h.UnpublishLetter)

	v1.POST("/articles", h.CreateArticle)
	v1.GET("/articles", h.ListArticles)
	v1.GET("/articles/:id", h.GetArticle)
	v1.PUT("/articles/:id", h.UpdateArticle)
	v1.DELETE("/articles/:id", h.DeleteArticle)

	v1.POST("/users", h.CreateUser)
	v1.GET("/users", h.ListUsers)
	v1.GET("/users/:id", h.GetUser)
	v1.PUT("/users/:id", h.UpdateUser)
	v1.DELETE("/users/:id", h.DeleteUser)

	v1.GET("/activity-logs", h.ListActivityLogs)
}
