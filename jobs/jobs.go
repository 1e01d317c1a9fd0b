package jobs

import (
	"context"
	"fmt"

	"github.com/humanika/backoffice/domain"
	"github.com/humanika/backoffice/pkg/log"
)

type Type string

const (
	PendingApprovalsReminder Type = "pending_approvals_reminder"
)

// Job is one entry in the server config's jobs map.
type Job struct {
	Enabled bool `mapstructure:"enabled"`
	// Interval is a cron-style schedule honored by an external scheduler
	// invoking `backoffice job run`.
	Interval string                 `mapstructure:"interval"`
	Config   map[string]interface{} `mapstructure:"config"`
}

type approvalService interface {
	List(ctx context.Context, filter *domain.ListApprovalRecordsFilter) ([]*domain.ApprovalRecord, error)
}

type userService interface {
	Find(ctx context.Context, filter *domain.ListUsersFilter) ([]*domain.User, error)
}

type Handler struct {
	logger          log.Logger
	approvalService approvalService
	userService     userService
}

func NewHandler(logger log.Logger, approvalService approvalService, userService userService) *Handler {
	return &Handler{
		logger:          logger,
		approvalService: approvalService,
		userService:     userService,
	}
}

// Run fires one job by type.
func (h *Handler) Run(ctx context.Context, jobType Type, cfg Job) error {
	switch jobType {
	case PendingApprovalsReminder:
		return h.PendingApprovalsReminder(ctx, cfg)
	default:
		return fmt.Errorf("unknown job type: %q", jobType)
	}
}
