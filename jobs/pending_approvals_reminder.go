package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"

	"github.com/humanika/backoffice/domain"
)

type pendingApprovalsReminderConfig struct {
	// ThresholdHours is how long a record may sit unresolved before it is
	// considered overdue.
	ThresholdHours int `mapstructure:"threshold_hours"`
}

// PendingApprovalsReminder finds approval records that have been pending
// longer than the configured threshold and logs one reminder per reviewer
// role holder. Intended to be fired on a schedule.
func (h *Handler) PendingApprovalsReminder(ctx context.Context, cfg Job) error {
	var jobCfg pendingApprovalsReminderConfig
	if err := mapstructure.Decode(cfg.Config, &jobCfg); err != nil {
		return err
	}
	if jobCfg.ThresholdHours <= 0 {
		jobCfg.ThresholdHours = 24
	}

	h.logger.Info(ctx, "running pending approvals reminder job", "threshold_hours", jobCfg.ThresholdHours)

	cutoff := time.Now().Add(-time.Duration(jobCfg.ThresholdHours) * time.Hour)

	var mu sync.Mutex
	var overdue []*domain.ApprovalRecord

	eg, egCtx := errgroup.WithContext(ctx)
	for _, entityType := range domain.AllEntityTypes {
		entityType := entityType
		eg.Go(func() error {
			records, err := h.approvalService.List(egCtx, &domain.ListApprovalRecordsFilter{
				EntityType:    string(entityType),
				Decisions:     []string{string(domain.DecisionPending)},
				CreatedBefore: &cutoff,
			})
			if err != nil {
				return err
			}
			mu.Lock()
			overdue = append(overdue, records...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if len(overdue) == 0 {
		h.logger.Info(ctx, "no overdue pending approvals")
		return nil
	}
	h.logger.Info(ctx, "found overdue pending approvals", "count", len(overdue))

	reviewers, err := h.userService.Find(ctx, &domain.ListUsersFilter{Role: domain.RoleReviewer})
	if err != nil {
		return err
	}
	admins, err := h.userService.Find(ctx, &domain.ListUsersFilter{Role: domain.RoleAdmin})
	if err != nil {
		return err
	}
	recipients := append(reviewers, admins...)

	countByType := make(map[domain.EntityType]int)
	for _, record := range overdue {
		countByType[record.EntityType]++
	}

	for _, recipient := range recipients {
		h.logger.Info(ctx, "pending approvals reminder",
			"to", recipient.Email,
			"total", len(overdue),
			"by_entity_type", countByType,
		)
	}

	return nil
}
