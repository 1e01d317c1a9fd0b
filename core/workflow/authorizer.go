package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/humanika/backoffice/core/user"
	"github.com/humanika/backoffice/domain"
)

const (
	roleCacheExpiration      = 1 * time.Minute
	roleCacheCleanupInterval = 5 * time.Minute
)

//go:generate mockery --name=userService --exported --with-expecter
type userService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RoleAuthorizer decides review/archive permissions from the actor's role.
// Lookups are cached briefly since the same reviewer typically resolves
// several approvals in a row.
type RoleAuthorizer struct {
	userService userService
	roleCache   *cache.Cache
}

func NewRoleAuthorizer(userService userService) *RoleAuthorizer {
	return &RoleAuthorizer{
		userService: userService,
		roleCache:   cache.New(roleCacheExpiration, roleCacheCleanupInterval),
	}
}

func (a *RoleAuthorizer) CanReview(ctx context.Context, actorID string, _ domain.EntityType) (bool, error) {
	u, err := a.getUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.CanReview(), nil
}

func (a *RoleAuthorizer) CanArchive(ctx context.Context, actorID string, _ domain.EntityType) (bool, error) {
	u, err := a.getUser(ctx, actorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.CanArchive(), nil
}

func (a *RoleAuthorizer) getUser(ctx context.Context, id string) (*domain.User, error) {
	if cached, ok := a.roleCache.Get(id); ok {
		if u, ok := cached.(*domain.User); ok {
			return u, nil
		}
	}

	u, err := a.userService.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting user %q: %w", id, err)
	}
	a.roleCache.Set(id, u, cache.DefaultExpiration)

	return u, nil
}
