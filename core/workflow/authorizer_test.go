package workflow_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/humanika/backoffice/core/user"
	"github.com/humanika/backoffice/core/workflow"
	"github.com/humanika/backoffice/core/workflow/mocks"
	"github.com/humanika/backoffice/domain"
)

func TestRoleAuthorizer_CanReview(t *testing.T) {
	testCases := []struct {
		role     string
		expected bool
	}{
		{domain.RoleMember, false},
		{domain.RoleReviewer, true},
		{domain.RoleAdmin, true},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			userID := uuid.New().String()
			mockUserService := &mocks.UserService{}
			mockUserService.EXPECT().
				GetByID(mock.Anything, userID).
				Return(&domain.User{ID: userID, Role: tc.role}, nil)

			authorizer := workflow.NewRoleAuthorizer(mockUserService)
			allowed, err := authorizer.CanReview(context.Background(), userID, domain.EntityTypeEvent)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, allowed)
		})
	}
}

func TestRoleAuthorizer_CanArchive(t *testing.T) {
	testCases := []struct {
		role     string
		expected bool
	}{
		{domain.RoleMember, false},
		{domain.RoleReviewer, false},
		{domain.RoleAdmin, true},
	}

	for _, tc := range testCases {
		t.Run(tc.role, func(t *testing.T) {
			userID := uuid.New().String()
			mockUserService := &mocks.UserService{}
			mockUserService.EXPECT().
				GetByID(mock.Anything, userID).
				Return(&domain.User{ID: userID, Role: tc.role}, nil)

			authorizer := workflow.NewRoleAuthorizer(mockUserService)
			allowed, err := authorizer.CanArchive(context.Background(), userID, domain.EntityTypeEvent)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, allowed)
		})
	}
}

func TestRoleAuthorizer_DeniesUnknownUser(t *testing.T) {
	userID := uuid.New().String()
	mockUserService := &mocks.UserService{}
	mockUserService.EXPECT().
		GetByID(mock.Anything, userID).
		Return(nil, user.ErrUserNotFound)

	authorizer := workflow.NewRoleAuthorizer(mockUserService)

	allowed, err := authorizer.CanReview(context.Background(), userID, domain.EntityTypeEvent)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRoleAuthorizer_CachesRoleLookups(t *testing.T) {
	userID := uuid.New().String()
	mockUserService := &mocks.UserService{}
	mockUserService.EXPECT().
		GetByID(mock.Anything, userID).
		Return(&domain.User{ID: userID, Role: domain.RoleAdmin}, nil).
		Once()

	authorizer := workflow.NewRoleAuthorizer(mockUserService)

	for i := 0; i < 3; i++ {
		allowed, err := authorizer.CanArchive(context.Background(), userID, domain.EntityTypeEvent)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	mockUserService.AssertExpectations(t)
}
