package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humanika/backoffice/domain"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from     domain.Status
		to       domain.Status
		expected bool
	}{
		{domain.StatusDraft, domain.StatusPending, true},
		{domain.StatusDraft, domain.StatusApproved, false},
		{domain.StatusDraft, domain.StatusArchived, false},
		{domain.StatusPending, domain.StatusApproved, true},
		{domain.StatusPending, domain.StatusRejected, true},
		{domain.StatusPending, domain.StatusArchived, false},
		{domain.StatusPending, domain.StatusDraft, false},
		{domain.StatusApproved, domain.StatusArchived, true},
		{domain.StatusApproved, domain.StatusPending, true},
		{domain.StatusApproved, domain.StatusDraft, false},
		{domain.StatusRejected, domain.StatusDraft, true},
		{domain.StatusRejected, domain.StatusPending, true},
		{domain.StatusRejected, domain.StatusApproved, false},
		{domain.StatusArchived, domain.StatusDraft, false},
		{domain.StatusArchived, domain.StatusPending, false},
		{domain.StatusArchived, domain.StatusApproved, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.StatusArchived.IsTerminal())
	assert.False(t, domain.StatusDraft.IsTerminal())
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusApproved.IsTerminal())
	assert.False(t, domain.StatusRejected.IsTerminal())
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range []domain.Status{
		domain.StatusDraft,
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusArchived,
	} {
		assert.True(t, status.IsValid())
	}
	assert.False(t, domain.Status("published").IsValid())
	assert.False(t, domain.Status("").IsValid())
}

func TestDecision_RequiresNote(t *testing.T) {
	assert.False(t, domain.DecisionApproved.RequiresNote())
	assert.True(t, domain.DecisionRejected.RequiresNote())
	assert.True(t, domain.DecisionRevision.RequiresNote())
}

func TestDecision_IsResolution(t *testing.T) {
	assert.True(t, domain.DecisionApproved.IsResolution())
	assert.True(t, domain.DecisionRejected.IsResolution())
	assert.True(t, domain.DecisionRevision.IsResolution())
	assert.False(t, domain.DecisionPending.IsResolution())
}
