package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dataproanalytics/workflow-crm/internal/models"
	"github.com/dataproanalytics/workflow-crm/internal/templates"
)

func TestStatusValidity(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusActive, StatusInProgress,
		StatusCompleted, StatusCancelled,
	} {
		assert.True(t, IsValid(s), string(s))
	}
	assert.False(t, IsValid(Status("archived")))
	assert.False(t, IsValid(Status("")))
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusActive))
	assert.False(t, IsTerminal(StatusInProgress))
}

func TestOrderlyTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusActive, true},
		{StatusActive, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, true},

		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusCancelled, false},
		{StatusActive, StatusCompleted, false},
		{StatusCompleted, StatusActive, false},
		{StatusCancelled, StatusActive, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, IsOrderly(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApplyStatus(t *testing.T) {
	now := time.Now()
	p := &models.Project{Status: string(StatusInProgress), Notes: "old"}

	ApplyStatus(p, StatusCompleted, "delivered ahead of schedule", now)

	assert.Equal(t, string(StatusCompleted), p.Status)
	assert.Equal(t, "delivered ahead of schedule", p.Notes)
	if assert.NotNil(t, p.CompletedAt) {
		assert.True(t, p.CompletedAt.Equal(now))
	}
}

func TestApplyStatusKeepsNotesWhenEmpty(t *testing.T) {
	p := &models.Project{Status: string(StatusActive), Notes: "keep me"}

	ApplyStatus(p, StatusInProgress, "", time.Now())

	assert.Equal(t, "keep me", p.Notes)
	assert.Nil(t, p.CompletedAt)
}

func TestMessageKindFor(t *testing.T) {
	kind, ok := MessageKindFor(StatusActive)
	assert.True(t, ok)
	assert.Equal(t, templates.NameProjectKickoff, kind)

	kind, ok = MessageKindFor(StatusInProgress)
	assert.True(t, ok)
	assert.Equal(t, templates.NameProgressUpdate, kind)

	kind, ok = MessageKindFor(StatusCompleted)
	assert.True(t, ok)
	assert.Equal(t, templates.NameDeliveryNotification, kind)

	_, ok = MessageKindFor(StatusPending)
	assert.False(t, ok)
	_, ok = MessageKindFor(StatusCancelled)
	assert.False(t, ok)
}
