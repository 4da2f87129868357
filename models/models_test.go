package models_test

import (
	"testing"

	"tracker/models"
)

func TestIssueStateValid(t *testing.T) {
	tests := []struct {
		state models.IssueState
		want  bool
	}{
		{models.IssueStateOpen, true},
		{models.IssueStateClosed, true},
		{models.IssueState(""), false},
		{models.IssueState("reopened"), false},
		{models.IssueState("OPEN"), false},
	}

	for _, tt := range tests {
		if got := tt.state.Valid(); got != tt.want {
			t.Errorf("IssueState(%q).Valid() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestTaskStateValid(t *testing.T) {
	tests := []struct {
		state models.TaskState
		want  bool
	}{
		{models.TaskStatePlanning, true},
		{models.TaskStateInProgress, true},
		{models.TaskStateInQA, true},
		{models.TaskStateDone, true},
		{models.TaskState(""), false},
		{models.TaskState("in progress"), false},
		{models.TaskState("qa"), false},
	}

	for _, tt := range tests {
		if got := tt.state.Valid(); got != tt.want {
			t.Errorf("TaskState(%q).Valid() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestValidIssuePriority(t *testing.T) {
	tests := []struct {
		priority int
		want     bool
	}{
		{models.IssuePriorityHigh, true},
		{models.IssuePriorityNormal, true},
		{models.IssuePriorityLow, true},
		{0, false},
		{4, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := models.ValidIssuePriority(tt.priority); got != tt.want {
			t.Errorf("ValidIssuePriority(%d) = %v, want %v", tt.priority, got, tt.want)
		}
	}
}
