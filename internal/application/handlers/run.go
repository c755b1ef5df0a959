package handlers

import (
	"context"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

// Submitter runs a full workbench submission.
type Submitter interface {
	Submit(ctx context.Context, sub entities.Submission) error
	State() entities.WorkbenchState
}

// RunHandler runs evaluation, graph building and extraction together.
type RunHandler struct {
	workbench Submitter
}

// NewRunHandler creates a new run handler.
func NewRunHandler(workbench Submitter) *RunHandler {
	return &RunHandler{workbench: workbench}
}

// Handle submits and returns the resulting slots. The state is returned
// even when the submission fails, so callers can show what is left.
func (h *RunHandler) Handle(ctx context.Context, sub entities.Submission) (entities.WorkbenchState, error) {
	err := h.workbench.Submit(ctx, sub)
	return h.workbench.State(), err
}
