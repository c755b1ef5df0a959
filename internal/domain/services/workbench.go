package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// ErrNoModelSelected is returned when a submission names no data model.
var ErrNoModelSelected = errors.New("no data model selected")

// Workbench runs the evaluator, graph builder and extractor for a
// submission and publishes their results into three slots.
//
// On failure only the extraction slot is reset; evaluation and graph keep
// whatever they held before. Submissions are not coordinated with each other,
// so a slow run can overwrite the results of a newer one.
type Workbench struct {
	schemas   ports.SchemaSource
	evaluator ports.SchemaEvaluator
	graphs    ports.GraphBuilder
	extractor ports.StructuredExtractor
	logger    *slog.Logger

	mu       sync.RWMutex
	state    entities.WorkbenchState
	inFlight int
}

// NewWorkbench creates a new workbench with empty result slots.
func NewWorkbench(
	schemas ports.SchemaSource,
	evaluator ports.SchemaEvaluator,
	graphs ports.GraphBuilder,
	extractor ports.StructuredExtractor,
	logger *slog.Logger,
) *Workbench {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbench{
		schemas:   schemas,
		evaluator: evaluator,
		graphs:    graphs,
		extractor: extractor,
		logger:    logger,
		state:     entities.InitialWorkbenchState(),
	}
}

// State returns a snapshot of the result slots.
func (w *Workbench) State() entities.WorkbenchState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s := w.state
	s.Loading = w.inFlight > 0
	return s
}

// Submit resolves the submission's schema, then runs the three operations
// concurrently and joins them. If any operation fails the join fails, the
// extraction slot is reset to an empty object, and the error is returned.
func (w *Workbench) Submit(ctx context.Context, sub entities.Submission) error {
	if sub.Model == "" {
		return ErrNoModelSelected
	}

	schemaJSON, err := w.schemas.Schema(ctx, sub.Model)
	if err != nil {
		return fmt.Errorf("resolving schema for %s: %w", sub.Model, err)
	}

	id := uuid.New().String()
	logger := w.logger.With("submission", id, "model", sub.Model)
	start := time.Now()

	w.begin()
	defer w.end()

	var (
		evaluation *entities.EvaluationResult
		graph      *entities.KnowledgeGraph
		extraction any
	)

	// A failing call does not cancel its siblings; only the caller's ctx does.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		evaluation, err = w.evaluator.Evaluate(ctx, entities.EvaluationRequest{
			Text:         sub.Text,
			Schema:       schemaJSON,
			APIKey:       sub.APIKey,
			SystemPrompt: sub.Preprompt,
		})
		return err
	})
	g.Go(func() error {
		var err error
		graph, err = w.graphs.Build(ctx, entities.GraphRequest{
			Prompt:    sub.Text,
			PrePrompt: sub.Preprompt,
			APIKey:    sub.APIKey,
		})
		return err
	})
	g.Go(func() error {
		var err error
		extraction, err = w.extractor.Extract(ctx, entities.ExtractionRequest{
			Schema:          schemaJSON,
			Text:            sub.Text,
			APIKey:          sub.APIKey,
			MultipleOutputs: sub.Multiple,
			SystemPrompt:    sub.Preprompt,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		w.mu.Lock()
		w.state.Extraction = entities.EmptyExtraction()
		w.mu.Unlock()

		logger.Warn("submission failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("running submission: %w", err)
	}

	w.mu.Lock()
	w.state.Evaluation = *evaluation
	w.state.Graph = *graph
	w.state.Extraction = extraction
	w.mu.Unlock()

	logger.Info("submission complete",
		"fits", evaluation.Fits,
		"triplets", len(graph.Triplets),
		"duration", time.Since(start),
	)

	return nil
}

func (w *Workbench) begin() {
	w.mu.Lock()
	w.inFlight++
	w.mu.Unlock()
}

func (w *Workbench) end() {
	w.mu.Lock()
	w.inFlight--
	w.mu.Unlock()
}
