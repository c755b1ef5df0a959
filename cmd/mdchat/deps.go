package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/mdchat/internal/application/handlers"
	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/domain/services"
	"github.com/ersonp/mdchat/internal/infrastructure/catalog"
	"github.com/ersonp/mdchat/internal/infrastructure/config"
	llm "github.com/ersonp/mdchat/internal/infrastructure/llm/openai"
	"github.com/ersonp/mdchat/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and clients are internal.
type Deps struct {
	Config          *config.Config
	Logger          *slog.Logger
	EvaluateHandler *handlers.EvaluateHandler
	ExtractHandler  *handlers.ExtractHandler
	GraphHandler    *handlers.GraphHandler
	RunHandler      *handlers.RunHandler
	ModelsHandler   *handlers.ModelsHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	llmClient *llm.Client
	evaluator ports.SchemaEvaluator
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level components.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.LLM.APIKey = cfg.ResolveAPIKey(globalAPIKey)

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closer.Close()

	llmClient := llm.NewClient(cfg.LLM)
	schemas := catalog.NewDirectory(cfg.Schemas.Dir)

	evaluator := services.NewSchemaEvaluator(llmClient)
	extractor := services.NewStructuredExtractor(llmClient)
	graphs, err := services.NewKnowledgeGraphBuilder(llmClient)
	if err != nil {
		return fmt.Errorf("creating graph builder: %w", err)
	}
	workbench := services.NewWorkbench(schemas, evaluator, graphs, extractor, logger)

	deps := &internalDeps{
		Deps: Deps{
			Config:          cfg,
			Logger:          logger,
			EvaluateHandler: handlers.NewEvaluateHandler(evaluator, schemas),
			ExtractHandler:  handlers.NewExtractHandler(extractor, schemas),
			GraphHandler:    handlers.NewGraphHandler(graphs),
			RunHandler:      handlers.NewRunHandler(workbench),
			ModelsHandler:   handlers.NewModelsHandler(schemas),
		},
		llmClient: llmClient,
		evaluator: evaluator,
	}

	return fn(deps)
}

// withEvaluator provides the evaluator service and the active model name,
// for the HTTP server.
func withEvaluator(fn func(d *Deps, evaluator ports.SchemaEvaluator, model string) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps, d.evaluator, d.llmClient.Model())
	})
}

// loadConfig loads config without building LLM dependencies.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
