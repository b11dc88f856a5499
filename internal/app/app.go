package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"memofiler/internal/analyzer"
	"memofiler/internal/analyzer/rules"
	"memofiler/internal/config"
	"memofiler/internal/format"
	"memofiler/internal/services"
	"memofiler/internal/store"
	"memofiler/internal/vault"
	"memofiler/pkg/oracle"
)

// App wires the analysis pipeline, the vault and the history store together.
// One instance is built per process and handed to commands and handlers.
type App struct {
	Config *config.Config
	Rules  *rules.RuleSet

	Pipeline  *analyzer.Pipeline
	Corpus    *vault.Corpus
	Writer    *vault.Writer
	Organizer *vault.Organizer
	History   store.HistoryStore

	MemoService *services.MemoService

	oracleCloser interface{ Close() error }
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initRules(); err != nil {
		return nil, err
	}
	if err := app.initPipeline(ctx); err != nil {
		return nil, err
	}
	if err := app.initVault(); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initHistory(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.MemoService = services.NewMemoService(services.MemoServiceDeps{
		Pipeline: app.Pipeline,
		Corpus:   app.Corpus,
		Writer:   app.Writer,
		History:  app.History,
	})

	log.Debug("Application initialization complete")
	return app, nil
}

// Close releases the history store and the oracle client. Safe to call on a
// partially initialized app.
func (a *App) Close() {
	if a.History != nil {
		if err := a.History.Close(); err != nil {
			log.WithError(err).Warn("Failed to close history store")
		}
	}
	if a.oracleCloser != nil {
		if err := a.oracleCloser.Close(); err != nil {
			log.WithError(err).Warn("Failed to close oracle client")
		}
	}
}

func (a *App) initRules() error {
	rs, err := config.LoadRules(a.Config.RulesFile)
	if err != nil {
		return fmt.Errorf("init rules: %w", err)
	}
	a.Rules = rs
	return nil
}

func (a *App) initPipeline(ctx context.Context) error {
	orc, err := a.buildOracle(ctx)
	if err != nil {
		return fmt.Errorf("init oracle: %w", err)
	}
	a.Pipeline = analyzer.New(a.Rules, orc)
	return nil
}

func (a *App) buildOracle(ctx context.Context) (analyzer.Oracle, error) {
	cfg := a.Config.Oracle
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "gemini":
		g, err := oracle.NewGeminiAnalyzer(ctx, cfg.GoogleApiKey, cfg.Model, a.Rules.CategoryNames())
		if err != nil {
			return nil, err
		}
		a.oracleCloser = g
		return g, nil
	case "openai":
		o, err := oracle.NewOpenAIAnalyzerFromKey(cfg.OpenaiApiKey, cfg.Model, a.Rules.CategoryNames())
		if err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Provider)
	}
}

func (a *App) initVault() error {
	cfg := a.Config.Vault
	a.Corpus = vault.NewCorpus(cfg.Root, cfg.MaxFiles)
	a.Writer = vault.NewWriter(cfg.Root, cfg.Inbox, a.Rules.FolderFor, format.Format)
	a.Organizer = vault.NewOrganizer(cfg.Root, cfg.Inbox, cfg.Sources, a.Pipeline, a.Rules.FolderFor)
	return nil
}

func (a *App) initHistory(ctx context.Context) error {
	if a.Config.History.DSN == "" {
		a.History = store.NewNoopStore()
		return nil
	}
	s, err := store.NewSQLiteStore(ctx, a.Config.History.DSN)
	if err != nil {
		return fmt.Errorf("init history store: %w", err)
	}
	a.History = s
	return nil
}
