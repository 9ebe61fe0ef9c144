// Package cli wires the shortcut editor for the cobra commands and the TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/application/shortcut"
	"github.com/bnema/kkc-shortcuts/internal/application/usecase"
	"github.com/bnema/kkc-shortcuts/internal/cli/styles"
	"github.com/bnema/kkc-shortcuts/internal/domain/build"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/activerule"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/config"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/kkc"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/kkc-shortcuts/internal/infrastructure/xdg"
	"github.com/bnema/kkc-shortcuts/internal/logging"
)

// LogFileName is the file the TUI logs to under the XDG state directory.
const LogFileName = "kkc-shortcuts.log"

// Options tune NewApp per command.
type Options struct {
	// LogToFile sends log lines to the rotated log file instead of stderr.
	// The TUI sets it so logging never draws over the alternate screen.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Paths     port.XDGPaths

	Catalog  *kkc.Catalog
	Engine   *kkc.Engine
	Registry *shortcut.Registry

	// Use cases
	ListRulesUC      *usecase.ListRulesUseCase
	ActiveRuleUC     *usecase.ActiveRuleUseCase
	AddShortcutUC    *usecase.AddShortcutUseCase
	RemoveShortcutUC *usecase.RemoveShortcutUseCase
	SwitchRuleUC     *usecase.SwitchRuleUseCase
	SaveShortcutsUC  *usecase.SaveShortcutsUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the engine, the registry and
// the use cases on top of it. No rule is loaded yet.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logCleanup, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	mgr.SetLogger(logger)

	paths := xdg.New()
	roots, err := ruleRoots(cfg, paths)
	if err != nil {
		logCleanup()
		return nil, err
	}
	logger.Debug().Strs("roots", roots).Str("storage", string(cfg.Engine.Storage)).Msg("app: rule roots resolved")

	catalog := kkc.NewCatalog(roots)
	engineOpts := []kkc.Option{kkc.WithUserRulePrefix(cfg.Engine.UserRulePrefix)}

	var db *sqlite.LazyDB
	if cfg.Engine.Storage == config.StorageSQLite {
		db = sqlite.NewLazyDB(cfg.Database.Path)
		engineOpts = append(engineOpts, kkc.WithKeymapStore(sqlite.NewKeymapOverrideRepository(db)))
	}
	engine := kkc.NewEngine(catalog, engineOpts...)

	activeRuleFile, err := paths.ActiveRuleFile()
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("resolve active rule file: %w", err)
	}

	registry := shortcut.NewRegistry(engine, cfg.Engine.UserRuleDir)
	activeRuleUC := usecase.NewActiveRuleUseCase(activerule.NewFileStore(activeRuleFile), catalog)

	return &App{
		Config:           cfg,
		Manager:          mgr,
		Theme:            styles.NewTheme(cfg),
		Paths:            paths,
		Catalog:          catalog,
		Engine:           engine,
		Registry:         registry,
		ListRulesUC:      usecase.NewListRulesUseCase(catalog),
		ActiveRuleUC:     activeRuleUC,
		AddShortcutUC:    usecase.NewAddShortcutUseCase(engine, registry),
		RemoveShortcutUC: usecase.NewRemoveShortcutUseCase(engine, registry),
		SwitchRuleUC:     usecase.NewSwitchRuleUseCase(registry),
		SaveShortcutsUC:  usecase.NewSaveShortcutsUseCase(registry, activeRuleUC),
		db:               db,
		ctx:              ctx,
		logCleanup:       logCleanup,
	}, nil
}

// Close releases all resources. Unsaved registry changes are dropped.
func (a *App) Close() error {
	if a.Registry != nil {
		a.Registry.Close(a.ctx)
	}
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Database returns the SQLite provider backing user rules, or nil when
// they are stored as JSON files.
func (a *App) Database() port.DatabaseProvider {
	if a.db == nil {
		return nil
	}
	return a.db
}

// LoadActiveRule loads the rule named in the active-rule file into the
// registry and returns its name.
func (a *App) LoadActiveRule() (string, error) {
	name, err := a.ActiveRuleUC.Load(a.ctx)
	if err != nil {
		return "", err
	}
	if err := a.Registry.Load(a.ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

// LogFile returns the path of the rotated TUI log file.
func LogFile() (string, error) {
	dir, err := config.GetLogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config, opts Options) (logger zerolog.Logger, cleanup func(), err error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	if !opts.LogToFile && !cfg.Logging.File {
		return logging.NewWithWriter(logCfg, os.Stderr), func() {}, nil
	}

	path, err := LogFile()
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("resolve log file: %w", err)
	}
	logger, cleanup, err = logging.NewWithFile(logCfg, path)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logger, cleanup, nil
}

// ruleRoots lists configured roots before the XDG ones so they win on
// duplicate rule names.
func ruleRoots(cfg *config.Config, paths port.XDGPaths) ([]string, error) {
	system, err := paths.RuleSearchDirs()
	if err != nil {
		return nil, fmt.Errorf("resolve rule search dirs: %w", err)
	}
	roots := make([]string, 0, len(cfg.Engine.RulePaths)+len(system))
	roots = append(roots, cfg.Engine.RulePaths...)
	return append(roots, system...), nil
}
