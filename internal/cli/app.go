package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spektr-org/stemfolio/catalog"
	"github.com/spektr-org/stemfolio/config"
	"github.com/spektr-org/stemfolio/site"
)

// App is everything a command needs, built once per invocation.
type App struct {
	Config *config.Config
	Logger *zap.SugaredLogger
	Site   *site.Site
}

// NewApp loads the config at path (or the defaults when path is empty),
// builds the logger and the catalog, and wires the site.
func NewApp(path string, verbose bool) (*App, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	logger, err := NewLogger(verbose || cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	sugar := logger.Sugar()

	cat, err := catalog.New(cfg.Variant())
	if err != nil {
		return nil, err
	}
	sugar.Debugw("catalog ready", "variant", cat.Variant(), "datasets", len(cat.Names()))

	return &App{
		Config: cfg,
		Logger: sugar,
		Site:   site.New(cfg, cat, sugar),
	}, nil
}

// NewLogger builds a development logger when debug is set and a production
// logger otherwise. Both write to stderr so stdout stays clean for output.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		z := zap.NewDevelopmentConfig()
		z.OutputPaths = []string{"stderr"}
		return z.Build()
	}
	z := zap.NewProductionConfig()
	z.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return z.Build()
}
