package cli

import (
	"fmt"

	"github.com/yaklabco/mdpipe/internal/logging"
	"github.com/yaklabco/mdpipe/pkg/cache"
	"github.com/yaklabco/mdpipe/pkg/config"
	"github.com/yaklabco/mdpipe/pkg/langdetect"
	"github.com/yaklabco/mdpipe/pkg/pipeline"
)

// newService builds a pipeline service from resolved configuration.
func newService(cfg *config.Config) (*pipeline.Service, error) {
	opts := pipeline.Options{
		Logger: logging.Default(),
	}

	if cfg.Cache.Strategy != "" && cfg.Cache.Strategy != cache.StrategyNone {
		astStore, err := cache.NewStrategy(cfg.Cache.Strategy, cfg.Cache.Capacity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		htmlStore, err := cache.NewStrategy(cfg.Cache.Strategy, cfg.Cache.Capacity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
		}
		opts.Cache = cache.NewManager(astStore, htmlStore)
	}

	if cfg.Render.DetectLanguage {
		opts.Render.Detector = langdetect.New()
	}

	return pipeline.New(opts), nil
}
