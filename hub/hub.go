package hub

import (
	"context"

	"github.com/Dreamacro/lexicon/config"
	"github.com/Dreamacro/lexicon/hub/executor"
	"github.com/Dreamacro/lexicon/hub/route"
)

type Option func(*config.Config)

func WithExternalController(externalController string) Option {
	return func(cfg *config.Config) {
		cfg.General.ExternalController = externalController
	}
}

func WithSecret(secret string) Option {
	return func(cfg *config.Config) {
		cfg.General.Secret = secret
	}
}

// Parse call at the beginning of lexicon
func Parse(options ...Option) error {
	cfg, err := executor.Parse()
	if err != nil {
		return err
	}

	for _, option := range options {
		option(cfg)
	}

	rt, err := executor.ApplyConfig(context.Background(), cfg)
	if err != nil {
		return err
	}

	if cfg.General.ExternalController != "" {
		go route.Start(cfg.General.ExternalController, cfg.General.Secret, rt)
	}

	return nil
}
