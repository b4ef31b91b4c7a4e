package executor

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/Dreamacro/lexicon/component/limits"
	"github.com/Dreamacro/lexicon/config"
	C "github.com/Dreamacro/lexicon/constant"
	"github.com/Dreamacro/lexicon/dictionary"
	"github.com/Dreamacro/lexicon/log"
	"github.com/Dreamacro/lexicon/textgen"
)

// Runtime is everything the controller serves, built from a Config
type Runtime struct {
	Dictionary *dictionary.Guarded
	Generator  *textgen.Generator
	Backend    C.DictionaryType
	Config     *config.Config
}

// Parse config with default config path
func Parse() (*config.Config, error) {
	return ParseWithPath(C.Path.Config())
}

// ParseWithPath parse config with custom config path
func ParseWithPath(path string) (*config.Config, error) {
	cfg, err := config.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyConfig builds the dictionary and the text generator described by cfg
func ApplyConfig(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	log.SetLevel(cfg.General.LogLevel)

	dict, err := dictionary.New(cfg.Dictionary.Backend, cfg.Dictionary.Folder)
	if err != nil {
		return nil, err
	}
	guarded := dictionary.NewGuarded(dict)

	if len(cfg.Dictionary.Files) != 0 {
		concurrency := limits.Concurrency(cfg.Dictionary.LoadConcurrency, limits.RaiseOpenFiles())
		added, err := dictionary.LoadFiles(ctx, guarded, cfg.Dictionary.Files, concurrency)
		if err != nil {
			return nil, err
		}
		log.Infoln("[Dictionary] loaded %d words from %d files into %s backend", added, len(cfg.Dictionary.Files), cfg.Dictionary.Backend)
	}

	if cfg.Dictionary.SystemWords {
		added, err := dictionary.Default(guarded)
		if err != nil {
			log.Warnln("[Dictionary] %s", err)
		} else {
			log.Infoln("[Dictionary] loaded %d system words", added)
		}
	}

	generator := textgen.New(rand.New(rand.NewSource(cfg.TextGen.Seed)))
	if cfg.TextGen.Corpus != "" {
		buf, err := os.ReadFile(cfg.TextGen.Corpus)
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		generator.Train(string(buf))
		log.Infoln("[TextGen] trained on %s", cfg.TextGen.Corpus)
	}

	return &Runtime{
		Dictionary: guarded,
		Generator:  generator,
		Backend:    cfg.Dictionary.Backend,
		Config:     cfg,
	}, nil
}
