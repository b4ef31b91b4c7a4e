package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Dreamacro/lexicon/component/casefold"
	C "github.com/Dreamacro/lexicon/constant"
	"github.com/Dreamacro/lexicon/log"

	"gopkg.in/yaml.v2"
)

// General config
type General struct {
	LogLevel           log.LogLevel `json:"log-level"`
	ExternalController string       `json:"-"`
	Secret             string       `json:"-"`
}

// Dictionary config
type Dictionary struct {
	Backend         C.DictionaryType `json:"backend"`
	CaseFolding     string           `json:"case-folding"`
	Folder          casefold.Folder  `json:"-"`
	Files           []string         `json:"files"`
	SystemWords     bool             `json:"system-words"`
	LoadConcurrency int              `json:"load-concurrency"`
}

// Completion config
type Completion struct {
	DefaultCount int `json:"default-count"`
	MaxCount     int `json:"max-count"`
}

// TextGen config
type TextGen struct {
	Seed   int64  `json:"seed"`
	Corpus string `json:"corpus"`
}

// Config is lexicon config manager
type Config struct {
	General    *General
	Dictionary *Dictionary
	Completion *Completion
	TextGen    *TextGen
}

type RawDictionary struct {
	Backend         C.DictionaryType `yaml:"backend"`
	CaseFolding     string           `yaml:"case-folding"`
	Files           []string         `yaml:"files"`
	SystemWords     bool             `yaml:"system-words"`
	LoadConcurrency int              `yaml:"load-concurrency"`
}

type RawCompletion struct {
	DefaultCount int `yaml:"default-count"`
	MaxCount     int `yaml:"max-count"`
}

type RawTextGen struct {
	Seed   int64  `yaml:"seed"`
	Corpus string `yaml:"corpus"`
}

type RawConfig struct {
	LogLevel           log.LogLevel `yaml:"log-level"`
	ExternalController string       `yaml:"external-controller"`
	Secret             string       `yaml:"secret"`

	Dictionary RawDictionary `yaml:"dictionary"`
	Completion RawCompletion `yaml:"completion"`
	TextGen    RawTextGen    `yaml:"textgen"`
}

// Parse config
func Parse(buf []byte) (*Config, error) {
	rawCfg, err := UnmarshalRawConfig(buf)
	if err != nil {
		return nil, err
	}

	return ParseRawConfig(rawCfg)
}

// ParseFile reads and parses the config file at path
func ParseFile(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(buf)
}

func UnmarshalRawConfig(buf []byte) (*RawConfig, error) {
	// config with default value
	rawCfg := &RawConfig{
		LogLevel: log.INFO,
		Dictionary: RawDictionary{
			Backend:         C.Trie,
			CaseFolding:     "ascii",
			Files:           []string{},
			LoadConcurrency: C.DefaultLoadConcurrent,
		},
		Completion: RawCompletion{
			DefaultCount: C.DefaultCompletions,
			MaxCount:     C.DefaultMaxCompletions,
		},
		TextGen: RawTextGen{
			Seed: 42,
		},
	}

	if err := yaml.Unmarshal(buf, rawCfg); err != nil {
		return nil, err
	}

	return rawCfg, nil
}

func ParseRawConfig(rawCfg *RawConfig) (*Config, error) {
	config := &Config{}

	config.General = &General{
		LogLevel:           rawCfg.LogLevel,
		ExternalController: rawCfg.ExternalController,
		Secret:             rawCfg.Secret,
	}

	dictionary, err := parseDictionary(rawCfg.Dictionary)
	if err != nil {
		return nil, err
	}
	config.Dictionary = dictionary

	completion, err := parseCompletion(rawCfg.Completion)
	if err != nil {
		return nil, err
	}
	config.Completion = completion

	config.TextGen = &TextGen{
		Seed: rawCfg.TextGen.Seed,
	}
	if rawCfg.TextGen.Corpus != "" {
		config.TextGen.Corpus = C.Path.Resolve(rawCfg.TextGen.Corpus)
	}

	return config, nil
}

func parseDictionary(raw RawDictionary) (*Dictionary, error) {
	folder, err := casefold.Parse(raw.CaseFolding)
	if err != nil {
		return nil, fmt.Errorf("dictionary case-folding %q: %w", raw.CaseFolding, err)
	}

	if raw.LoadConcurrency < 1 {
		return nil, errors.New("dictionary load-concurrency must be positive")
	}

	files := make([]string, 0, len(raw.Files))
	for _, f := range raw.Files {
		files = append(files, C.Path.Resolve(f))
	}

	return &Dictionary{
		Backend:         raw.Backend,
		CaseFolding:     raw.CaseFolding,
		Folder:          folder,
		Files:           files,
		SystemWords:     raw.SystemWords,
		LoadConcurrency: raw.LoadConcurrency,
	}, nil
}

func parseCompletion(raw RawCompletion) (*Completion, error) {
	if raw.DefaultCount < 1 {
		return nil, errors.New("completion default-count must be positive")
	}

	if raw.MaxCount < raw.DefaultCount {
		return nil, fmt.Errorf("completion max-count %d is less than default-count %d", raw.MaxCount, raw.DefaultCount)
	}

	return &Completion{
		DefaultCount: raw.DefaultCount,
		MaxCount:     raw.MaxCount,
	}, nil
}
