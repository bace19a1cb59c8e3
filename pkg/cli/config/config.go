package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/riskboard/pkg/domain/model/config"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// LevelsConfig is the TOML layout of the likelihood/impact scale labels
type LevelsConfig struct {
	Likelihood []Level `toml:"likelihood"`
	Impact     []Level `toml:"impact"`
}

// Level represents one point of a rating scale
type Level struct {
	Score       int    `toml:"score"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Validate checks if the Level is valid
func (l *Level) Validate() error {
	if l.Score < types.MinRating || l.Score > types.MaxRating {
		return goerr.Wrap(ErrInvalidScore, "score must be between 1 and 5", goerr.V(ScoreKey, l.Score))
	}
	if l.Name == "" {
		return goerr.Wrap(ErrMissingName, "level name is required", goerr.V(ScoreKey, l.Score))
	}
	return nil
}

func validateLevels(kind string, levels []Level) error {
	seen := make(map[int]bool)
	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return goerr.Wrap(err, "invalid level", goerr.V(ScaleKey, kind))
		}
		if seen[level.Score] {
			return goerr.Wrap(ErrDuplicateScore, "duplicate level score",
				goerr.V(ScaleKey, kind),
				goerr.V(ScoreKey, level.Score))
		}
		seen[level.Score] = true
	}
	return nil
}

// Validate checks if the LevelsConfig is valid
func (c *LevelsConfig) Validate() error {
	if err := validateLevels("likelihood", c.Likelihood); err != nil {
		return err
	}
	if err := validateLevels("impact", c.Impact); err != nil {
		return err
	}
	return nil
}

// LoadLevelsConfig loads the scale labels from a TOML file
func LoadLevelsConfig(path string) (*LevelsConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "levels config not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var cfg LevelsConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &cfg, nil
}

// ToDomainRiskConfig converts LevelsConfig to domain RiskConfig
func (c *LevelsConfig) ToDomainRiskConfig() *domainConfig.RiskConfig {
	likelihood := make([]domainConfig.LikelihoodLevel, len(c.Likelihood))
	for i, level := range c.Likelihood {
		likelihood[i] = domainConfig.LikelihoodLevel{
			Score:       level.Score,
			Name:        level.Name,
			Description: level.Description,
		}
	}

	impact := make([]domainConfig.ImpactLevel, len(c.Impact))
	for i, level := range c.Impact {
		impact[i] = domainConfig.ImpactLevel{
			Score:       level.Score,
			Name:        level.Name,
			Description: level.Description,
		}
	}

	return &domainConfig.RiskConfig{
		Likelihood: likelihood,
		Impact:     impact,
	}
}

// Levels holds the CLI flag pointing to a levels config file
type Levels struct {
	path string
}

// Flags returns CLI flags for the levels config
func (l *Levels) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "levels-config",
			Usage:       "Path to a TOML file with likelihood/impact level labels",
			Sources:     cli.EnvVars("RISKBOARD_LEVELS_CONFIG"),
			Destination: &l.path,
		},
	}
}

// Configure returns the domain risk config; the built-in scales when no file is given
func (l *Levels) Configure() (*domainConfig.RiskConfig, error) {
	if l.path == "" {
		return domainConfig.DefaultRiskConfig(), nil
	}

	cfg, err := LoadLevelsConfig(l.path)
	if err != nil {
		return nil, err
	}
	return cfg.ToDomainRiskConfig(), nil
}
