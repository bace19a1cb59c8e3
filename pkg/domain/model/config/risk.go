package config

import (
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

// LikelihoodLevel represents a likelihood level configuration
type LikelihoodLevel struct {
	Score       int
	Name        string
	Description string
}

// ImpactLevel represents an impact level configuration
type ImpactLevel struct {
	Score       int
	Name        string
	Description string
}

// RiskConfig holds the display labels of the likelihood and impact scales
type RiskConfig struct {
	Likelihood []LikelihoodLevel
	Impact     []ImpactLevel
}

var defaultLikelihood = []LikelihoodLevel{
	{Score: 1, Name: "Very Unlikely"},
	{Score: 2, Name: "Unlikely"},
	{Score: 3, Name: "Possible"},
	{Score: 4, Name: "Likely"},
	{Score: 5, Name: "Very Likely"},
}

var defaultImpact = []ImpactLevel{
	{Score: 1, Name: "Negligible"},
	{Score: 2, Name: "Minor"},
	{Score: 3, Name: "Moderate"},
	{Score: 4, Name: "Major"},
	{Score: 5, Name: "Severe"},
}

// DefaultRiskConfig returns the built-in 5-level scales
func DefaultRiskConfig() *RiskConfig {
	cfg := &RiskConfig{
		Likelihood: make([]LikelihoodLevel, len(defaultLikelihood)),
		Impact:     make([]ImpactLevel, len(defaultImpact)),
	}
	copy(cfg.Likelihood, defaultLikelihood)
	copy(cfg.Impact, defaultImpact)
	return cfg
}

// LikelihoodLevel returns the level of a likelihood rating.
// Ratings missing from the config fall back to the default scale.
func (c *RiskConfig) LikelihoodLevel(l types.Likelihood) LikelihoodLevel {
	if c != nil {
		for _, level := range c.Likelihood {
			if level.Score == l.Int() {
				return level
			}
		}
	}
	for _, level := range defaultLikelihood {
		if level.Score == l.Int() {
			return level
		}
	}
	return LikelihoodLevel{Score: l.Int()}
}

// ImpactLevel returns the level of an impact rating.
// Ratings missing from the config fall back to the default scale.
func (c *RiskConfig) ImpactLevel(i types.Impact) ImpactLevel {
	if c != nil {
		for _, level := range c.Impact {
			if level.Score == i.Int() {
				return level
			}
		}
	}
	for _, level := range defaultImpact {
		if level.Score == i.Int() {
			return level
		}
	}
	return ImpactLevel{Score: i.Int()}
}
