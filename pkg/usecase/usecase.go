package usecase

import (
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model/config"
	"github.com/secmon-lab/riskboard/pkg/service/metrics"
)

type UseCases struct {
	repo       interfaces.Repository
	riskConfig *config.RiskConfig
	metrics    *metrics.Metrics
	Risk       *RiskUseCase
}

type Option func(*UseCases)

func WithRiskConfig(cfg *config.RiskConfig) Option {
	return func(uc *UseCases) {
		uc.riskConfig = cfg
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *UseCases) {
		uc.metrics = m
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.riskConfig == nil {
		uc.riskConfig = config.DefaultRiskConfig()
	}

	uc.Risk = NewRiskUseCase(repo, uc.riskConfig, uc.metrics)

	return uc
}
