package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/model/config"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/service/metrics"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
)

type RiskUseCase struct {
	repo       interfaces.Repository
	riskConfig *config.RiskConfig
	metrics    *metrics.Metrics
}

func NewRiskUseCase(repo interfaces.Repository, cfg *config.RiskConfig, m *metrics.Metrics) *RiskUseCase {
	if cfg == nil {
		cfg = config.DefaultRiskConfig()
	}
	return &RiskUseCase{
		repo:       repo,
		riskConfig: cfg,
		metrics:    m,
	}
}

// CreateRisk validates the input (hazard, then likelihood, then impact), scores and stores it.
// Validation failures match model.ErrValidation.
func (uc *RiskUseCase) CreateRisk(ctx context.Context, hazard string, likelihood types.Likelihood, impact types.Impact) (*model.Risk, error) {
	risk, err := model.NewRisk(hazard, likelihood, impact)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			uc.metrics.IncrementValidationFailed(ve.Field)
		}
		return nil, goerr.Wrap(err, "invalid risk input",
			goerr.V(HazardKey, hazard),
			goerr.V(LikelihoodKey, likelihood.Int()),
			goerr.V(ImpactKey, impact.Int()))
	}

	if uc.repo == nil {
		return nil, goerr.Wrap(ErrRepositoryUnavailable, "failed to create risk")
	}

	start := time.Now()
	created, err := uc.repo.Risk().Create(ctx, risk)
	uc.metrics.ObserveStore("create", start)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V(model.RiskIDKey, risk.ID))
	}

	uc.metrics.IncrementRiskCreated(created.Classification)
	logging.From(ctx).Info("risk created",
		model.RiskIDKey, created.ID,
		"score", created.Score,
		"classification", created.Classification,
	)

	return created, nil
}

// ListRisks returns all stored risks ordered by score descending
func (uc *RiskUseCase) ListRisks(ctx context.Context) ([]*model.Risk, error) {
	if uc.repo == nil {
		return nil, goerr.Wrap(ErrRepositoryUnavailable, "failed to list risks")
	}

	start := time.Now()
	risks, err := uc.repo.Risk().List(ctx)
	uc.metrics.ObserveStore("list", start)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	return risks, nil
}

// Assess scores a likelihood/impact pair without storing anything
func (uc *RiskUseCase) Assess(likelihood types.Likelihood, impact types.Impact) (*model.Assessment, error) {
	if err := model.ValidateRatings(likelihood, impact); err != nil {
		return nil, goerr.Wrap(err, "invalid ratings",
			goerr.V(LikelihoodKey, likelihood.Int()),
			goerr.V(ImpactKey, impact.Int()))
	}
	return model.Assess(likelihood, impact), nil
}

// RiskMatrix is the 5x5 grid with its axis labels and legend
type RiskMatrix struct {
	Cells      []model.MatrixCell
	Likelihood []config.LikelihoodLevel
	Impact     []config.ImpactLevel
	Legend     []LegendEntry
}

// LegendEntry describes one classification band
type LegendEntry struct {
	Classification types.Classification
	MinScore       int
	MaxScore       int
	Guidance       string
}

// Matrix returns the risk matrix. Likelihood levels are listed from 5 down to 1
// to match the row order of the cells; impact levels ascend.
func (uc *RiskUseCase) Matrix() *RiskMatrix {
	likelihoods := types.AllLikelihoods()
	matrix := &RiskMatrix{
		Cells:      model.Matrix(),
		Likelihood: make([]config.LikelihoodLevel, 0, len(likelihoods)),
		Impact:     make([]config.ImpactLevel, 0, len(types.AllImpacts())),
	}

	for i := len(likelihoods) - 1; i >= 0; i-- {
		matrix.Likelihood = append(matrix.Likelihood, uc.riskConfig.LikelihoodLevel(likelihoods[i]))
	}
	for _, impact := range types.AllImpacts() {
		matrix.Impact = append(matrix.Impact, uc.riskConfig.ImpactLevel(impact))
	}
	for _, c := range types.AllClassifications() {
		min, max := model.Band(c)
		matrix.Legend = append(matrix.Legend, LegendEntry{
			Classification: c,
			MinScore:       min,
			MaxScore:       max,
			Guidance:       model.Guidance(c),
		})
	}

	return matrix
}
