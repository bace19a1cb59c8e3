package model

import (
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

const (
	MinScore = types.MinRating * types.MinRating
	MaxScore = types.MaxRating * types.MaxRating
)

// band is an inclusive score range mapped to a classification
type band struct {
	min, max       int
	classification types.Classification
}

var bands = []band{
	{1, 4, types.ClassificationLow},
	{5, 9, types.ClassificationMedium},
	{10, 16, types.ClassificationHigh},
	{17, 25, types.ClassificationCritical},
}

// Score returns likelihood * impact
func Score(likelihood types.Likelihood, impact types.Impact) int {
	return likelihood.Int() * impact.Int()
}

// Classify maps a score in [1,25] to its severity tier.
// Scores outside the range cannot be produced from valid ratings; they fall back to Low.
func Classify(score int) types.Classification {
	for _, b := range bands {
		if score >= b.min && score <= b.max {
			return b.classification
		}
	}
	return types.ClassificationLow
}

// ClassifyMatrixCell classifies a likelihood/impact pair
func ClassifyMatrixCell(likelihood types.Likelihood, impact types.Impact) types.Classification {
	return Classify(Score(likelihood, impact))
}

// Band returns the inclusive score range of a classification
func Band(c types.Classification) (min, max int) {
	for _, b := range bands {
		if b.classification == c {
			return b.min, b.max
		}
	}
	return 0, 0
}

// Guidance returns the recommended handling for a classification
func Guidance(c types.Classification) string {
	switch c {
	case types.ClassificationLow:
		return "Monitor and review periodically. Standard precautions may be sufficient."
	case types.ClassificationMedium:
		return "Implement additional controls and monitor regularly."
	case types.ClassificationHigh:
		return "Requires immediate attention and enhanced control measures."
	case types.ClassificationCritical:
		return "Address immediately with comprehensive risk mitigation strategies."
	default:
		return "Review risk assessment parameters."
	}
}

// Assessment is a scored likelihood/impact pair that has not been stored
type Assessment struct {
	Likelihood     types.Likelihood
	Impact         types.Impact
	Score          int
	Classification types.Classification
	Guidance       string
}

// Assess scores a likelihood/impact pair
func Assess(likelihood types.Likelihood, impact types.Impact) *Assessment {
	score := Score(likelihood, impact)
	classification := Classify(score)
	return &Assessment{
		Likelihood:     likelihood,
		Impact:         impact,
		Score:          score,
		Classification: classification,
		Guidance:       Guidance(classification),
	}
}

// MatrixCell is one cell of the 5x5 risk matrix
type MatrixCell struct {
	Likelihood     types.Likelihood
	Impact         types.Impact
	Score          int
	Classification types.Classification
}

// Matrix returns all 25 cells in display order: likelihood 5 row first, impact ascending within a row
func Matrix() []MatrixCell {
	likelihoods := types.AllLikelihoods()
	impacts := types.AllImpacts()

	cells := make([]MatrixCell, 0, len(likelihoods)*len(impacts))
	for li := len(likelihoods) - 1; li >= 0; li-- {
		for _, impact := range impacts {
			score := Score(likelihoods[li], impact)
			cells = append(cells, MatrixCell{
				Likelihood:     likelihoods[li],
				Impact:         impact,
				Score:          score,
				Classification: Classify(score),
			})
		}
	}
	return cells
}
