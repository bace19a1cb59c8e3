package model_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

func TestNewRisk(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Microsecond)
	risk, err := model.NewRisk("Spilled chemical", 4, 5)
	gt.NoError(t, err).Required()

	gt.V(t, risk.Hazard).Equal("Spilled chemical")
	gt.V(t, risk.Likelihood).Equal(types.Likelihood(4))
	gt.V(t, risk.Impact).Equal(types.Impact(5))
	gt.V(t, risk.Score).Equal(20)
	gt.V(t, risk.Classification).Equal(types.ClassificationCritical)
	gt.String(t, risk.ID.String()).NotEqual("")
	gt.Bool(t, risk.CreatedAt.Before(before)).False()
	gt.NoError(t, risk.Validate())

	other, err := model.NewRisk("Spilled chemical", 4, 5)
	gt.NoError(t, err).Required()
	gt.Value(t, other.ID).NotEqual(risk.ID)
}

func TestValidateRiskInput(t *testing.T) {
	tests := []struct {
		name       string
		hazard     string
		likelihood types.Likelihood
		impact     types.Impact
		wantMsg    string
	}{
		{"valid", "Wet floor", 2, 3, ""},
		{"three characters", "abc", 1, 1, ""},
		{"hazard too short", "ab", 3, 3, model.MsgInvalidHazard},
		{"hazard empty", "", 3, 3, model.MsgInvalidHazard},
		{"multibyte hazard counts runes", "火災", 3, 3, model.MsgInvalidHazard},
		{"likelihood zero", "Wet floor", 0, 3, model.MsgInvalidLikelihood},
		{"likelihood six", "Wet floor", 6, 3, model.MsgInvalidLikelihood},
		{"impact zero", "Wet floor", 3, 0, model.MsgInvalidImpact},
		{"impact six", "Wet floor", 3, 6, model.MsgInvalidImpact},
		{"hazard reported before likelihood", "", 0, 3, model.MsgInvalidHazard},
		{"likelihood reported before impact", "Wet floor", 9, 9, model.MsgInvalidLikelihood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateRiskInput(tt.hazard, tt.likelihood, tt.impact)
			if tt.wantMsg == "" {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err).Is(model.ErrValidation)
			msg, ok := model.ValidationMessage(err)
			gt.Bool(t, ok).True()
			gt.V(t, msg).Equal(tt.wantMsg)
		})
	}
}

func TestNewRisk_RejectsInvalidInput(t *testing.T) {
	_, err := model.NewRisk("ab", 3, 3)
	gt.Error(t, err).Is(model.ErrValidation)
}

func TestRisk_Validate(t *testing.T) {
	base, err := model.NewRisk("Loose cable", 2, 4)
	gt.NoError(t, err).Required()

	t.Run("tampered score", func(t *testing.T) {
		r := base.Copy()
		r.Score = 9
		gt.Error(t, r.Validate()).Is(model.ErrInvalidRisk)
	})

	t.Run("tampered classification", func(t *testing.T) {
		r := base.Copy()
		r.Classification = types.ClassificationCritical
		gt.Error(t, r.Validate()).Is(model.ErrInvalidRisk)
	})

	t.Run("missing id", func(t *testing.T) {
		r := base.Copy()
		r.ID = ""
		gt.Error(t, r.Validate()).Is(model.ErrInvalidRisk)
	})

	t.Run("out of range rating", func(t *testing.T) {
		r := base.Copy()
		r.Likelihood = 7
		gt.Error(t, r.Validate()).Is(model.ErrInvalidRisk)
	})

	t.Run("zero creation time", func(t *testing.T) {
		r := base.Copy()
		r.CreatedAt = time.Time{}
		gt.Error(t, r.Validate()).Is(model.ErrInvalidRisk)
	})
}

func TestSortRisks(t *testing.T) {
	now := time.Now().UTC()
	mk := func(id string, l types.Likelihood, i types.Impact, at time.Time) *model.Risk {
		score := model.Score(l, i)
		return &model.Risk{
			ID:             model.RiskID(id),
			Hazard:         "hazard " + id,
			Likelihood:     l,
			Impact:         i,
			Score:          score,
			Classification: model.Classify(score),
			CreatedAt:      at,
		}
	}

	risks := []*model.Risk{
		mk("a", 2, 2, now),
		mk("b", 4, 5, now.Add(time.Second)),
		mk("c", 3, 3, now.Add(2*time.Second)),
		mk("d", 4, 4, now.Add(3*time.Second)),
		mk("e", 5, 4, now.Add(4*time.Second)),
		mk("f", 4, 5, now.Add(4*time.Second)),
	}
	model.SortRisks(risks)

	ids := make([]string, len(risks))
	for i, r := range risks {
		ids[i] = r.ID.String()
	}
	// e and f share score and time, so the larger ID comes first
	gt.V(t, strings.Join(ids, ",")).Equal("f,e,b,d,c,a")
}

func TestValidationMessage_NotValidation(t *testing.T) {
	_, ok := model.ValidationMessage(errors.New("boom"))
	gt.Bool(t, ok).False()
}
