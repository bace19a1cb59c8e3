package model

import (
	"cmp"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

// MinHazardLength is the minimum number of characters of a hazard description
const MinHazardLength = 3

// RiskID is a UUID v7 identifier, ordered by generation time
type RiskID string

// NewRiskID generates a new time-ordered RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of RiskID
func (id RiskID) String() string {
	return string(id)
}

// Risk is a recorded hazard assessment. Score and Classification are derived
// from Likelihood and Impact and are never set independently.
type Risk struct {
	ID             RiskID
	Hazard         string
	Likelihood     types.Likelihood
	Impact         types.Impact
	Score          int
	Classification types.Classification
	CreatedAt      time.Time
}

// NewRisk builds a scored risk with a fresh ID and creation time.
// CreatedAt has microsecond precision, the finest Firestore keeps.
func NewRisk(hazard string, likelihood types.Likelihood, impact types.Impact) (*Risk, error) {
	if err := ValidateRiskInput(hazard, likelihood, impact); err != nil {
		return nil, err
	}

	score := Score(likelihood, impact)
	return &Risk{
		ID:             NewRiskID(),
		Hazard:         hazard,
		Likelihood:     likelihood,
		Impact:         impact,
		Score:          score,
		Classification: Classify(score),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}, nil
}

// Validate checks the ratings and that the derived fields agree with them
func (r *Risk) Validate() error {
	if r.ID == "" {
		return goerr.Wrap(ErrInvalidRisk, "risk ID is empty")
	}
	if err := ValidateRiskInput(r.Hazard, r.Likelihood, r.Impact); err != nil {
		return goerr.Wrap(ErrInvalidRisk, "invalid risk input", goerr.V(RiskIDKey, r.ID), goerr.V("cause", err.Error()))
	}
	if want := Score(r.Likelihood, r.Impact); r.Score != want {
		return goerr.Wrap(ErrInvalidRisk, "score does not match ratings",
			goerr.V(RiskIDKey, r.ID),
			goerr.V("score", r.Score),
			goerr.V("expected", want))
	}
	if want := Classify(r.Score); r.Classification != want {
		return goerr.Wrap(ErrInvalidRisk, "classification does not match score",
			goerr.V(RiskIDKey, r.ID),
			goerr.V("classification", r.Classification),
			goerr.V("expected", want))
	}
	if r.CreatedAt.IsZero() {
		return goerr.Wrap(ErrInvalidRisk, "risk creation time is empty", goerr.V(RiskIDKey, r.ID))
	}
	return nil
}

// Copy returns a copy of the risk
func (r *Risk) Copy() *Risk {
	copied := *r
	return &copied
}

// ValidateRiskInput checks user input in the order hazard, likelihood, impact.
// The first failing rule is returned as a *ValidationError.
func ValidateRiskInput(hazard string, likelihood types.Likelihood, impact types.Impact) error {
	if utf8.RuneCountInString(hazard) < MinHazardLength {
		return newValidationError(FieldHazard, MsgInvalidHazard)
	}
	if err := likelihood.Validate(); err != nil {
		return newValidationError(FieldLikelihood, MsgInvalidLikelihood)
	}
	if err := impact.Validate(); err != nil {
		return newValidationError(FieldImpact, MsgInvalidImpact)
	}
	return nil
}

// ValidateRatings checks likelihood then impact
func ValidateRatings(likelihood types.Likelihood, impact types.Impact) error {
	if err := likelihood.Validate(); err != nil {
		return newValidationError(FieldLikelihood, MsgInvalidLikelihood)
	}
	if err := impact.Validate(); err != nil {
		return newValidationError(FieldImpact, MsgInvalidImpact)
	}
	return nil
}

// compareRisks orders by score descending, then most recent first.
// RiskID is UUID v7, so comparing IDs breaks ties within the same timestamp.
func compareRisks(a, b *Risk) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// SortRisks sorts risks in list order: score descending, most recent first on ties
func SortRisks(risks []*Risk) {
	slices.SortFunc(risks, compareRisks)
}
