package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Likelihood is a 1-5 rating of how probable a hazard's occurrence is
type Likelihood int

const (
	MinRating = 1
	MaxRating = 5
)

// Validate checks if the Likelihood is within the rating range
func (l Likelihood) Validate() error {
	if l < MinRating || l > MaxRating {
		return goerr.New("likelihood must be between 1 and 5", goerr.V("likelihood", int(l)))
	}
	return nil
}

// Int returns the rating as a plain int
func (l Likelihood) Int() int {
	return int(l)
}

// AllLikelihoods returns every likelihood rating in ascending order
func AllLikelihoods() []Likelihood {
	return []Likelihood{1, 2, 3, 4, 5}
}
