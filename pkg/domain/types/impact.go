package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// Impact is a 1-5 rating of how severe the consequences of a hazard are
type Impact int

// Validate checks if the Impact is within the rating range
func (i Impact) Validate() error {
	if i < MinRating || i > MaxRating {
		return goerr.New("impact must be between 1 and 5", goerr.V("impact", int(i)))
	}
	return nil
}

// Int returns the rating as a plain int
func (i Impact) Int() int {
	return int(i)
}

// AllImpacts returns every impact rating in ascending order
func AllImpacts() []Impact {
	return []Impact{1, 2, 3, 4, 5}
}
