package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrRepositoryUnavailable = goerr.New("risk repository is not configured")
)

// Context keys for error values
const (
	HazardKey     = "hazard"
	LikelihoodKey = "likelihood"
	ImpactKey     = "impact"
)
