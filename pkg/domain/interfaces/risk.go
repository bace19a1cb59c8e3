package interfaces

import (
	"context"

	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type RiskRepository interface {
	// Create appends a scored risk. Records are never replaced or deduplicated.
	Create(ctx context.Context, risk *model.Risk) (*model.Risk, error)

	// List retrieves all risks ordered by score descending, most recent first on ties
	List(ctx context.Context) ([]*model.Risk, error)
}
