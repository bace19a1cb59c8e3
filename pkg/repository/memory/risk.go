package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
)

type riskRepository struct {
	mu    sync.RWMutex
	risks []*model.Risk
}

func newRiskRepository() *riskRepository {
	return &riskRepository{}
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if err := risk.Validate(); err != nil {
		return nil, goerr.Wrap(err, "refused to store risk")
	}

	created := risk.Copy()

	r.mu.Lock()
	r.risks = append(r.risks, created)
	r.mu.Unlock()

	// Return a copy to prevent external modification
	return created.Copy(), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	r.mu.RLock()
	risks := make([]*model.Risk, 0, len(r.risks))
	for _, risk := range r.risks {
		risks = append(risks, risk.Copy())
	}
	r.mu.RUnlock()

	model.SortRisks(risks)
	return risks, nil
}
