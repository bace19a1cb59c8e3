package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/interfaces"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/repository/firestore"
	"github.com/secmon-lab/riskboard/pkg/repository/memory"
	"golang.org/x/sync/errgroup"
)

func newRisk(t *testing.T, hazard string, l types.Likelihood, i types.Impact) *model.Risk {
	t.Helper()
	risk, err := model.NewRisk(hazard, l, i)
	gt.NoError(t, err).Required()
	return risk
}

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create stores and returns the risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		risk := newRisk(t, "Spilled chemical", 4, 5)
		created, err := repo.Risk().Create(ctx, risk)
		gt.NoError(t, err).Required()

		gt.Value(t, created.ID).Equal(risk.ID)
		gt.Value(t, created.Hazard).Equal("Spilled chemical")
		gt.Value(t, created.Likelihood).Equal(types.Likelihood(4))
		gt.Value(t, created.Impact).Equal(types.Impact(5))
		gt.Value(t, created.Score).Equal(20)
		gt.Value(t, created.Classification).Equal(types.ClassificationCritical)
		gt.Bool(t, created.CreatedAt.Equal(risk.CreatedAt)).True()
	})

	t.Run("Create rejects inconsistent risk", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		risk := newRisk(t, "Wet floor", 2, 2)
		risk.Score = 25

		_, err := repo.Risk().Create(ctx, risk)
		gt.Error(t, err).Is(model.ErrInvalidRisk)

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(0)
	})

	t.Run("Create keeps repeated hazards", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for n := 0; n < 3; n++ {
			_, err := repo.Risk().Create(ctx, newRisk(t, "Ladder fall", 3, 3))
			gt.NoError(t, err).Required()
		}

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(3)
	})

	t.Run("List is empty initially", func(t *testing.T) {
		repo := newRepo(t)

		risks, err := repo.Risk().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(0)
	})

	t.Run("List orders by score descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		// scores 4, 20, 9, 16
		inputs := []struct {
			l types.Likelihood
			i types.Impact
		}{{2, 2}, {4, 5}, {3, 3}, {4, 4}}
		for n, in := range inputs {
			_, err := repo.Risk().Create(ctx, newRisk(t, fmt.Sprintf("hazard %d", n), in.l, in.i))
			gt.NoError(t, err).Required()
		}

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(4).Required()

		want := []int{20, 16, 9, 4}
		for n, r := range risks {
			gt.Value(t, r.Score).Equal(want[n])
		}
	})

	t.Run("List puts most recent first on equal scores", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := newRisk(t, "Older hazard", 2, 3)
		second := newRisk(t, "Newer hazard", 3, 2)
		second.CreatedAt = first.CreatedAt.Add(time.Second)

		_, err := repo.Risk().Create(ctx, first)
		gt.NoError(t, err).Required()
		_, err = repo.Risk().Create(ctx, second)
		gt.NoError(t, err).Required()

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(2).Required()
		gt.Value(t, risks[0].ID).Equal(second.ID)
		gt.Value(t, risks[1].ID).Equal(first.ID)
	})

	t.Run("List does not alter stored records", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Risk().Create(ctx, newRisk(t, "Open trench", 5, 3))
		gt.NoError(t, err).Required()

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1).Required()
		risks[0].Hazard = "modified"

		again, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, again).Length(1).Required()
		gt.Value(t, again[0].Hazard).Equal(created.Hazard)
	})
}

func TestRiskRepository_Memory(t *testing.T) {
	runRiskRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func newFirestoreRiskRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestRiskRepository_Firestore(t *testing.T) {
	runRiskRepositoryTest(t, newFirestoreRiskRepository)
}

func TestRiskRepository_MemoryConcurrentCreate(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	const workers = 16
	const perWorker = 25

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for n := 0; n < perWorker; n++ {
				risk, err := model.NewRisk(fmt.Sprintf("hazard %d-%d", w, n), types.Likelihood(n%5+1), types.Impact(w%5+1))
				if err != nil {
					return err
				}
				if _, err := repo.Risk().Create(ctx, risk); err != nil {
					return err
				}
				if _, err := repo.Risk().List(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	}
	gt.NoError(t, eg.Wait()).Required()

	risks, err := repo.Risk().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(workers * perWorker).Required()

	ids := make(map[model.RiskID]bool, len(risks))
	for n, r := range risks {
		gt.NoError(t, r.Validate())
		ids[r.ID] = true
		if n > 0 {
			gt.Bool(t, risks[n-1].Score >= r.Score).True()
		}
	}
	gt.Value(t, len(ids)).Equal(workers * perWorker)
}
