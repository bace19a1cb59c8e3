package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RisksCollection is the collection name without prefix
const RisksCollection = "risks"

type riskDocument struct {
	ID             string    `firestore:"id"`
	Hazard         string    `firestore:"hazard"`
	Likelihood     int       `firestore:"likelihood"`
	Impact         int       `firestore:"impact"`
	Score          int       `firestore:"score"`
	Classification string    `firestore:"classification"`
	CreatedAt      time.Time `firestore:"created_at"`
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRiskRepository(client *firestore.Client) *riskRepository {
	return &riskRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *riskRepository) risksCollection() string {
	return CollectionName(r.collectionPrefix)
}

// CollectionName returns the risks collection name for a prefix
func CollectionName(prefix string) string {
	if prefix != "" {
		return prefix + "_" + RisksCollection
	}
	return RisksCollection
}

func riskToDocument(risk *model.Risk) *riskDocument {
	return &riskDocument{
		ID:             risk.ID.String(),
		Hazard:         risk.Hazard,
		Likelihood:     risk.Likelihood.Int(),
		Impact:         risk.Impact.Int(),
		Score:          risk.Score,
		Classification: risk.Classification.String(),
		CreatedAt:      risk.CreatedAt,
	}
}

func riskToModel(doc *riskDocument) *model.Risk {
	return &model.Risk{
		ID:             model.RiskID(doc.ID),
		Hazard:         doc.Hazard,
		Likelihood:     types.Likelihood(doc.Likelihood),
		Impact:         types.Impact(doc.Impact),
		Score:          doc.Score,
		Classification: types.Classification(doc.Classification),
		CreatedAt:      doc.CreatedAt.UTC(),
	}
}

func (r *riskRepository) Create(ctx context.Context, risk *model.Risk) (*model.Risk, error) {
	if err := risk.Validate(); err != nil {
		return nil, goerr.Wrap(err, "refused to store risk")
	}

	doc := riskToDocument(risk)

	docRef := r.client.Collection(r.risksCollection()).Doc(doc.ID)
	if _, err := docRef.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(ErrAlreadyExists, "risk already exists", goerr.V(model.RiskIDKey, doc.ID))
		}
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V(model.RiskIDKey, doc.ID))
	}

	return riskToModel(doc), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.Risk, error) {
	iter := r.client.Collection(r.risksCollection()).
		OrderBy("score", firestore.Desc).
		OrderBy("created_at", firestore.Desc).
		OrderBy("id", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	risks := []*model.Risk{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks")
		}

		var riskDoc riskDocument
		if err := doc.DataTo(&riskDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("doc_id", doc.Ref.ID))
		}

		risks = append(risks, riskToModel(&riskDoc))
	}

	return risks, nil
}
