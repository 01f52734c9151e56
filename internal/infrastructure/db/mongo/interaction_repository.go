package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lentefilmes/site-admin/internal/core/domain"
)

const interactionCollection = "lead_interactions"

// InteractionRepository keeps the CRM timeline as one document per entry.
type InteractionRepository struct {
	coll *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{coll: db.Collection(interactionCollection)}
}

// EnsureIndexes creates the lead_id/created_at index used by ListByLead.
func (r *InteractionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "lead_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create interaction index: %w", err)
	}
	return nil
}

// ListByLead returns the timeline newest first.
func (r *InteractionRepository) ListByLead(ctx context.Context, leadID string) ([]domain.LeadInteraction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find interactions: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.LeadInteraction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode interactions: %w", err)
	}
	return out, nil
}

// Create assigns an id when the caller left it empty.
func (r *InteractionRepository) Create(ctx context.Context, in *domain.LeadInteraction) error {
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, in); err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InteractionRepository) DeleteByLead(ctx context.Context, leadID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"lead_id": leadID})
	if err != nil {
		return 0, fmt.Errorf("delete lead interactions: %w", err)
	}
	return res.DeletedCount, nil
}
