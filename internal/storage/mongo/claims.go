package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateClaim сохраняет claim. Занятое имя канала — storage.ErrConflict.
func (m *Mongo) CreateClaim(ctx context.Context, claim models.Claim) (*models.Claim, error) {
	const op = "storage/mongo/CreateClaim"

	doc := claimToDoc(claim)
	if _, err := m.claims.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// ClaimByID возвращает claim по claim_id.
func (m *Mongo) ClaimByID(ctx context.Context, id string) (*models.Claim, error) {
	const op = "storage/mongo/ClaimByID"

	return m.findClaim(ctx, op, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}})
}

// ClaimByName возвращает самый ранний claim с именем name.
func (m *Mongo) ClaimByName(ctx context.Context, name string) (*models.Claim, error) {
	const op = "storage/mongo/ClaimByName"

	return m.findClaim(ctx, op, bson.D{{Key: "name", Value: strings.TrimSpace(name)}},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (m *Mongo) findClaim(ctx context.Context, op string, filter bson.D, opts ...*options.FindOneOptions) (*models.Claim, error) {
	var doc claimDoc
	if err := m.claims.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// ChannelsByAccount возвращает каналы учётной записи (старые первыми).
func (m *Mongo) ChannelsByAccount(ctx context.Context, account string) ([]models.Claim, error) {
	const op = "storage/mongo/ChannelsByAccount"

	cur, err := m.claims.Find(ctx,
		bson.D{
			{Key: "account", Value: account},
			{Key: "value_type", Value: string(models.ValueTypeChannel)},
		},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]models.Claim, 0)
	for cur.Next(ctx) {
		var doc claimDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		out = append(out, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}
