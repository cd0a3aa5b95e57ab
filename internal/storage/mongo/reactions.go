package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/odysee-comments/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetReaction ставит реакцию; повторная постановка ничего не меняет.
func (m *Mongo) SetReaction(ctx context.Context, r models.Reaction) error {
	const op = "storage/mongo/SetReaction"

	filter := bson.D{
		{Key: "comment_id", Value: r.CommentID},
		{Key: "channel_id", Value: r.ChannelID},
		{Key: "kind", Value: string(r.Kind)},
	}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: toMS(time.Now())}}}}

	if _, err := m.reactions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		// Гонка двух upsert'ов по уникальному индексу: реакция уже стоит.
		if mongodriver.IsDuplicateKeyError(err) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveReactions снимает реакции канала указанных видов.
func (m *Mongo) RemoveReactions(ctx context.Context, commentID, channelID string, kinds []models.ReactionKind) error {
	const op = "storage/mongo/RemoveReactions"

	if len(kinds) == 0 {
		return nil
	}

	raw := make([]string, 0, len(kinds))
	for _, k := range kinds {
		raw = append(raw, string(k))
	}

	_, err := m.reactions.DeleteMany(ctx, bson.D{
		{Key: "comment_id", Value: commentID},
		{Key: "channel_id", Value: channelID},
		{Key: "kind", Value: bson.D{{Key: "$in", Value: raw}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CountReactions группирует реакции по (comment_id, kind, свой/чужой канал).
// В ответе есть запись для каждого запрошенного id, даже без реакций.
func (m *Mongo) CountReactions(ctx context.Context, commentIDs []string, channelID string) (*models.Reactions, error) {
	const op = "storage/mongo/CountReactions"

	out := &models.Reactions{
		My:     make(map[string]models.ReactionCounts, len(commentIDs)),
		Others: make(map[string]models.ReactionCounts, len(commentIDs)),
	}
	for _, id := range commentIDs {
		out.My[id] = models.ReactionCounts{}
		out.Others[id] = models.ReactionCounts{}
	}
	if len(commentIDs) == 0 {
		return out, nil
	}

	pipeline := mongodriver.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "comment_id", Value: bson.D{{Key: "$in", Value: commentIDs}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "comment_id", Value: "$comment_id"},
				{Key: "kind", Value: "$kind"},
				{Key: "mine", Value: bson.D{{Key: "$eq", Value: bson.A{"$channel_id", channelID}}}},
			}},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := m.reactions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", op, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			Key struct {
				CommentID string `bson:"comment_id"`
				Kind      string `bson:"kind"`
				Mine      bool   `bson:"mine"`
			} `bson:"_id"`
			N int `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		kind, err := models.ParseReactionKind(row.Key.Kind)
		if err != nil {
			continue
		}

		bucket := out.Others
		if row.Key.Mine && channelID != "" {
			bucket = out.My
		}
		bucket[row.Key.CommentID][kind] += row.N
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}
