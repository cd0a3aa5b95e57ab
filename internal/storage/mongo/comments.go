package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateComment сохраняет комментарий (корневой или ответ).
//   - ответ допускается только на комментарий того же claim'а;
//   - на родителе инкрементирует replies после успешной вставки.
func (m *Mongo) CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	comm.ParentID = strings.TrimSpace(comm.ParentID)
	comm.CreatedAt = toMS(comm.CreatedAt)
	comm.Replies = 0
	comm.Hidden = false

	if comm.ParentID != "" {
		err := m.comments.FindOne(ctx, bson.D{
			{Key: "_id", Value: comm.ParentID},
			{Key: "claim_id", Value: comm.ClaimID},
		}).Err()
		if err != nil {
			if errors.Is(err, mongodriver.ErrNoDocuments) {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrParentNotFound)
			}

			return nil, fmt.Errorf("%s: find parent: %w", op, err)
		}
	}

	if _, err := m.comments.InsertOne(ctx, commentToDoc(comm)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	if comm.ParentID != "" {
		if err := m.bumpReplies(ctx, comm.ParentID, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &comm, nil
}

func (m *Mongo) bumpReplies(ctx context.Context, id string, delta int32) error {
	_, err := m.comments.UpdateByID(ctx, id, bson.D{
		{Key: "$inc", Value: bson.D{{Key: "replies", Value: delta}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: toMS(time.Now())}}},
	})
	if err != nil {
		return fmt.Errorf("update replies: %w", err)
	}

	return nil
}

// CommentByID возвращает комментарий по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	var doc commentDoc
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// ListComments возвращает страницу видимых комментариев claim'а.
// Сортировка: created_at DESC, _id DESC; страницы нумеруются с 1.
func (m *Mongo) ListComments(ctx context.Context, claimID string, p models.ListParams) (*models.CommentPage, error) {
	const op = "storage/mongo/ListComments"

	limit := limitOrDefault(m.cfg, p.PageSize)
	page := max(p.Page, 1)

	filter := bson.D{
		{Key: "claim_id", Value: claimID},
		{Key: "is_hidden", Value: false},
	}
	if !p.IncludeReplies {
		filter = append(filter, bson.E{Key: "parent_id", Value: ""})
	}

	total, err := m.comments.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(page-1) * limit).
		SetLimit(limit)

	cur, err := m.comments.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := make([]models.Comment, 0)
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		items = append(items, doc.model())
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return &models.CommentPage{
		Items:      items,
		Page:       page,
		PageSize:   int32(limit),
		TotalItems: int32(total),
	}, nil
}

// UpdateComment меняет текст комментария и возвращает новую версию.
func (m *Mongo) UpdateComment(ctx context.Context, id, body string) (*models.Comment, error) {
	const op = "storage/mongo/UpdateComment"

	var doc commentDoc
	err := m.comments.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: strings.TrimSpace(id)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "comment", Value: body},
			{Key: "updated_at", Value: toMS(time.Now())},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.model()
	return &out, nil
}

// DeleteComment удаляет комментарий и его реакции; у родителя уменьшает replies.
func (m *Mongo) DeleteComment(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteComment"

	id = strings.TrimSpace(id)

	var doc commentDoc
	if err := m.comments.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := m.reactions.DeleteMany(ctx, bson.D{{Key: "comment_id", Value: id}}); err != nil {
		return fmt.Errorf("%s: delete reactions: %w", op, err)
	}

	if doc.ParentID != "" {
		if err := m.bumpReplies(ctx, doc.ParentID, -1); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// HideComments помечает комментарии скрытыми.
func (m *Mongo) HideComments(ctx context.Context, ids []string) (map[string]bool, error) {
	const op = "storage/mongo/HideComments"

	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = false
	}
	if len(ids) == 0 {
		return out, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	_, err := m.comments.UpdateMany(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_hidden", Value: true},
		{Key: "updated_at", Value: toMS(time.Now())},
	}}})
	if err != nil {
		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	cur, err := m.comments.Find(ctx,
		append(filter, bson.E{Key: "is_hidden", Value: true}),
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}
		out[doc.ID] = true
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}
