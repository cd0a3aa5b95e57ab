package mongo

import (
	"time"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

// commentDoc — документ коллекции comments; _id — digest комментария.
type commentDoc struct {
	ID          string    `bson:"_id"`
	ParentID    string    `bson:"parent_id"`
	ClaimID     string    `bson:"claim_id"`
	ChannelID   string    `bson:"channel_id"`
	ChannelName string    `bson:"channel_name"`
	ChannelURL  string    `bson:"channel_url"`
	Body        string    `bson:"comment"`
	Replies     int32     `bson:"replies"`
	IsHidden    bool      `bson:"is_hidden"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func commentToDoc(c models.Comment) commentDoc {
	return commentDoc{
		ID:          c.ID,
		ParentID:    c.ParentID,
		ClaimID:     c.ClaimID,
		ChannelID:   c.ChannelID,
		ChannelName: c.ChannelName,
		ChannelURL:  c.ChannelURL,
		Body:        c.Body,
		Replies:     c.Replies,
		IsHidden:    c.Hidden,
		CreatedAt:   toMS(c.CreatedAt),
		UpdatedAt:   toMS(c.CreatedAt),
	}
}

func (d commentDoc) model() models.Comment {
	return models.Comment{
		ID:          d.ID,
		ParentID:    d.ParentID,
		ClaimID:     d.ClaimID,
		ChannelID:   d.ChannelID,
		ChannelName: d.ChannelName,
		ChannelURL:  d.ChannelURL,
		Body:        d.Body,
		CreatedAt:   d.CreatedAt.UTC(),
		Replies:     d.Replies,
		Hidden:      d.IsHidden,
	}
}

// reactionDoc — документ коллекции reactions.
type reactionDoc struct {
	CommentID string    `bson:"comment_id"`
	ChannelID string    `bson:"channel_id"`
	Kind      string    `bson:"kind"`
	CreatedAt time.Time `bson:"created_at"`
}

// claimDoc — документ коллекции claims (контент и каналы).
type claimDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	ValueType    string    `bson:"value_type"`
	PermanentURL string    `bson:"permanent_url"`
	Title        string    `bson:"title,omitempty"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty"`
	Description  string    `bson:"description,omitempty"`
	Account      string    `bson:"account,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
}

func claimToDoc(c models.Claim) claimDoc {
	return claimDoc{
		ID:           c.ClaimID,
		Name:         c.Name,
		ValueType:    string(c.ValueType),
		PermanentURL: c.PermanentURL,
		Title:        c.Meta.Title,
		ThumbnailURL: c.Meta.ThumbnailURL,
		Description:  c.Meta.Description,
		Account:      c.Account,
		CreatedAt:    toMS(c.CreatedAt),
	}
}

func (d claimDoc) model() models.Claim {
	return models.Claim{
		ClaimID:      d.ID,
		Name:         d.Name,
		ValueType:    models.ValueType(d.ValueType),
		PermanentURL: d.PermanentURL,
		Meta: models.ClaimMeta{
			Title:        d.Title,
			ThumbnailURL: d.ThumbnailURL,
			Description:  d.Description,
		},
		Account:   d.Account,
		CreatedAt: d.CreatedAt.UTC(),
	}
}
