package grpc

import (
	"github.com/pribylovaa/odysee-comments/internal/models"
	commentsv1 "github.com/pribylovaa/odysee-comments/pkg/commentsv1"
)

// commentToWire — доменная модель -> форма comment API (timestamp в unix-секундах).
func commentToWire(c models.Comment) commentsv1.Comment {
	return commentsv1.Comment{
		CommentID:   c.ID,
		ParentID:    c.ParentID,
		ClaimID:     c.ClaimID,
		ChannelID:   c.ChannelID,
		ChannelName: c.ChannelName,
		ChannelURL:  c.ChannelURL,
		Comment:     c.Body,
		Timestamp:   c.CreatedAt.Unix(),
		IsHidden:    c.Hidden,
		Replies:     c.Replies,
	}
}

// claimToWire не выпускает Account наружу.
func claimToWire(c models.Claim) commentsv1.Claim {
	return commentsv1.Claim{
		ClaimID:      c.ClaimID,
		Name:         c.Name,
		ValueType:    string(c.ValueType),
		PermanentURL: c.PermanentURL,
		Meta: commentsv1.ClaimMeta{
			Title:        c.Meta.Title,
			ThumbnailURL: c.Meta.ThumbnailURL,
			Description:  c.Meta.Description,
		},
		Timestamp: c.CreatedAt.Unix(),
	}
}

func countsToWire(in map[string]models.ReactionCounts) map[string]commentsv1.ReactionCounts {
	out := make(map[string]commentsv1.ReactionCounts, len(in))
	for id, counts := range in {
		rc := make(commentsv1.ReactionCounts, len(models.ReactionKinds))
		for _, k := range models.ReactionKinds {
			rc[k.String()] = counts[k]
		}
		out[id] = rc
	}

	return out
}
