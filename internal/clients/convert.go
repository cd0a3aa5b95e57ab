package clients

import (
	"time"

	"github.com/pribylovaa/odysee-comments/internal/models"
	commentsv1 "github.com/pribylovaa/odysee-comments/pkg/commentsv1"
)

func commentFromWire(c commentsv1.Comment) models.Comment {
	return models.Comment{
		ID:          c.CommentID,
		ParentID:    c.ParentID,
		ClaimID:     c.ClaimID,
		ChannelID:   c.ChannelID,
		ChannelName: c.ChannelName,
		ChannelURL:  c.ChannelURL,
		Body:        c.Comment,
		CreatedAt:   time.Unix(c.Timestamp, 0).UTC(),
		Replies:     c.Replies,
		Hidden:      c.IsHidden,
	}
}

func claimFromWire(c commentsv1.Claim) models.Claim {
	return models.Claim{
		ClaimID:      c.ClaimID,
		Name:         c.Name,
		ValueType:    models.ValueType(c.ValueType),
		PermanentURL: c.PermanentURL,
		Meta: models.ClaimMeta{
			Title:        c.Meta.Title,
			ThumbnailURL: c.Meta.ThumbnailURL,
			Description:  c.Meta.Description,
		},
		CreatedAt: time.Unix(c.Timestamp, 0).UTC(),
	}
}

// countsFromWire проверяет виды реакций; неизвестный вид — ошибка.
func countsFromWire(in map[string]commentsv1.ReactionCounts) (map[string]models.ReactionCounts, error) {
	out := make(map[string]models.ReactionCounts, len(in))
	for id, counts := range in {
		rc := make(models.ReactionCounts, len(counts))
		for raw, n := range counts {
			k, err := models.ParseReactionKind(raw)
			if err != nil {
				return nil, err
			}
			rc[k] = n
		}
		out[id] = rc
	}

	return out, nil
}
