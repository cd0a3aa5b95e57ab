package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"
	"github.com/pribylovaa/odysee-comments/pkg/log"
)

// ReactInput — реакция канала на один или несколько комментариев.
//   - Remove снимает Kind вместо установки;
//   - Clear снимаются перед установкой Kind (взаимоисключающие виды).
type ReactInput struct {
	CommentIDs []string
	Channel    ChannelRef
	Kind       models.ReactionKind
	Clear      []models.ReactionKind
	Remove     bool
}

// SplitIDs разбирает список идентификаторов через запятую, пропуская пустые.
func SplitIDs(csv string) []string {
	var out []string
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}

	return out
}

// ReactList — счётчики реакций по комментариям. Без канала все реакции
// считаются чужими, My содержит нулевые записи.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой список;
//   - при указанном канале — ошибки ownedChannel;
//   - ErrInternal — ошибки стораджа.
func (s *Service) ReactList(ctx context.Context, account string, ids []string, channel ChannelRef) (*models.Reactions, error) {
	const op = "service/reactions/ReactList"

	lg := log.From(ctx).With("op", op, "count", len(ids))

	if len(ids) == 0 {
		lg.Warn("invalid argument: empty comment_ids")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	channelID := ""
	if !channel.isEmpty() {
		ch, err := s.ownedChannel(ctx, lg, account, channel)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		channelID = ch.ClaimID
	}

	out, err := s.storage.CountReactions(ctx, ids, channelID)
	if err != nil {
		lg.Error("storage error on CountReactions", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return out, nil
}

// React ставит или снимает реакцию канала.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустой список или неизвестный вид;
//   - ErrNotFound — одного из комментариев нет (ничего не меняется);
//   - ошибки ownedChannel;
//   - ErrInternal — ошибки стораджа.
func (s *Service) React(ctx context.Context, account string, in ReactInput) error {
	const op = "service/reactions/React"

	lg := log.From(ctx).With("op", op, "kind", string(in.Kind), "remove", in.Remove)

	if len(in.CommentIDs) == 0 {
		lg.Warn("invalid argument: empty comment_ids")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := models.ParseReactionKind(string(in.Kind)); err != nil {
		lg.Warn("invalid argument: reaction kind")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ch, err := s.ownedChannel(ctx, lg, account, in.Channel)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, id := range in.CommentIDs {
		if _, err := s.storage.CommentByID(ctx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				lg.Warn("comment not found", "comment_id", id)
				return fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			lg.Error("storage error on CommentByID", "comment_id", id, "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	drop := make([]models.ReactionKind, 0, len(in.Clear))
	for _, k := range in.Clear {
		if k != in.Kind {
			drop = append(drop, k)
		}
	}

	for _, id := range in.CommentIDs {
		if in.Remove {
			err = s.storage.RemoveReactions(ctx, id, ch.ClaimID, []models.ReactionKind{in.Kind})
		} else {
			err = s.storage.RemoveReactions(ctx, id, ch.ClaimID, drop)
			if err == nil {
				err = s.storage.SetReaction(ctx, models.Reaction{CommentID: id, ChannelID: ch.ClaimID, Kind: in.Kind})
			}
		}

		if err != nil {
			lg.Error("storage error on React", "comment_id", id, "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}
