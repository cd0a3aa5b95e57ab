package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"
	"github.com/pribylovaa/odysee-comments/pkg/log"
)

// Входные структуры сервисного слоя.

// CreateCommentInput — создание корневого комментария или ответа.
// Правила:
//   - если ParentID пуст, создаётся корень, иначе ответ на комментарий того же claim'а;
//   - обязательны: ClaimID, ChannelID, Body.
type CreateCommentInput struct {
	ClaimID   string
	ChannelID string
	ParentID  string
	Body      string
}

// ListInput — параметры постраничной выдачи комментариев claim'а.
type ListInput struct {
	ClaimID        string
	Page           int32
	PageSize       int32
	IncludeReplies bool
}

// validBody нормализует тело и проверяет длину в рунах.
func (s *Service) validBody(body string) (string, bool) {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > s.cfg.Limits.MaxChars {
		return body, false
	}

	return body, true
}

// ListComments — страница видимых комментариев claim'а, новые первыми.
//
// Валидация:
//   - ClaimID обязателен.
//
// Поведение/ошибки:
//   - ErrInternal — ошибки стораджа.
func (s *Service) ListComments(ctx context.Context, in ListInput) (*models.CommentPage, error) {
	const op = "service/comments/ListComments"

	in.ClaimID = strings.TrimSpace(in.ClaimID)
	lg := log.From(ctx).With("op", op, "claim_id", in.ClaimID)

	if in.ClaimID == "" {
		lg.Warn("invalid argument: empty claim_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Page < 0 || in.PageSize < 0 {
		lg.Warn("invalid argument: negative page")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListComments(ctx, in.ClaimID, models.ListParams{
		Page:           in.Page,
		PageSize:       in.PageSize,
		IncludeReplies: in.IncludeReplies,
	})
	if err != nil {
		lg.Error("storage error on ListComments", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// CreateComment — публикация комментария от имени канала учётной записи.
//
// Валидация:
//   - Body нормализуется (TrimSpace), не пуст и не длиннее limits.max_chars рун;
//   - ClaimID обязателен, claim должен существовать.
//
// Поведение/ошибки:
//   - ErrUnauthenticated / ErrPermissionDenied — см. ownedChannel;
//   - ErrNotFound — нет claim'а или канала;
//   - ErrParentNotFound — указан ParentID, но родителя нет в этом claim'е;
//   - ErrConflict — такой же комментарий уже сохранён;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) CreateComment(ctx context.Context, account string, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	in.ClaimID = strings.TrimSpace(in.ClaimID)
	in.ParentID = strings.TrimSpace(in.ParentID)
	lg := log.From(ctx).With(
		"op", op,
		"claim_id", in.ClaimID,
		"channel_id", in.ChannelID,
		"parent_id", in.ParentID,
	)

	body, ok := s.validBody(in.Body)
	if !ok {
		lg.Warn("invalid argument: comment body", "runes", utf8.RuneCountInString(body))
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.ClaimID == "" {
		lg.Warn("invalid argument: empty claim_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ch, err := s.ownedChannel(ctx, lg, account, ChannelRef{ID: in.ChannelID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.ClaimByID(ctx, in.ClaimID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("claim not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on ClaimByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	now := s.now()
	result, err := s.storage.CreateComment(ctx, models.Comment{
		ID:          models.CommentDigest(in.ClaimID, ch.ClaimID, body, now),
		ParentID:    in.ParentID,
		ClaimID:     in.ClaimID,
		ChannelID:   ch.ClaimID,
		ChannelName: ch.Name,
		ChannelURL:  ch.PermanentURL,
		Body:        body,
		CreatedAt:   now,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrParentNotFound):
			lg.Warn("parent not found")
			return nil, fmt.Errorf("%s: %w", op, ErrParentNotFound)
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on CreateComment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// authorChannel возвращает комментарий и его канал, если канал принадлежит account.
func (s *Service) authorChannel(ctx context.Context, lg *slog.Logger, account, id string) (*models.Comment, *models.Claim, error) {
	if account == "" {
		lg.Warn("unauthenticated")
		return nil, nil, ErrUnauthenticated
	}

	if id == "" {
		lg.Warn("invalid argument: empty comment_id")
		return nil, nil, ErrInvalidArgument
	}

	comm, err := s.storage.CommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment not found")
			return nil, nil, ErrNotFound
		}

		lg.Error("storage error on CommentByID", "err", err)
		return nil, nil, ErrInternal
	}

	if comm.IsAnonymous() {
		lg.Warn("permission denied: anonymous comment")
		return nil, nil, ErrPermissionDenied
	}

	ch, err := s.ownedChannel(ctx, lg, account, ChannelRef{ID: comm.ChannelID})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrPermissionDenied
		}

		return nil, nil, err
	}

	return comm, ch, nil
}

// UpdateComment меняет текст своего комментария.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — пустое или слишком длинное тело;
//   - ErrNotFound — комментария нет;
//   - ErrPermissionDenied — комментарий чужой;
//   - ErrChannelNotReady — канал ещё не прошёл прогрев (ответ null на проводе);
//   - ErrInternal — ошибки стораджа.
func (s *Service) UpdateComment(ctx context.Context, account, id, body string) (*models.Comment, error) {
	const op = "service/comments/UpdateComment"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "comment_id", id)

	body, ok := s.validBody(body)
	if !ok {
		lg.Warn("invalid argument: comment body")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	_, ch, err := s.authorChannel(ctx, lg, account, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !s.canSign(ch) {
		lg.Info("channel not ready", "channel_id", ch.ClaimID)
		return nil, fmt.Errorf("%s: %w", op, ErrChannelNotReady)
	}

	result, err := s.storage.UpdateComment(ctx, id, body)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("storage error on UpdateComment", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// AbandonComment удаляет свой комментарий вместе с реакциями.
//
// Поведение/ошибки — как у UpdateComment; неготовый канал даёт
// ErrChannelNotReady (abandoned=false на проводе).
func (s *Service) AbandonComment(ctx context.Context, account, id string) error {
	const op = "service/comments/AbandonComment"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "comment_id", id)

	_, ch, err := s.authorChannel(ctx, lg, account, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !s.canSign(ch) {
		lg.Info("channel not ready", "channel_id", ch.ClaimID)
		return fmt.Errorf("%s: %w", op, ErrChannelNotReady)
	}

	if err := s.storage.DeleteComment(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteComment", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// HideComments скрывает комментарии под контентом учётной записи.
// Результат содержит каждый переданный id; чужие и ненайденные — false.
//
// Поведение/ошибки:
//   - ErrUnauthenticated — пустой account;
//   - ErrInvalidArgument — пустой список;
//   - ErrInternal — ошибки стораджа.
func (s *Service) HideComments(ctx context.Context, account string, ids []string) (map[string]bool, error) {
	const op = "service/comments/HideComments"

	lg := log.From(ctx).With("op", op, "count", len(ids))

	if account == "" {
		lg.Warn("unauthenticated")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if len(ids) == 0 {
		lg.Warn("invalid argument: empty comment_ids")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	out := make(map[string]bool, len(ids))
	owned := make([]string, 0, len(ids))
	for _, id := range ids {
		out[id] = false

		comm, err := s.storage.CommentByID(ctx, strings.TrimSpace(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}

			lg.Error("storage error on CommentByID", "comment_id", id, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		claim, err := s.storage.ClaimByID(ctx, comm.ClaimID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}

			lg.Error("storage error on ClaimByID", "claim_id", comm.ClaimID, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if claim.Account != account {
			lg.Warn("hide denied: foreign content", "comment_id", id)
			continue
		}

		owned = append(owned, comm.ID)
	}

	if len(owned) == 0 {
		return out, nil
	}

	hidden, err := s.storage.HideComments(ctx, owned)
	if err != nil {
		lg.Error("storage error on HideComments", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	for id, ok := range hidden {
		if _, asked := out[id]; asked {
			out[id] = ok
		}
	}

	return out, nil
}
