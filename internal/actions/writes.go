package actions

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/internal/task"
	"github.com/pribylovaa/odysee-comments/pkg/log"
)

// CreateInput — новый комментарий или ответ.
type CreateInput struct {
	Body        string
	ClaimID     string
	ChannelName string
	// ParentID пуст для корневого комментария.
	ParentID string
	URI      string
}

// React ставит или снимает реакцию текущего канала.
//
// like и dislike взаимоисключающие: в запрос уходит clear_types с
// противоположным видом. Если kind уже стоит, запрос становится снятием.
// После успеха счётчики перезапрашиваются для этого комментария.
func (c *Comments) React(ctx context.Context, commentID string, kind models.ReactionKind) *task.Task[struct{}] {
	const op = "actions/React"

	ctx, _ = log.With(ctx, "op", op, "comment_id", commentID, "kind", kind.String())
	tok := state.Token{ID: commentID}

	kind, kerr := models.ParseReactionKind(string(kind))
	name, channelID, err := c.signer(ctx)
	if err == nil {
		err = kerr
	}

	remove := slices.Contains(c.store.MyReactions(commentID), kind)
	c.started(ctx, state.OpReact, tok, state.ReactStarted{Kind: kind, Remove: remove})

	if err != nil {
		c.failed(ctx, state.OpReact, tok, reasonFor(err), err)
		if errors.Is(err, ErrNoActiveChannel) {
			c.toastError(ErrNoActiveChannel.Error())
		} else {
			c.toastError(ToastReactFailed)
		}
		return task.Rejected[struct{}](fmt.Errorf("%s: %w", op, err))
	}

	params := ReactParams{
		CommentID:   commentID,
		ChannelName: name,
		ChannelID:   channelID,
		Kind:        kind,
		Remove:      remove,
	}
	if x, ok := kind.Exclusive(); ok {
		params.ClearTypes = []models.ReactionKind{x}
	}

	return task.Go(ctx, func(ctx context.Context) (struct{}, error) {
		if err := c.api.React(ctx, params); err != nil {
			c.failed(ctx, state.OpReact, tok, state.ReasonTransport, err)
			c.toastError(ToastReactFailed)
			return struct{}{}, fmt.Errorf("%s: %w", op, err)
		}

		c.completed(ctx, state.OpReact, tok, nil)

		// Ошибка обновления счётчиков уже записана в состояние.
		_, _ = c.ReactList(ctx, ForComment(commentID)).Wait(ctx)

		return struct{}{}, nil
	})
}

// Create создаёт комментарий от имени своего канала in.ChannelName.
// Пока сервис не подтвердил запись, в состоянии лежит черновик с Pending.
func (c *Comments) Create(ctx context.Context, in CreateInput) *task.Task[*models.Comment] {
	const op = "actions/Create"

	ctx, _ = log.With(ctx, "op", op, "claim_id", in.ClaimID, "parent_id", in.ParentID, "channel", in.ChannelName)

	if in.ClaimID == "" && in.URI != "" {
		in.ClaimID, _ = c.store.ClaimIDForURI(in.URI)
	}

	var channel models.Claim
	for _, ch := range c.store.MyChannels() {
		if ch.Name == in.ChannelName {
			channel = ch
			break
		}
	}

	tok := state.Token{ID: state.PlaceholderPrefix + c.newID()}
	c.started(ctx, state.OpCreate, tok, state.CreateStarted{
		URI: in.URI,
		Placeholder: models.Comment{
			ParentID:    in.ParentID,
			ClaimID:     in.ClaimID,
			ChannelID:   channel.ClaimID,
			ChannelName: in.ChannelName,
			ChannelURL:  channel.PermanentURL,
			Body:        in.Body,
			CreatedAt:   time.Now().UTC(),
		},
	})

	if channel.ClaimID == "" {
		c.failed(ctx, state.OpCreate, tok, state.ReasonPrecondition, ErrAnonymousChannel)
		c.toastError(ToastAnonymous)
		return task.Rejected[*models.Comment](fmt.Errorf("%s: %w", op, ErrAnonymousChannel))
	}

	return task.Go(ctx, func(ctx context.Context) (*models.Comment, error) {
		res, err := c.api.CommentCreate(ctx, CreateParams{
			Body:      in.Body,
			ClaimID:   in.ClaimID,
			ChannelID: channel.ClaimID,
			ParentID:  in.ParentID,
		})
		if err == nil && res == nil {
			err = errors.New("empty response")
		}
		if err != nil {
			c.failed(ctx, state.OpCreate, tok, state.ReasonTransport, err)
			c.toastError(ToastCreateFailed)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if res.ClaimID == "" {
			res.ClaimID = in.ClaimID
		}

		c.completed(ctx, state.OpCreate, tok, state.CreateDone{URI: in.URI, Comment: *res})
		return res, nil
	})
}

// Update меняет текст комментария. Пустой текст означает удаление: вызов
// передаётся в Abandon, и результатом будет nil.
// Ответ null от сервиса — мягкий отказ ErrChannelNotReady.
func (c *Comments) Update(ctx context.Context, commentID, body string) *task.Task[*models.Comment] {
	const op = "actions/Update"

	if body == "" {
		return task.Map(c.Abandon(ctx, commentID), func(bool) *models.Comment { return nil })
	}

	ctx, _ = log.With(ctx, "op", op, "comment_id", commentID)
	tok := c.store.TokenFor(commentID)
	c.started(ctx, state.OpUpdate, tok, state.UpdateStarted{Body: body})

	return task.Go(ctx, func(ctx context.Context) (*models.Comment, error) {
		res, err := c.api.CommentUpdate(ctx, commentID, body)
		if err != nil {
			c.failed(ctx, state.OpUpdate, tok, state.ReasonTransport, err)
			c.toastError(ToastEditFailed)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if res == nil {
			c.failed(ctx, state.OpUpdate, tok, state.ReasonSoft, ErrChannelNotReady)
			c.toastError(ToastChannelSetup)
			return nil, fmt.Errorf("%s: %w", op, ErrChannelNotReady)
		}

		c.completed(ctx, state.OpUpdate, tok, state.UpdateDone{Comment: *res})
		return res, nil
	})
}

// Hide скрывает один комментарий (модерация владельцем claim'а).
func (c *Comments) Hide(ctx context.Context, commentID string) *task.Task[bool] {
	const op = "actions/Hide"

	ctx, _ = log.With(ctx, "op", op, "comment_id", commentID)
	tok := c.store.TokenFor(commentID)
	c.started(ctx, state.OpHide, tok, nil)

	return task.Go(ctx, func(ctx context.Context) (bool, error) {
		res, err := c.api.CommentHide(ctx, []string{commentID})
		if err != nil {
			c.failed(ctx, state.OpHide, tok, state.ReasonTransport, err)
			c.toastError(ToastHideFailed)
			return false, fmt.Errorf("%s: %w", op, err)
		}

		hidden := res[commentID]
		c.completed(ctx, state.OpHide, tok, state.HideDone{Hidden: hidden})
		return hidden, nil
	})
}

// Abandon удаляет комментарий. abandoned=false — мягкий отказ
// ErrChannelNotReady (канал ещё не может подписывать), а не ошибка вызова.
func (c *Comments) Abandon(ctx context.Context, commentID string) *task.Task[bool] {
	const op = "actions/Abandon"

	ctx, _ = log.With(ctx, "op", op, "comment_id", commentID)
	tok := c.store.TokenFor(commentID)
	c.started(ctx, state.OpAbandon, tok, nil)

	return task.Go(ctx, func(ctx context.Context) (bool, error) {
		abandoned, err := c.api.CommentAbandon(ctx, commentID)
		if err != nil {
			c.failed(ctx, state.OpAbandon, tok, state.ReasonTransport, err)
			c.toastError(ToastDeleteFailed)
			return false, fmt.Errorf("%s: %w", op, err)
		}

		if !abandoned {
			c.failed(ctx, state.OpAbandon, tok, state.ReasonSoft, ErrChannelNotReady)
			c.toastError(ToastChannelSetup)
			return false, fmt.Errorf("%s: %w", op, ErrChannelNotReady)
		}

		c.completed(ctx, state.OpAbandon, tok, nil)
		return true, nil
	})
}

// CreateChannel создаёт канал. Если активный канал ещё не выбран,
// новый канал становится активным.
func (c *Comments) CreateChannel(ctx context.Context, name string) *task.Task[*models.Claim] {
	const op = "actions/CreateChannel"

	name = normalizeChannelName(name)
	ctx, _ = log.With(ctx, "op", op, "name", name)
	c.started(ctx, state.OpChannelCreate, state.Token{ID: name}, nil)

	if name == "" {
		c.failed(ctx, state.OpChannelCreate, state.Token{}, state.ReasonPrecondition, ErrInvalidArgument)
		c.toastError(ToastChannelFailed)
		return task.Rejected[*models.Claim](fmt.Errorf("%s: %w", op, ErrInvalidArgument))
	}

	return task.Go(ctx, func(ctx context.Context) (*models.Claim, error) {
		ch, err := c.api.ChannelCreate(ctx, name)
		if err == nil && ch == nil {
			err = errors.New("empty response")
		}
		if err != nil {
			c.failed(ctx, state.OpChannelCreate, state.Token{ID: name}, state.ReasonTransport, err)
			c.toastError(ToastChannelFailed)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		c.completed(ctx, state.OpChannelCreate, state.Token{ID: name}, state.ChannelCreateDone{Channel: *ch})

		if active, err := c.ActiveChannel(ctx); err == nil && active == "" {
			if err := c.SetActiveChannel(ctx, ch.Name); err != nil {
				log.From(ctx).Warn("set_active_channel_failed", "err", err)
			}
		}

		return ch, nil
	})
}
