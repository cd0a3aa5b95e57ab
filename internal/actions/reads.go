package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/internal/task"
	"github.com/pribylovaa/odysee-comments/pkg/log"
)

// ReactTarget — чьи реакции запрашивать: все комментарии под uri или один комментарий.
type ReactTarget struct {
	uri       string
	commentID string
}

// ForURI — реакции на все комментарии под uri.
func ForURI(uri string) ReactTarget { return ReactTarget{uri: uri} }

// ForComment — реакции на один комментарий.
func ForComment(id string) ReactTarget { return ReactTarget{commentID: id} }

func (t ReactTarget) key() string {
	if t.uri != "" {
		return t.uri
	}

	return t.commentID
}

// List запрашивает комментарии под uri (вместе с ответами).
// page <= 0 и pageSize <= 0 заменяются на DefaultPage и DefaultPageSize.
func (c *Comments) List(ctx context.Context, uri string, page, pageSize int32) *task.Task[*ListPage] {
	const op = "actions/List"

	ctx, _ = log.With(ctx, "op", op, "uri", uri)
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	tok := c.store.TokenFor(uri)
	c.started(ctx, state.OpCommentList, tok, nil)

	return task.Go(ctx, func(ctx context.Context) (*ListPage, error) {
		claimID, err := c.claimID(ctx, uri)
		if err != nil {
			reason := state.ReasonTransport
			if errors.Is(err, ErrClaimNotFound) {
				reason = state.ReasonPrecondition
			}
			c.failed(ctx, state.OpCommentList, tok, reason, err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		res, err := c.api.CommentList(ctx, ListParams{
			ClaimID:        claimID,
			Page:           page,
			PageSize:       pageSize,
			IncludeReplies: true,
			SkipValidation: true,
		})
		if err != nil {
			c.failed(ctx, state.OpCommentList, tok, state.ReasonTransport, err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		c.completed(ctx, state.OpCommentList, tok, state.CommentListDone{
			ClaimID:    claimID,
			Comments:   res.Items,
			TotalItems: int(res.TotalItems),
		})

		return res, nil
	})
}

// claimID берёт claim_id uri из состояния, при необходимости разрешая uri.
func (c *Comments) claimID(ctx context.Context, uri string) (string, error) {
	if cl, ok := c.store.Claim(uri); ok && cl.ClaimID != "" {
		return cl.ClaimID, nil
	}

	cl, err := c.Resolve(ctx, uri).Wait(ctx)
	if err != nil {
		return "", err
	}

	return cl.ClaimID, nil
}

// Resolve разрешает uri в claim и сохраняет его в состоянии.
func (c *Comments) Resolve(ctx context.Context, uri string) *task.Task[models.Claim] {
	const op = "actions/Resolve"

	ctx, _ = log.With(ctx, "op", op, "uri", uri)
	tok := state.Token{ID: uri}
	c.started(ctx, state.OpResolve, tok, nil)

	return task.Go(ctx, func(ctx context.Context) (models.Claim, error) {
		res, err := c.api.Resolve(ctx, []string{uri})
		if err != nil {
			c.failed(ctx, state.OpResolve, tok, state.ReasonTransport, err)
			return models.Claim{}, fmt.Errorf("%s: %w", op, err)
		}

		cl, ok := res[uri]
		if !ok {
			c.failed(ctx, state.OpResolve, tok, state.ReasonPrecondition, ErrClaimNotFound)
			return models.Claim{}, fmt.Errorf("%s: %w", op, ErrClaimNotFound)
		}

		c.completed(ctx, state.OpResolve, tok, state.ResolveDone{Claim: cl})
		return cl, nil
	})
}

// ReactList запрашивает реакции (свои и чужие) для цели.
// Без активного канала завершается ErrNoActiveChannel без сетевого вызова.
func (c *Comments) ReactList(ctx context.Context, target ReactTarget) *task.Task[*models.Reactions] {
	const op = "actions/ReactList"

	ctx, _ = log.With(ctx, "op", op, "target", target.key())
	tok := c.store.TokenFor(target.key())
	c.started(ctx, state.OpReactionList, tok, nil)

	name, channelID, err := c.signer(ctx)
	if err != nil {
		c.failed(ctx, state.OpReactionList, tok, reasonFor(err), err)
		return task.Rejected[*models.Reactions](fmt.Errorf("%s: %w", op, err))
	}

	ids := []string{target.commentID}
	if target.uri != "" {
		ids = ids[:0]
		for _, id := range c.store.CommentIDsForURI(target.uri) {
			if !state.IsPlaceholder(id) {
				ids = append(ids, id)
			}
		}
	}

	return task.Go(ctx, func(ctx context.Context) (*models.Reactions, error) {
		res := &models.Reactions{}
		if len(ids) > 0 {
			r, err := c.api.ReactList(ctx, ReactListParams{
				CommentIDs:  ids,
				ChannelName: name,
				ChannelID:   channelID,
			})
			if err != nil {
				c.failed(ctx, state.OpReactionList, tok, state.ReasonTransport, err)
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if r != nil {
				res = r
			}
		}

		c.completed(ctx, state.OpReactionList, tok, state.ReactionListDone{Reactions: *res})
		return res, nil
	})
}

// FetchMyChannels загружает каналы текущего пользователя.
func (c *Comments) FetchMyChannels(ctx context.Context) *task.Task[[]models.Claim] {
	const op = "actions/FetchMyChannels"

	ctx, _ = log.With(ctx, "op", op)
	c.started(ctx, state.OpChannelList, state.Token{}, nil)

	return task.Go(ctx, func(ctx context.Context) ([]models.Claim, error) {
		chans, err := c.api.ChannelList(ctx)
		if err != nil {
			c.failed(ctx, state.OpChannelList, state.Token{}, state.ReasonTransport, err)
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		c.completed(ctx, state.OpChannelList, state.Token{}, state.ChannelListDone{Channels: chans})
		return chans, nil
	})
}

// reasonFor классифицирует локальный отказ до сетевого вызова.
func reasonFor(err error) state.Reason {
	switch {
	case errors.Is(err, ErrNoActiveChannel),
		errors.Is(err, ErrAnonymousChannel),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, models.ErrUnknownReaction):
		return state.ReasonPrecondition
	default:
		return state.ReasonTransport
	}
}

func normalizeChannelName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == "@" {
		return ""
	}
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}

	return name
}
