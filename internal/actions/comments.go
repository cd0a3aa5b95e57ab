// Package actions — слой действий над комментариями: вызывает удалённый
// сервис и переводит результаты в действия над state.Store.
//
// Каждая операция сразу возвращает *task.Task и шлёт STARTED, затем ровно
// одно из COMPLETED / FAILED. Чтения не показывают уведомлений, записи
// показывают их при любом отказе. Повторов нет.
package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/prefs"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/pkg/log"
)

var (
	// ErrNoActiveChannel — не выбран канал для подписи.
	ErrNoActiveChannel = errors.New("No active channel found")
	// ErrAnonymousChannel — канал не найден среди своих.
	ErrAnonymousChannel = errors.New("channel cannot be anonymous")
	// ErrChannelNotReady — сервис ответил, но канал ещё не может подписывать.
	ErrChannelNotReady = errors.New("channel is still being set up")
	// ErrClaimNotFound — uri не разрешился в claim.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrInvalidArgument — пустые обязательные параметры.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Тексты уведомлений.
const (
	ToastAnonymous     = "Channel cannot be anonymous, please select a channel and try again."
	ToastCreateFailed  = "Unable to create comment, please try again later."
	ToastHideFailed    = "Unable to hide this comment, please try again later."
	ToastChannelSetup  = "Your channel is still being setup, try again in a few moments."
	ToastDeleteFailed  = "Unable to delete this comment, please try again later."
	ToastEditFailed    = "Unable to edit this comment, please try again later."
	ToastChannelFailed = "Unable to create channel, please try again later."
	ToastReactFailed   = "Unable to react to this comment, please try again later."
)

// Значения по умолчанию для comment_list: первая страница, «все» комментарии.
const (
	DefaultPage     = 1
	DefaultPageSize = 99999
)

// Comments — слой действий.
type Comments struct {
	api    CommentAPI
	store  *state.Store
	prefs  prefs.Store
	toasts Toaster
	newID  func() string
}

// New создаёт слой действий.
func New(api CommentAPI, store *state.Store, p prefs.Store, toasts Toaster) *Comments {
	if toasts == nil {
		toasts = ToasterFunc(func(models.Toast) {})
	}

	return &Comments{
		api:    api,
		store:  store,
		prefs:  p,
		toasts: toasts,
		newID:  func() string { return uuid.NewString() },
	}
}

// Store — дерево состояния, в которое пишет слой.
func (c *Comments) Store() *state.Store { return c.store }

func (c *Comments) dispatch(ctx context.Context, a state.Action) {
	if err := c.store.Dispatch(a); err != nil {
		log.From(ctx).Error("dispatch_failed", "op", a.Op.String(), "phase", a.Phase.String(), "err", err)
	}
}

func (c *Comments) started(ctx context.Context, op state.Op, tok state.Token, payload any) {
	c.dispatch(ctx, state.Action{Op: op, Phase: state.Started, Token: tok, Payload: payload})
}

func (c *Comments) completed(ctx context.Context, op state.Op, tok state.Token, payload any) {
	c.dispatch(ctx, state.Action{Op: op, Phase: state.Completed, Token: tok, Payload: payload})
}

func (c *Comments) failed(ctx context.Context, op state.Op, tok state.Token, reason state.Reason, err error) {
	log.From(ctx).Warn("action_failed", "op", op.String(), "reason", reason.String(), "err", err)
	c.dispatch(ctx, state.Action{Op: op, Phase: state.Failed, Token: tok, Err: err, Reason: reason})
}

func (c *Comments) toastError(msg string) {
	c.toasts.Toast(models.Toast{Message: msg, IsError: true})
}

// ActiveChannel возвращает имя активного канала для подписи ("" если не выбран).
func (c *Comments) ActiveChannel(ctx context.Context) (string, error) {
	v, ok, err := c.prefs.Get(ctx, prefs.KeyActiveChannel)
	if err != nil || !ok {
		return "", err
	}

	return strings.TrimSpace(v), nil
}

// SetActiveChannel сохраняет активный канал; пустое имя сбрасывает выбор.
func (c *Comments) SetActiveChannel(ctx context.Context, name string) error {
	return c.prefs.Set(ctx, prefs.KeyActiveChannel, strings.TrimSpace(name))
}

// channelID ищет claim_id канала по имени среди своих каналов.
func (c *Comments) channelID(name string) (string, bool) {
	for _, ch := range c.store.MyChannels() {
		if ch.Name == name {
			return ch.ClaimID, true
		}
	}

	return "", false
}

// signer — активный канал и его claim_id (может быть пуст, если канал не среди своих).
func (c *Comments) signer(ctx context.Context) (name, id string, err error) {
	name, err = c.ActiveChannel(ctx)
	if err != nil {
		return "", "", err
	}
	if name == "" {
		return "", "", ErrNoActiveChannel
	}

	id, _ = c.channelID(name)
	return name, id, nil
}
