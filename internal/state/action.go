package state

import (
	"errors"
	"fmt"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

var (
	// ErrUnknownAction — операция или фаза вне закрытого набора.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidPayload — payload не соответствует операции и фазе.
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Op — операция слоя действий.
type Op int

const (
	OpCommentList Op = iota + 1
	OpReactionList
	OpReact
	OpCreate
	OpUpdate
	OpHide
	OpAbandon
	OpResolve
	OpChannelList
	OpChannelCreate
)

var opNames = map[Op]string{
	OpCommentList:   "comment_list",
	OpReactionList:  "reaction_list",
	OpReact:         "react",
	OpCreate:        "comment_create",
	OpUpdate:        "comment_update",
	OpHide:          "comment_hide",
	OpAbandon:       "comment_abandon",
	OpResolve:       "resolve",
	OpChannelList:   "channel_list",
	OpChannelCreate: "channel_create",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return fmt.Sprintf("op(%d)", int(o))
}

// Valid сообщает, что операция из закрытого набора.
func (o Op) Valid() bool {
	_, ok := opNames[o]
	return ok
}

// Phase — фаза уведомления: STARTED, затем ровно одна из COMPLETED / FAILED.
type Phase int

const (
	Started Phase = iota + 1
	Completed
	Failed
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal сообщает, что фаза завершающая.
func (p Phase) Terminal() bool { return p == Completed || p == Failed }

// Reason — класс отказа.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonPrecondition — отказ до сетевого вызова (нет канала, канал не найден).
	ReasonPrecondition
	// ReasonSoft — сервис ответил, но операция не выполнена (канал ещё не готов).
	ReasonSoft
	// ReasonTransport — ошибка вызова.
	ReasonTransport
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPrecondition:
		return "precondition"
	case ReasonSoft:
		return "soft"
	case ReasonTransport:
		return "transport"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Token — ключ сущности (comment_id, временный id, uri) и снимок её поколения.
// Для завершающих фаз Update/Hide/Abandon устаревший токен означает,
// что сущность уже удалена или скрыта, и данные не пишутся. List и
// ReactionList по Seq отбрасывают комментарии, удалённые после старта.
type Token struct {
	ID  string
	Gen uint64
	Seq uint64
}

// Action — уведомление об изменении состояния.
type Action struct {
	Op      Op
	Phase   Phase
	Token   Token
	Payload any
	Err     error
	Reason  Reason
}

// Payload'ы по операциям. Если payload для фазы не указан, он не нужен (nil).

// CommentListDone — COMPLETED для OpCommentList; Token.ID = uri.
type CommentListDone struct {
	ClaimID    string
	Comments   []models.Comment
	TotalItems int
}

// ReactionListDone — COMPLETED для OpReactionList.
type ReactionListDone struct {
	Reactions models.Reactions
}

// ReactStarted — STARTED для OpReact; Token.ID = comment_id.
type ReactStarted struct {
	Kind   models.ReactionKind
	Remove bool
}

// CreateStarted — STARTED для OpCreate; Token.ID = временный id черновика.
type CreateStarted struct {
	URI         string
	Placeholder models.Comment
}

// CreateDone — COMPLETED для OpCreate.
type CreateDone struct {
	URI     string
	Comment models.Comment
}

// UpdateStarted — STARTED для OpUpdate; Token.ID = comment_id.
type UpdateStarted struct {
	Body string
}

// UpdateDone — COMPLETED для OpUpdate.
type UpdateDone struct {
	Comment models.Comment
}

// HideDone — COMPLETED для OpHide.
type HideDone struct {
	Hidden bool
}

// ResolveDone — COMPLETED для OpResolve; Token.ID = uri.
type ResolveDone struct {
	Claim models.Claim
}

// ChannelListDone — COMPLETED для OpChannelList.
type ChannelListDone struct {
	Channels []models.Claim
}

// ChannelCreateDone — COMPLETED для OpChannelCreate.
type ChannelCreateDone struct {
	Channel models.Claim
}

// validate проверяет, что op/phase известны и payload подходит.
func (a Action) validate() error {
	if !a.Op.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Op)
	}

	switch a.Phase {
	case Started, Completed, Failed:
	default:
		return fmt.Errorf("%w: %s/%s", ErrUnknownAction, a.Op, a.Phase)
	}

	var ok bool
	switch {
	case a.Phase == Failed:
		ok = true
	case a.Phase == Started:
		switch a.Op {
		case OpReact:
			_, ok = a.Payload.(ReactStarted)
		case OpCreate:
			_, ok = a.Payload.(CreateStarted)
		case OpUpdate:
			_, ok = a.Payload.(UpdateStarted)
		default:
			ok = a.Payload == nil
		}
	default:
		switch a.Op {
		case OpCommentList:
			_, ok = a.Payload.(CommentListDone)
		case OpReactionList:
			_, ok = a.Payload.(ReactionListDone)
		case OpCreate:
			_, ok = a.Payload.(CreateDone)
		case OpUpdate:
			_, ok = a.Payload.(UpdateDone)
		case OpHide:
			_, ok = a.Payload.(HideDone)
		case OpResolve:
			_, ok = a.Payload.(ResolveDone)
		case OpChannelList:
			_, ok = a.Payload.(ChannelListDone)
		case OpChannelCreate:
			_, ok = a.Payload.(ChannelCreateDone)
		default:
			ok = a.Payload == nil
		}
	}

	if !ok {
		return fmt.Errorf("%w: %s/%s got %T", ErrInvalidPayload, a.Op, a.Phase, a.Payload)
	}

	return nil
}
