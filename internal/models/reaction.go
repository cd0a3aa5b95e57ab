package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownReaction — вид реакции вне закрытого набора.
var ErrUnknownReaction = errors.New("unknown reaction kind")

// ReactionKind — закрытый набор видов реакций.
type ReactionKind string

const (
	Like    ReactionKind = "like"
	Dislike ReactionKind = "dislike"
)

// ReactionKinds — все допустимые виды в порядке отображения.
var ReactionKinds = []ReactionKind{Like, Dislike}

// ParseReactionKind проверяет значение на границе (wire/ввод пользователя).
func ParseReactionKind(s string) (ReactionKind, error) {
	switch ReactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case Like:
		return Like, nil
	case Dislike:
		return Dislike, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReaction, s)
	}
}

// Exclusive возвращает вид, который снимается при установке k.
// like и dislike взаимоисключающие.
func (k ReactionKind) Exclusive() (ReactionKind, bool) {
	switch k {
	case Like:
		return Dislike, true
	case Dislike:
		return Like, true
	default:
		return "", false
	}
}

func (k ReactionKind) String() string { return string(k) }

// Reaction — реакция канала на комментарий (хранится сервисом).
type Reaction struct {
	CommentID string
	ChannelID string
	Kind      ReactionKind
}

// ReactionCounts — счётчики по видам реакций для одного комментария.
type ReactionCounts map[ReactionKind]int

// Kinds возвращает виды с ненулевым счётчиком в порядке ReactionKinds.
func (c ReactionCounts) Kinds() []ReactionKind {
	var out []ReactionKind
	for _, k := range ReactionKinds {
		if c[k] > 0 {
			out = append(out, k)
		}
	}

	return out
}

// Has сообщает, применён ли вид k.
func (c ReactionCounts) Has(k ReactionKind) bool { return c[k] > 0 }

// Reactions — срез реакций: свои (текущего канала) и чужие, по comment_id.
type Reactions struct {
	My     map[string]ReactionCounts
	Others map[string]ReactionCounts
}
