package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidURI — строка не похожа на lbry-URI.
var ErrInvalidURI = errors.New("invalid lbry uri")

// ValueType — тип claim'а.
type ValueType string

const (
	ValueTypeStream  ValueType = "stream"
	ValueTypeChannel ValueType = "channel"
)

// ClaimMeta — метаданные claim'а. Пустые метаданные означают, что они ещё не получены.
type ClaimMeta struct {
	Title        string
	ThumbnailURL string
	Description  string
}

// IsEmpty сообщает, что метаданные не заполнены.
func (m ClaimMeta) IsEmpty() bool {
	return m == ClaimMeta{}
}

// Claim — запись контента или канала.
// Account заполняется только сервисом (владелец канала) и наружу не уходит.
type Claim struct {
	ClaimID      string
	Name         string
	ValueType    ValueType
	PermanentURL string
	Meta         ClaimMeta
	Account      string
	CreatedAt    time.Time
}

// IsChannel сообщает, что claim — канал.
func (c Claim) IsChannel() bool { return c.ValueType == ValueTypeChannel }

// URI — разобранный lbry://name#claim_id.
type URI struct {
	Name    string
	ClaimID string
}

// IsChannel сообщает, что имя — канал (@name).
func (u URI) IsChannel() bool { return strings.HasPrefix(u.Name, "@") }

func (u URI) String() string {
	if u.ClaimID == "" {
		return "lbry://" + u.Name
	}

	return "lbry://" + u.Name + "#" + u.ClaimID
}

// ParseURI разбирает lbry://name[#claim_id] (схема необязательна; ':' тоже
// принимается как разделитель id). Вложенные пути (@channel/stream) не поддерживаются.
func ParseURI(raw string) (URI, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "lbry://")
	if s == "" || strings.Contains(s, "/") {
		return URI{}, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}

	name, id := s, ""
	if i := strings.IndexAny(s, "#:"); i >= 0 {
		name, id = s[:i], s[i+1:]
	}

	if name == "" || name == "@" {
		return URI{}, fmt.Errorf("%w: %q", ErrInvalidURI, raw)
	}

	return URI{Name: name, ClaimID: id}, nil
}

// PermanentURL собирает канонический URI claim'а.
func PermanentURL(name, claimID string) string {
	return URI{Name: name, ClaimID: claimID}.String()
}
