// Package models содержит доменные сущности: комментарии, реакции, claim'ы.
// Один набор типов используется и клиентом, и сервисом комментариев.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// Comment — доменная модель комментария.
//   - ID — content-addressed digest (см. CommentDigest), выдаётся сервисом;
//   - ParentID пуст у корневых комментариев;
//   - ChannelID/ChannelName пусты у анонимных комментариев;
//   - Pending — оптимистичная запись клиента, ещё не подтверждённая сервисом;
//   - Hidden — скрыт владельцем claim'а.
type Comment struct {
	ID          string
	ParentID    string
	ClaimID     string
	ChannelID   string
	ChannelName string
	ChannelURL  string
	Body        string
	CreatedAt   time.Time
	Replies     int32
	Pending     bool
	Hidden      bool
}

// IsTopLevel сообщает, что у комментария нет родителя.
func (c Comment) IsTopLevel() bool { return c.ParentID == "" }

// IsAnonymous сообщает, что комментарий не подписан каналом.
func (c Comment) IsAnonymous() bool { return c.ChannelID == "" }

// CommentDigest считает идентификатор комментария: sha256 от claim'а, канала,
// текста и времени создания (наносекунды), в hex.
func CommentDigest(claimID, channelID, body string, createdAt time.Time) string {
	h := sha256.New()
	h.Write([]byte(claimID))
	h.Write([]byte{0})
	h.Write([]byte(channelID))
	h.Write([]byte{0})
	h.Write([]byte(body))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(createdAt.UnixNano(), 10)))

	return hex.EncodeToString(h.Sum(nil))
}

// Toast — уведомление для пользователя.
type Toast struct {
	Message string
	IsError bool
}

// ListParams — параметры постраничной выдачи comment_list (страницы с 1).
type ListParams struct {
	Page           int32
	PageSize       int32
	IncludeReplies bool
}

// CommentPage — страница комментариев claim'а.
type CommentPage struct {
	Items      []Comment
	Page       int32
	PageSize   int32
	TotalItems int32
}

// TotalPages — число страниц при текущем размере страницы.
func (p CommentPage) TotalPages() int32 {
	if p.PageSize <= 0 {
		return 0
	}

	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}
