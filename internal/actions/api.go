package actions

import (
	"context"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

// CommentAPI — удалённый сервис комментариев глазами клиента.
type CommentAPI interface {
	CommentList(ctx context.Context, in ListParams) (*ListPage, error)
	ReactList(ctx context.Context, in ReactListParams) (*models.Reactions, error)
	React(ctx context.Context, in ReactParams) error
	CommentCreate(ctx context.Context, in CreateParams) (*models.Comment, error)
	// CommentUpdate возвращает (nil, nil), если канал ещё не может подписывать.
	CommentUpdate(ctx context.Context, commentID, body string) (*models.Comment, error)
	CommentHide(ctx context.Context, commentIDs []string) (map[string]bool, error)
	CommentAbandon(ctx context.Context, commentID string) (bool, error)
	// Resolve возвращает claim'ы по исходным uri; неразрешённые uri отсутствуют.
	Resolve(ctx context.Context, uris []string) (map[string]models.Claim, error)
	ChannelList(ctx context.Context) ([]models.Claim, error)
	ChannelCreate(ctx context.Context, name string) (*models.Claim, error)
}

// Toaster показывает уведомления пользователю.
type Toaster interface {
	Toast(t models.Toast)
}

// ToasterFunc — адаптер функции к Toaster.
type ToasterFunc func(models.Toast)

func (f ToasterFunc) Toast(t models.Toast) { f(t) }

// ListParams — параметры comment_list.
type ListParams struct {
	ClaimID        string
	Page           int32
	PageSize       int32
	IncludeReplies bool
	SkipValidation bool
}

// ListPage — страница comment_list.
type ListPage struct {
	Items      []models.Comment
	Page       int32
	PageSize   int32
	TotalItems int32
}

// ReactListParams — параметры comment_react_list.
type ReactListParams struct {
	CommentIDs  []string
	ChannelName string
	ChannelID   string
}

// ReactParams — параметры comment_react.
type ReactParams struct {
	CommentID   string
	ChannelName string
	ChannelID   string
	Kind        models.ReactionKind
	ClearTypes  []models.ReactionKind
	Remove      bool
}

// CreateParams — параметры comment_create.
type CreateParams struct {
	Body      string
	ClaimID   string
	ChannelID string
	ParentID  string
}
