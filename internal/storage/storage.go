package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (имя канала, id комментария).
	ErrConflict = errors.New("conflict")
	// ErrParentNotFound — указан parent_id, но родителя нет под тем же claim'ом.
	ErrParentNotFound = errors.New("parent not found")
)

// CommentStorage описывает операции над комментариями.
type CommentStorage interface {
	// CreateComment сохраняет комментарий с уже вычисленным ID.
	// Для ответа проверяет родителя и увеличивает у него счётчик ответов.
	// Возможные ошибки: ErrParentNotFound, ErrConflict.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	// CommentByID возвращает комментарий. Если записи нет — ErrNotFound.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)

	// ListComments возвращает страницу видимых комментариев claim'а.
	// Сортировка: сначала новые. Без IncludeReplies — только корневые.
	ListComments(ctx context.Context, claimID string, p models.ListParams) (*models.CommentPage, error)

	// UpdateComment меняет текст. Если записи нет — ErrNotFound.
	UpdateComment(ctx context.Context, id, body string) (*models.Comment, error)

	// DeleteComment удаляет комментарий вместе с его реакциями.
	// Если записи нет — ErrNotFound.
	DeleteComment(ctx context.Context, id string) error

	// HideComments скрывает комментарии; в ответе — итог по каждому id
	// (false для отсутствующих).
	HideComments(ctx context.Context, ids []string) (map[string]bool, error)
}

// ReactionStorage описывает операции над реакциями.
type ReactionStorage interface {
	// SetReaction ставит реакцию (повторная постановка идемпотентна).
	SetReaction(ctx context.Context, r models.Reaction) error

	// RemoveReactions снимает реакции канала указанных видов.
	RemoveReactions(ctx context.Context, commentID, channelID string, kinds []models.ReactionKind) error

	// CountReactions считает реакции по комментариям: свои (channelID) и чужие.
	// Пустой channelID — все реакции считаются чужими.
	CountReactions(ctx context.Context, commentIDs []string, channelID string) (*models.Reactions, error)
}

// ClaimStorage описывает операции над claim'ами (контент и каналы).
type ClaimStorage interface {
	// CreateClaim сохраняет claim. Имя канала уникально: ErrConflict.
	CreateClaim(ctx context.Context, claim models.Claim) (*models.Claim, error)

	// ClaimByID возвращает claim. Если записи нет — ErrNotFound.
	ClaimByID(ctx context.Context, id string) (*models.Claim, error)

	// ClaimByName возвращает самый ранний claim с таким именем.
	// Если записи нет — ErrNotFound.
	ClaimByName(ctx context.Context, name string) (*models.Claim, error)

	// ChannelsByAccount возвращает каналы учётной записи в порядке создания.
	ChannelsByAccount(ctx context.Context, account string) ([]models.Claim, error)
}

// Storage — всё хранилище сервиса комментариев.
type Storage interface {
	CommentStorage
	ReactionStorage
	ClaimStorage

	// Ping проверяет доступность хранилища (readiness).
	Ping(ctx context.Context) error

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
