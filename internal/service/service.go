// service содержит бизнес-логику comments-сервиса.
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrParentNotFound — родитель не найден в том же claim'е.
	ErrParentNotFound = errors.New("parent not found")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated — запрос без учётной записи.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied — канал или контент принадлежит другой учётной записи.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrChannelNotReady — канал создан недавно и ещё не может подписывать изменения.
	ErrChannelNotReady = errors.New("channel not ready")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика comments-service.
type Service struct {
	storage storage.Storage
	cfg     config.Config
	now     func() time.Time
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}
