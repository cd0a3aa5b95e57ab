package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"
	"github.com/pribylovaa/odysee-comments/pkg/log"
	"github.com/pribylovaa/odysee-comments/pkg/redact"
)

// claimIDLen — длина claim_id в hex.
const claimIDLen = 40

// ChannelRef — ссылка на канал по id или по имени (@name).
type ChannelRef struct {
	ID   string
	Name string
}

func (r ChannelRef) isEmpty() bool { return r.ID == "" && r.Name == "" }

// normalizeChannelName приводит имя к виду @name.
func normalizeChannelName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "@") {
		return name
	}

	return "@" + name
}

func validChannelName(name string) bool {
	if len(name) < 2 || !strings.HasPrefix(name, "@") {
		return false
	}

	return !strings.ContainsAny(name[1:], "@#:/ \t\n")
}

// newClaimID — случайный 40-символьный hex, как у claim_id в LBRY.
func newClaimID() string {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	return hex.EncodeToString(sum[:])[:claimIDLen]
}

// ownedChannel находит канал по ссылке и проверяет, что он принадлежит account.
//
// Поведение/ошибки:
//   - ErrUnauthenticated — пустой account;
//   - ErrInvalidArgument — пустая ссылка, claim не канал, id и имя не совпадают;
//   - ErrNotFound — канала нет;
//   - ErrPermissionDenied — канал чужой.
func (s *Service) ownedChannel(ctx context.Context, lg *slog.Logger, account string, ref ChannelRef) (*models.Claim, error) {
	if account == "" {
		lg.Warn("unauthenticated")
		return nil, ErrUnauthenticated
	}

	ref.ID = strings.TrimSpace(ref.ID)
	ref.Name = normalizeChannelName(ref.Name)
	if ref.isEmpty() {
		lg.Warn("invalid argument: empty channel")
		return nil, ErrInvalidArgument
	}

	var (
		ch  *models.Claim
		err error
	)
	if ref.ID != "" {
		ch, err = s.storage.ClaimByID(ctx, ref.ID)
	} else {
		ch, err = s.storage.ClaimByName(ctx, ref.Name)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("channel not found", "channel_id", ref.ID, "channel_name", ref.Name)
			return nil, ErrNotFound
		}

		lg.Error("storage error on channel lookup", "err", err)
		return nil, ErrInternal
	}

	if !ch.IsChannel() || (ref.Name != "" && ch.Name != ref.Name) {
		lg.Warn("invalid argument: channel mismatch", "channel_id", ch.ClaimID, "channel_name", ch.Name)
		return nil, ErrInvalidArgument
	}

	if ch.Account != account {
		lg.Warn("permission denied: foreign channel", "channel_id", ch.ClaimID, "account", redact.Account(account))
		return nil, ErrPermissionDenied
	}

	return ch, nil
}

// canSign сообщает, прошёл ли канал период прогрева.
func (s *Service) canSign(ch *models.Claim) bool {
	return s.now().Sub(ch.CreatedAt) >= s.cfg.Channels.Warmup
}

// Channels — каналы учётной записи, старые первыми.
//
// Поведение/ошибки:
//   - ErrUnauthenticated — пустой account;
//   - ErrInternal — ошибки стораджа.
func (s *Service) Channels(ctx context.Context, account string) ([]models.Claim, error) {
	const op = "service/channels/Channels"

	lg := log.From(ctx).With("op", op)

	if account == "" {
		lg.Warn("unauthenticated")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	out, err := s.storage.ChannelsByAccount(ctx, account)
	if err != nil {
		lg.Error("storage error on ChannelsByAccount", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return out, nil
}

// CreateChannel регистрирует канал за учётной записью.
// Имя нормализуется к @name; title попадает в метаданные.
//
// Поведение/ошибки:
//   - ErrUnauthenticated — пустой account;
//   - ErrInvalidArgument — недопустимое имя;
//   - ErrConflict — имя уже занято;
//   - ErrInternal — ошибки стораджа.
func (s *Service) CreateChannel(ctx context.Context, account, name, title string) (*models.Claim, error) {
	const op = "service/channels/CreateChannel"

	name = normalizeChannelName(name)
	lg := log.From(ctx).With("op", op, "channel_name", name)

	if account == "" {
		lg.Warn("unauthenticated")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if !validChannelName(name) {
		lg.Warn("invalid argument: channel name")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id := newClaimID()
	ch, err := s.storage.CreateClaim(ctx, models.Claim{
		ClaimID:      id,
		Name:         name,
		ValueType:    models.ValueTypeChannel,
		PermanentURL: models.PermanentURL(name, id),
		Meta:         models.ClaimMeta{Title: strings.TrimSpace(title)},
		Account:      account,
		CreatedAt:    s.now(),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("channel name taken")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on CreateClaim", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("channel_created", "channel_id", ch.ClaimID, "account", redact.Account(account))
	return ch, nil
}

// Resolve разрешает lbry-URI в claim'ы. Невалидные и ненайденные URI
// в ответ не попадают; ключ ответа — исходная строка.
//
// URI с claim_id ищется по id (имя должно совпасть), без — самый ранний
// claim с таким именем.
func (s *Service) Resolve(ctx context.Context, urls []string) (map[string]models.Claim, error) {
	const op = "service/channels/Resolve"

	lg := log.From(ctx).With("op", op, "count", len(urls))

	out := make(map[string]models.Claim, len(urls))
	for _, raw := range urls {
		uri, err := models.ParseURI(raw)
		if err != nil {
			lg.Debug("skip invalid uri", "uri", raw)
			continue
		}

		var claim *models.Claim
		if uri.ClaimID != "" {
			claim, err = s.storage.ClaimByID(ctx, uri.ClaimID)
		} else {
			claim, err = s.storage.ClaimByName(ctx, uri.Name)
		}
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}

			lg.Error("storage error on claim lookup", "uri", raw, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if claim.Name != uri.Name {
			continue
		}

		out[raw] = *claim
	}

	return out, nil
}
