package state

import (
	"slices"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

// Comment возвращает комментарий по id.
func (s *Store) Comment(id string) (models.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[id]
	return c, ok
}

// ClaimIDForURI возвращает claim_id, под которым сохранены комментарии uri.
func (s *Store) ClaimIDForURI(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id, ok := s.claimByURI[uri]; ok {
		return id, true
	}
	if c, ok := s.claims[uri]; ok && c.ClaimID != "" {
		return c.ClaimID, true
	}

	return "", false
}

// CommentIDsForURI — все комментарии под uri (включая ответы) в порядке выдачи.
func (s *Store) CommentIDsForURI(uri string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.byClaim[s.claimByURI[uri]])
}

// TotalForURI — total_items последней выдачи с учётом локальных изменений.
func (s *Store) TotalForURI(uri string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalByClaim[s.claimByURI[uri]]
}

// TopLevel — корневые комментарии под uri.
func (s *Store) TopLevel(uri string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Comment
	for _, id := range s.byClaim[s.claimByURI[uri]] {
		if c, ok := s.comments[id]; ok && c.IsTopLevel() {
			out = append(out, c)
		}
	}

	return out
}

// Replies — прямые ответы на parentID.
func (s *Store) Replies(parentID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parent, ok := s.comments[parentID]
	if !ok {
		return nil
	}

	var out []models.Comment
	for _, id := range s.byClaim[parent.ClaimID] {
		if c, ok := s.comments[id]; ok && c.ParentID == parentID {
			out = append(out, c)
		}
	}

	return out
}

// MyReactions — виды реакций текущего канала на комментарий.
func (s *Store) MyReactions(id string) []models.ReactionKind {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.my[id].Kinds()
}

// OthersReactions — счётчики чужих реакций на комментарий.
func (s *Store) OthersReactions(id string) models.ReactionCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneCounts(s.others[id])
}

// ReactionTotals — сумма своих и чужих реакций.
func (s *Store) ReactionTotals(id string) models.ReactionCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.ReactionCounts, len(models.ReactionKinds))
	for _, k := range models.ReactionKinds {
		out[k] = s.my[id][k] + s.others[id][k]
	}

	return out
}

// MyChannels — каналы текущего пользователя.
func (s *Store) MyChannels() []models.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.channels)
}

// Claim — разрешённый claim по uri.
func (s *Store) Claim(uri string) (models.Claim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.claims[uri]
	return c, ok
}

// IsResolving сообщает, что разрешение uri в полёте.
func (s *Store) IsResolving(uri string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolving[uri] > 0
}

// IsResolved сообщает, что разрешение uri уже завершалось (успешно или нет).
func (s *Store) IsResolved(uri string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.resolved[uri]
	return ok
}

// InFlight — число незавершённых операций op.
func (s *Store) InFlight(op Op) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inFlight[op]
}

// LastError — ошибка последнего FAILED по op; сбрасывается следующим COMPLETED.
func (s *Store) LastError(op Op) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr[op]
}

func cloneCounts(c models.ReactionCounts) models.ReactionCounts {
	if c == nil {
		return nil
	}

	out := make(models.ReactionCounts, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}
