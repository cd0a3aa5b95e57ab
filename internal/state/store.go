// Package state — общее нормализованное дерево состояния комментариев.
// Меняется только через Dispatch; представление читает его селекторами
// и подписывается на изменения.
package state

import (
	"slices"
	"strings"
	"sync"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

// Store — дерево состояния. Безопасен для конкурентного использования.
type Store struct {
	mu sync.RWMutex

	comments     map[string]models.Comment // comment_id -> комментарий
	byClaim      map[string][]string       // claim_id -> comment_id в порядке выдачи
	claimByURI   map[string]string         // uri -> claim_id
	totalByClaim map[string]int

	my     map[string]models.ReactionCounts
	others map[string]models.ReactionCounts

	claims    map[string]models.Claim // uri -> claim
	resolving map[string]int
	resolved  map[string]struct{}

	channels []models.Claim

	gens     map[string]uint64
	seq      uint64
	gone     map[string]uint64 // comment_id -> seq удаления/скрытия
	rollback map[uint64]models.Comment

	inFlight map[Op]int
	lastErr  map[Op]error

	subs   map[int]func(Action)
	nextID int
}

// New создаёт пустое дерево.
func New() *Store {
	return &Store{
		comments:     make(map[string]models.Comment),
		byClaim:      make(map[string][]string),
		claimByURI:   make(map[string]string),
		totalByClaim: make(map[string]int),
		my:           make(map[string]models.ReactionCounts),
		others:       make(map[string]models.ReactionCounts),
		claims:       make(map[string]models.Claim),
		resolving:    make(map[string]int),
		resolved:     make(map[string]struct{}),
		gens:         make(map[string]uint64),
		gone:         make(map[string]uint64),
		rollback:     make(map[uint64]models.Comment),
		inFlight:     make(map[Op]int),
		lastErr:      make(map[Op]error),
		subs:         make(map[int]func(Action)),
	}
}

// TokenFor фиксирует текущее поколение сущности id. Seq токена упорядочивает
// его относительно удалений: ответы List/ReactionList, запрошенные до удаления
// комментария, его не возвращают.
func (s *Store) TokenFor(id string) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return Token{ID: id, Gen: s.gens[id], Seq: s.seq}
}

// Alive сообщает, что сущность не менялась с момента выдачи токена.
func (s *Store) Alive(tok Token) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.gens[tok.ID] == tok.Gen
}

// Subscribe регистрирует слушателя; он вызывается после каждого применённого
// действия вне блокировки. Возвращает функцию отписки.
func (s *Store) Subscribe(fn func(Action)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Dispatch применяет действие. Ошибка возвращается только для неизвестных
// действий и неподходящего payload; поздние ответы по удалённым сущностям
// ошибкой не считаются.
func (s *Store) Dispatch(a Action) error {
	if err := a.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.reduce(a)
	subs := make([]func(Action), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(a)
	}

	return nil
}

func (s *Store) reduce(a Action) {
	switch a.Phase {
	case Started:
		s.inFlight[a.Op]++
	case Completed:
		s.done(a.Op)
		delete(s.lastErr, a.Op)
	case Failed:
		s.done(a.Op)
		s.lastErr[a.Op] = a.Err
	}

	switch a.Op {
	case OpCommentList:
		s.reduceList(a)
	case OpReactionList:
		if a.Phase == Completed {
			p := a.Payload.(ReactionListDone)
			for id, c := range p.Reactions.My {
				if !s.goneSince(id, a.Token) {
					s.my[id] = c
				}
			}
			for id, c := range p.Reactions.Others {
				if !s.goneSince(id, a.Token) {
					s.others[id] = c
				}
			}
		}
	case OpReact:
		// Счётчики обновляет только последующий ReactionList.
	case OpCreate:
		s.reduceCreate(a)
	case OpUpdate:
		s.reduceUpdate(a)
	case OpHide:
		if a.Phase == Completed && a.Payload.(HideDone).Hidden && s.gens[a.Token.ID] == a.Token.Gen {
			if c, ok := s.comments[a.Token.ID]; ok {
				c.Hidden = true
				s.comments[a.Token.ID] = c
				s.unlist(c)
			}
			s.bury(a.Token.ID)
		}
	case OpAbandon:
		if a.Phase == Completed && s.gens[a.Token.ID] == a.Token.Gen {
			s.remove(a.Token.ID)
			s.bury(a.Token.ID)
		}
	case OpResolve:
		s.reduceResolve(a)
	case OpChannelList:
		if a.Phase == Completed {
			s.channels = slices.Clone(a.Payload.(ChannelListDone).Channels)
		}
	case OpChannelCreate:
		if a.Phase == Completed {
			ch := a.Payload.(ChannelCreateDone).Channel
			s.channels = slices.DeleteFunc(s.channels, func(c models.Claim) bool { return c.ClaimID == ch.ClaimID })
			s.channels = append(s.channels, ch)
		}
	}
}

func (s *Store) done(op Op) {
	if s.inFlight[op] > 0 {
		s.inFlight[op]--
	}
}

func (s *Store) reduceList(a Action) {
	if a.Phase != Completed {
		return
	}

	p := a.Payload.(CommentListDone)
	uri := a.Token.ID
	s.claimByURI[uri] = p.ClaimID

	// Черновики, ещё не подтверждённые сервисом, остаются в начале списка.
	var ids []string
	for _, id := range s.byClaim[p.ClaimID] {
		if _, ok := s.comments[id]; ok && IsPlaceholder(id) {
			ids = append(ids, id)
		}
	}

	for _, c := range p.Comments {
		if s.goneSince(c.ID, a.Token) {
			continue
		}
		if old, ok := s.comments[c.ID]; ok && old.Pending {
			// Правка в полёте: не затираем оптимистичный текст.
			c = old
		}
		s.comments[c.ID] = c
		ids = append(ids, c.ID)
	}

	s.byClaim[p.ClaimID] = ids
	s.totalByClaim[p.ClaimID] = p.TotalItems
}

// PlaceholderPrefix — префикс временных id черновиков создания.
const PlaceholderPrefix = "pending:"

// IsPlaceholder сообщает, что id выдан клиентом для черновика создания.
func IsPlaceholder(id string) bool { return strings.HasPrefix(id, PlaceholderPrefix) }

func (s *Store) reduceCreate(a Action) {
	tmp := a.Token.ID

	switch a.Phase {
	case Started:
		p := a.Payload.(CreateStarted)
		c := p.Placeholder
		c.ID = tmp
		c.Pending = true
		s.comments[tmp] = c
		if p.URI != "" && c.ClaimID != "" {
			s.claimByURI[p.URI] = c.ClaimID
		}
		s.byClaim[c.ClaimID] = append([]string{tmp}, s.byClaim[c.ClaimID]...)

	case Completed:
		p := a.Payload.(CreateDone)
		c := p.Comment
		c.Pending = false
		if p.URI != "" && c.ClaimID != "" {
			s.claimByURI[p.URI] = c.ClaimID
		}

		ids := slices.Clone(s.byClaim[c.ClaimID])
		listed := slices.Contains(ids, c.ID)
		switch i := slices.Index(ids, tmp); {
		case listed:
			ids = slices.DeleteFunc(ids, func(id string) bool { return id == tmp })
		case i >= 0:
			ids[i] = c.ID
		default:
			ids = append([]string{c.ID}, ids...)
		}
		s.byClaim[c.ClaimID] = ids
		delete(s.comments, tmp)
		s.comments[c.ID] = c
		// Обновление выдачи уже учло комментарий в TotalItems.
		if !listed {
			s.totalByClaim[c.ClaimID]++
		}

	case Failed:
		if c, ok := s.comments[tmp]; ok {
			s.unlist(c)
			delete(s.comments, tmp)
		}
	}
}

func (s *Store) reduceUpdate(a Action) {
	id := a.Token.ID
	alive := s.gens[id] == a.Token.Gen
	orig, hasOrig := s.rollback[a.Token.Seq]

	switch a.Phase {
	case Started:
		c, ok := s.comments[id]
		if !ok || !alive {
			return
		}
		s.rollback[a.Token.Seq] = c
		c.Body = a.Payload.(UpdateStarted).Body
		c.Pending = true
		s.comments[id] = c

	case Completed:
		delete(s.rollback, a.Token.Seq)
		cur, ok := s.comments[id]
		if !ok || !alive {
			return
		}
		c := a.Payload.(UpdateDone).Comment
		if c.ClaimID == "" {
			c.ClaimID = cur.ClaimID
		}
		c.ID = id
		c.Pending = false
		s.comments[id] = c

	case Failed:
		delete(s.rollback, a.Token.Seq)
		if _, ok := s.comments[id]; !ok || !alive || !hasOrig {
			return
		}
		s.comments[id] = orig
	}
}

func (s *Store) reduceResolve(a Action) {
	uri := a.Token.ID

	switch a.Phase {
	case Started:
		s.resolving[uri]++
		return
	case Completed:
		s.claims[uri] = a.Payload.(ResolveDone).Claim
	}

	if s.resolving[uri] > 1 {
		s.resolving[uri]--
	} else {
		delete(s.resolving, uri)
	}
	s.resolved[uri] = struct{}{}
}

// unlist убирает комментарий из выдачи claim'а (сам комментарий остаётся).
func (s *Store) unlist(c models.Comment) {
	ids := s.byClaim[c.ClaimID]
	s.byClaim[c.ClaimID] = slices.DeleteFunc(slices.Clone(ids), func(id string) bool { return id == c.ID })
}

// bury инвалидирует токены комментария и запоминает момент его удаления.
func (s *Store) bury(id string) {
	s.gens[id]++
	s.seq++
	s.gone[id] = s.seq
}

// goneSince сообщает, что комментарий удалён или скрыт после выдачи tok.
func (s *Store) goneSince(id string, tok Token) bool {
	at, ok := s.gone[id]
	return ok && at > tok.Seq
}

func (s *Store) remove(id string) {
	c, ok := s.comments[id]
	if !ok {
		return
	}

	s.unlist(c)
	delete(s.comments, id)
	delete(s.my, id)
	delete(s.others, id)
	if s.totalByClaim[c.ClaimID] > 0 {
		s.totalByClaim[c.ClaimID]--
	}
}
