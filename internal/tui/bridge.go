package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pribylovaa/odysee-comments/internal/actions"
	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/internal/task"
)

// Сообщения программы.
type (
	// storeChangedMsg — состояние изменилось, список надо перестроить.
	storeChangedMsg struct{}

	// toastMsg — уведомление от слоя действий.
	toastMsg struct{ toast models.Toast }

	// actionDoneMsg — завершилась операция над комментарием id.
	actionDoneMsg struct {
		op  state.Op
		id  string
		err error
	}

	// loadedMsg — завершилась загрузка списка (вместе с реакциями).
	loadedMsg struct{ err error }

	// channelMsg — активный канал прочитан или изменён; created — имя
	// только что созданного канала.
	channelMsg struct {
		name    string
		created string
		err     error
	}
)

// Toasts — очередь уведомлений между слоем действий и программой.
// Реализует actions.Toaster; при переполнении уведомление теряется.
type Toasts chan models.Toast

// NewToasts создаёт очередь уведомлений.
func NewToasts() Toasts { return make(Toasts, 16) }

// Toast кладёт уведомление в очередь, не блокируясь.
func (t Toasts) Toast(m models.Toast) {
	select {
	case t <- m:
	default:
	}
}

func (t Toasts) next() tea.Cmd {
	return func() tea.Msg {
		return toastMsg{toast: <-t}
	}
}

// changes — сигнал «состояние изменилось», схлопывает серии изменений в одно.
type changes chan struct{}

func watch(s *state.Store) (changes, func()) {
	ch := make(changes, 1)
	cancel := s.Subscribe(func(state.Action) {
		select {
		case ch <- struct{}{}:
		default:
		}
	})

	return ch, cancel
}

func (c changes) next() tea.Cmd {
	return func() tea.Msg {
		<-c
		return storeChangedMsg{}
	}
}

// await ждёт задачу внутри tea.Cmd.
func await[T any](ctx context.Context, t *task.Task[T], wrap func(T, error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return wrap(t.Wait(ctx))
	}
}

// bridge реализует comment.Intents: намерения представлений превращаются в
// вызовы слоя действий, а их ожидание копится в cmds до конца Update.
type bridge struct {
	ctx  context.Context
	acts *actions.Comments

	cmds  []tea.Cmd
	nav   string
	toast *models.Toast
}

func (b *bridge) UpdateComment(commentID, body string) {
	t := b.acts.Update(b.ctx, commentID, body)
	b.cmds = append(b.cmds, await(b.ctx, t, func(_ *models.Comment, err error) tea.Msg {
		return actionDoneMsg{op: state.OpUpdate, id: commentID, err: err}
	}))
}

func (b *bridge) ResolveURI(uri string) {
	t := b.acts.Resolve(b.ctx, uri)
	b.cmds = append(b.cmds, await(b.ctx, t, func(_ models.Claim, err error) tea.Msg {
		return actionDoneMsg{op: state.OpResolve, id: uri, err: err}
	}))
}

func (b *bridge) Navigate(path string) { b.nav = path }

func (b *bridge) Toast(t models.Toast) { b.toast = &t }

// drain забирает накопленное.
func (b *bridge) drain() (cmds []tea.Cmd, nav string, toast *models.Toast) {
	cmds, nav, toast = b.cmds, b.nav, b.toast
	b.cmds, b.nav, b.toast = nil, "", nil

	return cmds, nav, toast
}

// isChannelNew сообщает, что путь ведёт на создание канала.
func isChannelNew(path string) bool {
	return strings.HasPrefix(path, "/$/channel/new")
}
