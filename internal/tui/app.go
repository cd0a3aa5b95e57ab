// Package tui — терминальный клиент комментариев на bubbletea.
//
// Модель держит по одному comment.View на каждый комментарий на экране и
// перестраивает список из state.Store при каждом изменении состояния.
// Операции слоя действий ждутся внутри tea.Cmd; результаты по комментариям,
// которых уже нет на экране, отбрасываются.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pribylovaa/odysee-comments/internal/actions"
	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/state"
	"github.com/pribylovaa/odysee-comments/internal/view/comment"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeReply
	modeCompose
	modeChannelNew
)

// row — строка списка: комментарий, его корневой предок и глубина.
type row struct {
	id    string
	root  string
	depth int
}

// Options — параметры экрана.
type Options struct {
	URI      string
	SiteName string
	// Toasts — очередь, которую слой действий получил как Toaster.
	Toasts Toasts
}

// Model — состояние программы bubbletea.
type Model struct {
	ctx      context.Context
	acts     *actions.Comments
	store    *state.Store
	keys     KeyMap
	uri      string
	siteName string

	bridge  *bridge
	toasts  Toasts
	changes changes
	stop    func()

	views  map[string]*comment.View
	rows   []row
	cursor int

	mode     mode
	anchor   string
	redirect string
	editor   textarea.Model
	input    textinput.Model

	active    string
	loading   bool
	status    string
	statusErr bool
	width     int
}

// New создаёт модель экрана комментариев к opts.URI.
func New(ctx context.Context, acts *actions.Comments, opts Options) Model {
	if opts.SiteName == "" {
		opts.SiteName = "Odysee"
	}

	ed := textarea.New()
	ed.Placeholder = "Write a comment..."
	ed.CharLimit = comment.MaxChars
	ed.ShowLineNumbers = false
	ed.SetWidth(72)
	ed.SetHeight(4)

	in := textinput.New()
	in.Prompt = "channel name: "
	in.Placeholder = "@name"
	in.CharLimit = 64

	store := acts.Store()
	ch, stop := watch(store)

	return Model{
		ctx:      ctx,
		acts:     acts,
		store:    store,
		keys:     defaultKeyMap(),
		uri:      opts.URI,
		siteName: opts.SiteName,
		bridge:   &bridge{ctx: ctx, acts: acts},
		toasts:   opts.Toasts,
		changes:  ch,
		stop:     stop,
		views:    make(map[string]*comment.View),
		editor:   ed,
		input:    in,
		loading:  true,
		width:    80,
	}
}

// Close отписывает модель от состояния.
func (m Model) Close() {
	if m.stop != nil {
		m.stop()
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.changes.next(), m.load(), m.readActive()}
	if m.toasts != nil {
		cmds = append(cmds, m.toasts.next())
	}

	return tea.Batch(cmds...)
}

// load запускает загрузку каналов и списка, затем реакций под uri.
func (m *Model) load() tea.Cmd {
	ctx, acts, uri := m.ctx, m.acts, m.uri
	chans := acts.FetchMyChannels(ctx)
	list := acts.List(ctx, uri, 0, 0)

	return func() tea.Msg {
		if _, err := list.Wait(ctx); err != nil {
			return loadedMsg{err: err}
		}

		// Без канала реакции не грузятся; отказ уже записан в состояние.
		_, _ = chans.Wait(ctx)
		_, _ = acts.ReactList(ctx, actions.ForURI(uri)).Wait(ctx)

		return loadedMsg{}
	}
}

func (m *Model) readActive() tea.Cmd {
	ctx, acts := m.ctx, m.acts
	return func() tea.Msg {
		name, err := acts.ActiveChannel(ctx)
		return channelMsg{name: name, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.SetWidth(max(20, msg.Width-4))
		return m, nil

	case storeChangedMsg:
		m.refresh()
		cmd := m.flush(m.changes.next())
		return m, cmd

	case toastMsg:
		m.setToast(msg.toast)
		return m, m.toasts.next()

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Unable to load comments: %v", msg.err), true)
		}
		m.refresh()
		cmd := m.flush()
		return m, cmd

	case channelMsg:
		return m.handleChannel(msg)

	case actionDoneMsg:
		return m.handleDone(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeReply, modeCompose:
			return m.updateCompose(msg)
		case modeChannelNew:
			return m.updateChannelNew(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) handleChannel(msg channelMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Unable to read active channel: %v", msg.err), true)
		return m, nil
	}

	m.active = msg.name
	if msg.created != "" {
		m.setStatus(fmt.Sprintf("Channel %s created.", msg.created), false)
	}
	m.refresh()

	cmd := m.flush()
	return m, cmd
}

func (m Model) handleDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	_, mounted := m.views[msg.id]
	if msg.id != "" && !mounted {
		return m, nil
	}

	// Об отказах записей сообщает слой действий через Toasts.
	m.refresh()

	cmd := m.flush()
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.move(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.move(1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		m.status = ""
		return m, m.load()

	case key.Matches(msg, m.keys.NewChan):
		cmd := m.openChannelNew("")
		return m, cmd

	case key.Matches(msg, m.keys.Channel):
		return m.switchChannel()

	case key.Matches(msg, m.keys.Comment):
		m.mode = modeCompose
		m.anchor = ""
		m.editor.Reset()
		cmd := m.editor.Focus()
		return m, cmd
	}

	r, v, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		if err := v.StartEdit(); err != nil {
			m.setStatus("Only your own comments can be edited.", true)
			return m, nil
		}
		m.mode = modeEdit
		m.anchor = r.id
		m.editor.SetValue(v.Draft())
		cmd := m.editor.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Reply):
		if err := v.ToggleReply(); err != nil {
			cmd := m.flush()
			return m, cmd
		}
		if root, ok := m.views[r.root]; ok && root.Replying() {
			m.mode = modeReply
			m.anchor = r.root
			m.editor.Reset()
			cmd := m.editor.Focus()
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Like):
		return m, m.react(r.id, models.Like)

	case key.Matches(msg, m.keys.Dislike):
		return m, m.react(r.id, models.Dislike)

	case key.Matches(msg, m.keys.Delete):
		if state.IsPlaceholder(r.id) {
			return m, nil
		}
		id := r.id
		return m, await(m.ctx, m.acts.Abandon(m.ctx, id), func(_ bool, err error) tea.Msg {
			return actionDoneMsg{op: state.OpAbandon, id: id, err: err}
		})

	case key.Matches(msg, m.keys.Hide):
		if state.IsPlaceholder(r.id) {
			return m, nil
		}
		id := r.id
		return m, await(m.ctx, m.acts.Hide(m.ctx, id), func(_ bool, err error) tea.Msg {
			return actionDoneMsg{op: state.OpHide, id: id, err: err}
		})
	}

	return m, nil
}

func (m *Model) react(id string, kind models.ReactionKind) tea.Cmd {
	if state.IsPlaceholder(id) {
		return nil
	}

	return await(m.ctx, m.acts.React(m.ctx, id, kind), func(_ struct{}, err error) tea.Msg {
		return actionDoneMsg{op: state.OpReact, id: id, err: err}
	})
}

// switchChannel делает активным следующий свой канал и перечитывает реакции.
func (m Model) switchChannel() (tea.Model, tea.Cmd) {
	mine := m.store.MyChannels()
	if len(mine) == 0 {
		m.setStatus("No channels yet, press n to create one.", true)
		return m, nil
	}

	next := mine[0].Name
	for i, ch := range mine {
		if ch.Name == m.active {
			next = mine[(i+1)%len(mine)].Name
			break
		}
	}

	ctx, acts, uri := m.ctx, m.acts, m.uri
	return m, func() tea.Msg {
		if err := acts.SetActiveChannel(ctx, next); err != nil {
			return channelMsg{err: err}
		}
		_, _ = acts.ReactList(ctx, actions.ForURI(uri)).Wait(ctx)

		return channelMsg{name: next}
	}
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v, ok := m.views[m.anchor]
	if !ok {
		m.leaveEditor()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		v.HandleKey(comment.KeyEscape)
		m.leaveEditor()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		v.SetDraft(m.editor.Value())
		if !v.CanSubmit() {
			m.setStatus("Nothing to save.", false)
			return m, nil
		}
		if err := v.Submit(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.leaveEditor()
		cmd := m.flush()
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	v.SetDraft(m.editor.Value())

	return m, cmd
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeReply()
		m.leaveEditor()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		body := strings.TrimSpace(m.editor.Value())
		if body == "" {
			return m, nil
		}

		parent := m.anchor
		t := m.acts.Create(m.ctx, actions.CreateInput{
			Body:        body,
			URI:         m.uri,
			ChannelName: m.active,
			ParentID:    parent,
		})
		m.closeReply()
		m.leaveEditor()

		return m, await(m.ctx, t, func(_ *models.Comment, err error) tea.Msg {
			return actionDoneMsg{op: state.OpCreate, id: parent, err: err}
		})
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	return m, cmd
}

func (m Model) updateChannelNew(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Send):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, nil
		}

		ctx, acts := m.ctx, m.acts
		t := acts.CreateChannel(ctx, name)
		m.mode = modeBrowse
		m.input.Blur()

		return m, func() tea.Msg {
			ch, err := t.Wait(ctx)
			if err != nil {
				return actionDoneMsg{op: state.OpChannelCreate, err: err}
			}
			active, err := acts.ActiveChannel(ctx)

			return channelMsg{name: active, created: ch.Name, err: err}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) openChannelNew(redirect string) tea.Cmd {
	m.mode = modeChannelNew
	m.redirect = redirect
	m.input.Reset()

	return m.input.Focus()
}

func (m *Model) leaveEditor() {
	m.mode = modeBrowse
	m.anchor = ""
	m.editor.Blur()
	m.editor.Reset()
}

func (m *Model) closeReply() {
	if m.mode != modeReply {
		return
	}
	if v, ok := m.views[m.anchor]; ok {
		v.SetReplying(false)
	}
}

func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		return
	}

	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.hover()
}

func (m *Model) hover() {
	for i, r := range m.rows {
		if v, ok := m.views[r.id]; ok {
			v.SetHover(i == m.cursor)
		}
	}
}

func (m *Model) selected() (row, *comment.View, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, nil, false
	}

	r := m.rows[m.cursor]
	v, ok := m.views[r.id]

	return r, v, ok
}

// refresh перестраивает строки из состояния: новые комментарии монтируются,
// исчезнувшие размонтируются, остальные синхронизируются.
func (m *Model) refresh() {
	var current string
	if r, _, ok := m.selected(); ok {
		current = r.id
	}

	mine := m.store.MyChannels()
	owned := make(map[string]bool, len(mine))
	for _, ch := range mine {
		owned[ch.ClaimID] = true
	}

	seen := make(map[string]bool)
	var rows []row
	var walk func(c models.Comment, root string, depth int)
	walk = func(c models.Comment, root string, depth int) {
		if seen[c.ID] {
			return
		}
		seen[c.ID] = true
		rows = append(rows, row{id: c.ID, root: root, depth: depth})
		m.mount(c, root, owned, len(mine) > 0)

		for _, reply := range m.store.Replies(c.ID) {
			walk(reply, root, depth+1)
		}
	}
	for _, c := range m.store.TopLevel(m.uri) {
		walk(c, c.ID, 0)
	}

	for id := range m.views {
		if !seen[id] {
			delete(m.views, id)
		}
	}

	m.rows = rows
	m.cursor = min(m.cursor, max(len(rows)-1, 0))
	for i, r := range rows {
		if r.id == current {
			m.cursor = i
			break
		}
	}
	m.hover()

	if (m.mode == modeEdit || m.mode == modeReply) && !seen[m.anchor] {
		m.leaveEditor()
	}
}

func (m *Model) mount(c models.Comment, root string, owned map[string]bool, hasChannels bool) {
	p := comment.Props{
		URI:         m.uri,
		CommentID:   c.ID,
		Author:      c.ChannelName,
		AuthorURI:   c.ChannelURL,
		Body:        c.Body,
		Pending:     c.Pending,
		IsMine:      owned[c.ChannelID] && !state.IsPlaceholder(c.ID),
		HasChannels: hasChannels,
		IsTopLevel:  c.IsTopLevel(),
		Path:        m.uri,
	}
	if c.ChannelURL != "" {
		p.IsResolving = m.store.IsResolving(c.ChannelURL)
		if cl, ok := m.store.Claim(c.ChannelURL); ok {
			p.Channel = &cl
			p.ChannelKnown = true
		} else if m.store.IsResolved(c.ChannelURL) {
			p.ChannelKnown = true
		}
	}

	if v, ok := m.views[c.ID]; ok {
		v.Sync(p)
		return
	}

	opts := []comment.Option{comment.WithSiteName(m.siteName)}
	if root != c.ID {
		if parent, ok := m.views[root]; ok {
			opts = append(opts, comment.WithReplyDelegate(parent))
		}
	}
	m.views[c.ID] = comment.New(p, m.bridge, opts...)
}

// flush забирает намерения представлений: ожидания операций, переход и подсказку.
func (m *Model) flush(extra ...tea.Cmd) tea.Cmd {
	cmds, nav, toast := m.bridge.drain()
	if toast != nil {
		m.setToast(*toast)
	}
	if isChannelNew(nav) {
		cmds = append(cmds, m.openChannelNew(nav))
	}

	return tea.Batch(append(cmds, extra...)...)
}

func (m *Model) setToast(t models.Toast) {
	m.setStatus(t.Message, t.IsError)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}
