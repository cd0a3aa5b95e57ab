// Package comment — машина состояний представления одного комментария.
//
// Режимы Viewing и Editing взаимоисключающие; признак ответа (Replying)
// переключается независимо. Общее состояние представление не меняет:
// только локальное и через Intents.
package comment

import (
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

// LengthToCollapse — тела от этой длины (в рунах) показываются свёрнутыми.
const LengthToCollapse = 300

// MaxChars — предел длины черновика правки.
const MaxChars = 2000

// ToastChannelRequired — подсказка при попытке ответить без своего канала.
const ToastChannelRequired = "A channel is required to comment on %s"

var (
	// ErrNotAuthor — править можно только свой комментарий.
	ErrNotAuthor = errors.New("comment is not authored by own channel")
	// ErrNotEditing — операция доступна только в режиме правки.
	ErrNotEditing = errors.New("comment is not being edited")
	// ErrUnchanged — черновик совпадает с исходным текстом.
	ErrUnchanged = errors.New("draft is unchanged")
	// ErrChannelRequired — ответ без своего канала перенаправлен на создание канала.
	ErrChannelRequired = errors.New("channel is required")
)

// Mode — режим представления.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}

	return "viewing"
}

// Key — клавиша, которую представление может обработать.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// Intents — намерения, которые представление отдаёт наружу.
type Intents interface {
	UpdateComment(commentID, body string)
	ResolveURI(uri string)
	Navigate(path string)
	Toast(t models.Toast)
}

// ReplyFlag — признак «открыт ответ», которым может владеть родитель.
type ReplyFlag interface {
	Replying() bool
	SetReplying(bool)
}

// Props — входные данные представления; обновляются через Sync.
type Props struct {
	URI       string
	CommentID string
	// Author — имя канала автора (@name); пусто у анонимных комментариев.
	Author    string
	AuthorURI string
	Body      string
	Pending   bool

	// Channel — claim канала автора. ChannelKnown=false: ещё не запрашивался;
	// ChannelKnown=true и Channel=nil: не найден.
	Channel      *models.Claim
	ChannelKnown bool
	IsResolving  bool

	IsMine      bool
	HasChannels bool
	IsTopLevel  bool

	// Path — текущий путь, куда вернуться после создания канала.
	Path string
}

// View — состояние одного комментария.
type View struct {
	props    Props
	intents  Intents
	siteName string
	delegate ReplyFlag

	mode      Mode
	draft     string
	charCount int
	replying  bool
	hovering  bool
	escape    bool

	requested map[string]struct{}
}

// Option настраивает View.
type Option func(*View)

// WithReplyDelegate передаёт владение признаком ответа родителю.
func WithReplyDelegate(f ReplyFlag) Option {
	return func(v *View) { v.delegate = f }
}

// WithSiteName задаёт имя сайта для подсказок.
func WithSiteName(name string) Option {
	return func(v *View) { v.siteName = name }
}

// New создаёт представление и сразу синхронизирует его с props.
func New(props Props, intents Intents, opts ...Option) *View {
	v := &View{
		intents:   intents,
		siteName:  "Odysee",
		requested: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.Sync(props)
	return v
}

func (v *View) Props() Props    { return v.props }
func (v *View) Mode() Mode      { return v.mode }
func (v *View) Draft() string   { return v.draft }
func (v *View) CharCount() int  { return v.charCount }
func (v *View) Hovering() bool  { return v.hovering }
func (v *View) SetHover(h bool) { v.hovering = h }

// EscapeListening сообщает, установлен ли обработчик Escape.
func (v *View) EscapeListening() bool { return v.escape }

// Sync применяет новые props (монтирование или обновление) и при
// необходимости один раз запрашивает разрешение uri автора.
func (v *View) Sync(props Props) {
	v.props = props
	if v.mode == Viewing {
		v.draft = props.Body
	}

	if props.AuthorURI == "" || props.Author == "" || props.IsResolving || !v.shouldFetch() {
		return
	}
	if _, ok := v.requested[props.AuthorURI]; ok {
		return
	}

	v.requested[props.AuthorURI] = struct{}{}
	v.intents.ResolveURI(props.AuthorURI)
}

// shouldFetch: метаданные канала не получены или неполны, и запись не черновик.
func (v *View) shouldFetch() bool {
	p := v.props
	if !p.ChannelKnown {
		return true
	}

	return p.Channel != nil && p.Channel.IsChannel() && p.Channel.Meta.IsEmpty() && !p.Pending
}

// StartEdit переводит в режим правки; черновик — текущий текст.
func (v *View) StartEdit() error {
	if !v.props.IsMine {
		return ErrNotAuthor
	}
	if v.mode == Editing {
		return nil
	}

	v.mode = Editing
	v.escape = true
	v.SetDraft(v.props.Body)

	return nil
}

// SetDraft меняет черновик и счётчик символов. Вне правки ничего не делает.
func (v *View) SetDraft(s string) {
	if v.mode != Editing {
		return
	}

	v.draft = s
	v.charCount = utf8.RuneCountInString(s)
}

// CanSubmit — кнопка отправки доступна, только если черновик отличается от текста.
func (v *View) CanSubmit() bool {
	return v.mode == Editing && v.draft != v.props.Body
}

// Submit отправляет правку и сразу возвращается к просмотру, не дожидаясь ответа.
func (v *View) Submit() error {
	if v.mode != Editing {
		return ErrNotEditing
	}
	if !v.CanSubmit() {
		return ErrUnchanged
	}

	v.intents.UpdateComment(v.props.CommentID, v.draft)
	v.leave()

	return nil
}

// Cancel выходит из правки без отправки.
func (v *View) Cancel() {
	if v.mode == Editing {
		v.leave()
	}
}

func (v *View) leave() {
	v.mode = Viewing
	v.escape = false
	v.draft = v.props.Body
	v.charCount = 0
}

// HandleKey обрабатывает клавишу; Escape действует только во время правки.
func (v *View) HandleKey(k Key) bool {
	if k != KeyEscape || !v.escape {
		return false
	}

	v.Cancel()
	return true
}

// Replying — открыт ли ответ (свой признак или признак родителя).
func (v *View) Replying() bool {
	if v.delegate != nil {
		return v.delegate.Replying()
	}

	return v.replying
}

// SetReplying позволяет представлению быть ReplyFlag для ответов.
func (v *View) SetReplying(r bool) { v.replying = r }

// ToggleReply открывает или закрывает ответ. Без своих каналов переводит на
// создание канала с возвратом и показывает подсказку; состояние не меняется.
func (v *View) ToggleReply() error {
	if !v.props.HasChannels {
		v.intents.Navigate(ChannelNewPath(v.props.Path))
		v.intents.Toast(models.Toast{Message: fmt.Sprintf(ToastChannelRequired, v.siteName)})
		return ErrChannelRequired
	}

	if v.delegate != nil {
		v.delegate.SetReplying(!v.delegate.Replying())
		return nil
	}

	v.replying = !v.replying
	return nil
}

// Collapsible — показывать ли тело свёрнутым.
func (v *View) Collapsible() bool {
	return utf8.RuneCountInString(v.props.Body) >= LengthToCollapse
}

// ChannelNewPath — путь создания канала с возвратом на redirect.
func ChannelNewPath(redirect string) string {
	if redirect == "" {
		return "/$/channel/new"
	}

	return "/$/channel/new?redirect=" + url.QueryEscape(redirect)
}
