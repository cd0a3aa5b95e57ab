package comment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/odysee-comments/internal/models"
)

type update struct{ id, body string }

// fakeIntents запоминает все намерения представления.
type fakeIntents struct {
	updates  []update
	resolves []string
	paths    []string
	toasts   []models.Toast
}

func (f *fakeIntents) UpdateComment(id, body string) { f.updates = append(f.updates, update{id, body}) }
func (f *fakeIntents) ResolveURI(uri string)         { f.resolves = append(f.resolves, uri) }
func (f *fakeIntents) Navigate(path string)          { f.paths = append(f.paths, path) }
func (f *fakeIntents) Toast(t models.Toast)          { f.toasts = append(f.toasts, t) }

func mine(body string) Props {
	ch := &models.Claim{ClaimID: "ch1", Name: "@me", ValueType: models.ValueTypeChannel, Meta: models.ClaimMeta{Title: "Me"}}
	return Props{
		URI: "lbry://video#c1", CommentID: "a", Author: "@me", AuthorURI: "lbry://@me#ch1", Body: body,
		Channel: ch, ChannelKnown: true, IsMine: true, HasChannels: true, IsTopLevel: true, Path: "/video",
	}
}

// "hello" -> "hello": отправка недоступна; "hello!": доступна; после отправки — просмотр.
func TestEdit_SubmitEnabledOnlyWhenChanged(t *testing.T) {
	t.Parallel()

	in := &fakeIntents{}
	v := New(mine("hello"), in)

	require.NoError(t, v.StartEdit())
	require.Equal(t, Editing, v.Mode())
	require.Equal(t, "hello", v.Draft())
	require.Equal(t, 5, v.CharCount())

	v.SetDraft("hello")
	require.False(t, v.CanSubmit())
	require.ErrorIs(t, v.Submit(), ErrUnchanged)
	require.Equal(t, Editing, v.Mode())
	require.Empty(t, in.updates)

	v.SetDraft("hello!")
	require.True(t, v.CanSubmit())
	require.Equal(t, 6, v.CharCount())

	require.NoError(t, v.Submit())
	require.Equal(t, Viewing, v.Mode())
	require.Equal(t, []update{{"a", "hello!"}}, in.updates)
	require.False(t, v.EscapeListening())
}

func TestEdit_OnlyAuthor(t *testing.T) {
	t.Parallel()

	p := mine("hello")
	p.IsMine = false
	v := New(p, &fakeIntents{})

	require.ErrorIs(t, v.StartEdit(), ErrNotAuthor)
	require.Equal(t, Viewing, v.Mode())
	require.ErrorIs(t, v.Submit(), ErrNotEditing)
}

func TestEscape_OnlyWhileEditing(t *testing.T) {
	t.Parallel()

	in := &fakeIntents{}
	v := New(mine("hello"), in)

	require.False(t, v.HandleKey(KeyEscape))
	require.False(t, v.EscapeListening())

	require.NoError(t, v.StartEdit())
	require.True(t, v.EscapeListening())
	require.False(t, v.HandleKey(KeyOther))
	require.Equal(t, Editing, v.Mode())

	v.SetDraft("changed")
	require.True(t, v.HandleKey(KeyEscape))
	require.Equal(t, Viewing, v.Mode())
	require.Equal(t, "hello", v.Draft())
	require.Empty(t, in.updates)

	// Обработчик снят: дальнейшие Escape не перехватываются.
	require.False(t, v.HandleKey(KeyEscape))
}

func TestCancel(t *testing.T) {
	t.Parallel()

	v := New(mine("hello"), &fakeIntents{})
	require.NoError(t, v.StartEdit())
	v.SetDraft("x")
	v.Cancel()

	require.Equal(t, Viewing, v.Mode())
	require.False(t, v.CanSubmit())
	v.SetDraft("ignored")
	require.Equal(t, "hello", v.Draft())
}

func TestToggleReply_OwnFlag(t *testing.T) {
	t.Parallel()

	v := New(mine("hello"), &fakeIntents{})
	require.False(t, v.Replying())
	require.NoError(t, v.ToggleReply())
	require.True(t, v.Replying())

	// Ответ ортогонален правке.
	require.NoError(t, v.StartEdit())
	require.True(t, v.Replying())
	require.NoError(t, v.ToggleReply())
	require.False(t, v.Replying())
}

func TestToggleReply_Delegated(t *testing.T) {
	t.Parallel()

	in := &fakeIntents{}
	top := New(mine("top"), in)

	rp := mine("reply")
	rp.CommentID, rp.IsTopLevel = "b", false
	reply := New(rp, in, WithReplyDelegate(top))

	require.NoError(t, reply.ToggleReply())
	require.True(t, top.Replying())
	require.True(t, reply.Replying())

	require.NoError(t, top.ToggleReply())
	require.False(t, reply.Replying())
}

func TestToggleReply_NoChannelsRedirects(t *testing.T) {
	t.Parallel()

	in := &fakeIntents{}
	p := mine("hello")
	p.HasChannels = false
	v := New(p, in, WithSiteName("Odysee"))

	require.ErrorIs(t, v.ToggleReply(), ErrChannelRequired)
	require.False(t, v.Replying())
	require.Equal(t, []string{"/$/channel/new?redirect=%2Fvideo"}, in.paths)
	require.Equal(t, []models.Toast{{Message: "A channel is required to comment on Odysee"}}, in.toasts)
}

func TestSync_ResolvesAuthorOnce(t *testing.T) {
	t.Parallel()

	in := &fakeIntents{}
	p := mine("hello")
	p.Channel, p.ChannelKnown = nil, false

	v := New(p, in)
	require.Equal(t, []string{"lbry://@me#ch1"}, in.resolves)

	// Повторные рендеры, пока разрешение в полёте и после него.
	p.IsResolving = true
	v.Sync(p)
	p.IsResolving = false
	v.Sync(p)
	v.Sync(p)
	require.Len(t, in.resolves, 1)
}

func TestSync_ResolveConditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mut  func(*Props)
		want bool
	}{
		{name: "metadata present", mut: func(*Props) {}, want: false},
		{name: "not fetched", mut: func(p *Props) { p.Channel, p.ChannelKnown = nil, false }, want: true},
		{name: "not found", mut: func(p *Props) { p.Channel = nil }, want: false},
		{name: "empty meta", mut: func(p *Props) { p.Channel.Meta = models.ClaimMeta{} }, want: true},
		{name: "empty meta pending", mut: func(p *Props) { p.Channel.Meta = models.ClaimMeta{}; p.Pending = true }, want: false},
		{name: "in flight", mut: func(p *Props) { p.ChannelKnown = false; p.IsResolving = true }, want: false},
		{name: "anonymous", mut: func(p *Props) { p.ChannelKnown = false; p.Author, p.AuthorURI = "", "" }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &fakeIntents{}
			p := mine("hello")
			ch := *p.Channel
			p.Channel = &ch
			tt.mut(&p)

			New(p, in)
			require.Equal(t, tt.want, len(in.resolves) == 1)
		})
	}
}

func TestCollapsible(t *testing.T) {
	t.Parallel()

	require.False(t, New(mine(strings.Repeat("x", LengthToCollapse-1)), &fakeIntents{}).Collapsible())
	require.True(t, New(mine(strings.Repeat("x", LengthToCollapse)), &fakeIntents{}).Collapsible())
	require.True(t, New(mine(strings.Repeat("ж", LengthToCollapse)), &fakeIntents{}).Collapsible())
}

func TestHover(t *testing.T) {
	t.Parallel()

	v := New(mine("hello"), &fakeIntents{})
	require.False(t, v.Hovering())
	v.SetHover(true)
	require.True(t, v.Hovering())
}
