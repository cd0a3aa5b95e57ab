package clients

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/pribylovaa/odysee-comments/internal/actions"
	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/models"
	commentsv1 "github.com/pribylovaa/odysee-comments/pkg/commentsv1"
)

// fakeServer — сервер-заглушка: запоминает запросы и заголовки.
type fakeServer struct {
	commentsv1.UnimplementedCommentsServer

	mu        sync.Mutex
	auth      []string
	react     *commentsv1.ReactRequest
	reactLst  *commentsv1.ReactListRequest
	updateNil bool
}

func (f *fakeServer) seen(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auth = append(f.auth, md.Get("authorization")...)
}

func (f *fakeServer) CommentList(ctx context.Context, in *commentsv1.CommentListRequest) (*commentsv1.CommentListResponse, error) {
	f.seen(ctx)
	if in.ClaimID == "" {
		return nil, status.Error(codes.InvalidArgument, "claim_id is required")
	}
	return &commentsv1.CommentListResponse{
		Items: []commentsv1.Comment{
			{CommentID: "a", ClaimID: in.ClaimID, ChannelID: "ch1", ChannelName: "@me", Comment: "hello", Timestamp: 1700000000},
			{CommentID: "b", ParentID: "a", ClaimID: in.ClaimID, Comment: "anon", Timestamp: 1700000001, IsHidden: true},
		},
		Page: in.Page, PageSize: in.PageSize, TotalItems: 2,
	}, nil
}

func (f *fakeServer) ReactList(ctx context.Context, in *commentsv1.ReactListRequest) (*commentsv1.ReactListResponse, error) {
	f.seen(ctx)
	f.mu.Lock()
	f.reactLst = in
	f.mu.Unlock()
	return &commentsv1.ReactListResponse{
		MyReactions:     map[string]commentsv1.ReactionCounts{"a": {"like": 1}},
		OthersReactions: map[string]commentsv1.ReactionCounts{"a": {"like": 2, "dislike": 1}},
	}, nil
}

func (f *fakeServer) React(ctx context.Context, in *commentsv1.ReactRequest) (*commentsv1.ReactResponse, error) {
	f.seen(ctx)
	f.mu.Lock()
	f.react = in
	f.mu.Unlock()
	return &commentsv1.ReactResponse{}, nil
}

func (f *fakeServer) CommentUpdate(ctx context.Context, in *commentsv1.CommentUpdateRequest) (*commentsv1.Comment, error) {
	f.seen(ctx)
	if f.updateNil {
		return nil, nil
	}
	return &commentsv1.Comment{CommentID: in.CommentID, ClaimID: "c1", Comment: in.Comment}, nil
}

func (f *fakeServer) CommentHide(ctx context.Context, in *commentsv1.CommentHideRequest) (commentsv1.CommentHideResponse, error) {
	out := commentsv1.CommentHideResponse{}
	for _, id := range in.CommentIDs {
		out[id] = commentsv1.HideStatus{Hidden: true}
	}
	return out, nil
}

func (f *fakeServer) CommentAbandon(ctx context.Context, in *commentsv1.CommentAbandonRequest) (*commentsv1.CommentAbandonResponse, error) {
	return &commentsv1.CommentAbandonResponse{Abandoned: in.CommentID == "a"}, nil
}

func (f *fakeServer) Resolve(ctx context.Context, in *commentsv1.ResolveRequest) (commentsv1.ResolveResponse, error) {
	out := commentsv1.ResolveResponse{}
	for _, u := range in.URLs {
		if u == "lbry://@me" {
			out[u] = commentsv1.Claim{ClaimID: "ch1", Name: "@me", ValueType: commentsv1.ValueTypeChannel,
				PermanentURL: "lbry://@me#ch1", Meta: commentsv1.ClaimMeta{Title: "Me"}}
		}
	}
	return out, nil
}

// start поднимает сервер на bufconn и возвращает клиента через Dial.
func start(t *testing.T, srv commentsv1.CommentsServer) *Comments {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	commentsv1.RegisterCommentsServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	cfg := config.ClientConfig{}
	cfg.Server.Addr = "passthrough:///bufnet"
	cfg.Server.Token = "acc-1"
	cfg.Timeouts.Request = 5 * time.Second

	c, err := Dial(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestCommentList_RoundTrip(t *testing.T) {
	t.Parallel()

	srv := &fakeServer{}
	c := start(t, srv)

	page, err := c.CommentList(context.Background(), actions.ListParams{ClaimID: "c1", Page: 1, PageSize: 99999, IncludeReplies: true})
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalItems)
	require.Len(t, page.Items, 2)

	require.Equal(t, models.Comment{
		ID: "a", ClaimID: "c1", ChannelID: "ch1", ChannelName: "@me", Body: "hello",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}, page.Items[0])
	require.True(t, page.Items[1].Hidden)
	require.True(t, page.Items[1].IsAnonymous())

	srv.mu.Lock()
	require.Contains(t, srv.auth, "Bearer acc-1")
	srv.mu.Unlock()

	_, err = c.CommentList(context.Background(), actions.ListParams{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReact_WireShape(t *testing.T) {
	t.Parallel()

	srv := &fakeServer{}
	c := start(t, srv)

	err := c.React(context.Background(), actions.ReactParams{
		CommentID: "a", ChannelName: "@me", ChannelID: "ch1",
		Kind: models.Like, ClearTypes: []models.ReactionKind{models.Dislike},
	})
	require.NoError(t, err)

	srv.mu.Lock()
	require.Equal(t, &commentsv1.ReactRequest{
		CommentIDs: "a", ChannelName: "@me", ChannelID: "ch1", ReactType: "like", ClearTypes: "dislike",
	}, srv.react)
	srv.mu.Unlock()

	r, err := c.ReactList(context.Background(), actions.ReactListParams{CommentIDs: []string{"a", "b"}, ChannelName: "@me", ChannelID: "ch1"})
	require.NoError(t, err)
	require.Equal(t, models.ReactionCounts{models.Like: 1}, r.My["a"])
	require.Equal(t, models.ReactionCounts{models.Like: 2, models.Dislike: 1}, r.Others["a"])

	srv.mu.Lock()
	require.Equal(t, "a,b", srv.reactLst.CommentIDs)
	srv.mu.Unlock()
}

func TestCommentUpdate_NullMeansNotReady(t *testing.T) {
	t.Parallel()

	c := start(t, &fakeServer{updateNil: true})

	got, err := c.CommentUpdate(context.Background(), "a", "edited")
	require.NoError(t, err)
	require.Nil(t, got)

	c = start(t, &fakeServer{})
	got, err = c.CommentUpdate(context.Background(), "a", "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", got.Body)
}

func TestHideAbandonResolve(t *testing.T) {
	t.Parallel()

	c := start(t, &fakeServer{})
	ctx := context.Background()

	hidden, err := c.CommentHide(ctx, []string{"a"})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"a": true}, hidden)

	ok, err := c.CommentAbandon(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.CommentAbandon(ctx, "z")
	require.NoError(t, err)
	require.False(t, ok)

	claims, err := c.Resolve(ctx, []string{"lbry://@me", "lbry://@ghost"})
	require.NoError(t, err)
	require.Len(t, claims, 1)
	require.True(t, claims["lbry://@me"].IsChannel())
	require.Equal(t, "Me", claims["lbry://@me"].Meta.Title)
}

func TestUnimplemented(t *testing.T) {
	t.Parallel()

	c := start(t, &fakeServer{})

	_, err := c.ChannelList(context.Background())
	require.Equal(t, codes.Unimplemented, status.Code(err))
}
