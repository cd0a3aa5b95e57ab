package service

// Тесты сервисного слоя comments-service.
//
//  Проверяем:
//  - валидацию входов и нормализацию (TrimSpace тела, @ в имени канала);
//  - проверки владельца канала/контента и прогрев канала;
//  - маппинг ошибок storage -> service;
//  - happy-path каждого метода.
//
// Подготовка окружения:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/odysee-comments/internal/config"
	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/storage"
	"github.com/pribylovaa/odysee-comments/mocks"
	"github.com/stretchr/testify/require"
)

const (
	account  = "acc-1"
	stranger = "acc-2"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newServiceWithMocks — поднимает сервис с моками стораджа и фиксированными часами.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)

	s := New(ms, config.Config{
		Limits:   config.LimitsConfig{Default: 50, Max: 100, MaxChars: 10},
		Channels: config.ChannelsConfig{Warmup: time.Minute},
	})
	s.now = func() time.Time { return testNow }

	return s, ms
}

func channel(id, name, owner string, age time.Duration) *models.Claim {
	return &models.Claim{
		ClaimID:      id,
		Name:         name,
		ValueType:    models.ValueTypeChannel,
		PermanentURL: models.PermanentURL(name, id),
		Account:      owner,
		CreatedAt:    testNow.Add(-age),
	}
}

func stream(id, owner string) *models.Claim {
	return &models.Claim{ClaimID: id, Name: "video", ValueType: models.ValueTypeStream, Account: owner}
}

func TestService_ListComments(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.ListComments(ctx, ListInput{ClaimID: "  "})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.ListComments(ctx, ListInput{ClaimID: "c", Page: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)

	want := &models.CommentPage{Items: []models.Comment{{ID: "x"}}, Page: 1, PageSize: 50, TotalItems: 1}
	ms.EXPECT().
		ListComments(gomock.Any(), "claim", models.ListParams{Page: 2, PageSize: 5, IncludeReplies: true}).
		Return(want, nil)

	got, err := s.ListComments(ctx, ListInput{ClaimID: " claim ", Page: 2, PageSize: 5, IncludeReplies: true})
	require.NoError(t, err)
	require.Equal(t, want, got)

	ms.EXPECT().ListComments(gomock.Any(), "claim", gomock.Any()).Return(nil, errors.New("db down"))
	_, err = s.ListComments(ctx, ListInput{ClaimID: "claim"})
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_CreateComment_Validation(t *testing.T) {
	s, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.CreateComment(ctx, account, CreateCommentInput{ClaimID: "c", ChannelID: "ch", Body: "   "})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateComment(ctx, account, CreateCommentInput{ClaimID: "c", ChannelID: "ch", Body: strings.Repeat("ы", 11)})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateComment(ctx, account, CreateCommentInput{ChannelID: "ch", Body: "ok"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateComment(ctx, "", CreateCommentInput{ClaimID: "c", ChannelID: "ch", Body: "ok"})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_CreateComment_Success(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	ch := channel("ch1", "@me", account, time.Hour)
	ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(ch, nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "claim").Return(stream("claim", stranger), nil)
	ms.EXPECT().
		CreateComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Comment) (*models.Comment, error) {
			require.Equal(t, models.CommentDigest("claim", "ch1", "hello", testNow), c.ID)
			require.Equal(t, "hello", c.Body)
			require.Equal(t, "@me", c.ChannelName)
			require.Equal(t, ch.PermanentURL, c.ChannelURL)
			require.Equal(t, "p1", c.ParentID)
			return &c, nil
		})

	got, err := s.CreateComment(ctx, account, CreateCommentInput{
		ClaimID: "claim", ChannelID: "ch1", ParentID: " p1 ", Body: "  hello ",
	})
	require.NoError(t, err)
	require.Equal(t, "ch1", got.ChannelID)
}

func TestService_CreateComment_Errors(t *testing.T) {
	ctx := context.Background()
	in := CreateCommentInput{ClaimID: "claim", ChannelID: "ch1", Body: "ok"}

	t.Run("foreign channel", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@x", stranger, time.Hour), nil)

		_, err := s.CreateComment(ctx, account, in)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("channel not found", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(nil, storage.ErrNotFound)

		_, err := s.CreateComment(ctx, account, in)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("claim not found", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, time.Hour), nil)
		ms.EXPECT().ClaimByID(gomock.Any(), "claim").Return(nil, storage.ErrNotFound)

		_, err := s.CreateComment(ctx, account, in)
		require.ErrorIs(t, err, ErrNotFound)
	})

	for name, tc := range map[string]struct {
		storageErr error
		want       error
	}{
		"parent":   {storage.ErrParentNotFound, ErrParentNotFound},
		"conflict": {storage.ErrConflict, ErrConflict},
		"internal": {errors.New("boom"), ErrInternal},
	} {
		t.Run(name, func(t *testing.T) {
			s, ms := newServiceWithMocks(t)
			ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, time.Hour), nil)
			ms.EXPECT().ClaimByID(gomock.Any(), "claim").Return(stream("claim", stranger), nil)
			ms.EXPECT().CreateComment(gomock.Any(), gomock.Any()).Return(nil, tc.storageErr)

			_, err := s.CreateComment(ctx, account, in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// Канал моложе channels.warmup не может подписывать изменения.
func TestService_UpdateComment_Warmup(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1", ChannelID: "ch1"}, nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, 10*time.Second), nil)

	_, err := s.UpdateComment(ctx, account, "c1", "new")
	require.ErrorIs(t, err, ErrChannelNotReady)
}

func TestService_UpdateComment(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.UpdateComment(ctx, account, "c1", "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.UpdateComment(ctx, "", "c1", "new")
	require.ErrorIs(t, err, ErrUnauthenticated)

	ms.EXPECT().CommentByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	_, err = s.UpdateComment(ctx, account, "missing", "new")
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().CommentByID(gomock.Any(), "anon").Return(&models.Comment{ID: "anon"}, nil)
	_, err = s.UpdateComment(ctx, account, "anon", "new")
	require.ErrorIs(t, err, ErrPermissionDenied)

	ms.EXPECT().CommentByID(gomock.Any(), "other").Return(&models.Comment{ID: "other", ChannelID: "ch2"}, nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "ch2").Return(channel("ch2", "@x", stranger, time.Hour), nil)
	_, err = s.UpdateComment(ctx, account, "other", "new")
	require.ErrorIs(t, err, ErrPermissionDenied)

	ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1", ChannelID: "ch1"}, nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, time.Hour), nil)
	ms.EXPECT().UpdateComment(gomock.Any(), "c1", "new").Return(&models.Comment{ID: "c1", Body: "new"}, nil)

	got, err := s.UpdateComment(ctx, account, " c1 ", " new ")
	require.NoError(t, err)
	require.Equal(t, "new", got.Body)
}

func TestService_AbandonComment(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1", ChannelID: "ch1"}, nil).Times(3)
	ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, time.Hour), nil).Times(2)
	ms.EXPECT().DeleteComment(gomock.Any(), "c1").Return(nil)

	require.NoError(t, s.AbandonComment(ctx, account, "c1"))

	ms.EXPECT().DeleteComment(gomock.Any(), "c1").Return(errors.New("boom"))
	require.ErrorIs(t, s.AbandonComment(ctx, account, "c1"), ErrInternal)

	ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, time.Second), nil)
	require.ErrorIs(t, s.AbandonComment(ctx, account, "c1"), ErrChannelNotReady)
}

// Скрыть можно только комментарии под своим контентом; остальные — false.
func TestService_HideComments(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.HideComments(ctx, "", []string{"a"})
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.HideComments(ctx, account, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().CommentByID(gomock.Any(), "mine").Return(&models.Comment{ID: "mine", ClaimID: "s1"}, nil)
	ms.EXPECT().CommentByID(gomock.Any(), "foreign").Return(&models.Comment{ID: "foreign", ClaimID: "s2"}, nil)
	ms.EXPECT().CommentByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
	ms.EXPECT().ClaimByID(gomock.Any(), "s1").Return(stream("s1", account), nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "s2").Return(stream("s2", stranger), nil)
	ms.EXPECT().HideComments(gomock.Any(), []string{"mine"}).Return(map[string]bool{"mine": true}, nil)

	got, err := s.HideComments(ctx, account, []string{"mine", "foreign", "missing"})
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"mine": true, "foreign": false, "missing": false}, got)
}

func TestService_ReactList(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.ReactList(ctx, account, nil, ChannelRef{})
	require.ErrorIs(t, err, ErrInvalidArgument)

	anon := &models.Reactions{My: map[string]models.ReactionCounts{}, Others: map[string]models.ReactionCounts{}}
	ms.EXPECT().CountReactions(gomock.Any(), []string{"a"}, "").Return(anon, nil)
	got, err := s.ReactList(ctx, "", []string{"a"}, ChannelRef{})
	require.NoError(t, err)
	require.Equal(t, anon, got)

	// Канал по имени без @ нормализуется.
	ms.EXPECT().ClaimByName(gomock.Any(), "@me").Return(channel("ch1", "@me", account, time.Hour), nil)
	ms.EXPECT().CountReactions(gomock.Any(), []string{"a", "b"}, "ch1").Return(anon, nil)
	_, err = s.ReactList(ctx, account, []string{"a", "b"}, ChannelRef{Name: "me"})
	require.NoError(t, err)

	_, err = s.ReactList(ctx, "", []string{"a"}, ChannelRef{ID: "ch1"})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_React(t *testing.T) {
	ctx := context.Background()
	me := ChannelRef{ID: "ch1", Name: "@me"}

	t.Run("set clears exclusive kind", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, 0), nil)
		ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1"}, nil)
		gomock.InOrder(
			ms.EXPECT().RemoveReactions(gomock.Any(), "c1", "ch1", []models.ReactionKind{models.Dislike}).Return(nil),
			ms.EXPECT().SetReaction(gomock.Any(), models.Reaction{CommentID: "c1", ChannelID: "ch1", Kind: models.Like}).Return(nil),
		)

		err := s.React(ctx, account, ReactInput{
			CommentIDs: []string{"c1"}, Channel: me, Kind: models.Like,
			Clear: []models.ReactionKind{models.Dislike, models.Like},
		})
		require.NoError(t, err)
	})

	t.Run("remove", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, 0), nil)
		ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1"}, nil)
		ms.EXPECT().RemoveReactions(gomock.Any(), "c1", "ch1", []models.ReactionKind{models.Like}).Return(nil)

		err := s.React(ctx, account, ReactInput{CommentIDs: []string{"c1"}, Channel: me, Kind: models.Like, Remove: true})
		require.NoError(t, err)
	})

	t.Run("missing comment changes nothing", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@me", account, 0), nil)
		ms.EXPECT().CommentByID(gomock.Any(), "c1").Return(&models.Comment{ID: "c1"}, nil)
		ms.EXPECT().CommentByID(gomock.Any(), "c2").Return(nil, storage.ErrNotFound)

		err := s.React(ctx, account, ReactInput{CommentIDs: []string{"c1", "c2"}, Channel: me, Kind: models.Like})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("name mismatch", func(t *testing.T) {
		s, ms := newServiceWithMocks(t)
		ms.EXPECT().ClaimByID(gomock.Any(), "ch1").Return(channel("ch1", "@other", account, 0), nil)

		err := s.React(ctx, account, ReactInput{CommentIDs: []string{"c1"}, Channel: me, Kind: models.Like})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("validation", func(t *testing.T) {
		s, _ := newServiceWithMocks(t)

		require.ErrorIs(t, s.React(ctx, account, ReactInput{Channel: me, Kind: models.Like}), ErrInvalidArgument)
		require.ErrorIs(t, s.React(ctx, account, ReactInput{CommentIDs: []string{"c1"}, Channel: me, Kind: "love"}), ErrInvalidArgument)
		require.ErrorIs(t, s.React(ctx, "", ReactInput{CommentIDs: []string{"c1"}, Channel: me, Kind: models.Like}), ErrUnauthenticated)
	})
}

func TestSplitIDs(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, SplitIDs(" a, ,b,"))
	require.Empty(t, SplitIDs(""))
}

func TestService_Channels(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.Channels(ctx, "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	ms.EXPECT().ChannelsByAccount(gomock.Any(), account).Return([]models.Claim{*channel("ch1", "@me", account, 0)}, nil)
	got, err := s.Channels(ctx, account)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestService_CreateChannel(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.CreateChannel(ctx, account, "bad name", "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateChannel(ctx, account, "@", "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateChannel(ctx, "", "me", "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	ms.EXPECT().
		CreateClaim(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Claim) (*models.Claim, error) {
			require.Equal(t, "@me", c.Name)
			require.Len(t, c.ClaimID, claimIDLen)
			require.Equal(t, models.ValueTypeChannel, c.ValueType)
			require.Equal(t, account, c.Account)
			require.Equal(t, "Me", c.Meta.Title)
			require.Equal(t, testNow, c.CreatedAt)
			return &c, nil
		})

	got, err := s.CreateChannel(ctx, account, " me ", "Me")
	require.NoError(t, err)
	require.Equal(t, "lbry://@me#"+got.ClaimID, got.PermanentURL)

	ms.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
	_, err = s.CreateChannel(ctx, account, "@me", "")
	require.ErrorIs(t, err, ErrConflict)
}

func TestService_Resolve(t *testing.T) {
	s, ms := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().ClaimByID(gomock.Any(), "abc").Return(&models.Claim{ClaimID: "abc", Name: "video"}, nil)
	ms.EXPECT().ClaimByID(gomock.Any(), "def").Return(&models.Claim{ClaimID: "def", Name: "other"}, nil)
	ms.EXPECT().ClaimByName(gomock.Any(), "@chan").Return(&models.Claim{ClaimID: "c", Name: "@chan"}, nil)
	ms.EXPECT().ClaimByName(gomock.Any(), "gone").Return(nil, storage.ErrNotFound)

	got, err := s.Resolve(ctx, []string{
		"lbry://video#abc",
		"lbry://video#def",
		"lbry://@chan",
		"lbry://gone",
		"lbry://@a/b",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "abc", got["lbry://video#abc"].ClaimID)
	require.Equal(t, "c", got["lbry://@chan"].ClaimID)

	ms.EXPECT().ClaimByName(gomock.Any(), "x").Return(nil, errors.New("boom"))
	_, err = s.Resolve(ctx, []string{"x"})
	require.ErrorIs(t, err, ErrInternal)
}
