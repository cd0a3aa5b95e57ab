package prefs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyActiveChannel)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyActiveChannel, "@me"))
	v, ok, err := s.Get(ctx, KeyActiveChannel)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "@me", v)

	require.NoError(t, s.Set(ctx, KeyActiveChannel, ""))
	_, ok, err = s.Get(ctx, KeyActiveChannel)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	defer s.Close()
	exercise(t, s)
}

func TestRedis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	s, err := NewRedis(context.Background(), "redis://"+mr.Addr(), "")
	require.NoError(t, err)
	defer s.Close()

	exercise(t, s)

	require.NoError(t, s.Set(context.Background(), KeyActiveChannel, "@other"))
	got, err := mr.Get("odysee:prefs:" + KeyActiveChannel)
	require.NoError(t, err)
	require.Equal(t, "@other", got)
}

func TestRedis_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedis(context.Background(), "://nope", "")
	require.Error(t, err)
}
