package task

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGo_Ok(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	tk := Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 42, nil
	})

	require.Equal(t, Pending, tk.State())
	_, err := tk.Result()
	require.ErrorIs(t, err, ErrPending)

	close(release)
	v, err := tk.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.Equal(t, Ok, tk.State())
}

func TestGo_Err(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tk := Go(context.Background(), func(context.Context) (string, error) {
		return "", boom
	})

	_, err := tk.Wait(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, Err, tk.State())
}

func TestGo_PanicBecomesErr(t *testing.T) {
	t.Parallel()

	tk := Go(context.Background(), func(context.Context) (int, error) {
		panic("oops")
	})

	_, err := tk.Wait(context.Background())
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "oops", pe.Value)
}

func TestWait_ContextCanceled(t *testing.T) {
	t.Parallel()

	tk := Go(context.Background(), func(ctx context.Context) (int, error) {
		time.Sleep(time.Second)
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := tk.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolvedRejected(t *testing.T) {
	t.Parallel()

	v, err := Resolved("x").Result()
	require.NoError(t, err)
	require.Equal(t, "x", v)

	boom := errors.New("boom")
	_, err = Rejected[int](boom).Result()
	require.ErrorIs(t, err, boom)
	require.Equal(t, Err, Rejected[int](boom).State())
}

func TestMap(t *testing.T) {
	t.Parallel()

	s, err := Map(Resolved(7), strconv.Itoa).Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, "7", s)

	boom := errors.New("boom")
	_, err = Map(Rejected[int](boom), strconv.Itoa).Wait(context.Background())
	require.ErrorIs(t, err, boom)
}
