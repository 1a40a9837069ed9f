package lock

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run("конкурирующий запрос по тому же ключу не проходит", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			_, err := WithDelay(ctx, "interview:1", time.Second, func() error {
				close(entered)
				<-release
				return nil
			})
			done <- err
		}()
		<-entered

		ok, err := WithDelay(ctx, "interview:1", 10*time.Millisecond, func() error {
			t.Error("секция выполнена под чужой блокировкой")
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)

		close(release)
		require.NoError(t, <-done)
	})

	t.Run("другой ключ не блокируется", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "interview:1", time.Second, func() error {
				close(entered)
				<-release
				return nil
			})
		}()
		<-entered

		ok, err := WithDelay(ctx, "interview:2", 10*time.Millisecond, func() error {
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		close(release)
	})

	t.Run("блокировка снимается после выполнения", func(t *testing.T) {
		ok, err := WithDelay(ctx, "job:1", time.Second, func() error {
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = WithDelay(ctx, "job:1", time.Second, func() error {
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("блокировка снимается и после ошибки секции", func(t *testing.T) {
		want := errors.New("ошибка транзакции")
		ok, err := WithDelay(ctx, "job:2", time.Second, func() error {
			return want
		})
		require.True(t, ok)
		require.ErrorIs(t, err, want)

		ok, err = WithDelay(ctx, "job:2", time.Second, func() error {
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
	})
}
