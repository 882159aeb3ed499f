package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 5*time.Millisecond)
	ctx := context.Background()

	req.Equal(time.Millisecond, b.Next())
	req.NoError(b.Wait(ctx))
	req.Equal(2*time.Millisecond, b.Next())
	req.NoError(b.Wait(ctx))
	req.Equal(4*time.Millisecond, b.Next())
	req.NoError(b.Wait(ctx))
	req.Equal(5*time.Millisecond, b.Next())
	req.Equal(3, b.Attempts())

	b.Reset()
	req.Equal(0, b.Attempts())
	req.Equal(time.Millisecond, b.Next())
}

func TestWaitCanceled(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(b.Wait(ctx), context.Canceled)
	req.Equal(0, b.Attempts())
}
