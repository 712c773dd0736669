package async

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/utilkit/errors"
)

func TestPromise_SettlesOnce(t *testing.T) {
	p := New[int]()
	assert.False(t, p.Settled())

	assert.True(t, p.Resolve(1))
	assert.False(t, p.Resolve(2))
	assert.False(t, p.Reject(errors.Internal(nil)))

	v, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.True(t, p.Settled())
}

func TestPromise_RejectNilError(t *testing.T) {
	p := New[string]()
	p.Reject(nil)

	_, err := p.Await(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
}

func TestPromise_AwaitContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := New[int]().Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun(t *testing.T) {
	v, err := Run(func() (string, error) { return "ok", nil }).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	_, err = Run(func() (string, error) { panic("boom") }).Await(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInternal))
	assert.Contains(t, err.Error(), "boom")
}

func TestPromise_AwaitAny(t *testing.T) {
	var a Awaitable = Resolved(3)
	v, err := a.AwaitAny(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	a = Rejected[int](errors.Timeout("x"))
	v, err = a.AwaitAny(context.Background())
	assert.Nil(t, v)
	assert.True(t, errors.HasCode(err, errors.ErrCodeTimeout))
}
