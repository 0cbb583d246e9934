package middleware_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipekit/handle"
	"github.com/pipekit/handle/middleware"
)

func TestRecoveryMapsPanicToOutcome(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	chain := newChain(
		middleware.RecoveryWithConfig(next, middleware.RecoveryConfig[mwCtx, error]{
			Logger: logger,
			OnPanic: func(recovered any) error {
				return fmt.Errorf("recovered: %v", recovered)
			},
		}),
		handle.Func[mwCtx, error](func(cx *mwCtx) error {
			panic("boom")
		}),
	)

	cx := &mwCtx{chain: chain}
	err := cx.Next().Await()

	require.EqualError(t, err, "recovered: boom")
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "stack=")
}

func TestRecoveryCatchesNestedPanics(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	// The panic happens two frames below Recovery and must unwind through
	// each intermediate frame before it is caught.
	chain := newChain(
		middleware.RecoveryWithConfig(next, middleware.RecoveryConfig[mwCtx, error]{
			Logger: logger,
			OnPanic: func(recovered any) error {
				return fmt.Errorf("recovered: %v", recovered)
			},
		}),
		handle.Func[mwCtx, error](func(cx *mwCtx) error {
			cx.value++
			return cx.Next().Await()
		}),
		handle.Func[mwCtx, error](func(cx *mwCtx) error {
			panic(cx.value)
		}),
	)

	cx := &mwCtx{chain: chain}
	require.EqualError(t, cx.Next().Await(), "recovered: 1")
}

func TestRecoveryWithoutMapperRepanics(t *testing.T) {
	t.Parallel()

	chain := newChain(
		middleware.RecoveryWithConfig(next, middleware.RecoveryConfig[mwCtx, error]{
			Logger: slog.New(slog.DiscardHandler),
		}),
		handle.Func[mwCtx, error](func(cx *mwCtx) error {
			panic("unmapped")
		}),
	)

	cx := &mwCtx{chain: chain}
	assert.PanicsWithValue(t, "unmapped", func() {
		_ = cx.Next().Await()
	})
}
