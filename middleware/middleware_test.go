package middleware_test

import (
	"github.com/pipekit/handle"
)

// mwCtx is the pipeline context used across the middleware tests.
type mwCtx struct {
	value  int
	callID string
	chain  *handle.Chain[mwCtx, error]
}

func (cx *mwCtx) Next() *handle.Future[error] {
	return cx.chain.Next(cx)
}

// next is the continuation accessor handed to every middleware constructor.
func next(cx *mwCtx) *handle.Future[error] {
	return cx.Next()
}

// newChain builds a FIFO chain from the given handlers.
func newChain(handlers ...handle.Handler[mwCtx, error]) *handle.Chain[mwCtx, error] {
	return handle.New(
		handle.WithOrder[mwCtx, error](handle.FIFO),
		handle.WithHandlers(handlers...),
	)
}
