package middleware

import "github.com/pipekit/handle"

// Next exposes the rest of the pipeline to a middleware handler. The
// continuation lives on the application's context type, so the application
// supplies the accessor, typically:
//
//	func(cx *Ctx) *handle.Future[error] { return cx.Next() }
type Next[C, O any] func(cx *C) *handle.Future[O]
