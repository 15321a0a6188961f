package sql

import "context"

// Context threads cancellation through the operator tree. Every RowIter
// receives one on each Next call so an outer consumer can cancel a running
// query between suspension points, which only happen at iterator
// boundaries. It deliberately carries nothing else - no session, no
// transaction - because the engine has none of those.
type Context struct {
	context.Context
}

// NewContext wraps an existing context.Context, for a caller that already
// has one (HTTP request context, signal-handling context, and so on).
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx}
}

// NewEmptyContext returns a Context with no cancellation, deadline or
// values: the default for tests and for one-shot Engine.Query calls that
// don't need to cancel mid-stream.
func NewEmptyContext() *Context {
	return &Context{Context: context.Background()}
}

// Err returns the underlying context's error, if iteration should stop
// because the context was cancelled or its deadline passed.
func (c *Context) Err() error {
	return c.Context.Err()
}
