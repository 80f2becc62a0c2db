package document

import "sync/atomic"

// IDSource hands out identity tokens for documents.
// Inject a deterministic implementation in tests via WithIDSource.
type IDSource interface {
	NextID() uint64
}

// CounterIDSource is a monotonic counter IDSource.
type CounterIDSource struct {
	n atomic.Uint64
}

// NextID returns the next token.
func (c *CounterIDSource) NextID() uint64 {
	return c.n.Add(1)
}

// defaultIDSource backs documents created without an explicit source.
var defaultIDSource CounterIDSource
