package metrics

import "sync/atomic"

// Counter is a process-wide call counter. It starts at zero when the process
// starts and is never reset; it is for reporting only.
type Counter struct {
	n atomic.Int64
}

func NewCounter() *Counter { return &Counter{} }

// Inc adds one and returns the new value.
func (c *Counter) Inc() int64 { return c.n.Add(1) }

func (c *Counter) Load() int64 { return c.n.Load() }
