// Package sequence provides monotonically increasing counters for
// suffix generation. Wall-clock suffixes can collide within one tick;
// a counter cannot.
package sequence

import (
	"fmt"
	"sync/atomic"
)

// Counter hands out strictly increasing numbers. The zero value is ready
// to use and safe for concurrent callers.
type Counter struct {
	n atomic.Int64
}

// Next returns the next number, starting at 1.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}

// NextSuffix returns the next number formatted with the given prefix,
// e.g. NextSuffix("copy") -> "copy3".
func (c *Counter) NextSuffix(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, c.Next())
}
