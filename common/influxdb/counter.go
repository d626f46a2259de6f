package influxdb

import (
	"sync/atomic"
)

// Counter accumulates an event count between two metric reports.
type Counter struct {
	count int32
}

func NewCounter() *Counter {
	return &Counter{}
}

func (counter *Counter) Add(nbr int) {
	atomic.AddInt32(&counter.count, int32(nbr))
}

// GetAndReset drains the counter atomically; events added while draining
// land in the next reporting window.
func (counter *Counter) GetAndReset() int {
	return int(atomic.SwapInt32(&counter.count, 0))
}
