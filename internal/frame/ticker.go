package frame

import (
	"sync"
	"time"
)

// Ticker steps a Queue from its own goroutine at a fixed frame rate.
// Callbacks run on that goroutine.
type Ticker struct {
	*Queue
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func NewTicker(fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	t := &Ticker{
		Queue:    NewQueue(),
		interval: time.Second / time.Duration(fps),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go t.loop()
	return t
}

func (t *Ticker) loop() {
	defer close(t.done)
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			t.Step()
		}
	}
}

// Close stops the goroutine and waits for an in-flight step to finish.
// Pending callbacks are dropped.
func (t *Ticker) Close() {
	t.once.Do(func() { close(t.stop) })
	<-t.done
}
