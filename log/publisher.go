package log

import (
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 64

// Entry is one emitted line, as delivered to [Publisher] subscribers.
type Entry struct {
	Time    string
	ID      string
	Message string
	Level   Level
}

// String returns the plain formatted line for e.
func (e Entry) String() string {
	return Format(e.Time, e.Level, e.ID, e.Message)
}

// Publisher taps the entries of one or more loggers and hands them to
// in-process subscribers, e.g. a summary that counts what was emitted.
//
// Delivery never waits on a subscriber. Each subscription holds a bounded
// queue; when it is full the oldest entry is evicted and counted in
// [Subscription.Dropped].
//
// Create instances with [NewPublisher] and attach them with
// [WithPublisher].
type Publisher struct {
	subscribers []*Subscription
	bufSize     int
	mu          sync.Mutex
	closed      bool
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the queue length of new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		p.bufSize = max(n, 1)
	}
}

// Publish offers e to every subscriber whose threshold it meets.
// Closed subscriptions are released. Publishing after [Publisher.Close]
// does nothing.
func (p *Publisher) Publish(e Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		sub.offer(e)

		alive = append(alive, sub)
	}

	clear(p.subscribers[len(alive):])
	p.subscribers = alive
}

// Subscribe registers a [Subscription] that receives entries at threshold or
// above. If the Publisher is already closed the returned subscription's
// channel is closed.
func (p *Publisher) Subscribe(threshold Level) *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch:        make(chan Entry, p.bufSize),
		threshold: threshold,
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close closes every subscription channel. Entries already queued remain
// readable. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil

	return nil
}

// Subscription receives entries from a [Publisher].
type Subscription struct {
	ch        chan Entry
	dropped   atomic.Uint64
	closed    atomic.Bool
	threshold Level
}

// C returns the channel that delivers entries.
func (s *Subscription) C() <-chan Entry {
	return s.ch
}

// Dropped returns the number of entries evicted because the queue was full.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close marks the subscription as closed. The Publisher closes the channel
// on its next Publish or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}

// offer enqueues e without blocking. Only the Publisher sends on s.ch, and
// it holds its lock while doing so; the reader may drain concurrently.
func (s *Subscription) offer(e Entry) {
	if e.Level < s.threshold {
		return
	}

	select {
	case s.ch <- e:
		return
	default:
	}

	select {
	case <-s.ch:
		s.dropped.Add(1)
	default:
	}

	select {
	case s.ch <- e:
	default:
		s.dropped.Add(1)
	}
}
