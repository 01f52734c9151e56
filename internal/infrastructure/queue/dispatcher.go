package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher deletes media host assets in the background on a fixed set of
// workers, sharded by public id so repeated requests for one asset stay in
// order on one worker.
type Dispatcher struct {
	workers []chan string
	store   ports.MediaStore
	log     zerolog.Logger
	depth   func(delta float64)
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDepthGauge reports queue depth changes, typically to a Prometheus gauge.
func WithDepthGauge(add func(delta float64)) Option {
	return func(d *Dispatcher) { d.depth = add }
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.MediaStore, log zerolog.Logger, opts ...Option) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
		depth:   func(float64) {},
	}
	for _, opt := range opts {
		opt(d)
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close stops accepting work. Workers drain what is already queued and then
// return; later Enqueue calls are dropped.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
}

// Enqueue schedules publicID for deletion. It never blocks: when the
// worker's buffer is full the request is dropped and logged.
func (d *Dispatcher) Enqueue(publicID string) {
	if publicID == "" {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.Warn().Str("public_id", publicID).Msg("media cleanup stopped, asset left on host")
		return
	}
	select {
	case d.workers[d.shardIndex(publicID)] <- publicID:
		d.depth(1)
	default:
		d.log.Warn().Str("public_id", publicID).Msg("media cleanup queue full, asset left on host")
	}
}

// shardIndex maps a public id deterministically to a worker index.
func (d *Dispatcher) shardIndex(publicID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(publicID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case publicID, ok := <-ch:
			if !ok {
				return
			}
			d.depth(-1)
			if err := d.store.Destroy(ctx, publicID); err != nil {
				d.log.Error().Err(err).
					Str("public_id", publicID).
					Int("worker_id", id).
					Msg("media cleanup failed")
				continue
			}
			d.log.Debug().Str("public_id", publicID).Int("worker_id", id).Msg("media asset deleted")
		}
	}
}
