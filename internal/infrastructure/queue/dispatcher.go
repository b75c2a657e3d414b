package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/polyglot/translator/internal/core/ports"
	"github.com/polyglot/translator/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher records translations into the history log off the request path.
// Writes are sharded on the owner id so one user's entries keep their order.
type Dispatcher struct {
	workers []chan ports.CreateTranslationInput
	service ports.HistoryService
	log     zerolog.Logger

	// stopped is closed once the Start context is cancelled; Enqueue then
	// drops instead of blocking on channels nobody reads.
	stopped  chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.HistoryService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CreateTranslationInput, numWorkers),
		service: service,
		log:     log,
		stopped: make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CreateTranslationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. When ctx is cancelled each worker
// applies what is already buffered in its channel and exits.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		d.stopOnce.Do(func() { close(d.stopped) })
	}()

	d.wg.Add(len(d.workers))
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has drained its channel and exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a history write to the worker responsible for its owner.
// It blocks while that worker's buffer is full, and drops the write once the
// dispatcher has stopped.
func (d *Dispatcher) Enqueue(in ports.CreateTranslationInput) {
	idx := d.shardIndex(in.UserID)

	select {
	case <-d.stopped:
		d.drop(in, idx)
		return
	default:
	}

	select {
	case d.workers[idx] <- in:
		metrics.HistoryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-d.stopped:
		d.drop(in, idx)
	}
}

func (d *Dispatcher) drop(in ports.CreateTranslationInput, idx int) {
	metrics.HistoryDroppedTotal.Inc()
	d.log.Warn().
		Str("user_id", in.UserID).
		Int("worker_id", idx).
		Msg("dispatcher stopped, history write dropped")
}

// shardIndex maps an owner id deterministically to a worker index.
func (d *Dispatcher) shardIndex(ownerID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CreateTranslationInput) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			d.drain(context.WithoutCancel(ctx), id, ch)
			return
		case in := <-ch:
			metrics.HistoryQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.apply(ctx, id, in)
		}
	}
}

// drain applies whatever is still buffered without waiting for more.
func (d *Dispatcher) drain(ctx context.Context, id int, ch <-chan ports.CreateTranslationInput) {
	for {
		select {
		case in := <-ch:
			d.apply(ctx, id, in)
		default:
			metrics.HistoryQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(0)
			return
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, id int, in ports.CreateTranslationInput) {
	if _, err := d.service.Create(ctx, in); err != nil {
		d.log.Error().Err(err).
			Str("user_id", in.UserID).
			Int("worker_id", id).
			Msg("history write failed")
	}
}
