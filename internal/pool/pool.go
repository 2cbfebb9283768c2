package pool

import (
	"errors"
	"log"
	"sync"
)

// ErrInvalidPoolSize is returned on an attempt to construct a pool without
// a single worker.
var ErrInvalidPoolSize = errors.New("pool size must be at least 1")

// Job is one deferred, self-contained unit of work. It owns everything it
// captured; whichever worker dequeues it becomes its sole executor.
type Job func()

// DefaultQueueDepth is the per-worker job queue capacity used by New.
const DefaultQueueDepth = 64

// Pool is a fixed set of long-lived workers consuming jobs off a shared
// queue. The queue is the only structure shared between them: the channel
// guarantees every job is dequeued by exactly one worker. Jobs are picked
// up in FIFO order, but with more than one worker the completion order is
// unspecified, trading ordering for throughput.
type Pool struct {
	jobs chan Job
	wg   sync.WaitGroup
}

// New builds a pool of exactly `size` workers, each already blocked on the
// queue waiting for work.
func New(size int) (*Pool, error) {
	return NewWithDepth(size, size*DefaultQueueDepth)
}

// NewWithDepth builds a pool with an explicitly sized job queue. Execute
// blocks once the queue is full, so the depth acts as the only backpressure
// knob there is.
func NewWithDepth(size, depth int) (*Pool, error) {
	if size < 1 {
		return nil, ErrInvalidPoolSize
	}

	p := &Pool{
		jobs: make(chan Job, depth),
	}

	p.wg.Add(size)
	for id := 0; id < size; id++ {
		go p.work(id)
	}

	return p, nil
}

// Execute enqueues a job for whichever worker becomes free first. There is
// no priority and no affinity. Calling Execute after Shutdown is a programmer
// error and panics on the closed queue.
func (p *Pool) Execute(job Job) {
	p.jobs <- job
}

// Shutdown closes the submission side of the queue and blocks until every
// worker has drained it and exited. Jobs submitted before the call are all
// executed; jobs already running are never interrupted.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for job := range p.jobs {
		run(id, job)
	}
}

// run contains a job failure within the job itself: a panicking job frees
// its worker for the next one instead of taking the whole pool down.
func run(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("worker %d: recovered panic: %v", id, r)
		}
	}()

	job()
}
