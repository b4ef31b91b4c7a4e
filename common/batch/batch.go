package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

type Option = func(b *Batch)

type Result struct {
	Value interface{}
	Err   error
}

type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	return e.Key + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Queue struct {
	sem *semaphore.Weighted
}

func WithConcurrencyNum(n int) Option {
	return WithQueue(MakeQueue(n))
}

func WithQueue(q *Queue) Option {
	return func(b *Batch) {
		b.queue = q
	}
}

// Batch similar to errgroup, but can control the maximum number of concurrent.
// The first failing task cancels the batch context, tasks still waiting for
// a slot are then skipped with the context error.
type Batch struct {
	result map[string]Result
	queue  *Queue
	wg     sync.WaitGroup
	mux    sync.Mutex
	err    *Error
	once   sync.Once
	ctx    context.Context
	cancel func()
}

func (b *Batch) Go(key string, fn func() (interface{}, error)) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		var (
			value interface{}
			err   error
		)
		if b.queue != nil {
			if err = b.queue.sem.Acquire(b.ctx, 1); err == nil {
				defer b.queue.sem.Release(1)
			}
		}
		if err == nil {
			err = b.ctx.Err()
		}
		if err == nil {
			value, err = fn()
		}

		if err != nil {
			b.once.Do(func() {
				b.err = &Error{key, err}
				if b.cancel != nil {
					b.cancel()
				}
			})
		}

		b.mux.Lock()
		defer b.mux.Unlock()
		b.result[key] = Result{value, err}
	}()
}

func (b *Batch) Wait() *Error {
	b.wg.Wait()
	if b.cancel != nil {
		b.cancel()
	}
	return b.err
}

func (b *Batch) WaitAndGetResult() (map[string]Result, *Error) {
	err := b.Wait()
	return b.Result(), err
}

func (b *Batch) Result() map[string]Result {
	b.mux.Lock()
	defer b.mux.Unlock()
	copy := make(map[string]Result, len(b.result))
	for k, v := range b.result {
		copy[k] = v
	}
	return copy
}

func New(ctx context.Context, opts ...Option) (*Batch, context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	b := &Batch{
		result: map[string]Result{},
		ctx:    ctx,
		cancel: cancel,
	}

	for _, o := range opts {
		o(b)
	}

	return b, ctx
}

func MakeQueue(concurrencyNum int) *Queue {
	if concurrencyNum < 1 {
		concurrencyNum = 1
	}
	return &Queue{sem: semaphore.NewWeighted(int64(concurrencyNum))}
}
