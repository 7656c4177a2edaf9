// Package scheduler implements petal's microtask scheduler: a fixed
// pool of worker goroutines consuming submitted task bodies and
// producing results keyed by a UUID promise id, with await as the sole
// blocking join point.
//
// Grounded on original_source/src/eval/tasks.rs (MicrotaskScheduler,
// per-worker channel, the submit/tick/wait state machine, the
// PET_MT_THREADS sizing convention). The Rust original leaks task
// payloads to satisfy a 'static lifetime bound on its channels; that
// workaround has no Go analogue, so task values here are transferred as
// plain owned values over ordinary channels.
package scheduler

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/scope"
	"github.com/petal-lang/petal/internal/token"
)

// EvalFunc runs a submitted task body under its captured scope. It is
// supplied by the caller (cmd/petal passes the evaluator's Evaluate
// method), so this package does not import the evaluator.
type EvalFunc func(body []ast.Node, scope *scope.Scope) (object.Object, error)

type task struct {
	id    string
	body  []ast.Node
	scope *scope.Scope
}

type result struct {
	id        string
	workerIdx int
	value     object.Object
	err       error
}

// Scheduler is petal's microtask executor.
type Scheduler struct {
	mu          sync.Mutex
	eval        EvalFunc
	queue       []task
	freeWorkers []int
	workerIn    []chan task
	resultCh    chan result
	promises    map[string]result
	g           *errgroup.Group
}

// New builds a scheduler with n worker goroutines. n == 0 disables
// async entirely: Submit still queues tasks, but nothing ever drains the
// queue, so Wait on such a program never returns -- callers should not
// invoke await when async is disabled.
func New(n int, eval EvalFunc) *Scheduler {
	s := &Scheduler{
		eval:     eval,
		promises: make(map[string]result),
		resultCh: make(chan result, n+1),
	}
	if n <= 0 {
		return s
	}

	s.workerIn = make([]chan task, n)
	g := new(errgroup.Group)
	for i := 0; i < n; i++ {
		s.freeWorkers = append(s.freeWorkers, i)
		s.workerIn[i] = make(chan task)
		idx := i
		g.Go(func() error {
			for t := range s.workerIn[idx] {
				v, err := s.eval(t.body, t.scope)
				s.resultCh <- result{id: t.id, workerIdx: idx, value: v, err: err}
			}
			return nil
		})
	}
	s.g = g
	return s
}

// Submit queues body for asynchronous evaluation under scope and returns
// a Promise handle carrying a fresh UUID, grounded directly on
// original_source's uuid::Uuid::new_v4() call.
func (s *Scheduler) Submit(body []ast.Node, sc *scope.Scope) *object.Promise {
	id := uuid.NewString()
	s.mu.Lock()
	s.queue = append(s.queue, task{id: id, body: body, scope: sc})
	s.mu.Unlock()
	return object.NewPromise(token.Span{}, id, id)
}

// Tick dispatches one queued task to an idle worker, if both are
// available, after first draining any completed results into the
// promises table.
func (s *Scheduler) Tick() {
	s.drainResults()

	s.mu.Lock()
	if len(s.freeWorkers) == 0 || len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}
	widx := s.freeWorkers[0]
	s.freeWorkers = s.freeWorkers[1:]
	t := s.queue[0]
	s.queue = s.queue[1:]
	s.mu.Unlock()

	s.workerIn[widx] <- t
}

func (s *Scheduler) drainResults() {
	for {
		select {
		case r := <-s.resultCh:
			s.mu.Lock()
			s.promises[r.id] = r
			s.freeWorkers = append(s.freeWorkers, r.workerIdx)
			s.mu.Unlock()
		default:
			return
		}
	}
}

// Wait blocks, repeatedly ticking, until the promises table contains an
// entry for id, then removes and returns it. Satisfies
// object.Awaiter for the promise.await intrinsic.
func (s *Scheduler) Wait(id string) (object.Object, error) {
	for {
		s.mu.Lock()
		r, ok := s.promises[id]
		if ok {
			delete(s.promises, id)
		}
		s.mu.Unlock()
		if ok {
			return r.value, r.err
		}
		s.Tick()
		runtime.Gosched()
	}
}

// Shutdown closes every worker input channel and waits for workers to
// drain, used at interpreter exit.
func (s *Scheduler) Shutdown() {
	for _, ch := range s.workerIn {
		close(ch)
	}
	if s.g != nil {
		s.g.Wait()
	}
}
