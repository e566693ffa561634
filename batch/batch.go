/*
Package batch analyzes many structures at once with a fixed number of
workers. Structures are independent of each other, and the template registry
and configuration are only ever read, so workers share them without locking.
*/
package batch

import (
	"context"
	"sync"

	"github.com/TuftsBCB/basepair/pair"
	"github.com/TuftsBCB/basepair/template"
)

// Output is the result of one structure. Index is the position of the
// structure in the order it was enqueued.
type Output struct {
	Index  int
	Result pair.Result
}

type job struct {
	index     int
	structure pair.Structure
}

// Pool is a fixed set of workers running an Analyzer. Structures are added
// with Enqueue and results read from Results, in the order they complete.
// Results must be drained concurrently with Enqueue, and Done must be called
// once every structure has been enqueued.
type Pool struct {
	ctx      context.Context
	analyzer *pair.Analyzer
	wg       *sync.WaitGroup
	jobs     chan job
	results  chan Output
	next     int
}

// NewPool starts numWorkers workers (at least one). Cancelling ctx makes
// Enqueue fail and the workers drop whatever is still queued.
func NewPool(ctx context.Context, a *pair.Analyzer, numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &Pool{
		ctx:      ctx,
		analyzer: a,
		wg:       &sync.WaitGroup{},
		jobs:     make(chan job, numWorkers*2),
		results:  make(chan Output, numWorkers*2),
	}
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for j := range p.jobs {
		if p.ctx.Err() != nil {
			continue
		}
		out := Output{j.index, p.analyzer.Analyze(j.structure)}
		select {
		case p.results <- out:
		case <-p.ctx.Done():
		}
	}
}

// Enqueue adds a structure to the queue, blocking while the queue is full.
// It returns the context's error if the pool was cancelled first. Enqueue
// must not be called from more than one goroutine.
func (p *Pool) Enqueue(s pair.Structure) error {
	select {
	case p.jobs <- job{p.next, s}:
		p.next++
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Results returns the channel on which results are sent. It is closed after
// Done once every worker has quit.
func (p *Pool) Results() <-chan Output {
	return p.results
}

// Done closes the queue and waits for the workers to finish sending their
// results.
func (p *Pool) Done() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Run analyzes every structure with numWorkers workers and calls visit with
// each result as it completes. visit is always called from the same
// goroutine. The error returned is from building the analyzer or from ctx.
func Run(ctx context.Context, numWorkers int, structures []pair.Structure,
	reg template.Registry, cfg pair.Config, visit func(Output)) error {

	a, err := pair.NewAnalyzer(reg, cfg)
	if err != nil {
		return err
	}

	p := NewPool(ctx, a, numWorkers)
	visited := make(chan struct{})
	go func() {
		for out := range p.Results() {
			visit(out)
		}
		visited <- struct{}{}
	}()

	for _, s := range structures {
		if err = p.Enqueue(s); err != nil {
			break
		}
	}
	p.Done()
	<-visited
	if err != nil {
		return err
	}
	return ctx.Err()
}
