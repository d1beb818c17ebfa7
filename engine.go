package shapeshift

import (
	"sync"
	"sync/atomic"

	"github.com/allytrope/shapeshift/operator"
	"github.com/allytrope/shapeshift/polytope"
)

// Engine holds the "current" polytope between operator applications.
// Polytopes are immutable, so any number of readers (a render loop, stats
// panels) may call Current without locks; replacements are published with
// an atomic pointer swap only after the operator has fully completed.
// Replaced polytopes stay valid and go onto the undo history.
type Engine struct {
	current atomic.Pointer[polytope.Polytope]

	mu      sync.Mutex
	history []*polytope.Polytope
}

// NewEngine returns an engine showing seed.
func NewEngine(seed *polytope.Polytope) *Engine {
	e := &Engine{}
	e.current.Store(seed)
	return e
}

// Current returns the polytope being shown. Safe from any goroutine.
func (e *Engine) Current() *polytope.Polytope {
	return e.current.Load()
}

// Apply runs the named operator on the current polytope and, on success,
// publishes the result and pushes the prior shape onto the history.
// Identity fallbacks (unfinished operators) do not grow the history.
func (e *Engine) Apply(name string, o operator.Options) (Result, error) {
	prior := e.current.Load()

	res, err := Apply(name, prior, o)
	if err != nil {
		return Result{}, err
	}
	if res.Polytope == prior {
		return res, nil
	}

	e.mu.Lock()
	e.history = append(e.history, prior)
	e.mu.Unlock()
	e.current.Store(res.Polytope)

	return res, nil
}

// Undo restores the most recently replaced polytope. Returns false when
// the history is empty.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return false
	}
	prior := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.current.Store(prior)
	return true
}

// History returns how many undo steps are available.
func (e *Engine) History() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history)
}
