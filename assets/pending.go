package assets

import (
	"io/fs"

	"github.com/automoto/showroom/scene"
)

type LoadState int

const (
	LoadPending LoadState = iota
	LoadSucceeded
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadSucceeded:
		return "loaded"
	case LoadFailed:
		return "failed"
	}
	return "unknown"
}

// ModelResult is the outcome of an asynchronous model load.
type ModelResult struct {
	Path  string
	Model *scene.Node
	Err   error
}

// PendingModel is a single-shot future for a model load. Poll is meant to
// be called from the game loop; the loader goroutine never touches the
// scene graph.
type PendingModel struct {
	path   string
	done   chan ModelResult // size-1 buffered, written once
	result ModelResult
	state  LoadState
}

// LoadModelAsync starts loading path from fsys on a background goroutine.
func LoadModelAsync(fsys fs.FS, path string) *PendingModel {
	return startPending(path, func() (*scene.Node, error) {
		return LoadModel(fsys, path)
	})
}

func startPending(path string, load func() (*scene.Node, error)) *PendingModel {
	p := &PendingModel{
		path: path,
		done: make(chan ModelResult, 1),
	}
	go func() {
		model, err := load()
		p.done <- ModelResult{Path: path, Model: model, Err: err}
	}()
	return p
}

// Poll returns the result once the load has finished. It never blocks. The
// first call that observes completion returns first=true; later calls keep
// returning the cached result with first=false.
func (p *PendingModel) Poll() (res ModelResult, finished, first bool) {
	if p.state != LoadPending {
		return p.result, true, false
	}
	select {
	case r := <-p.done:
		p.result = r
		if r.Err != nil {
			p.state = LoadFailed
		} else {
			p.state = LoadSucceeded
		}
		return r, true, true
	default:
		return ModelResult{Path: p.path}, false, false
	}
}

// State reports the last observed load state.
func (p *PendingModel) State() LoadState {
	return p.state
}

func (p *PendingModel) Path() string {
	return p.path
}
