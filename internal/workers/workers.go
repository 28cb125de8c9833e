package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers skips nil workers so optional jobs can be passed unconditionally.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
