package dispatch

// DispatcherBuilderOption is a functional option for configuring a dispatcher.
// Use the With* functions to create options.
type DispatcherBuilderOption func(d *dispatcher)

// WithWorkers sets the number of pool workers used per dispatch. Values below
// 1 are ignored.
//
// Parameters:
//   - workers: worker goroutine count
//
// Returns:
//   - DispatcherBuilderOption: option function to apply
func WithWorkers(workers int) DispatcherBuilderOption {
	return func(d *dispatcher) {
		if workers >= 1 {
			d.workers = workers
		}
	}
}

// WithQueueSize sets the task queue capacity of the worker pool. Values below
// 1 are ignored.
//
// Parameters:
//   - queueSize: pending task capacity
//
// Returns:
//   - DispatcherBuilderOption: option function to apply
func WithQueueSize(queueSize int) DispatcherBuilderOption {
	return func(d *dispatcher) {
		if queueSize >= 1 {
			d.queueSize = queueSize
		}
	}
}

// WithProfiling enables per-dispatch timing output to the log.
//
// Returns:
//   - DispatcherBuilderOption: option function to apply
func WithProfiling() DispatcherBuilderOption {
	return func(d *dispatcher) {
		d.profiling = true
	}
}
