// dispatcher.go implements the CPU-side fragment dispatch: a fragment
// function evaluated once per pixel across the viewport, each invocation
// independent and pure, scheduled over a bounded worker pool. This is the
// fragment-stage-equivalent evaluation context that hands out
// fragment.Context values, making the derivative-based helpers (AAStep)
// usable off-GPU in tools, tests, and software fallbacks.
//
// Rows are submitted as individual pool tasks and a WaitGroup provides the
// per-dispatch barrier; workers persist across dispatches, avoiding goroutine
// spawn/teardown overhead.
package dispatch

import (
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-shadermath/common"
	"github.com/Carmen-Shannon/oxy-shadermath/fragment"
	"github.com/Carmen-Shannon/oxy-shadermath/screen"
	"github.com/Carmen-Shannon/oxy-shadermath/vec"
)

// FragmentFunc is one shader invocation: it receives the per-fragment context
// and returns the fragment's color. It must be pure: it runs concurrently
// across all pixels with no ordering guarantees and must not share mutable
// state between invocations.
type FragmentFunc func(fc *fragment.Context) vec.Vec4

// dispatcher is the implementation of the Dispatcher interface.
type dispatcher struct {
	size      screen.ScreenSize
	workers   int
	queueSize int
	profiling bool
	pool      worker.DynamicWorkerPool
}

// Dispatcher evaluates fragment functions across a pixel viewport, one
// invocation per pixel at pixel centers, in parallel.
type Dispatcher interface {
	// Dispatch evaluates f once per pixel of the viewport, at pixel centers
	// (x+0.5, y+0.5), and collects the results into a Target. Invocations run
	// concurrently; f must be pure.
	//
	// Parameters:
	//   - f: the fragment function to evaluate
	//
	// Returns:
	//   - *Target: the completed dispatch output
	Dispatch(f FragmentFunc) *Target

	// Size returns the viewport dimensions this dispatcher was built with.
	//
	// Returns:
	//   - screen.ScreenSize: the viewport dimensions in pixels
	Size() screen.ScreenSize
}

var _ Dispatcher = &dispatcher{}

// NewDispatcher creates a Dispatcher for the given viewport with all options
// applied. Worker count defaults to NumCPU-1 (minimum 1); queue size defaults
// to the larger of 256 and the viewport row count.
//
// Parameters:
//   - size: viewport dimensions in pixels; both must be positive whole numbers
//   - options: functional options to further configure the dispatcher
//
// Returns:
//   - Dispatcher: the newly created dispatcher
func NewDispatcher(size screen.ScreenSize, options ...DispatcherBuilderOption) Dispatcher {
	if size.Width < 1 || size.Height < 1 {
		panic(fmt.Sprintf("dispatch: NewDispatcher requires positive viewport dimensions, got %gx%g", size.Width, size.Height))
	}
	d := &dispatcher{size: size}
	for _, option := range options {
		option(d)
	}
	d.workers = common.Coalesce(d.workers, max(runtime.NumCPU()-1, 1))
	// The queue must hold one task per row so a full-viewport dispatch can be
	// enqueued without backpressure.
	d.queueSize = common.Coalesce(d.queueSize, max(256, int(size.Height)))
	d.pool = worker.NewDynamicWorkerPool(d.workers, d.queueSize, 1*time.Second)
	return d
}

func (d *dispatcher) Size() screen.ScreenSize {
	return d.size
}

func (d *dispatcher) Dispatch(f FragmentFunc) *Target {
	width := int(d.size.Width)
	height := int(d.size.Height)
	t := &Target{
		width:  width,
		height: height,
		pixels: make([]vec.Vec4, width*height),
	}

	start := time.Now()

	// One task per row; a WaitGroup provides the dispatch barrier since
	// pool.Wait() blocks until workers idle-exit, which is unsuitable here.
	var wg sync.WaitGroup
	for y := 0; y < height; y++ {
		wg.Add(1)
		row := y
		d.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				base := row * width
				for x := 0; x < width; x++ {
					fc := fragment.NewContext(vec.Vec2{
						X: float32(x) + 0.5,
						Y: float32(row) + 0.5,
					})
					t.pixels[base+x] = f(fc)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	if d.profiling {
		elapsed := time.Since(start)
		frags := float64(width * height)
		log.Printf("[Dispatch] %dx%d fragments in %v (%.2f Mfrag/s, %d workers)",
			width, height, elapsed, frags/elapsed.Seconds()/1e6, d.workers)
	}

	return t
}
