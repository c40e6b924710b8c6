package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/timescale/core"
)

// commandQueueSize bounds pending controller commands between two frames
const commandQueueSize = 64

// FrameInfo describes one delivered tick
type FrameInfo struct {
	Frame     uint64
	Now       time.Time
	RealDelta time.Duration
	Snapshot  Snapshot
}

// FrameHook runs on the loop goroutine after the controller has ticked
type FrameHook func(FrameInfo)

// FrameLoop is the tick source for a TimeScaleController
// It owns the only goroutine allowed to touch the controller; other goroutines reach it through Submit
type FrameLoop struct {
	controller *TimeScaleController
	clock      TimeProvider
	interval   time.Duration

	hooks    []FrameHook
	commands chan func(*TimeScaleController)

	frames    atomic.Uint64
	statTicks *atomic.Int64

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewFrameLoop creates a loop ticking controller every interval
// statTicks is optional; when set it mirrors the delivered tick count
func NewFrameLoop(controller *TimeScaleController, clock TimeProvider, interval time.Duration, statTicks *atomic.Int64) *FrameLoop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &FrameLoop{
		controller: controller,
		clock:      clock,
		interval:   interval,
		commands:   make(chan func(*TimeScaleController), commandQueueSize),
		statTicks:  statTicks,
		stopChan:   make(chan struct{}),
	}
}

// AddFrameHook registers a per-frame callback, must be called before Start()
func (fl *FrameLoop) AddFrameHook(hook FrameHook) {
	fl.hooks = append(fl.hooks, hook)
}

// Submit queues a controller operation for the loop goroutine
// Returns false if the loop has stopped or the queue is full
func (fl *FrameLoop) Submit(cmd func(*TimeScaleController)) bool {
	if fl.stopped.Load() {
		return false
	}
	select {
	case fl.commands <- cmd:
		return true
	default:
		return false
	}
}

// Frames returns the number of ticks delivered so far
func (fl *FrameLoop) Frames() uint64 {
	return fl.frames.Load()
}

// Start begins the loop goroutine; no-op if already running or stopped
func (fl *FrameLoop) Start() {
	if fl.stopped.Load() {
		return
	}
	if fl.running.CompareAndSwap(false, true) {
		fl.wg.Add(1)
		core.Go(fl.loop)
	}
}

// Stop halts the loop and waits for the current frame to finish
// Commands still queued are dropped
func (fl *FrameLoop) Stop() {
	fl.stopOnce.Do(func() {
		fl.stopped.Store(true)
		if fl.running.CompareAndSwap(true, false) {
			close(fl.stopChan)
			fl.wg.Wait()
		}
	})
}

// Step delivers one tick synchronously: queued commands first, then the controller tick, then hooks
// Only call it when the loop goroutine is not running
func (fl *FrameLoop) Step() FrameInfo {
	fl.drainCommands()

	now := fl.clock.Now()
	fl.controller.TickAt(now)

	info := FrameInfo{
		Frame:     fl.frames.Add(1),
		Now:       now,
		RealDelta: fl.controller.GetIndependentDeltaTime(),
		Snapshot:  fl.controller.Snapshot(),
	}
	if fl.statTicks != nil {
		fl.statTicks.Store(int64(info.Frame))
	}

	for _, hook := range fl.hooks {
		hook(info)
	}
	return info
}

func (fl *FrameLoop) loop() {
	defer fl.wg.Done()

	ticker := time.NewTicker(fl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-fl.stopChan:
			return
		case cmd := <-fl.commands:
			cmd(fl.controller)
		case <-ticker.C:
			fl.Step()
		}
	}
}

func (fl *FrameLoop) drainCommands() {
	for {
		select {
		case cmd := <-fl.commands:
			cmd(fl.controller)
		default:
			return
		}
	}
}
