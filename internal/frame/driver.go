// Package frame drives the redraw loop of a view.
//
// A Driver is Idle until Start and Running until Stop or until the context
// given to Start is cancelled. Each tick advances the scene, then replays a
// full frame onto the sink. Stop does not return before the loop has
// exited, so no draw call reaches the sink after teardown.
package frame

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/piverse/internal/render"
)

// ErrRunning is returned by Start on a driver that is already running.
var ErrRunning = errors.New("frame driver already running")

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Scene is what a driver animates.
type Scene interface {
	Advance()
	Frame() []render.Command
}

// Ticker delivers frame ticks. The cadence is up to the host.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	t *time.Ticker
}

// NewTicker ticks every interval.
func NewTicker(interval time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(interval)}
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// Option configures a Driver.
type Option func(*Driver)

func WithLogger(l *zap.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithTickHook calls fn on the loop after frame n has been drawn.
func WithTickHook(fn func(n uint64)) Option {
	return func(d *Driver) { d.onTick = fn }
}

type Driver struct {
	scene  Scene
	sink   render.Sink
	logger *zap.Logger
	onTick func(uint64)
	events chan func()
	ticks  atomic.Uint64

	mu       sync.Mutex
	state    State
	external bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates an idle driver. A nil sink is allowed: the scene still
// advances but nothing is drawn.
func New(scene Scene, sink render.Sink, opts ...Option) *Driver {
	d := &Driver{
		scene:  scene,
		sink:   sink,
		logger: zap.NewNop(),
		events: make(chan func()),
		done:   closedChan(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Ticks is the number of frames drawn so far.
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}

// Start moves the driver to Running. With a ticker the driver runs its own
// loop until Stop or ctx is done. With a nil ticker the host calls Tick from
// its own refresh callback.
func (d *Driver) Start(ctx context.Context, t Ticker) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Running {
		return ErrRunning
	}
	d.state = Running

	if t == nil {
		d.external = true
		d.logger.Debug("frame driver started", zap.Bool("external", true))
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	go d.loop(ctx, t, done)
	d.logger.Debug("frame driver started", zap.Bool("external", false))
	return nil
}

// Stop moves the driver to Idle and waits for its loop to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state == Idle {
		d.mu.Unlock()
		return
	}
	cancel, done := d.cancel, d.done
	d.state = Idle
	d.external = false
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	d.logger.Debug("frame driver stopped", zap.Uint64("ticks", d.Ticks()))
}

// Done is closed once the current loop has exited. It is already closed for
// an idle or externally ticked driver.
func (d *Driver) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.external {
		return closedChan()
	}
	return d.done
}

// Tick draws one frame for an externally ticked driver. It reports false and
// draws nothing when the driver is idle or runs its own loop.
func (d *Driver) Tick() bool {
	d.mu.Lock()
	ok := d.state == Running && d.external
	d.mu.Unlock()
	if !ok {
		return false
	}
	d.tick()
	return true
}

// Do runs fn on the loop goroutine, between two frames, and waits for it.
// When no loop is running fn runs on the caller.
func (d *Driver) Do(fn func()) {
	d.mu.Lock()
	looping := d.state == Running && !d.external
	done := d.done
	d.mu.Unlock()

	if !looping {
		fn()
		return
	}
	finished := make(chan struct{})
	select {
	case d.events <- func() { defer close(finished); fn() }:
		<-finished
	case <-done:
		fn()
	}
}

func (d *Driver) loop(ctx context.Context, t Ticker, done chan struct{}) {
	defer func() {
		t.Stop()
		d.mu.Lock()
		if d.done == done && d.state == Running {
			// ctx was cancelled by the owner rather than by Stop.
			d.state = Idle
			if d.cancel != nil {
				d.cancel()
				d.cancel = nil
			}
		}
		d.mu.Unlock()
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case fn := <-d.events:
			fn()
		case <-t.C():
			if ctx.Err() != nil {
				return
			}
			d.tick()
		}
	}
}

func (d *Driver) tick() {
	d.scene.Advance()
	render.Execute(d.sink, d.scene.Frame())
	n := d.ticks.Add(1)
	if d.onTick != nil {
		d.onTick(n)
	}
}

func closedChan() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}
