package Animation

import (
	"math"
	"sync"
	"time"
)

// The dashboard counter cards animate toward their value instead of jumping.
// A Counter eases from the currently displayed value to the target over a
// fixed duration; setting a new target mid-flight cancels the running
// animation and restarts from wherever the display was.

const frameInterval = 16 * time.Millisecond

// EaseOutQuart is the easing curve used by the counter cards.
func EaseOutQuart(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return 1 - math.Pow(1-progress, 4)
}

// ValueAt samples the eased interpolation between from and to at elapsed
// time into an animation of the given duration.
func ValueAt(from, to float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return to
	}
	progress := float64(elapsed) / float64(duration)
	return from + (to-from)*EaseOutQuart(progress)
}

type Counter struct {
	mu       sync.Mutex
	duration time.Duration
	value    float64
	target   float64
	stop     chan struct{}
	onFrame  func(value float64)
}

// NewCounter creates a counter animating over the given duration. onFrame,
// if not nil, is called with every displayed value including the final one.
func NewCounter(duration time.Duration, onFrame func(value float64)) *Counter {
	return &Counter{duration: duration, onFrame: onFrame}
}

// Value is the currently displayed value.
func (c *Counter) Value() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Target is the value the counter is heading toward.
func (c *Counter) Target() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// SetTarget starts animating toward target from the current displayed value,
// cancelling any animation still in flight.
func (c *Counter) SetTarget(target float64) {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
	}
	stop := make(chan struct{})
	c.stop = stop
	c.target = target
	from := c.value
	c.mu.Unlock()

	go c.animate(from, target, stop)
}

// Stop cancels the running animation, freezing the display where it is.
func (c *Counter) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Counter) animate(from, to float64, stop chan struct{}) {
	start := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			value := ValueAt(from, to, elapsed, c.duration)

			c.mu.Lock()
			if c.stop != stop {
				// a newer animation took over between the tick and the lock
				c.mu.Unlock()
				return
			}
			c.value = value
			frame := c.onFrame
			c.mu.Unlock()

			if frame != nil {
				frame(value)
			}
			if elapsed >= c.duration {
				return
			}
		}
	}
}
