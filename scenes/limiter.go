package scenes

import (
	"time"
)

type limiter struct {
	tick  *time.Ticker
	nudge chan bool

	// the payload function for the Wait() method
	wait func()
}

func newLimiter(hz float64) *limiter {
	l := &limiter{
		nudge: make(chan bool, 1),
	}

	d := time.Second / time.Duration(hz)

	// the wait() function deliberately starts slow and then changes state after
	// a few nudges to normal operation
	//
	// this gives the gui time to open the window and to start consuming frames
	var ct int
	l.wait = func() {
		select {
		case <-time.After(time.Duration(float64(d) * 1.025)):
		case <-l.nudge:
			ct++
			if ct > 2 {
				l.tick = time.NewTicker(d)
				l.wait = func() {
					select {
					case <-l.tick.C:
					case <-l.nudge:
					}
				}
			}
		}
	}

	return l
}

func (l *limiter) Wait() {
	l.wait()
}

func (l *limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}
