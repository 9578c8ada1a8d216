// Package monitor prints a once-a-second summary of the statistics sent by
// the presentation driver. It runs in its own goroutine and never blocks the
// driver, which sends on the stats channel without waiting.
package monitor

import (
	"fmt"
	"time"

	"github.com/pelhamfield/palview/gui"
)

// Launch the monitor. Returns when the endMonitor channel is closed or
// receives a value.
func Launch(endMonitor chan bool, stats chan gui.FrameStat) {
	sty := newStyles()

	tck := time.NewTicker(time.Second)
	defer tck.Stop()

	var count int
	var convert time.Duration
	var last gui.FrameStat

	for {
		select {
		case <-endMonitor:
			return

		case s := <-stats:
			count++
			convert += s.Convert
			last = s

		case <-tck.C:
			if count == 0 {
				continue
			}

			filt := sty.off.Render("filter off")
			if last.Filtered {
				filt = sty.filtered.Render("filter on")
			}

			fmt.Printf("%s %s %s %s\n",
				sty.frame.Render(fmt.Sprintf("%d fps", count)),
				sty.convert.Render(fmt.Sprintf("convert %.2fms", float64(convert.Microseconds())/float64(count)/1000)),
				sty.mode.Render(last.Mode.String()),
				filt,
			)

			count = 0
			convert = 0
		}
	}
}
