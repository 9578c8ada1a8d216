// Package logger is the central logging facility. Log entries are tagged
// with the subsystem that created them and collated in memory; they can be
// echoed to an io.Writer as they arrive.
//
// The first argument to the logging functions is a Permission. Subsystems
// that hold a context can let that context decide whether logging is
// currently wanted; everything else passes logger.Allow.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission decides whether a log request is carried out.
type Permission interface {
	AllowLogging() bool
}

type allow bool

// AllowLogging implements the Permission interface.
func (a allow) AllowLogging() bool {
	return bool(a)
}

// Allow is the permission to use when logging is unconditional.
const Allow allow = true

// the maximum number of entries kept. oldest entries are lost first
const maxCentral = 256

type entry struct {
	tag    string
	detail string

	// consecutive identical entries are folded into one with a repeat count
	repeated int
}

func (e entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.tag, e.detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type central struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var log = &central{}

func (c *central) add(tag string, detail string) {
	c.crit.Lock()
	defer c.crit.Unlock()

	// multi-line details become multiple entries
	for _, d := range strings.Split(detail, "\n") {
		if len(d) == 0 {
			continue
		}

		if len(c.entries) > 0 {
			last := &c.entries[len(c.entries)-1]
			if last.tag == tag && last.detail == d {
				last.repeated++
				continue
			}
		}

		c.entries = append(c.entries, entry{tag: tag, detail: d})
		if len(c.entries) > maxCentral {
			c.entries = c.entries[len(c.entries)-maxCentral:]
		}

		if c.echo != nil {
			fmt.Fprintf(c.echo, "%s: %s\n", tag, d)
		}
	}
}

// Log adds detail to the central log under the given tag. The detail value is
// rendered with the %v verb so errors and stringers work as expected.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}
	log.add(tag, fmt.Sprintf("%v", detail))
}

// Logf is the formatted version of Log.
func Logf(perm Permission, tag string, format string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	log.add(tag, fmt.Sprintf(format, args...))
}

// SetEcho makes all future entries echo to w as they arrive. A nil writer
// stops echoing. If writeRecent is true the entries already collated are
// written to w immediately.
func SetEcho(w io.Writer, writeRecent bool) {
	log.crit.Lock()
	defer log.crit.Unlock()

	log.echo = w
	if w != nil && writeRecent {
		for _, e := range log.entries {
			fmt.Fprintf(w, "%s\n", e.String())
		}
	}
}

// Tail writes the most recent n entries to w. A value of n less than or equal
// to zero writes every collated entry.
func Tail(w io.Writer, n int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	s := 0
	if n > 0 && len(log.entries) > n {
		s = len(log.entries) - n
	}
	for _, e := range log.entries[s:] {
		fmt.Fprintf(w, "%s\n", e.String())
	}
}
