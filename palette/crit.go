package palette

import "sync"

// for clarity, fields accessed from more than one goroutine sit behind a
// critical section type
type critSection struct {
	section sync.Mutex
}
