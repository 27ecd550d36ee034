package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner is the progress indicator shown while the pipeline is running.
type Spinner struct {
	mu       sync.Mutex
	delay    time.Duration
	writer   io.Writer
	message  string
	stopChan chan struct{}
}

// NewSpinner instantiates a new progress indicator.
func NewSpinner(msg string, d time.Duration) *Spinner {
	return &Spinner{
		delay:    d,
		writer:   os.Stderr,
		message:  msg,
		stopChan: make(chan struct{}, 1),
	}
}

// Start starts the progress indicator.
func (s *Spinner) Start() {
	go func() {
		for {
			for _, r := range `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏` {
				select {
				case <-s.stopChan:
					return
				default:
					s.mu.Lock()
					fmt.Fprintf(s.writer, "\r%s %s", s.message, DecorateText(string(r), SuccessMessage))
					s.mu.Unlock()

					time.Sleep(s.delay)
				}
			}
		}
	}()
}

// Stop stops the progress indicator and clears the status line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// clear line
	fmt.Fprint(s.writer, "\r\033[K")
	s.stopChan <- struct{}{}
}
