package httpclient

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Indicator provides activity feedback while a request is in flight.
// Start and Stop always pair: the client stops the indicator on success,
// business error, and transport failure alike.
type Indicator interface {
	Start(label string)
	Stop()
}

// NewIndicator returns a terminal spinner when stderr is an interactive
// terminal, or a no-op indicator in CI, in pipelines, and when quiet is
// set (e.g. JSON output mode).
func NewIndicator(quiet bool) Indicator {
	if quiet || os.Getenv("CI") != "" {
		return &nopIndicator{}
	}
	if fi, err := os.Stderr.Stat(); err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return &nopIndicator{}
	}
	return &spinnerIndicator{}
}

// spinnerIndicator renders an indeterminate spinner on stderr
type spinnerIndicator struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

func (s *spinnerIndicator) Start(label string) {
	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	s.done = make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
}

func (s *spinnerIndicator) Stop() {
	if s.bar == nil {
		return
	}
	close(s.done)
	_ = s.bar.Finish()
	s.bar = nil
}

type nopIndicator struct{}

func (n *nopIndicator) Start(string) {}
func (n *nopIndicator) Stop()        {}
