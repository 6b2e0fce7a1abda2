// Package cli implements the beaconzone command-line interface.
//
// This package provides commands for counting covered positions on a line,
// searching a square for the one uncovered position, printing merged covers,
// and managing the result cache. The CLI is built using cobra and logs through
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - count: Count positions on a line that cannot hold an unseen beacon
//   - search: Find the single uncovered position inside [0, bound]²
//   - solve: Run count or search in the shape of the puzzle driver
//   - cover: Debug tool printing the merged cover of a line
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Status goes to
// stderr; answers go to stdout as bare integers so they can be piped.
//
// # Example
//
//	import "github.com/matzehuels/beaconzone/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/beaconzone/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Searched 4000001 lines (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports engine and cache events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnBuild(_ context.Context, records, sources, witnesses int, d time.Duration) {
	h.logger.Debug("sources ready", "records", records, "sources", sources, "witnesses", witnesses, "took", d)
}

func (h *logHooks) OnQueryStart(_ context.Context, mode string) {
	h.logger.Debug("query started", "mode", mode)
}

func (h *logHooks) OnQueryComplete(_ context.Context, mode string, value int64, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("query failed", "mode", mode, "err", err, "took", d)
		return
	}
	h.logger.Debug("query done", "mode", mode, "value", value, "took", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, mode string) {
	h.logger.Debug("cache hit", "mode", mode)
}

func (h *logHooks) OnCacheMiss(_ context.Context, mode string) {
	h.logger.Debug("cache miss", "mode", mode)
}

func (h *logHooks) OnCacheSet(_ context.Context, mode string, size int) {
	h.logger.Debug("cache stored", "mode", mode, "bytes", size)
}

func (h *logHooks) OnCacheError(_ context.Context, op string, err error) {
	h.logger.Debug("cache error", "op", op, "err", err)
}

var (
	_ observability.EngineHooks = (*logHooks)(nil)
	_ observability.CacheHooks  = (*logHooks)(nil)
)
