package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing structured log lines.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

// Install registers h for every hook category.
func (h *LogHooks) Install() {
	SetSessionHooks(h)
	SetSearchHooks(h)
}

func (h *LogHooks) OnSessionStart(_ context.Context, id string, width, height int, seed int64) {
	h.Logger.Debug("session started", "id", id, "size", [2]int{width, height}, "seed", seed)
}

func (h *LogHooks) OnGenerationComplete(_ context.Context, id string, opened int, d time.Duration) {
	h.Logger.Debug("maze generated", "id", id, "passages", opened, "elapsed", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCommandRejected(_ context.Context, id, command, mode string) {
	h.Logger.Debug("command ignored", "id", id, "command", command, "mode", mode)
}

func (h *LogHooks) OnSearchStart(_ context.Context, id, discipline string) {
	h.Logger.Debug("search started", "id", id, "discipline", discipline)
}

func (h *LogHooks) OnSearchComplete(_ context.Context, id, discipline string, steps int, found bool) {
	h.Logger.Info("search finished", "id", id, "discipline", discipline, "steps", steps, "found", found)
}

func (h *LogHooks) OnWalkComplete(_ context.Context, id string, moves int) {
	h.Logger.Info("destination reached", "id", id, "moves", moves)
}
