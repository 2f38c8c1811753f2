package netlog

import (
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/netlog/target"
)

// Hook is a logrus hook that delivers each formatted entry through a
// network target. Entries are formatted by the hook's formatter and
// sent as-is; a failed send is returned from Fire and is not retried
// or queued.
type Hook struct {
	target    *target.NetworkTarget
	levels    []logrus.Level
	formatter logrus.Formatter
}

// NewHook wraps an already-opened target. With no levels given the
// hook fires on all levels.
func NewHook(t *target.NetworkTarget, levels ...logrus.Level) *Hook {
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &Hook{
		target:    t,
		levels:    levels,
		formatter: &logrus.TextFormatter{DisableColors: true},
	}
}

// SetFormatter replaces the formatter applied to entries before
// delivery.
func (h *Hook) SetFormatter(f logrus.Formatter) {
	h.formatter = f
}

// Levels returns the levels the hook fires on.
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire formats the entry and sends it through the target.
func (h *Hook) Fire(entry *logrus.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	_, err = h.target.Send(data)
	return err
}
