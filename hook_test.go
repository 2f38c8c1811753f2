package netlog

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/netlog/target"
)

func TestHookDeliversFormattedEntry(t *testing.T) {
	pc, port := udpCollector(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(NewHook(openUDPTarget(t, port)))

	logger.WithField("job", "backup").Warn("disk almost full")

	got := string(readDatagram(t, pc))
	assert.Contains(t, got, "disk almost full")
	assert.Contains(t, got, "job=backup")
}

func TestHookLevelFilter(t *testing.T) {
	pc, port := udpCollector(t)

	hook := NewHook(openUDPTarget(t, port), logrus.ErrorLevel)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	// Below the hook's level: logrus never fires the hook.
	logger.Info("not delivered")
	logger.Error("boom")

	got := string(readDatagram(t, pc))
	assert.Contains(t, got, "boom")
	assert.NotContains(t, got, "not delivered")
}

func TestHookDefaultLevels(t *testing.T) {
	_, port := udpCollector(t)

	hook := NewHook(openUDPTarget(t, port))
	assert.Equal(t, logrus.AllLevels, hook.Levels())
}

func TestHookCustomFormatter(t *testing.T) {
	pc, port := udpCollector(t)

	hook := NewHook(openUDPTarget(t, port))
	hook.SetFormatter(&logrus.JSONFormatter{})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	logger.Info("structured")

	got := string(readDatagram(t, pc))
	assert.Contains(t, got, `"msg":"structured"`)
}

func TestHookFireSendFailure(t *testing.T) {
	// A hook on a never-opened target reports the send failure from
	// Fire instead of dropping it silently.
	hook := NewHook(target.New("127.0.0.1", "514"))

	entry := logrus.NewEntry(logrus.New())
	entry.Message = "unreachable"
	entry.Level = logrus.InfoLevel

	require.Error(t, hook.Fire(entry))
}
