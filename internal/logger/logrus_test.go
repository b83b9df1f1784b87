package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Structured:    true,
		Level:         logrus.WarnLevel,
		Console:       buf,
	})
	require.NoError(t, err)

	l.Infof("resolved %d labels", 3)
	l.Warnf("unrecognized operating system: %q", "eol-1")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, `unrecognized operating system: "eol-1"`, entry["msg"])
}

func TestLogrusLogger_Run(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Structured:    true,
		Level:         logrus.DebugLevel,
		Console:       buf,
	})
	require.NoError(t, err)

	l.Run().Debug("starting")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	run, ok := entry["run"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(run)
	assert.NoError(t, err)
}

func TestLogrusLogger_Nested(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Structured:    true,
		Level:         logrus.InfoLevel,
		Console:       buf,
	})
	require.NoError(t, err)

	l.Nested("family", "windows-11", "dangling").Info("matched")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "windows-11", entry["family"])
	assert.NotContains(t, entry, "dangling")
}

func TestNewLogrusLogger_File(t *testing.T) {
	location := filepath.Join(t.TempDir(), "osident.log")
	l, err := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		Level:        logrus.InfoLevel,
		FileLocation: location,
	})
	require.NoError(t, err)

	l.Info("written to file")

	contents, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "written to file")
}

func TestNewLogrusLogger_BadFile(t *testing.T) {
	_, err := NewLogrusLogger(LogrusConfig{
		EnableFile:   true,
		FileLocation: filepath.Join(t.TempDir(), "missing", "osident.log"),
	})
	assert.Error(t, err)
}

func TestLogrusNestedLogger_SetOutput(t *testing.T) {
	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	l, err := NewLogrusLogger(LogrusConfig{
		EnableConsole: true,
		Level:         logrus.InfoLevel,
		Console:       first,
	})
	require.NoError(t, err)

	nested := l.Run()
	assert.Equal(t, first, nested.Out())

	nested.SetOutput(second)
	l.Info("to the parent")
	nested.Info("to the child")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "to the parent")
	assert.Contains(t, second.String(), "to the child")
}
