package log

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	discard
	debug []string
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}

type failingCloser struct{}

func (failingCloser) Close() error {
	return errors.New("boom")
}

func TestSet(t *testing.T) {
	original := Log
	t.Cleanup(func() { Log = original })

	rec := &recordingLogger{}
	Set(rec)
	Debugf("resolved %q", "11-24h2-e")
	assert.Equal(t, []string{`resolved "11-24h2-e"`}, rec.debug)

	Set(nil)
	assert.IsType(t, discard{}, Log)
}

func TestCloseAndLogError(t *testing.T) {
	original := Log
	t.Cleanup(func() { Log = original })

	rec := &recordingLogger{}
	Set(rec)

	CloseAndLogError(nil, "nothing")
	CloseAndLogError(failingCloser{}, "tables.yaml")

	assert.Equal(t, []string{
		"no closer provided when attempting to close: nothing",
		"failed to close file: tables.yaml due to: boom",
	}, rec.debug)
}
