package xlog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDiscardDropsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		Discard.Tracef("prime=%d", 3)
		Discard.Debugf("prime=%d", 5)
	})
}

func TestStandardToWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	l := StandardTo(&buf)
	l.Debugf("step prime=%d", 7)
	out := buf.String()
	require.Contains(t, out, "step prime=7")
	require.Contains(t, out, `"pkg":"csidh"`)
}

func TestNewWrapsExistingLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(zerolog.New(&buf))
	l.Tracef("walk %s", "start")
	require.Contains(t, buf.String(), "walk start")
}
