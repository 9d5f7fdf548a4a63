package ipc

import (
	"io"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRelayForwardsLinesInOrder(t *testing.T) {
	defer leaktest.Check(t)()

	core, logs := observer.New(zapcore.DebugLevel)
	pr, pw := io.Pipe()
	go relayLines(zap.New(core).Sugar(), pr)

	_, err := io.WriteString(pw, "worker starting\nloaded config\r\nworker ready\n")
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	require.Eventually(t, func() bool { return logs.Len() == 3 }, 5*time.Second, 10*time.Millisecond)

	var got []string
	for _, entry := range logs.All() {
		require.Equal(t, zapcore.InfoLevel, entry.Level)
		got = append(got, entry.Message)
	}
	require.Equal(t, []string{"worker starting", "loaded config", "worker ready"}, got)
}

func TestRelayForwardsFinalUnterminatedLine(t *testing.T) {
	defer leaktest.Check(t)()

	core, logs := observer.New(zapcore.DebugLevel)
	pr, pw := io.Pipe()
	go relayLines(zap.New(core).Sugar(), pr)

	_, err := io.WriteString(pw, "first\npartial last line")
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	require.Eventually(t, func() bool { return logs.Len() == 2 }, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, "partial last line", logs.All()[1].Message)
}

func TestRelayStopsOnReadError(t *testing.T) {
	defer leaktest.Check(t)()

	core, logs := observer.New(zapcore.DebugLevel)
	pr, pw := io.Pipe()
	done := make(chan struct{})
	go func() {
		relayLines(zap.New(core).Sugar(), pr)
		close(done)
	}()

	_, err := io.WriteString(pw, "one line\n")
	require.NoError(t, err)
	pw.CloseWithError(io.ErrClosedPipe)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not stop on read error")
	}
	require.Equal(t, 1, logs.Len(), "a read error ends the relay silently")
}
