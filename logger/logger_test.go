package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))

	log, err = New(true, true)
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "decorators", limit: 20, want: "decorators"},
		{name: "trimmed", in: "  spaced  ", limit: 20, want: "spaced"},
		{name: "cut", in: "abcdefgh", limit: 3, want: "abc..."},
		{name: "runes", in: "привет мир", limit: 6, want: "привет..."},
		{name: "zero limit", in: "anything", limit: 0, want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Truncate(tc.in, tc.limit))
		})
	}
}
