package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"dimcalc/internal/logger"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	prod := logger.New("prod", &buf)
	require.False(t, prod.Enabled(context.Background(), slog.LevelDebug))
	require.True(t, prod.Enabled(context.Background(), slog.LevelInfo))

	dev := logger.New("dev", &buf)
	require.True(t, dev.Enabled(context.Background(), slog.LevelDebug))

	dev.Info("hi")
	require.Contains(t, buf.String(), `"app":"dimcalc"`)
}
