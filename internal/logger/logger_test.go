package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"rent-ledger-backend/internal/domain"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestExitMethodWithError(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	ExitMethodWithError("svc.Op", domain.NewValidationError("month", "is required"))
	assert.Contains(t, buf.String(), `"level":"WARN"`)

	buf.Reset()
	ExitMethodWithError("svc.Op", domain.ErrNotFoundOrForbidden)
	assert.Contains(t, buf.String(), `"level":"WARN"`)

	buf.Reset()
	ExitMethodWithError("svc.Op", &domain.TransientStoreError{Op: "get", Err: errors.New("down")})
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"method":"svc.Op"`)
}
