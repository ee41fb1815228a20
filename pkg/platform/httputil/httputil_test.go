package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) result.Envelope {
	t.Helper()
	var env result.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func TestWriteError(t *testing.T) {
	t.Run("internal error hides message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.Wrap(errors.New("pq: connection refused"), dErrors.CodeInternal, "db failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.IsSuccess)
		assert.Equal(t, "internal_error", env.Error)
		assert.Equal(t, "internal server error", env.Message)
	})

	t.Run("validation error keeps message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeValidation, "claim id must be positive"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "validation_error", env.Error)
		assert.Equal(t, "claim id must be positive", env.Message)
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInvalidTransition, "policy request is no longer pending"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWriteResult(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResult(w, http.StatusCreated, result.OK(42, "created"))

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, float64(42), env.Data)
	assert.Equal(t, "created", env.Message)

	w = httptest.NewRecorder()
	WriteResult(w, http.StatusOK, result.Failf[int](dErrors.CodeNotFound, "no claims found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type body struct {
	Name string `json:"name"`
}

func (b *body) Normalize() { b.Name = strings.TrimSpace(b.Name) }

func (b *body) Validate() error {
	if b.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	decode := func(raw string) (*body, *httptest.ResponseRecorder, bool) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(raw))
		got, ok := DecodeAndPrepare[body](w, r, logger, context.Background(), "req-1")
		return got, w, ok
	}

	got, _, ok := decode(`{"name":"  Ada  "}`)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Name)

	_, w, ok := decode(`{bad`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request", decodeEnvelope(t, w).Error)

	_, w, ok = decode(`{"name":"   "}`)
	assert.False(t, ok)
	assert.Equal(t, "validation_error", decodeEnvelope(t, w).Error)

	_, w, ok = decode(`{"name":"x","extra":1}`)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
