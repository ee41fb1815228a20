// Package httputil writes the JSON envelope every endpoint answers with and
// decodes request bodies.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

const maxBodyBytes = 1 << 20

// Validatable is implemented by request bodies that check themselves after
// decoding.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by request bodies that trim or canonicalize
// fields before validation.
type Normalizable interface {
	Normalize()
}

// WriteJSON encodes v with status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError answers with the failure envelope. Internal errors never leak
// their message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := dErrors.MessageOf(err)
	if code == dErrors.CodeInternal {
		message = "internal server error"
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), result.Envelope{
		IsSuccess: false,
		Message:   message,
		Error:     string(code),
	})
}

// WriteResult renders r as an envelope: successStatus on success, the status
// for the error code otherwise.
func WriteResult[T any](w http.ResponseWriter, successStatus int, r result.Result[T]) {
	if !r.IsSuccess() {
		WriteError(w, r.Err)
		return
	}
	WriteJSON(w, successStatus, r.ToEnvelope())
}

// DecodeAndPrepare decodes the body into T, then runs Normalize and Validate
// when T implements them. On failure it writes the error response and
// returns false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			logger.WarnContext(ctx, "failed to decode request body", "request_id", requestID, "error", err)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if n, ok := any(&req).(Normalizable); ok {
		n.Normalize()
	}
	if v, ok := any(&req).(Validatable); ok {
		if err := v.Validate(); err != nil {
			WriteError(w, err)
			return nil, false
		}
	}
	return &req, true
}
