package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode_WalksWrappedChain(t *testing.T) {
	cause := errors.New("connection reset")
	inner := Wrap(cause, CodeNotFound, "claim not found")
	outer := Wrap(fmt.Errorf("load: %w", inner), CodeInternal, "failed to adjudicate")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeForbidden))
	assert.ErrorIs(t, outer, cause)
	assert.Equal(t, CodeInternal, CodeOf(outer))
}

func TestIs_MatchesCodeAndMessage(t *testing.T) {
	err := New(CodeUnauthorized, "token has expired")
	require.ErrorIs(t, err, New(CodeUnauthorized, "token has expired"))
	assert.NotErrorIs(t, err, New(CodeUnauthorized, "invalid token"))
}

func TestUncodedErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, CodeInternal, CodeOf(plain))
	assert.False(t, HasCode(plain, CodeInternal))
	assert.Equal(t, "boom", MessageOf(plain))
	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeUnauthorized:      http.StatusUnauthorized,
		CodeForbidden:         http.StatusForbidden,
		CodeNotFound:          http.StatusNotFound,
		CodeInvalidTransition: http.StatusConflict,
		CodeValidation:        http.StatusBadRequest,
		CodeRateLimited:       http.StatusTooManyRequests,
		CodeDependencyFailure: http.StatusBadGateway,
		CodeInternal:          http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), code)
	}
}
