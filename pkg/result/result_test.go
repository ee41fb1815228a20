package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "ims/pkg/domain-errors"
)

func TestResult(t *testing.T) {
	t.Run("ok carries data and message", func(t *testing.T) {
		r := OK(42, "done")
		assert.True(t, r.IsSuccess())
		assert.Equal(t, dErrors.Code(""), r.Code())

		env := r.ToEnvelope()
		assert.True(t, env.IsSuccess)
		assert.Equal(t, 42, env.Data)
		assert.Equal(t, "done", env.Message)
	})

	t.Run("fail takes the coded message", func(t *testing.T) {
		r := Fail[int](dErrors.Wrap(errors.New("db down"), dErrors.CodeDependencyFailure, "failed to add notifications"))
		assert.False(t, r.IsSuccess())
		assert.Equal(t, "failed to add notifications", r.Message)
		assert.Equal(t, dErrors.CodeDependencyFailure, r.Code())

		env := r.ToEnvelope()
		assert.False(t, env.IsSuccess)
		assert.Nil(t, env.Data)
		assert.Equal(t, "dependency_failure", env.Error)
	})

	t.Run("fail with nil error is still a failure", func(t *testing.T) {
		r := Fail[string](nil)
		assert.False(t, r.IsSuccess())
		assert.Equal(t, dErrors.CodeInternal, r.Code())
	})
}
