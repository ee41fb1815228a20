package paging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "ims/pkg/domain-errors"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("last partial page", func(t *testing.T) {
		page, err := Paginate(seq(25), 3, 10)
		require.NoError(t, err)
		assert.Equal(t, []int{21, 22, 23, 24, 25}, page.Items)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.PageNumber)
		assert.Equal(t, 10, page.PageSize)
	})

	t.Run("first full page", func(t *testing.T) {
		page, err := Paginate(seq(25), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, seq(10), page.Items)
	})

	t.Run("page beyond range is not found", func(t *testing.T) {
		_, err := Paginate(seq(25), 4, 10)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("empty input is not found", func(t *testing.T) {
		_, err := Paginate([]int{}, 1, 10)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("invalid page and size are validation failures", func(t *testing.T) {
		_, err := Paginate(seq(5), 0, 10)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		_, err = Paginate(seq(5), 1, 0)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("huge page number does not overflow", func(t *testing.T) {
		_, err := Paginate(seq(5), math.MaxInt, 10)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("result does not alias input", func(t *testing.T) {
		items := seq(3)
		page, err := Paginate(items, 1, 3)
		require.NoError(t, err)
		page.Items[0] = 99
		assert.Equal(t, 1, items[0])
	})
}
