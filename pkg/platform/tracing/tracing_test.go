package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"

	dErrors "ims/pkg/domain-errors"
	"ims/pkg/result"
)

func TestEndReturnsResultUnchanged(t *testing.T) {
	_, span := Start(context.Background(), "test", "op", attribute.Int64("id", 1))
	ok := End(span, result.OK(3, "done"))
	assert.Equal(t, 3, ok.Data)

	_, span = Start(context.Background(), "test", "op")
	failed := End(span, result.Failf[int](dErrors.CodeNotFound, "missing"))
	assert.Equal(t, dErrors.CodeNotFound, failed.Code())
	assert.Equal(t, "missing", failed.Message)
}
