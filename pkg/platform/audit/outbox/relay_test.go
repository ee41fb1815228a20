package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ims/pkg/platform/audit/store/postgres"
)

type fakeSource struct {
	pending []postgres.Entry
	marked  []uuid.UUID
}

func (f *fakeSource) FetchPending(_ context.Context, limit int) ([]postgres.Entry, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeSource) MarkPublished(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	f.marked = append(f.marked, ids...)
	return nil
}

type fakeProducer struct {
	failOn int
	calls  int
	topics []string
}

func (f *fakeProducer) Publish(_ context.Context, topic string, _, _ []byte) error {
	f.calls++
	if f.failOn > 0 && f.calls == f.failOn {
		return errors.New("broker down")
	}
	f.topics = append(f.topics, topic)
	return nil
}

func entries(n int) []postgres.Entry {
	out := make([]postgres.Entry, n)
	for i := range out {
		out[i] = postgres.Entry{ID: uuid.New(), EventType: "claim_filed", Key: "k", Payload: []byte(`{}`)}
	}
	return out
}

func TestRelayOnce_PublishesAndMarks(t *testing.T) {
	src := &fakeSource{pending: entries(3)}
	prod := &fakeProducer{}
	r := NewRelay(src, prod, "ims.audit", WithBatchSize(2))

	n, err := r.RelayOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uuid.UUID{src.pending[0].ID, src.pending[1].ID}, src.marked)
	assert.Equal(t, []string{"ims.audit", "ims.audit"}, prod.topics)
}

func TestRelayOnce_StopsAtFirstFailure(t *testing.T) {
	src := &fakeSource{pending: entries(3)}
	prod := &fakeProducer{failOn: 2}
	r := NewRelay(src, prod, "ims.audit")

	n, err := r.RelayOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []uuid.UUID{src.pending[0].ID}, src.marked)
}
