//go:build integration

package bucket_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ims/internal/ratelimit/store/bucket"
	"ims/pkg/testutil/containers"
)

type RedisBucketStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *bucket.RedisBucketStore
}

func TestRedisBucketStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisBucketStoreSuite))
}

func (s *RedisBucketStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = bucket.NewRedisBucketStore(s.redis.Client)
}

func (s *RedisBucketStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisBucketStoreSuite) TestAllowUpToLimit() {
	ctx := context.Background()
	for i := range 3 {
		res, err := s.store.Allow(ctx, "ims:rl:auth:10.0.0.1", 3, time.Minute)
		s.Require().NoError(err)
		s.True(res.Allowed)
		s.Equal(3-i-1, res.Remaining)
	}

	res, err := s.store.Allow(ctx, "ims:rl:auth:10.0.0.1", 3, time.Minute)
	s.Require().NoError(err)
	s.False(res.Allowed)
	s.Positive(res.RetryAfter)

	other, err := s.store.Allow(ctx, "ims:rl:auth:10.0.0.2", 3, time.Minute)
	s.Require().NoError(err)
	s.True(other.Allowed)
}

func (s *RedisBucketStoreSuite) TestResetClearsBudget() {
	ctx := context.Background()
	for range 2 {
		_, err := s.store.Allow(ctx, "ims:rl:write:10.0.0.3", 2, time.Minute)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.store.Reset(ctx, "ims:rl:write:10.0.0.3"))

	res, err := s.store.Allow(ctx, "ims:rl:write:10.0.0.3", 2, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
}

func (s *RedisBucketStoreSuite) TestConcurrentCallersShareOneBudget() {
	ctx := context.Background()
	var allowed atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			res, err := s.store.Allow(ctx, "ims:rl:auth:shared", 20, time.Minute)
			if err == nil && res.Allowed {
				allowed.Add(1)
			}
		})
	}
	wg.Wait()
	s.Equal(int32(20), allowed.Load())
}
