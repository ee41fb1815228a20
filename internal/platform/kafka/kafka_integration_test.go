//go:build integration

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"ims/internal/platform/config"
	"ims/internal/platform/kafka"
	"ims/pkg/testutil/containers"
)

type ClientSuite struct {
	suite.Suite
	broker string
	client *kafka.Client
}

func TestClientSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := kafka.New(ctx, config.KafkaConfig{Brokers: []string{s.broker}})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *ClientSuite) TestEnsureTopicsIsIdempotent() {
	ctx := context.Background()
	s.Require().NoError(s.client.EnsureTopics(ctx, 1, 1, "ims.test.idempotent"))
	s.Require().NoError(s.client.EnsureTopics(ctx, 1, 1, "ims.test.idempotent"))
}

func (s *ClientSuite) TestPublishedRecordIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	const topic = "ims.test.notifications"
	s.Require().NoError(s.client.EnsureTopics(ctx, 1, 1, topic))
	s.Require().NoError(s.client.Publish(ctx, topic, []byte("customer:5"), []byte(`{"message":"hello"}`)))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	records := fetches.Records()
	s.Require().NotEmpty(records)
	s.Equal("customer:5", string(records[0].Key))
	s.JSONEq(`{"message":"hello"}`, string(records[0].Value))
}

func (s *ClientSuite) TestNoBrokersDisablesClient() {
	client, err := kafka.New(context.Background(), config.KafkaConfig{})
	s.Require().NoError(err)
	s.Nil(client)
}
