//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"worktime/internal/compliance/models"
	"worktime/internal/compliance/publisher"
	"worktime/internal/platform/config"
	"worktime/internal/platform/kafka"
	id "worktime/pkg/domain"
	"worktime/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	broker := containers.GetManager().GetRedpanda(t).Broker
	topic := "violations-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := kafka.New(config.KafkaConfig{
		Brokers:           []string{broker},
		ClientID:          "worktime-test",
		ViolationTopic:    topic,
		Partitions:        1,
		ReplicationFactor: 1,
	})
	require.NoError(t, err)
	defer client.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, client.EnsureTopics(ctx, logger, topic))
	require.NoError(t, client.EnsureTopics(ctx, logger, topic), "existing topic is not an error")
	require.NoError(t, client.Health(ctx))

	change := models.ViolationChange{
		Kind:       models.ChangeRaised,
		CompanyID:  id.CompanyID(uuid.New()),
		EmployeeID: id.EmployeeID(uuid.New()),
		Date:       id.DateOf(2024, time.March, 4),
		Code:       models.CodeMaxDailyHours,
		Severity:   "critical",
		Detected:   10.5,
		Threshold:  9,
		OccurredAt: time.Date(2024, 3, 5, 2, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.NewKafka(client, topic).Publish(ctx, []models.ViolationChange{change}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	var records []*kgo.Record
	for len(records) == 0 && ctx.Err() == nil {
		fetches := consumer.PollFetches(ctx)
		require.Empty(t, fetches.Errors())
		records = append(records, fetches.Records()...)
	}
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, change.EmployeeID.String(), string(rec.Key))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Value, &decoded))
	assert.Equal(t, "raised", decoded["kind"])
	assert.Equal(t, "MAX_DAILY_HOURS", decoded["rule_code"])
	assert.Equal(t, change.CompanyID.String(), decoded["company_id"])
	assert.InDelta(t, 10.5, decoded["detected_value"], 0.001)
}
