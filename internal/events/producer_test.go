package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/evgzln/iiko-transfer/internal/config"
	"github.com/evgzln/iiko-transfer/internal/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{w: w}

	number := "77"
	err := p.Publish(context.Background(), DeliveryStatusChanged{
		OrderID:  15,
		Number:   &number,
		Status:   domain.StatusOnWay,
		UserID:   3,
		IsMobile: true,
	})
	assert.NoError(t, err)
	assert.Len(t, w.msgs, 1)
	assert.Equal(t, "15", string(w.msgs[0].Key))

	var got DeliveryStatusChanged
	assert.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, domain.StatusOnWay, got.Status)
	assert.Equal(t, "77", *got.Number)
}

func TestPublishWithoutBrokers(t *testing.T) {
	p := New(&config.Config{})

	err := p.Publish(context.Background(), DeliveryStatusChanged{OrderID: 1, Status: domain.StatusWaiting})
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{w: w}

	assert.NoError(t, p.Close())
	assert.True(t, w.closed)
}
