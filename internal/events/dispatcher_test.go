package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_DeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(EventTenantApproved, func(_ context.Context, event Event) error {
		seen = append(seen, event.SubjectID)
		return nil
	})
	d.Subscribe(EventComplaintCreated, func(_ context.Context, event Event) error {
		t.Errorf("unexpected delivery for %s", event.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTenantApproved, SubjectID: "tenant-1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"tenant-1"}, seen)
}

func TestDispatcher_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()

	delivered := 0
	d.Subscribe(EventTenantRejected, func(_ context.Context, _ Event) error {
		delivered++
		return errors.New("boom")
	})
	d.Subscribe(EventTenantRejected, func(_ context.Context, _ Event) error {
		delivered++
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTenantRejected})
	assert.NoError(t, err)
	assert.Equal(t, 2, delivered)
}
