package deliveryControllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	deliveryControllers "github.com/Big-pappi/sk-project/controllers/delivery"
	"github.com/Big-pappi/sk-project/models"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from, to models.DeliveryStatus
	}{
		{models.DeliveryStatusAssigned, models.DeliveryStatusPickedUp},
		{models.DeliveryStatusPickedUp, models.DeliveryStatusInTransit},
		{models.DeliveryStatusInTransit, models.DeliveryStatusDelivered},
		{models.DeliveryStatusInTransit, models.DeliveryStatusFailed},
	}
	for _, tc := range allowed {
		assert.True(t, deliveryControllers.CanTransition(tc.from, tc.to),
			"%s -> %s should be allowed", tc.from, tc.to)
	}

	rejected := []struct {
		from, to models.DeliveryStatus
	}{
		// pending leaves only via accept
		{models.DeliveryStatusPending, models.DeliveryStatusAssigned},
		{models.DeliveryStatusPending, models.DeliveryStatusPickedUp},
		// no skipping steps
		{models.DeliveryStatusAssigned, models.DeliveryStatusInTransit},
		{models.DeliveryStatusAssigned, models.DeliveryStatusDelivered},
		{models.DeliveryStatusPickedUp, models.DeliveryStatusDelivered},
		// no going backwards
		{models.DeliveryStatusPickedUp, models.DeliveryStatusAssigned},
		{models.DeliveryStatusInTransit, models.DeliveryStatusPickedUp},
		// terminal states stay terminal
		{models.DeliveryStatusDelivered, models.DeliveryStatusInTransit},
		{models.DeliveryStatusDelivered, models.DeliveryStatusFailed},
		{models.DeliveryStatusFailed, models.DeliveryStatusInTransit},
		// failing early is not allowed
		{models.DeliveryStatusAssigned, models.DeliveryStatusFailed},
		{models.DeliveryStatusPickedUp, models.DeliveryStatusFailed},
	}
	for _, tc := range rejected {
		assert.False(t, deliveryControllers.CanTransition(tc.from, tc.to),
			"%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestCanTransition_SelfLoops(t *testing.T) {
	all := []models.DeliveryStatus{
		models.DeliveryStatusPending,
		models.DeliveryStatusAssigned,
		models.DeliveryStatusPickedUp,
		models.DeliveryStatusInTransit,
		models.DeliveryStatusDelivered,
		models.DeliveryStatusFailed,
	}
	for _, s := range all {
		assert.False(t, deliveryControllers.CanTransition(s, s))
	}
}

func TestMirroredOrderStatus(t *testing.T) {
	cases := []struct {
		delivery models.DeliveryStatus
		order    models.OrderStatus
	}{
		{models.DeliveryStatusAssigned, models.OrderStatusPickedUp},
		{models.DeliveryStatusPickedUp, models.OrderStatusInTransit},
		{models.DeliveryStatusDelivered, models.OrderStatusDelivered},
		{models.DeliveryStatusFailed, models.OrderStatusCancelled},
	}
	for _, tc := range cases {
		got, ok := deliveryControllers.MirroredOrderStatus(tc.delivery)
		assert.True(t, ok)
		assert.Equal(t, tc.order, got)
	}

	_, ok := deliveryControllers.MirroredOrderStatus(models.DeliveryStatusPending)
	assert.False(t, ok)
	_, ok = deliveryControllers.MirroredOrderStatus(models.DeliveryStatusInTransit)
	assert.False(t, ok)
}
