package deliveryControllers

import "github.com/Big-pappi/sk-project/models"

// deliveryTransitions is the full set of rider-driven moves. Anything
// not listed here is rejected, including any move out of a terminal
// state (delivered, failed) and out of pending (pending leaves only via
// accept, which is a separate operation).
var deliveryTransitions = map[models.DeliveryStatus][]models.DeliveryStatus{
	models.DeliveryStatusAssigned:  {models.DeliveryStatusPickedUp},
	models.DeliveryStatusPickedUp:  {models.DeliveryStatusInTransit},
	models.DeliveryStatusInTransit: {models.DeliveryStatusDelivered, models.DeliveryStatusFailed},
}

// CanTransition reports whether a rider may move a delivery from one
// status to another.
func CanTransition(from, to models.DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// MirroredOrderStatus returns the order status implied by a delivery
// status change. Order and delivery rows only ever move in lockstep
// through this table.
//
// Assignment maps to picked_up on purpose: the customer-facing order
// shows movement as soon as a rider commits, while the delivery itself
// stays "assigned" until the physical pickup.
func MirroredOrderStatus(status models.DeliveryStatus) (models.OrderStatus, bool) {
	switch status {
	case models.DeliveryStatusAssigned:
		return models.OrderStatusPickedUp, true
	case models.DeliveryStatusPickedUp:
		return models.OrderStatusInTransit, true
	case models.DeliveryStatusDelivered:
		return models.OrderStatusDelivered, true
	case models.DeliveryStatusFailed:
		return models.OrderStatusCancelled, true
	default:
		return "", false
	}
}
