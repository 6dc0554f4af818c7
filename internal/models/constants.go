package models

const (
	OrderStatusProcessing = "Food Processing"
	OrderStatusOutForDel  = "Out for Delivery"
	OrderStatusDelivered  = "Delivered"

	AssignmentStatusAssigned   = "Assigned"
	AssignmentStatusInProgress = "In Progress"
	AssignmentStatusCompleted  = "Completed"
	AssignmentStatusCancelled  = "Cancelled"

	MessageStatusPending  = "pending"
	MessageStatusResolved = "resolved"
)

// OrderStatuses lists the fulfillment stages in lifecycle order.
var OrderStatuses = []string{
	OrderStatusProcessing,
	OrderStatusOutForDel,
	OrderStatusDelivered,
}

var AssignmentStatuses = []string{
	AssignmentStatusAssigned,
	AssignmentStatusInProgress,
	AssignmentStatusCompleted,
	AssignmentStatusCancelled,
}

func IsOrderStatus(s string) bool {
	return contains(OrderStatuses, s)
}

func IsAssignmentStatus(s string) bool {
	return contains(AssignmentStatuses, s)
}

func IsMessageStatus(s string) bool {
	return s == MessageStatusPending || s == MessageStatusResolved
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
