package domain

import "time"

// CartItem is a class placed in a shopping cart.
// OwnerID scopes the cart to one client session.
type CartItem struct {
	ID      string
	OwnerID string

	// Snapshot of the class at the moment it was added
	YogaClass YogaClass

	AddedAt time.Time
}

// ClassesFromCart flattens cart items into the list of class snapshots
func ClassesFromCart(items []*CartItem) []YogaClass {
	classes := make([]YogaClass, 0, len(items))
	for _, item := range items {
		classes = append(classes, item.YogaClass)
	}
	return classes
}

// CartItemIDs returns the ids of the given cart items
func CartItemIDs(items []*CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
