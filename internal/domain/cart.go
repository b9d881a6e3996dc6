package domain

import "time"

// Cart is the per-user document holding selected menu items. A user has at
// most one cart; Items never contains a zero-quantity line or two lines
// sharing a menu item.
type Cart struct {
	ID        string     `json:"_id"`
	UserID    string     `json:"user"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	MenuItemID string `json:"menuItem"`
	Quantity   int    `json:"quantity"`
}
