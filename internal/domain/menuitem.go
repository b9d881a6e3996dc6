package domain

import "time"

type MenuItem struct {
	ID           string    `json:"_id"`
	RestaurantID string    `json:"restaurant"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
