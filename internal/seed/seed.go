package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type menuItemSeed struct {
	Name        string
	Description string
	PriceCents  int64
}

type restaurantSeed struct {
	Name  string
	Email string
	Items []menuItemSeed
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT / existence checks.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureUser(ctx, pool, "Demo User", "demo@example.com", "Password1"); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	restaurants := []restaurantSeed{
		{
			Name:  "Mama's Pizzeria",
			Email: "orders@mamaspizzeria.example.com",
			Items: []menuItemSeed{
				{Name: "Margherita", Description: "Tomato, mozzarella, basil", PriceCents: 1150},
				{Name: "Quattro Stagioni", Description: "Artichokes, ham, mushrooms, olives", PriceCents: 1450},
			},
		},
		{
			Name:  "Bento Box",
			Email: "hello@bentobox.example.com",
			Items: []menuItemSeed{
				{Name: "Salmon Teriyaki Bento", Description: "With rice, salad and miso soup", PriceCents: 1690},
				{Name: "Vegetable Gyoza", Description: "Six pan-fried dumplings", PriceCents: 650},
			},
		},
	}

	for _, r := range restaurants {
		if err := ensureRestaurant(ctx, pool, r); err != nil {
			return fmt.Errorf("ensure restaurant %s: %w", r.Name, err)
		}
	}

	return nil
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, name, email, string(hashed))
	return err
}

func ensureRestaurant(ctx context.Context, pool *pgxpool.Pool, r restaurantSeed) error {
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM restaurants WHERE name = $1 LIMIT 1`, r.Name).Scan(&id)
	if err != nil {
		if err := pool.QueryRow(ctx,
			`INSERT INTO restaurants (name, email) VALUES ($1, $2) RETURNING id::text`,
			r.Name, r.Email,
		).Scan(&id); err != nil {
			return err
		}
	}

	for _, item := range r.Items {
		const q = `
INSERT INTO menu_items (restaurant_id, name, description, price_cents)
SELECT $1, $2, $3, $4
WHERE NOT EXISTS (
    SELECT 1 FROM menu_items WHERE restaurant_id = $1 AND name = $2
)
`
		if _, err := pool.Exec(ctx, q, id, item.Name, item.Description, item.PriceCents); err != nil {
			return err
		}
	}
	return nil
}
