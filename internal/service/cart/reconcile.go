package cart

import "orderahead/internal/domain"

// The functions in this file compute the next item list of a cart from its
// current one. They are pure and total: no I/O, no errors, defined for any
// input. All invariants of the stored document are restored here before the
// result reaches the store: no duplicate menu item, no zero-quantity line.

// mergeItems implements the create-or-add operation. The request is
// authoritative for which items remain: current lines not mentioned in the
// request are dropped. Requested lines with quantity > 0 are appended, and
// when a menu item appears both in the surviving current lines and in the
// request, the requested quantity wins. A requested line with quantity 0
// keeps an existing line alive at its old quantity but never creates one.
func mergeItems(current, requested []domain.CartItem) []domain.CartItem {
	mentioned := make(map[string]bool, len(requested))
	for _, it := range requested {
		mentioned[it.MenuItemID] = true
	}

	next := make([]domain.CartItem, 0, len(requested))
	for _, it := range current {
		if mentioned[it.MenuItemID] {
			next = append(next, it)
		}
	}
	for _, it := range requested {
		if it.Quantity > 0 {
			next = append(next, it)
		}
	}
	return dedupe(next)
}

// setQuantities implements the explicit quantity update. Each requested line
// sets the quantity of the matching current line; quantity 0 (or negative,
// clamped) removes it. Menu items not present in the cart are ignored, so
// this operation never introduces new lines. When the request mentions the
// same menu item twice, the last occurrence wins.
func setQuantities(current, requested []domain.CartItem) []domain.CartItem {
	wanted := make(map[string]int, len(requested))
	for _, it := range requested {
		qty := it.Quantity
		if qty < 0 {
			qty = 0
		}
		wanted[it.MenuItemID] = qty
	}

	next := make([]domain.CartItem, 0, len(current))
	for _, it := range current {
		qty, ok := wanted[it.MenuItemID]
		switch {
		case !ok:
			next = append(next, it)
		case qty > 0:
			next = append(next, domain.CartItem{MenuItemID: it.MenuItemID, Quantity: qty})
		}
	}
	return next
}

// dedupe collapses lines sharing a menu item: first occurrence keeps the
// position, last occurrence keeps the quantity.
func dedupe(items []domain.CartItem) []domain.CartItem {
	pos := make(map[string]int, len(items))
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if i, seen := pos[it.MenuItemID]; seen {
			out[i].Quantity = it.Quantity
			continue
		}
		pos[it.MenuItemID] = len(out)
		out = append(out, it)
	}
	return out
}
