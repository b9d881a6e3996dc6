package cart

import (
	"testing"

	"orderahead/internal/domain"
)

func items(pairs ...interface{}) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.CartItem{
			MenuItemID: pairs[i].(string),
			Quantity:   pairs[i+1].(int),
		})
	}
	return out
}

func assertItems(t *testing.T, got, want []domain.CartItem) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func assertInvariants(t *testing.T, got []domain.CartItem) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range got {
		if seen[it.MenuItemID] {
			t.Fatalf("duplicate menu item %s in %+v", it.MenuItemID, got)
		}
		seen[it.MenuItemID] = true
		if it.Quantity < 1 {
			t.Fatalf("non-positive quantity for %s in %+v", it.MenuItemID, got)
		}
	}
}

func TestMergeItemsDropsUnrequestedLines(t *testing.T) {
	got := mergeItems(items("A", 2, "B", 1), items("A", 1, "C", 4))
	assertItems(t, got, items("A", 1, "C", 4))
	assertInvariants(t, got)
}

func TestMergeItemsRequestQuantityWins(t *testing.T) {
	got := mergeItems(items("A", 2), items("A", 7))
	assertItems(t, got, items("A", 7))
}

func TestMergeItemsZeroQuantityKeepsExistingLine(t *testing.T) {
	// A zero-quantity request line retains the current line untouched
	// but never creates one.
	got := mergeItems(items("A", 2), items("A", 0, "B", 0))
	assertItems(t, got, items("A", 2))
	assertInvariants(t, got)
}

func TestMergeItemsOnEmptyCart(t *testing.T) {
	got := mergeItems(nil, items("A", 2, "B", 0))
	assertItems(t, got, items("A", 2))
	assertInvariants(t, got)
}

func TestMergeItemsEmptyRequestEmptiesCart(t *testing.T) {
	got := mergeItems(items("A", 2, "B", 3), nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestMergeItemsDuplicateRequestLastWins(t *testing.T) {
	got := mergeItems(nil, items("A", 1, "A", 5))
	assertItems(t, got, items("A", 5))
}

func TestMergeItemsIdempotent(t *testing.T) {
	current := items("A", 2, "B", 1)
	request := items("A", 3, "C", 4)
	once := mergeItems(current, request)
	twice := mergeItems(once, request)
	assertItems(t, twice, once)
	assertInvariants(t, twice)
}

func TestSetQuantitiesReplaces(t *testing.T) {
	got := setQuantities(items("A", 2, "B", 3), items("A", 5))
	assertItems(t, got, items("A", 5, "B", 3))
	assertInvariants(t, got)
}

func TestSetQuantitiesZeroRemoves(t *testing.T) {
	got := setQuantities(items("A", 2, "B", 3), items("A", 0))
	assertItems(t, got, items("B", 3))
	assertInvariants(t, got)
}

func TestSetQuantitiesNegativeClampedToRemoval(t *testing.T) {
	got := setQuantities(items("A", 2), items("A", -4))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSetQuantitiesIgnoresUnknownRefs(t *testing.T) {
	got := setQuantities(items("A", 2), items("C", 5))
	assertItems(t, got, items("A", 2))
}

func TestSetQuantitiesDuplicateRequestLastWins(t *testing.T) {
	got := setQuantities(items("A", 2), items("A", 9, "A", 4))
	assertItems(t, got, items("A", 4))
}

func TestSetQuantitiesNeverAddsLines(t *testing.T) {
	got := setQuantities(nil, items("A", 3))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
