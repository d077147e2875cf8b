package services

import (
	"context"
	"reflect"
	"testing"

	"storefront/models"
	"storefront/repositories"
)

func floatPtr(v float64) *float64 {
	return &v
}

func snapshot(id string, price *float64) models.ProductSnapshot {
	return models.ProductSnapshot{ID: id, Name: "Product " + id, Price: price}
}

func newTestStore(t *testing.T) (*CartStore, repositories.CartStorage) {
	t.Helper()
	storage := repositories.NewMemoryCartStorage()
	return NewCartStore(context.Background(), storage, "cart:test"), storage
}

func TestCartStore_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		add       []models.ProductSnapshot
		productID string
		wantCount int
		wantLen   int
	}{
		{
			name:      "first add yields quantity 1",
			add:       []models.ProductSnapshot{snapshot("a", floatPtr(10))},
			productID: "a",
			wantCount: 1,
			wantLen:   1,
		},
		{
			name: "repeated add increments quantity",
			add: []models.ProductSnapshot{
				snapshot("a", floatPtr(10)),
				snapshot("a", floatPtr(10)),
				snapshot("a", floatPtr(10)),
			},
			productID: "a",
			wantCount: 3,
			wantLen:   1,
		},
		{
			name: "distinct products get distinct entries",
			add: []models.ProductSnapshot{
				snapshot("a", floatPtr(10)),
				snapshot("b", floatPtr(5)),
			},
			productID: "b",
			wantCount: 1,
			wantLen:   2,
		},
		{
			name:      "product without ID is rejected",
			add:       []models.ProductSnapshot{snapshot("", floatPtr(10))},
			productID: "",
			wantCount: 0,
			wantLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()

			for _, p := range tt.add {
				store.AddItem(ctx, p)
			}

			if got := store.ItemCount(tt.productID); got != tt.wantCount {
				t.Errorf("ItemCount(%q) = %d, want %d", tt.productID, got, tt.wantCount)
			}
			if got := len(store.Items()); got != tt.wantLen {
				t.Errorf("len(Items()) = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestCartStore_AddItemPreservesPosition(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", floatPtr(5)))
	store.AddItem(ctx, snapshot("a", floatPtr(10)))

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items()) = %d, want 2", len(items))
	}
	if items[0].Product.ID != "a" || items[0].Quantity != 2 {
		t.Errorf("items[0] = {%s, %d}, want {a, 2}", items[0].Product.ID, items[0].Quantity)
	}
	if items[1].Product.ID != "b" || items[1].Quantity != 1 {
		t.Errorf("items[1] = {%s, %d}, want {b, 1}", items[1].Product.ID, items[1].Quantity)
	}
}

func TestCartStore_RemoveItem(t *testing.T) {
	tests := []struct {
		name      string
		addTimes  int
		removeID  string
		wantCount int
		wantLen   int
	}{
		{
			name:      "quantity above one decrements",
			addTimes:  3,
			removeID:  "a",
			wantCount: 2,
			wantLen:   1,
		},
		{
			name:      "quantity of one removes the entry",
			addTimes:  1,
			removeID:  "a",
			wantCount: 0,
			wantLen:   0,
		},
		{
			name:      "absent ID is a no-op",
			addTimes:  2,
			removeID:  "missing",
			wantCount: 2,
			wantLen:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()

			for i := 0; i < tt.addTimes; i++ {
				store.AddItem(ctx, snapshot("a", floatPtr(10)))
			}

			store.RemoveItem(ctx, tt.removeID)

			if got := store.ItemCount("a"); got != tt.wantCount {
				t.Errorf("ItemCount(a) = %d, want %d", got, tt.wantCount)
			}
			if got := len(store.Items()); got != tt.wantLen {
				t.Errorf("len(Items()) = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestCartStore_RemoveItemAbsentLeavesSequenceUnchanged(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", floatPtr(5)))

	before := store.Items()
	store.RemoveItem(ctx, "missing")
	after := store.Items()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("sequence changed after removing absent ID: before %v, after %v", before, after)
	}
}

func TestCartStore_ClearCart(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", floatPtr(5)))
	store.ClearCart(ctx)

	if got := store.Items(); len(got) != 0 {
		t.Errorf("Items() after ClearCart = %v, want empty", got)
	}
	if got := store.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice() after ClearCart = %v, want 0", got)
	}
}

func TestCartStore_TotalPrice(t *testing.T) {
	tests := []struct {
		name string
		add  []models.ProductSnapshot
		want float64
	}{
		{
			name: "empty cart",
			add:  nil,
			want: 0,
		},
		{
			name: "sums price times quantity",
			add: []models.ProductSnapshot{
				snapshot("a", floatPtr(10)),
				snapshot("b", floatPtr(5)),
				snapshot("a", floatPtr(10)),
			},
			want: 25,
		},
		{
			name: "missing price counts as zero",
			add: []models.ProductSnapshot{
				snapshot("a", floatPtr(10)),
				snapshot("b", nil),
				snapshot("b", nil),
			},
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			ctx := context.Background()

			for _, p := range tt.add {
				store.AddItem(ctx, p)
			}

			if got := store.TotalPrice(); got != tt.want {
				t.Errorf("TotalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCartStore_ItemsIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", floatPtr(5)))

	first := store.Items()
	second := store.Items()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two Items() calls without mutation differ: %v vs %v", first, second)
	}
}

func TestCartStore_ItemsSnapshotIsDetached(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))

	items := store.Items()
	items[0].Quantity = 99

	if got := store.ItemCount("a"); got != 1 {
		t.Errorf("mutating the snapshot leaked into the store: ItemCount(a) = %d, want 1", got)
	}
}

func TestCartStore_EndToEnd(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", floatPtr(5)))
	store.AddItem(ctx, snapshot("a", floatPtr(10)))

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("len(Items()) = %d, want 2", len(items))
	}
	if items[0].Product.ID != "a" || items[0].Quantity != 2 {
		t.Errorf("items[0] = {%s, %d}, want {a, 2}", items[0].Product.ID, items[0].Quantity)
	}
	if items[1].Product.ID != "b" || items[1].Quantity != 1 {
		t.Errorf("items[1] = {%s, %d}, want {b, 1}", items[1].Product.ID, items[1].Quantity)
	}
	if got := store.TotalPrice(); got != 25 {
		t.Errorf("TotalPrice() = %v, want 25", got)
	}
	if got := store.ItemCount("a"); got != 2 {
		t.Errorf("ItemCount(a) = %d, want 2", got)
	}
}

func TestCartStore_PersistenceRoundTrip(t *testing.T) {
	storage := repositories.NewMemoryCartStorage()
	ctx := context.Background()

	store := NewCartStore(ctx, storage, "cart:roundtrip")
	store.AddItem(ctx, snapshot("a", floatPtr(10)))
	store.AddItem(ctx, snapshot("b", nil))
	store.AddItem(ctx, snapshot("a", floatPtr(10)))

	// Simulated restart: a fresh store reading the same storage key.
	restored := NewCartStore(ctx, storage, "cart:roundtrip")

	if !reflect.DeepEqual(store.Items(), restored.Items()) {
		t.Errorf("restored items differ: %v vs %v", store.Items(), restored.Items())
	}
	if got := restored.ItemCount("a"); got != 2 {
		t.Errorf("restored ItemCount(a) = %d, want 2", got)
	}
	if got := restored.TotalPrice(); got != 20 {
		t.Errorf("restored TotalPrice() = %v, want 20", got)
	}
}

func TestCartStore_LoadMissingKeyYieldsEmptyCart(t *testing.T) {
	storage := repositories.NewMemoryCartStorage()

	store := NewCartStore(context.Background(), storage, "cart:never-seen")

	if got := store.Items(); len(got) != 0 {
		t.Errorf("Items() = %v, want empty", got)
	}
}
