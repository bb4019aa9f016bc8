package cart

import (
	"sync"
	"testing"

	"vitrine/pkg/domain"
)

func product(id int64, price float64) domain.Product {
	return domain.Product{ID: id, Title: "produto", Price: price}
}

func TestAddMergesQuantityForSameProduct(t *testing.T) {
	c := New()
	for i := 0; i < 5; i++ {
		c.Add(product(1, 10))
	}

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("entries = %d, want 1", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestRemoveThenAddStartsAtOne(t *testing.T) {
	c := New()
	c.Add(product(1, 10))
	c.Add(product(1, 10))
	c.Remove(1)
	c.Add(product(1, 10))

	items := c.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("items = %+v, want single entry with quantity 1", items)
	}
}

func TestRemoveAbsentIDIsNoop(t *testing.T) {
	c := New()
	c.Add(product(1, 10))
	c.Remove(99)
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestTotalIsRecomputed(t *testing.T) {
	c := New()
	c.Add(product(1, 10))
	c.Add(product(1, 10))
	c.Add(product(2, 5))

	if got := c.Total(); got != 25 {
		t.Fatalf("total = %v, want 25", got)
	}
	c.Remove(1)
	if got := c.Total(); got != 5 {
		t.Fatalf("total after remove = %v, want 5", got)
	}
}

func TestEntriesAreSnapshots(t *testing.T) {
	c := New()
	p := product(1, 10)
	c.Add(p)
	p.Price = 999
	p.Title = "alterado"

	items := c.Items()
	if items[0].Product.Price != 10 || items[0].Product.Title != "produto" {
		t.Fatalf("cart entry followed the caller's mutation: %+v", items[0].Product)
	}
}

func TestConcurrentAddsKeepInvariant(t *testing.T) {
	c := New()
	const adds = 50
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(product(1, 10))
		}()
	}
	wg.Wait()

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("entries = %d, want 1", len(items))
	}
	if items[0].Quantity != adds {
		t.Fatalf("quantity = %d, want %d", items[0].Quantity, adds)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.Add(product(1, 10))
	c.Add(product(2, 20))
	c.Clear()
	if c.Len() != 0 || c.Total() != 0 {
		t.Fatalf("cart not empty after clear: len=%d total=%v", c.Len(), c.Total())
	}
}
