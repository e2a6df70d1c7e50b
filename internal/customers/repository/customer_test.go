package repository

import (
	"context"
	"testing"
)

func TestEnsure_CreatesOnFirstSight(t *testing.T) {
	repo := NewMemoryCustomerRepository()

	customer, err := repo.Ensure(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if customer.ID == "" {
		t.Error("new customer must get an ID")
	}
	if customer.Name != "Alice" {
		t.Errorf("Name = %q, want %q", customer.Name, "Alice")
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	repo := NewMemoryCustomerRepository()

	first, err := repo.Ensure(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	second, err := repo.Ensure(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("Ensure minted a new ID for an existing name: %q vs %q", first.ID, second.ID)
	}

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("directory holds %d customers, want 1", len(all))
	}
}

func TestEnsure_NamesMatchExactly(t *testing.T) {
	repo := NewMemoryCustomerRepository()

	variants := []string{"Alice", "alice", "Alice ", "ALICE"}
	for _, name := range variants {
		if _, err := repo.Ensure(context.Background(), name); err != nil {
			t.Fatalf("Ensure(%q): %v", name, err)
		}
	}

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != len(variants) {
		t.Errorf("got %d customers, want %d distinct records for distinct spellings", len(all), len(variants))
	}
}

func TestFindAll_CreationOrder(t *testing.T) {
	repo := NewMemoryCustomerRepository()

	names := []string{"Charlie", "Alice", "Bob"}
	for _, name := range names {
		if _, err := repo.Ensure(context.Background(), name); err != nil {
			t.Fatalf("Ensure(%q): %v", name, err)
		}
	}
	// Re-ensuring must not reorder.
	if _, err := repo.Ensure(context.Background(), "Charlie"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestFindAll_ReturnsCopies(t *testing.T) {
	repo := NewMemoryCustomerRepository()

	if _, err := repo.Ensure(context.Background(), "Alice"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	all[0].Name = "Mallory"

	again, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if again[0].Name != "Alice" {
		t.Error("mutating a returned customer leaked into the store")
	}
}
