package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingserrors "roomly/internal/bookings/errors"
	"roomly/pkg/model"
)

func slot(name, date, start, end string, roomID int64) *model.Booking {
	return &model.Booking{
		CustomerName: name,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		RoomID:       roomID,
	}
}

// sameSlot treats any two bookings for the same room and date as clashing;
// the repository only guarantees atomicity, not the time rule itself.
func sameSlot(p, b *model.Booking) bool {
	return true
}

func never(p, b *model.Booking) bool {
	return false
}

func TestAdmit_AssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	b1, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), never)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	b2, err := repo.Admit(ctx, slot("Bob", "2026-09-02", "09:00", "10:00", 2), never)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}

	if b1.ID != 1 || b2.ID != 2 {
		t.Errorf("IDs = %d, %d; want 1, 2", b1.ID, b2.ID)
	}
	if b1.CreatedAt.IsZero() || b2.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped on admission")
	}
}

func TestAdmit_ConflictLeavesLedgerUntouched(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if _, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), never); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	_, err := repo.Admit(ctx, slot("Bob", "2026-09-01", "09:30", "10:30", 1), sameSlot)
	if !errors.Is(err, bookingserrors.ErrTimeConflict) {
		t.Fatalf("err = %v, want ErrTimeConflict", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ledger has %d bookings, want 1", len(all))
	}

	// A later admission must still get ID 2: rejected proposals never
	// consume identifiers.
	b, err := repo.Admit(ctx, slot("Bob", "2026-09-02", "09:00", "10:00", 1), never)
	if err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if b.ID != 2 {
		t.Errorf("ID after rejection = %d, want 2", b.ID)
	}
}

func TestAdmit_ConflictCheckScopedToRoomAndDate(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if _, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), sameSlot); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	// Even a conflict rule that clashes with everything cannot reach
	// bookings on another room or date.
	if _, err := repo.Admit(ctx, slot("Bob", "2026-09-01", "09:00", "10:00", 2), sameSlot); err != nil {
		t.Errorf("different room should not be checked: %v", err)
	}
	if _, err := repo.Admit(ctx, slot("Carol", "2026-09-02", "09:00", "10:00", 1), sameSlot); err != nil {
		t.Errorf("different date should not be checked: %v", err)
	}
}

func TestAdmit_ConcurrentProposalsSerialized(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	const attempts = 50

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), sameSlot)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
		} else if !errors.Is(err, bookingserrors.ErrTimeConflict) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if admitted != 1 {
		t.Errorf("%d concurrent proposals admitted, want exactly 1", admitted)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ledger has %d bookings, want 1", len(all))
	}
}

func TestFindByRoom_CreationOrder(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	for _, s := range [][2]string{{"11:00", "12:00"}, {"09:00", "10:00"}, {"10:00", "11:00"}} {
		if _, err := repo.Admit(ctx, slot("Alice", "2026-09-01", s[0], s[1], 1), never); err != nil {
			t.Fatalf("Admit: %v", err)
		}
	}
	if _, err := repo.Admit(ctx, slot("Bob", "2026-09-01", "09:00", "10:00", 2), never); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	bookings, err := repo.FindByRoom(ctx, 1)
	if err != nil {
		t.Fatalf("FindByRoom: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("got %d bookings, want 3", len(bookings))
	}
	for i, b := range bookings {
		if b.ID != int64(i+1) {
			t.Errorf("bookings[%d].ID = %d, want %d (creation order)", i, b.ID, i+1)
		}
	}
}

func TestFindByCustomer_ReturnsCopies(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if _, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), never); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	first, err := repo.FindByCustomer(ctx, "Alice")
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	first[0].CustomerName = "Mallory"

	second, err := repo.FindByCustomer(ctx, "Alice")
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("mutating a returned booking must not affect the ledger")
	}
}

func TestHasBookingOn(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	if _, err := repo.Admit(ctx, slot("Alice", "2026-09-01", "09:00", "10:00", 1), never); err != nil {
		t.Fatalf("Admit: %v", err)
	}

	tests := []struct {
		name   string
		roomID int64
		date   string
		want   bool
	}{
		{"booked date", 1, "2026-09-01", true},
		{"other date", 1, "2026-09-02", false},
		{"other room", 2, "2026-09-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasBookingOn(ctx, tt.roomID, tt.date)
			if err != nil {
				t.Fatalf("HasBookingOn: %v", err)
			}
			if got != tt.want {
				t.Errorf("HasBookingOn(%d, %s) = %v, want %v", tt.roomID, tt.date, got, tt.want)
			}
		})
	}
}
