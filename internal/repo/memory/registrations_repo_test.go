package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/regdesk/regdesk/internal/domain/registration"
)

func attendeeFields(name string) registration.Fields {
	return registration.Fields{
		FullName:         name,
		Email:            "john@example.com",
		ContactNumber:    "+1-555-0101",
		EmergencyContact: "Jane Doe",
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewRegistrationsRepo()

	for i := 1; i <= 12; i++ {
		reg, err := repo.Create(registration.KindAttendee, attendeeFields("John Doe"))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}

		want := fmt.Sprintf("REG-%03d", i)
		if reg.ID != want {
			t.Fatalf("expected id %s, got %s", want, reg.ID)
		}
		if reg.EmailStatus != registration.StatusPending {
			t.Fatalf("expected pending status, got %s", reg.EmailStatus)
		}
	}
}

func TestCreateFifthRegistration(t *testing.T) {
	repo := NewRegistrationsRepo()
	repo.SeedDemo() // four demo records

	reg, err := repo.Create(registration.KindAttendee, registration.Fields{
		FullName:         "John Doe",
		Email:            "john@example.com",
		ContactNumber:    "+1-555-0101",
		EmergencyContact: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if reg.ID != "REG-005" {
		t.Fatalf("expected REG-005, got %s", reg.ID)
	}
	if reg.EmailStatus != registration.StatusPending {
		t.Fatalf("expected pending, got %s", reg.EmailStatus)
	}
}

func TestCreateUnknownKind(t *testing.T) {
	repo := NewRegistrationsRepo()

	if _, err := repo.Create(registration.Kind("vip"), registration.Fields{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	if repo.Count() != 0 {
		t.Fatalf("store should be unchanged, got count %d", repo.Count())
	}
}

func TestCreateConcurrentNoDuplicateIDs(t *testing.T) {
	repo := NewRegistrationsRepo()

	const n = 100

	var wg sync.WaitGroup
	ids := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg, err := repo.Create(registration.KindAttendee, attendeeFields("Racer"))
			if err != nil {
				t.Error(err)
				return
			}
			ids <- reg.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id assigned: %s", id)
		}
		seen[id] = true
	}

	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewRegistrationsRepo()

	for i := 0; i < 5; i++ {
		if _, err := repo.Create(registration.KindAttendee, attendeeFields("John Doe")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	regs := repo.List()

	for i, reg := range regs {
		want := fmt.Sprintf("REG-%03d", i+1)
		if reg.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, reg.ID)
		}
	}

	// a second read without mutation yields the same listing
	again := repo.List()
	if len(again) != len(regs) {
		t.Fatalf("expected identical listings, got %d then %d", len(regs), len(again))
	}
	for i := range regs {
		if regs[i].ID != again[i].ID || regs[i].EmailStatus != again[i].EmailStatus {
			t.Fatalf("listing changed between reads at position %d", i)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := NewRegistrationsRepo()

	reg, err := repo.Create(registration.KindAttendee, attendeeFields("John Doe"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateStatus(reg.ID, registration.StatusSent); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(reg.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EmailStatus != registration.StatusSent {
		t.Fatalf("expected sent, got %s", got.EmailStatus)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	repo := NewRegistrationsRepo()

	if err := repo.UpdateStatus("REG-999", registration.StatusSent); err != registration.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	repo := NewRegistrationsRepo()

	reg, _ := repo.Create(registration.KindAttendee, attendeeFields("John Doe"))

	if err := repo.UpdateStatus(reg.ID, registration.EmailStatus("bounced")); err == nil {
		t.Fatalf("expected error for invalid status")
	}
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewRegistrationsRepo()

	if _, err := repo.GetByID("REG-001"); err != registration.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	repo := NewRegistrationsRepo()

	repo.SeedDemo()
	repo.SeedDemo()

	if repo.Count() != 4 {
		t.Fatalf("expected 4 demo records, got %d", repo.Count())
	}
}
