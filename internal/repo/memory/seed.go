package memory

import (
	"time"

	"github.com/regdesk/regdesk/internal/domain/registration"
)

// SeedDemo loads the demo records the dashboard ships with in dev. It is a
// no-op once the store has any content.
func (r *RegistrationsRepo) SeedDemo() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return
	}

	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	demo := []registration.Registration{
		{
			ID:               "REG-001",
			Kind:             registration.KindAttendee,
			Email:            "john@example.com",
			RegistrationDate: day("2025-01-15"),
			EmailStatus:      registration.StatusSent,
			Attendee: &registration.AttendeeDetails{
				FullName:         "John Doe",
				ContactNumber:    "+1-555-0101",
				EmergencyContact: "Jane Doe",
			},
		},
		{
			ID:               "REG-002",
			Kind:             registration.KindBusiness,
			Email:            "alice@techcorp.com",
			RegistrationDate: day("2025-01-14"),
			EmailStatus:      registration.StatusSent,
			Business: &registration.BusinessDetails{
				BusinessName:     "TechCorp Solutions",
				ContactPerson:    "Alice Johnson",
				Phone:            "+1-555-0102",
				BusinessCategory: "Technology",
				StaffCount:       5,
			},
		},
		{
			ID:               "REG-003",
			Kind:             registration.KindAttendee,
			Email:            "sarah@example.com",
			RegistrationDate: day("2025-01-13"),
			EmailStatus:      registration.StatusSent,
			Attendee: &registration.AttendeeDetails{
				FullName:         "Sarah Smith",
				ContactNumber:    "+1-555-0103",
				EmergencyContact: "Mike Smith",
			},
		},
		{
			ID:               "REG-004",
			Kind:             registration.KindBusiness,
			Email:            "bob@deliciouseats.com",
			RegistrationDate: day("2025-01-12"),
			EmailStatus:      registration.StatusPending,
			Business: &registration.BusinessDetails{
				BusinessName:     "Delicious Eats Catering",
				ContactPerson:    "Bob Wilson",
				Phone:            "+1-555-0104",
				BusinessCategory: "Food & Beverage",
				StaffCount:       8,
			},
		},
	}

	for _, reg := range demo {
		r.index[reg.ID] = len(r.items)
		r.items = append(r.items, reg)
	}
}
