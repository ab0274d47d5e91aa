package mail

import (
	"strings"
	"testing"

	"github.com/regdesk/regdesk/internal/domain/registration"
)

func attendeeReg() registration.Registration {
	return registration.Registration{
		ID:          "REG-005",
		Kind:        registration.KindAttendee,
		Email:       "john@example.com",
		EmailStatus: registration.StatusPending,
		Attendee: &registration.AttendeeDetails{
			FullName:         "John Doe",
			ContactNumber:    "+1-555-0101",
			EmergencyContact: "Jane Doe",
		},
	}
}

func businessReg() registration.Registration {
	return registration.Registration{
		ID:          "REG-002",
		Kind:        registration.KindBusiness,
		Email:       "alice@techcorp.com",
		EmailStatus: registration.StatusPending,
		Business: &registration.BusinessDetails{
			BusinessName:     "TechCorp Solutions",
			ContactPerson:    "Alice Johnson",
			Phone:            "+1-555-0102",
			BusinessCategory: "Technology",
			StaffCount:       5,
		},
	}
}

func TestRenderAttendee(t *testing.T) {
	r, err := Render(attendeeReg())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if r.Subject != "Your Event Ticket - Registration #REG-005" {
		t.Fatalf("unexpected subject: %q", r.Subject)
	}

	for _, want := range []string{
		"REG-005",
		"John Doe",
		"john@example.com",
		"+1-555-0101",
		"Jane Doe",
		"save this registration ID",
	} {
		if !strings.Contains(r.HTMLBody, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestRenderBusiness(t *testing.T) {
	r, err := Render(businessReg())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if r.Subject != "Business Registration Confirmed - Stall Information & Guidelines #REG-002" {
		t.Fatalf("unexpected subject: %q", r.Subject)
	}

	for _, want := range []string{
		"REG-002",
		"TechCorp Solutions",
		"Alice Johnson",
		"alice@techcorp.com",
		"+1-555-0102",
		"Technology",
		"5",
		// static boilerplate, not derived from the record
		"Confirm Your Participation",
		"arrive 30 minutes early",
		"business licenses and documentation",
	} {
		if !strings.Contains(r.HTMLBody, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	first, err := Render(businessReg())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	second, err := Render(businessReg())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical renders")
	}
}

func TestRenderMissingDetails(t *testing.T) {
	reg := attendeeReg()
	reg.Attendee = nil

	if _, err := Render(reg); err != ErrMissingDetails {
		t.Fatalf("expected ErrMissingDetails, got %v", err)
	}

	breg := businessReg()
	breg.Business = nil

	if _, err := Render(breg); err != ErrMissingDetails {
		t.Fatalf("expected ErrMissingDetails, got %v", err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	reg := attendeeReg()
	reg.Kind = registration.Kind("vip")

	if _, err := Render(reg); err != registration.ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	reg := attendeeReg()
	reg.Attendee.FullName = `<script>alert("x")</script>`

	r, err := Render(reg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(r.HTMLBody, "<script>") {
		t.Fatalf("body contains unescaped markup")
	}
}
