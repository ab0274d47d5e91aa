package registration

import (
	"errors"
	"time"
)

type Kind string

const (
	KindAttendee Kind = "attendee"
	KindBusiness Kind = "business"
)

// check to see if the kind is a known constant

func (k Kind) IsValid() bool {
	switch k {
	case KindAttendee, KindBusiness:
		return true
	default:
		return false
	}
}

type EmailStatus string

const (
	StatusPending EmailStatus = "pending"
	StatusSent    EmailStatus = "sent"
	StatusFailed  EmailStatus = "failed"
)

func (s EmailStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	default:
		return false
	}
}

var (
	ErrNotFound    = errors.New("registration not found")
	ErrUnknownKind = errors.New("unknown registration kind")
)

// the fixed category set vendors pick from

var BusinessCategories = []string{
	"Technology",
	"Food & Beverage",
	"Fashion & Retail",
	"Health & Wellness",
	"Education",
	"Finance",
	"Entertainment",
	"Travel & Tourism",
	"Sports & Recreation",
	"Other",
}

func IsBusinessCategory(v string) bool {
	for _, c := range BusinessCategories {
		if c == v {
			return true
		}
	}
	return false
}

type AttendeeDetails struct {
	FullName         string `json:"fullName"`
	ContactNumber    string `json:"contactNumber"`
	EmergencyContact string `json:"emergencyContact"`
}

type BusinessDetails struct {
	BusinessName     string `json:"businessName"`
	ContactPerson    string `json:"contactPerson"`
	Phone            string `json:"phone"`
	BusinessCategory string `json:"businessCategory"`
	StaffCount       int    `json:"staffCount"`
}

// A Registration is a tagged union: exactly one of Attendee or Business is
// populated, matching Kind. The absent arm stays nil and is omitted from JSON.

type Registration struct {
	ID               string           `json:"id"`
	Kind             Kind             `json:"type"`
	Email            string           `json:"email"`
	RegistrationDate time.Time        `json:"registrationDate"`
	EmailStatus      EmailStatus      `json:"emailStatus"`
	Attendee         *AttendeeDetails `json:"attendee,omitempty"`
	Business         *BusinessDetails `json:"business,omitempty"`
}
