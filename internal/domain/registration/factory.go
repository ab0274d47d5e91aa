package registration

import (
	"strconv"
	"strings"
	"time"
)

// NewFromFields builds a Registration from an already-validated field set.
// The caller owns identifier assignment; the store hands the id in so the
// derive-and-insert step stays one critical section.

func NewFromFields(id string, kind Kind, f Fields, now time.Time) (Registration, error) {
	r := Registration{
		ID:               id,
		Kind:             kind,
		Email:            strings.TrimSpace(f.Email),
		RegistrationDate: now,
		EmailStatus:      StatusPending,
	}

	switch kind {
	case KindAttendee:
		r.Attendee = &AttendeeDetails{
			FullName:         strings.TrimSpace(f.FullName),
			ContactNumber:    strings.TrimSpace(f.ContactNumber),
			EmergencyContact: strings.TrimSpace(f.EmergencyContact),
		}

	case KindBusiness:
		staff, _ := strconv.Atoi(strings.TrimSpace(f.StaffCount))
		r.Business = &BusinessDetails{
			BusinessName:     strings.TrimSpace(f.BusinessName),
			ContactPerson:    strings.TrimSpace(f.ContactPerson),
			Phone:            strings.TrimSpace(f.Phone),
			BusinessCategory: f.BusinessCategory,
			StaffCount:       staff,
		}

	default:
		return Registration{}, ErrUnknownKind
	}

	return r, nil
}
