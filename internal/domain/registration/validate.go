package registration

import (
	"strconv"
	"strings"
	"unicode"
)

// Fields is the flat field set a submission form posts. Each kind reads only
// its own subset; unknown keys are ignored.
type Fields struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	ContactNumber    string `json:"contactNumber"`
	EmergencyContact string `json:"emergencyContact"`
	BusinessName     string `json:"businessName"`
	ContactPerson    string `json:"contactPerson"`
	Phone            string `json:"phone"`
	BusinessCategory string `json:"businessCategory"`
	StaffCount       string `json:"staffCount"`
}

// Validate applies the per-field rules for the given kind and returns a map of
// field name to message for every field that fails. An empty map means the
// submission is acceptable. Rules are independent per field and the function
// never errors on any input.
func Validate(kind Kind, f Fields) map[string]string {
	errs := map[string]string{}

	switch kind {
	case KindAttendee:
		if strings.TrimSpace(f.FullName) == "" {
			errs["fullName"] = "Full name is required"
		}
		if strings.TrimSpace(f.Email) == "" {
			errs["email"] = "Email is required"
		} else if !EmailLooksValid(f.Email) {
			errs["email"] = "Invalid email format"
		}
		if strings.TrimSpace(f.ContactNumber) == "" {
			errs["contactNumber"] = "Contact number is required"
		}
		if strings.TrimSpace(f.EmergencyContact) == "" {
			errs["emergencyContact"] = "Emergency contact is required"
		}

	case KindBusiness:
		if strings.TrimSpace(f.BusinessName) == "" {
			errs["businessName"] = "Business name is required"
		}
		if strings.TrimSpace(f.ContactPerson) == "" {
			errs["contactPerson"] = "Contact person name is required"
		}
		if strings.TrimSpace(f.Email) == "" {
			errs["email"] = "Email is required"
		} else if !EmailLooksValid(f.Email) {
			errs["email"] = "Invalid email format"
		}
		if strings.TrimSpace(f.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
		// missing and unknown category report the same message on purpose
		if !IsBusinessCategory(f.BusinessCategory) {
			errs["businessCategory"] = "Business category is required"
		}
		if n, err := strconv.Atoi(strings.TrimSpace(f.StaffCount)); err != nil || n <= 0 {
			errs["staffCount"] = "Expected staff count is required"
		}

	default:
		errs["type"] = "Registration type is required"
	}

	return errs
}

// EmailLooksValid is a basic shape check: exactly one @ with non-whitespace on
// both sides, and at least one dot after the @ with characters around it.
// Deliberately not RFC 5322.
func EmailLooksValid(email string) bool {
	if strings.ContainsFunc(email, unicode.IsSpace) {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")

	if local == "" || domain == "" {
		return false
	}

	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1
}
