package mail

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/regdesk/regdesk/internal/domain/registration"
)

// the registration carries no details arm for its kind; a caller bug,
// not a transient condition
var ErrMissingDetails = errors.New("registration is missing details for its kind")

type Rendered struct {
	Subject  string
	HTMLBody string
}

// Exactly two template shapes exist, one per registration kind. Rendering is
// pure and never fails for a well-formed record.

var attendeeTmpl = template.Must(template.New("attendee").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="background-color: #2563eb; color: white; padding: 20px; text-align: center;">
        <h1>Event Registration Confirmed</h1>
        <p>Your personalized ticket is ready</p>
      </div>
      <div style="background-color: #f8fafc; padding: 20px; border: 1px solid #e2e8f0;">
        <p>Hi <strong>{{.Details.FullName}}</strong>,</p>
        <p>Thank you for registering for our event! Your registration has been successfully processed.</p>
        <div style="background-color: white; padding: 20px; border-left: 4px solid #2563eb;">
          <h2 style="color: #2563eb;">Your Event Ticket</h2>
          <p><strong>Registration ID:</strong> {{.ID}}</p>
          <p><strong>Attendee Name:</strong> {{.Details.FullName}}</p>
          <p><strong>Email:</strong> {{.Email}}</p>
          <p><strong>Contact Number:</strong> {{.Details.ContactNumber}}</p>
          <p><strong>Emergency Contact:</strong> {{.Details.EmergencyContact}}</p>
        </div>
        <p style="background-color: #dbeafe; padding: 15px; border-left: 4px solid #2563eb;">
          <strong>Important:</strong> Please save this registration ID as it may be required for event check-in and any future correspondence about the event.
        </p>
        <p>We look forward to seeing you at the event!</p>
        <p style="text-align: center; color: #64748b; font-size: 12px;">This is an automated message. Please do not reply to this email.</p>
      </div>
    </div>
  </body>
</html>`))

var businessTmpl = template.Must(template.New("business").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="background-color: #7c3aed; color: white; padding: 20px; text-align: center;">
        <h1>Business Registration Confirmed</h1>
        <p>Welcome as an Event Vendor</p>
      </div>
      <div style="background-color: #f8fafc; padding: 20px; border: 1px solid #e2e8f0;">
        <p>Hi <strong>{{.Details.ContactPerson}}</strong>,</p>
        <p>Thank you for registering your business for our event! We're excited to have <strong>{{.Details.BusinessName}}</strong> as a vendor.</p>
        <div style="background-color: white; padding: 20px; border-left: 4px solid #7c3aed;">
          <h2 style="color: #7c3aed;">Business Registration Details</h2>
          <p><strong>Registration ID:</strong> {{.ID}}</p>
          <p><strong>Business Name:</strong> {{.Details.BusinessName}}</p>
          <p><strong>Contact Person:</strong> {{.Details.ContactPerson}}</p>
          <p><strong>Email:</strong> {{.Email}}</p>
          <p><strong>Phone:</strong> {{.Details.Phone}}</p>
          <p><strong>Business Category:</strong> {{.Details.BusinessCategory}}</p>
          <p><strong>Expected Staff Count:</strong> {{.Details.StaffCount}}</p>
        </div>
        <h3 style="color: #7c3aed;">Next Steps</h3>
        <ol>
          <li><strong>Confirm Your Participation:</strong> Reply to this email to confirm your attendance.</li>
          <li><strong>Setup Guidelines:</strong> Stall setup will begin on the day of the event. Please arrive 30 minutes early for optimal setup time.</li>
          <li><strong>Documentation:</strong> Keep your Registration ID handy for event check-in and reference.</li>
          <li><strong>Contact Information:</strong> Save our event coordinator details for any urgent queries.</li>
        </ol>
        <h3 style="color: #7c3aed;">Stall Information</h3>
        <p>Detailed stall allocation and dimensions will be sent separately. Please ensure you have:</p>
        <ul>
          <li>All required business licenses and documentation</li>
          <li>Insurance coverage if applicable</li>
          <li>Product samples or promotional materials ready</li>
          <li>Staff trained on event procedures</li>
        </ul>
        <p style="background-color: #dbeafe; padding: 15px; border-left: 4px solid #7c3aed;">
          <strong>Important:</strong> If you have any questions or need to make changes to your registration, please contact us as soon as possible using your Registration ID: <strong>{{.ID}}</strong>
        </p>
        <p>We look forward to your participation and making this event a great success!</p>
        <p style="text-align: center; color: #64748b; font-size: 12px;">This is an automated message. Please do not reply to this email for support.</p>
      </div>
    </div>
  </body>
</html>`))

// Render picks the template for the registration's kind and produces the
// subject and HTML body. It errors only when the union arm the kind requires
// is absent, which the dispatcher reports as malformed input.
func Render(reg registration.Registration) (Rendered, error) {
	switch reg.Kind {
	case registration.KindAttendee:
		if reg.Attendee == nil {
			return Rendered{}, ErrMissingDetails
		}

		body, err := execute(attendeeTmpl, struct {
			ID      string
			Email   string
			Details *registration.AttendeeDetails
		}{reg.ID, reg.Email, reg.Attendee})

		if err != nil {
			return Rendered{}, err
		}

		return Rendered{
			Subject:  fmt.Sprintf("Your Event Ticket - Registration #%s", reg.ID),
			HTMLBody: body,
		}, nil

	case registration.KindBusiness:
		if reg.Business == nil {
			return Rendered{}, ErrMissingDetails
		}

		body, err := execute(businessTmpl, struct {
			ID      string
			Email   string
			Details *registration.BusinessDetails
		}{reg.ID, reg.Email, reg.Business})

		if err != nil {
			return Rendered{}, err
		}

		return Rendered{
			Subject:  fmt.Sprintf("Business Registration Confirmed - Stall Information & Guidelines #%s", reg.ID),
			HTMLBody: body,
		}, nil

	default:
		return Rendered{}, registration.ErrUnknownKind
	}
}

func execute(t *template.Template, data any) (string, error) {
	var b strings.Builder

	if err := t.Execute(&b, data); err != nil {
		return "", err
	}

	return b.String(), nil
}
