// Package contact validates and echoes contact-form submissions.
// Nothing is delivered or stored; a successful submission returns the
// submitted values for the confirmation summary.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var (
	// ErrMissingField is returned when a required field is blank.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownSubject is returned when the subject is not offered by the form.
	ErrUnknownSubject = errors.New("unknown subject")
)

// DefaultSubject is used when a submission leaves the subject empty.
const DefaultSubject = "General Inquiry"

// Banner texts shown after a submission.
const (
	MissingFieldsMessage = "Please fill in all required fields."
	SuccessMessage       = "Thank you your message has been submitted successfully"
)

// DefaultSubjects returns the subjects the form offers, in display order.
func DefaultSubjects() []string {
	return []string{DefaultSubject, "Research Collaboration", "Data Request", "Other"}
}

// FieldError names one blank required field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// Form is one submission as typed by the visitor.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Echo is the confirmation of an accepted submission.
type Echo struct {
	ReceiptID string `json:"receiptId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Lines renders the confirmation summary.
func (e *Echo) Lines() []string {
	return []string{
		"Name: " + e.Name,
		"Email: " + e.Email,
		"Subject: " + e.Subject,
		"Message: " + e.Message,
	}
}

// Desk accepts submissions for a fixed subject list.
type Desk struct {
	subjects []string
	newID    func() string
}

// NewDesk returns a Desk offering subjects. With no subjects it offers
// DefaultSubjects.
func NewDesk(subjects ...string) *Desk {
	if len(subjects) == 0 {
		subjects = DefaultSubjects()
	}
	return &Desk{
		subjects: append([]string(nil), subjects...),
		newID:    func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Subjects returns the subjects this desk offers.
func (d *Desk) Subjects() []string {
	return append([]string(nil), d.subjects...)
}

// Submit validates a form. Every blank required field is reported; the
// returned error matches ErrMissingField and multierr.Errors splits it into
// one *FieldError per field. Accepted values are echoed unchanged.
func (d *Desk) Submit(form Form) (*Echo, error) {
	var err error
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"message", form.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			err = multierr.Append(err, &FieldError{Field: f.name})
		}
	}
	if err != nil {
		return nil, err
	}

	subject := form.Subject
	if strings.TrimSpace(subject) == "" {
		subject = d.subjects[0]
	}
	if !d.offers(subject) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubject, subject)
	}

	return &Echo{
		ReceiptID: d.newID(),
		Name:      form.Name,
		Email:     form.Email,
		Subject:   subject,
		Message:   form.Message,
	}, nil
}

func (d *Desk) offers(subject string) bool {
	for _, s := range d.subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Submit validates a form against the default subjects.
func Submit(form Form) (*Echo, error) {
	return NewDesk().Submit(form)
}
