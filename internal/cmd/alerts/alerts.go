// Package alerts describes the status lines toolshelf commands print about
// the catalog and document they touched.
package alerts

import (
	stderrors "errors"
	"fmt"

	"github.com/agentstation/toolshelf/pkg/errors"
)

// Alert is one status line plus optional detail lines. Subject names the
// file or record the alert is about.
type Alert struct {
	Level   Level
	Message string
	Subject string
	Details []string
	Err     error
}

// New creates an alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates an error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates an info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// FromError turns a failed command into an error alert. Failures caused by
// the catalog or document get a headline and a hint on fixing the input.
func FromError(err error) *Alert {
	a := NewError(headline(err)).WithError(err)
	if hint := hint(err); hint != "" {
		a.Details = append(a.Details, hint)
	}
	return a
}

func headline(err error) string {
	switch {
	case errors.IsMalformedInput(err):
		return "catalog is malformed"
	case errors.IsMarkersNotFound(err):
		return "document has no generated section"
	case errors.IsMissingField(err):
		return "catalog record is incomplete"
	case stderrors.Is(err, errors.ErrUnsupportedSortKey), stderrors.Is(err, errors.ErrInvalidSortOrder):
		return "invalid sort request"
	default:
		return "command failed"
	}
}

func hint(err error) string {
	var markers *errors.MarkersNotFoundError
	if stderrors.As(err, &markers) {
		return fmt.Sprintf("add %s and %s to the document", markers.Start, markers.End)
	}
	var home *errors.MissingHomeLinkError
	if stderrors.As(err, &home) {
		return fmt.Sprintf("add a link named \"home\" to %q", home.Record)
	}
	if errors.IsMalformedInput(err) {
		return "the catalog must be a JSON array of objects with a non-blank string name"
	}
	return ""
}

// WithSubject sets the file or record the alert is about.
func (a *Alert) WithSubject(subject string) *Alert {
	a.Subject = subject
	return a
}

// WithError attaches the underlying error.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String renders the headline: icon, message, subject and error.
func (a *Alert) String() string {
	message := a.Level.Icon() + " " + a.Message
	if a.Subject != "" {
		message += " (" + a.Subject + ")"
	}
	if a.Err != nil {
		message += ": " + a.Err.Error()
	}
	return message
}

// Writer handles alert output to different formats and destinations.
type Writer interface {
	WriteAlert(alert *Alert) error
}
