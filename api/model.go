package api

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/jobtracker"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is how the backend formats Application.DateApplied.
const DateLayout = "2006-01-02"

// A User is an account holder.
type User struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

// An ApplicationStatus is where a job application stands.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusOffer        ApplicationStatus = "OFFER"
	StatusRejected     ApplicationStatus = "REJECTED"
	StatusAccepted     ApplicationStatus = "ACCEPTED"
	StatusWithdrawn    ApplicationStatus = "WITHDRAWN"
)

var _ jobtracker.Enumerable = ApplicationStatus("")

// ApplicationStatuses lists every ApplicationStatus in the order an application progresses.
func ApplicationStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusApplied,
		StatusInterviewing,
		StatusOffer,
		StatusRejected,
		StatusAccepted,
		StatusWithdrawn,
	}
}

// ParseApplicationStatus matches s, ignoring case, to an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	as := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if err := as.Valid(); err != nil {
		return "", err
	}

	return as, nil
}

func (as ApplicationStatus) String() string { return string(as) }

// Label is the human readable ApplicationStatus.
func (as ApplicationStatus) Label() string {
	return cases.Title(language.English).String(strings.ToLower(string(as)))
}

func (as ApplicationStatus) Valid() error {
	switch as {
	case StatusApplied, StatusInterviewing, StatusOffer, StatusRejected, StatusAccepted, StatusWithdrawn:
		return nil
	default:
		return fmt.Errorf("%w: %q is not an ApplicationStatus", jobtracker.ErrNotValid, string(as))
	}
}

// An Application is a job applied to.
//
// The backend sets DateApplied to the current date when it is empty.
type Application struct {
	ID          uint              `json:"id,omitempty"`
	CompanyName string            `json:"companyName" validate:"required,max=100"`
	JobTitle    string            `json:"jobTitle" validate:"required,max=100"`
	Status      ApplicationStatus `json:"status,omitempty" validate:"omitempty,enum"`
	DateApplied string            `json:"dateApplied,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       string            `json:"notes,omitempty" validate:"max=500"`
}

// An ApplicationPatch changes only the fields of an Application that are set.
type ApplicationPatch struct {
	CompanyName *string            `json:"companyName,omitempty" validate:"omitempty,min=1,max=100"`
	JobTitle    *string            `json:"jobTitle,omitempty" validate:"omitempty,min=1,max=100"`
	Status      *ApplicationStatus `json:"status,omitempty" validate:"omitempty,enum"`
	DateApplied *string            `json:"dateApplied,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes       *string            `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// Apply returns app with the fields set on the ApplicationPatch replaced.
func (p ApplicationPatch) Apply(app Application) Application {
	if p.CompanyName != nil {
		app.CompanyName = *p.CompanyName
	}
	if p.JobTitle != nil {
		app.JobTitle = *p.JobTitle
	}
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.DateApplied != nil {
		app.DateApplied = *p.DateApplied
	}
	if p.Notes != nil {
		app.Notes = *p.Notes
	}

	return app
}

// IsZero asserts whether the ApplicationPatch changes nothing.
func (p ApplicationPatch) IsZero() bool {
	return p.CompanyName == nil && p.JobTitle == nil && p.Status == nil && p.DateApplied == nil && p.Notes == nil
}

// A LoginRequest authenticates a User.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// A RegisterRequest creates a User.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	UserName string `json:"userName" validate:"required,max=100"`
}
