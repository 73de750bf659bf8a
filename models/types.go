package models

import (
	"strings"
	"time"

	"github.com/raahsetu/raah-setu/apierr"
)

// Request types

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	if blank(r.Name) || blank(r.Email) || blank(r.Phone) || r.Password == "" {
		return apierr.Validation("all fields are required")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if blank(r.Email) || r.Password == "" {
		return apierr.Validation("email and password required")
	}
	return nil
}

type CreateContactRequest struct {
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Relationship string   `json:"relationship"`
	Priority     Priority `json:"priority"`
	Email        *string  `json:"email"`
}

func (r *CreateContactRequest) Validate() error {
	if r.UserID <= 0 || blank(r.Name) || blank(r.Phone) || blank(r.Relationship) {
		return apierr.Validation("required fields missing")
	}
	if r.Priority != "" {
		if _, err := ParsePriority(string(r.Priority)); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateContactRequest) ApplyDefaults() {
	if r.Priority == "" {
		r.Priority = DefaultPriority
	}
	r.Email = emptyToNil(r.Email)
}

// UpdateContactRequest changes only the fields present in the body.
type UpdateContactRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Relationship *string   `json:"relationship"`
	Priority     *Priority `json:"priority"`
	Email        *string   `json:"email"`
}

func (r *UpdateContactRequest) Validate() error {
	for _, s := range []*string{r.Name, r.Phone, r.Relationship} {
		if s != nil && blank(*s) {
			return apierr.Validation("name, phone and relationship cannot be empty")
		}
	}
	if r.Priority != nil {
		if _, err := ParsePriority(string(*r.Priority)); err != nil {
			return err
		}
	}
	return nil
}

// ClearsEmail reports whether the body sets email to blank. A blank
// email is stored as NULL, the same as on create.
func (r *UpdateContactRequest) ClearsEmail() bool {
	return r.Email != nil && emptyToNil(r.Email) == nil
}

type CreateHealthCheckRequest struct {
	UserID        int64   `json:"user_id"`
	Mood          string  `json:"mood"`
	HeartRate     *int64  `json:"heart_rate"`
	BloodPressure *string `json:"blood_pressure"`
	Location      *string `json:"location"`
	Notes         *string `json:"notes"`
}

func (r *CreateHealthCheckRequest) Validate() error {
	if r.UserID <= 0 || blank(r.Mood) {
		return apierr.Validation("user_id and mood required")
	}
	if r.HeartRate != nil && *r.HeartRate <= 0 {
		return apierr.Validation("heart_rate must be a positive integer")
	}
	return nil
}

type CreateIncidentRequest struct {
	UserID      int64    `json:"user_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Location    string   `json:"location"`
}

func (r *CreateIncidentRequest) Validate() error {
	if r.UserID <= 0 || blank(r.Title) || blank(r.Description) || blank(r.Type) || blank(r.Location) {
		return apierr.Validation("required fields missing")
	}
	if r.Severity != "" {
		if _, err := ParseSeverity(string(r.Severity)); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreateIncidentRequest) ApplyDefaults() {
	if r.Severity == "" {
		r.Severity = DefaultSeverity
	}
}

type CreateActivityRequest struct {
	UserID      int64   `json:"user_id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Location    *string `json:"location"`
}

func (r *CreateActivityRequest) Validate() error {
	if r.UserID <= 0 || blank(r.Type) || blank(r.Description) {
		return apierr.Validation("required fields missing")
	}
	return nil
}

type ActivateSOSRequest struct {
	UserID   int64   `json:"user_id"`
	Location *string `json:"location"`
}

func (r *ActivateSOSRequest) Validate() error {
	if r.UserID <= 0 {
		return apierr.Validation("user_id required")
	}
	return nil
}

// Response types

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type CreateContactResponse struct {
	Message   string `json:"message"`
	ContactID int64  `json:"contact_id"`
}

type CreateHealthCheckResponse struct {
	Message string `json:"message"`
	CheckID int64  `json:"check_id"`
}

type CreateIncidentResponse struct {
	Message    string `json:"message"`
	IncidentID int64  `json:"incident_id"`
}

type CreateActivityResponse struct {
	Message    string `json:"message"`
	ActivityID int64  `json:"activity_id"`
}

type ActivateSOSResponse struct {
	Message string `json:"message"`
	SosID   int64  `json:"sos_id"`
}

type ContactsResponse struct {
	Contacts []EmergencyContact `json:"contacts"`
}

type HealthChecksResponse struct {
	Checks []HealthCheck `json:"checks"`
}

type IncidentsResponse struct {
	Incidents []Incident `json:"incidents"`
}

type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
}

type SosAlertsResponse struct {
	Alerts []SosAlert `json:"alerts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

type User struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	PasswordHash   string     `json:"-"`
	ProfilePicture *string    `json:"profile_picture"`
	CreatedAt      *time.Time `json:"created_at"`
}

type EmergencyContact struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Relationship *string  `json:"relationship"`
	Priority     Priority `json:"priority"`
	Email        *string  `json:"email"`
}

type HealthCheck struct {
	ID            int64      `json:"id"`
	Mood          *string    `json:"mood"`
	HeartRate     *int64     `json:"heart_rate"`
	BloodPressure *string    `json:"blood_pressure"`
	Location      *string    `json:"location"`
	Notes         *string    `json:"notes"`
	CreatedAt     *time.Time `json:"created_at"`
}

type Incident struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        *string        `json:"type"`
	Severity    Severity       `json:"severity"`
	Location    *string        `json:"location"`
	Status      IncidentStatus `json:"status"`
	CreatedAt   *time.Time     `json:"created_at"`
}

type Activity struct {
	ID           int64      `json:"id"`
	ActivityType *string    `json:"activity_type"`
	Description  *string    `json:"description"`
	Location     *string    `json:"location"`
	CreatedAt    *time.Time `json:"created_at"`
}

type SosAlert struct {
	ID         int64      `json:"id"`
	Location   *string    `json:"location"`
	Status     SosStatus  `json:"status"`
	CreatedAt  *time.Time `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func emptyToNil(s *string) *string {
	if s == nil || blank(*s) {
		return nil
	}
	return s
}
