package dto

import "time"

// SubmitProfileRequest is the full signup wizard payload. Field names match
// the web client's camelCase convention.
type SubmitProfileRequest struct {
	FullName           string `json:"fullName" validate:"required,max=200"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"omitempty,max=50"`
	Location           string `json:"location"`
	County             string `json:"county" validate:"required,max=100"`
	Town               string `json:"town" validate:"omitempty,max=100"`
	Role               string `json:"role" validate:"required,max=200"`
	Experience         string `json:"experience" validate:"required,max=100"`
	CurrentCompany     string `json:"currentCompany" validate:"omitempty,max=200"`
	ExpectedSalary     string `json:"expectedSalary" validate:"omitempty,max=100"`
	LinkURL            string `json:"linkUrl" validate:"omitempty,url"`
	WorkHours          string `json:"workHours" validate:"required,max=100"`
	RemoteRetreats     string `json:"remoteRetreats" validate:"omitempty,max=100"`
	WorkEnvironment    string `json:"workEnvironment" validate:"omitempty,max=200"`
	ProfileVisibility  string `json:"profileVisibility" validate:"omitempty,is-visibility-tier"`
	EmploymentStatus   string `json:"employmentStatus" validate:"omitempty,max=200"`
	GovernmentCampaign bool   `json:"governmentCampaign"`
	CampaignReason     string `json:"campaignReason" validate:"omitempty,max=2000"`
}

// UpdateProfileRequest carries the self-service edit fields. Pointers
// distinguish "clear this" from "leave untouched". Anything outside the
// mutable set is accepted and silently dropped, never an error.
type UpdateProfileRequest struct {
	CurrentCompany  *string `json:"currentCompany" validate:"omitempty,max=200"`
	ExpectedSalary  *string `json:"expectedSalary" validate:"omitempty,max=100"`
	LinkURL         *string `json:"linkUrl" validate:"omitempty,url"`
	WorkEnvironment *string `json:"workEnvironment" validate:"omitempty,max=200"`
	RemoteRetreats  *string `json:"remoteRetreats" validate:"omitempty,max=100"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`

	// Immutable by design; bound so requests naming them parse cleanly, but
	// the service never applies them.
	Email      *string `json:"email"`
	Location   *string `json:"location"`
	County     *string `json:"county"`
	Town       *string `json:"town"`
	Role       *string `json:"role"`
	Experience *string `json:"experience"`
	WorkHours  *string `json:"workHours"`
}

// CampaignSignupRequest is the lightweight homepage form.
type CampaignSignupRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	County string `json:"county" validate:"required,max=100"`
	Sector string `json:"sector" validate:"required,max=200"`
}

// SubmitProfileResponse reports what the state machine did with a
// submission. Duplicate emails and campaign-only submissions are successes.
type SubmitProfileResponse struct {
	Stored        bool             `json:"stored"`
	AlreadyExists bool             `json:"alreadyExists,omitempty"`
	Message       string           `json:"message"`
	Profile       *ProfileResponse `json:"data,omitempty"`
}

// ProfileResponse is the fixed public projection of a profile. It never
// carries the salary, phone or auth linkage.
type ProfileResponse struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Location          string    `json:"location"`
	County            string    `json:"county"`
	Town              string    `json:"town,omitempty"`
	Role              string    `json:"role"`
	Experience        string    `json:"experience"`
	CurrentCompany    string    `json:"current_company,omitempty"`
	LinkURL           string    `json:"link_url,omitempty"`
	WorkHours         string    `json:"work_hours"`
	WorkEnvironment   string    `json:"work_environment,omitempty"`
	ProfileVisibility string    `json:"profile_visibility"`
	EmploymentStatus  string    `json:"employment_status,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
