package models

// Profile is one person in the campaign dataset. Email is the natural key;
// exactly one row may exist per normalized (lowercased, trimmed) address and
// the unique index is what ultimately enforces that under concurrent signups.
type Profile struct {
	BaseModel
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone,omitempty"`

	// Location is the composite "Town, County" (or bare county) kept for
	// backward display compatibility with the first release.
	Location string `gorm:"not null" json:"location"`
	County   string `gorm:"not null" json:"county"`
	Town     string `json:"town,omitempty"`

	Role       string `gorm:"not null" json:"role"`
	Experience string `gorm:"not null" json:"experience"`

	CurrentCompany string `json:"current_company,omitempty"`
	// ExpectedSalary never leaves the backend.
	ExpectedSalary string `json:"-"`
	LinkURL        string `json:"link_url,omitempty"`

	WorkHours       string `gorm:"not null" json:"work_hours"`
	RemoteRetreats  string `json:"remote_retreats,omitempty"`
	WorkEnvironment string `json:"work_environment,omitempty"`

	ProfileVisibility string `gorm:"not null" json:"profile_visibility"`
	EmploymentStatus  string `json:"employment_status,omitempty"`

	GovernmentCampaign bool   `gorm:"default:false" json:"government_campaign"`
	CampaignReason     string `json:"campaign_reason,omitempty"`

	// AuthUserID links to the hosted auth provider's user, when the
	// best-effort identity creation succeeded. The column may be missing on
	// older databases and the code tolerates that.
	AuthUserID *string `gorm:"type:uuid" json:"-"`
}

func (Profile) TableName() string {
	return "user_profiles"
}

// Visibility returns the normalized tier for this profile.
func (p *Profile) Visibility() Visibility {
	return NormalizeVisibility(p.ProfileVisibility)
}
