package models

import "time"

// JobPosting is an employer-submitted remote role. Only counted by the stats
// endpoint and pushed to email-tier subscribers via job alerts.
type JobPosting struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	RemoteType  string     `json:"remote_type,omitempty"`
	SalaryRange string     `json:"salary_range,omitempty"`
	PostedAt    time.Time  `gorm:"default:now()" json:"posted_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
