package dto

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Company     string `json:"company" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=10000"`
	Location    string `json:"location" validate:"omitempty,max=500"`
	RemoteType  string `json:"remoteType" validate:"omitempty,max=100"`
	SalaryRange string `json:"salaryRange" validate:"omitempty,max=100"`
}

// NotifyResponse reports a job-alert dispatch run.
type NotifyResponse struct {
	Message  string `json:"message"`
	Notified int    `json:"notified"`
	Failed   int    `json:"failed,omitempty"`
}
