package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	ProfileHandler  *ProfileHandler
	CampaignHandler *CampaignHandler
	StatsHandler    *StatsHandler
	JobHandler      *JobHandler
	RefdataHandler  *RefdataHandler
	SessionHandler  *SessionHandler
}
