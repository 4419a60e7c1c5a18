package dto

// LocationPin is an anonymized map marker: a place and how many people are
// there. This struct is the anonymization boundary; nothing identifying an
// individual may ever be added to it.
type LocationPin struct {
	Town   string   `json:"town"`
	County string   `json:"county"`
	Count  int64    `json:"count"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

// StatsResponse is the public dashboard payload. Recomputed from the store
// on every read; never cached.
type StatsResponse struct {
	TotalProfessionals int64            `json:"totalProfessionals"`
	VisibleProfiles    int64            `json:"visibleProfiles"`
	EmailSubscribers   int64            `json:"emailSubscribers"`
	TotalJobs          int64            `json:"totalJobs"`
	CitiesCovered      int              `json:"citiesCovered"`
	LocationStats      map[string]int64 `json:"locationStats"`
	CountyStats        map[string]int64 `json:"countyStats"`
	LocationPins       []LocationPin    `json:"locationPins"`
}
