package services

import (
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/refdata"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/pkg/apperrors"

	"gorm.io/gorm"
)

// StatsService derives the public dashboard numbers and the anonymized map
// pins from the profile store. Everything is recomputed per call; a profile
// submitted mid-read may be off by one until the next request, which the
// underlying read-committed store makes acceptable.
type StatsService interface {
	ComputeStats(db *gorm.DB) (*dto.StatsResponse, error)
}

type StatsServiceImpl struct {
	profileRepo repositories.ProfileRepository
	jobRepo     repositories.JobRepository
}

func NewStatsService(profileRepo repositories.ProfileRepository, jobRepo repositories.JobRepository) StatsService {
	return &StatsServiceImpl{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
	}
}

func (s *StatsServiceImpl) ComputeStats(db *gorm.DB) (*dto.StatsResponse, error) {
	total, err := s.profileRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "stats")
	}
	visible, err := s.profileRepo.CountByVisibility(db, models.VisibilityVisible)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "stats")
	}
	emailSubs, err := s.profileRepo.CountByVisibility(db, models.VisibilityEmail)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "stats")
	}
	totalJobs, err := s.jobRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "stats")
	}

	rows, err := s.profileRepo.ListLocationRows(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "stats")
	}

	locationStats := buildLocationStats(rows)

	return &dto.StatsResponse{
		TotalProfessionals: total,
		VisibleProfiles:    visible,
		EmailSubscribers:   emailSubs,
		TotalJobs:          totalJobs,
		CitiesCovered:      len(locationStats),
		LocationStats:      locationStats,
		CountyStats:        buildCountyStats(rows),
		LocationPins:       buildPins(rows),
	}, nil
}

// buildLocationStats counts profiles per raw location string. No
// canonicalization: a typo makes its own bucket instead of being dropped.
func buildLocationStats(rows []repositories.LocationRow) map[string]int64 {
	stats := make(map[string]int64)
	for _, row := range rows {
		stats[row.Location]++
	}
	return stats
}

func buildCountyStats(rows []repositories.LocationRow) map[string]int64 {
	stats := make(map[string]int64)
	for _, row := range rows {
		stats[row.County]++
	}
	return stats
}

// buildPins groups locations into (town, county, count) map markers. The
// town falls back to the composite location string when no structured town
// was recorded, and pairs missing either half are dropped: a pin with a
// blank label is meaningless on the map. Bucketing is exact string
// equality, so spelling variants produce separate pins.
func buildPins(rows []repositories.LocationRow) []dto.LocationPin {
	type key struct {
		town   string
		county string
	}

	counts := make(map[key]int64)
	var order []key
	for _, row := range rows {
		town := row.Town
		if town == "" {
			town = row.Location
		}
		k := key{town: town, county: row.County}
		if k.town == "" || k.county == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	pins := make([]dto.LocationPin, 0, len(order))
	for _, k := range order {
		pin := dto.LocationPin{
			Town:   k.town,
			County: k.county,
			Count:  counts[k],
		}
		if coords, ok := refdata.TownCoordinates(k.town, k.county); ok {
			lat, lng := coords.Lat, coords.Lng
			pin.Lat, pin.Lng = &lat, &lng
		}
		pins = append(pins, pin)
	}
	return pins
}
