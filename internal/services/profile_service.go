package services

import (
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error)
	UpdateProfile(db *gorm.DB, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	ListVisible(db *gorm.DB) ([]dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(db, id)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile applies the self-service edit. Only the mutable subset is
// written; identity, location, role, experience and work hours are fixed at
// signup and requests naming them are silently ignored.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	fields := make(map[string]interface{})
	setIfPresent := func(column string, value *string) {
		if value != nil {
			fields[column] = *value
		}
	}
	setIfPresent("current_company", req.CurrentCompany)
	setIfPresent("expected_salary", req.ExpectedSalary)
	setIfPresent("link_url", req.LinkURL)
	setIfPresent("work_environment", req.WorkEnvironment)
	setIfPresent("remote_retreats", req.RemoteRetreats)
	setIfPresent("phone", req.Phone)

	profile, err := s.profileRepo.UpdateFields(db, id, fields)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return toProfileResponse(profile), nil
}

// ListVisible returns the employer-facing listing, newest first. Only
// visible-tier profiles qualify and the projection hides salary, phone and
// contact details.
func (s *ProfileServiceImpl) ListVisible(db *gorm.DB) ([]dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.ListVisible(db)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "profiles")
	}

	responses := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *toProfileResponse(&profiles[i]))
	}
	return responses, nil
}

func toProfileResponse(p *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:                p.ID,
		FullName:          p.FullName,
		Location:          p.Location,
		County:            p.County,
		Town:              p.Town,
		Role:              p.Role,
		Experience:        p.Experience,
		CurrentCompany:    p.CurrentCompany,
		LinkURL:           p.LinkURL,
		WorkHours:         p.WorkHours,
		WorkEnvironment:   p.WorkEnvironment,
		ProfileVisibility: p.ProfileVisibility,
		EmploymentStatus:  p.EmploymentStatus,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func handleProfileError(err error) error {
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err, "profiles", "Profile not found")
	}
	return apperrors.ErrDatabase(err, "profiles")
}
