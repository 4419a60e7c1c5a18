package services

import (
	"context"

	"github.com/hello383/Sway/internal/email"
	"github.com/hello383/Sway/internal/identity"
	"github.com/hello383/Sway/internal/logger"
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/internal/utils"
	"github.com/hello383/Sway/pkg/apperrors"

	"gorm.io/gorm"
)

// SignupService runs the visibility state machine for incoming submissions:
// which tiers get a stored profile, which only get a welcome email, and how
// duplicates resolve.
type SignupService interface {
	SubmitProfile(ctx context.Context, db *gorm.DB, req *dto.SubmitProfileRequest) (*dto.SubmitProfileResponse, error)
	CampaignSignup(ctx context.Context, db *gorm.DB, req *dto.CampaignSignupRequest) (*dto.SubmitProfileResponse, error)
}

type SignupServiceImpl struct {
	profileRepo      repositories.ProfileRepository
	emailProvider    email.Provider
	identityProvider identity.Provider
}

func NewSignupService(
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
	identityProvider identity.Provider,
) SignupService {
	return &SignupServiceImpl{
		profileRepo:      profileRepo,
		emailProvider:    emailProvider,
		identityProvider: identityProvider,
	}
}

// SubmitProfile handles the full signup wizard.
//
// visible/email: the profile row is written, an auth identity is created on a
// best-effort basis, and a welcome email goes out. campaign_only or no tier:
// nothing is persisted, the supporter just gets the campaign welcome. Both
// paths report success; so does a duplicate email.
func (s *SignupServiceImpl) SubmitProfile(ctx context.Context, db *gorm.DB, req *dto.SubmitProfileRequest) (*dto.SubmitProfileResponse, error) {
	tier := models.NormalizeVisibility(req.ProfileVisibility)
	normEmail := utils.NormalizeEmail(req.Email)

	if !tier.StoresProfile() {
		// Campaign-only supporters are not part of the searchable or
		// emailable dataset. Welcome them and stop.
		s.sendWelcome(ctx, normEmail, req.FullName, models.VisibilityCampaignOnly)
		return &dto.SubmitProfileResponse{
			Stored:  false,
			Message: "Thanks for supporting the campaign!",
		}, nil
	}

	profile := &models.Profile{
		FullName:           req.FullName,
		Email:              normEmail,
		Phone:              req.Phone,
		County:             req.County,
		Town:               req.Town,
		Role:               req.Role,
		Experience:         req.Experience,
		CurrentCompany:     req.CurrentCompany,
		ExpectedSalary:     req.ExpectedSalary,
		LinkURL:            req.LinkURL,
		WorkHours:          req.WorkHours,
		RemoteRetreats:     req.RemoteRetreats,
		WorkEnvironment:    req.WorkEnvironment,
		ProfileVisibility:  string(tier),
		EmploymentStatus:   req.EmploymentStatus,
		GovernmentCampaign: req.GovernmentCampaign,
		CampaignReason:     req.CampaignReason,
	}

	// Best-effort identity creation. A failed auth-provider call leaves the
	// profile unlinked; it never fails the signup.
	if ref, err := s.identityProvider.EnsureUser(ctx, normEmail, req.FullName); err != nil {
		logger.CtxWarn(ctx, "identity creation failed, profile will be unlinked", "error", err.Error())
	} else if ref != nil {
		profile.AuthUserID = &ref.UserID
	}

	if err := s.profileRepo.Create(db, profile); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEmail) {
			logger.CtxInfo(ctx, "duplicate signup resolved idempotently")
			return &dto.SubmitProfileResponse{
				Stored:        false,
				AlreadyExists: true,
				Message:       "You're already signed up!",
			}, nil
		}
		return nil, apperrors.ErrDatabase(err, "signup")
	}

	s.sendWelcome(ctx, profile.Email, profile.FullName, tier)

	return &dto.SubmitProfileResponse{
		Stored:  true,
		Message: "Welcome to Sway!",
		Profile: toProfileResponse(profile),
	}, nil
}

// CampaignSignup handles the lightweight homepage form. It persists a
// minimal campaign_only row so repeat submissions are recognized, stores the
// sector as the role, and never touches the auth provider.
func (s *SignupServiceImpl) CampaignSignup(ctx context.Context, db *gorm.DB, req *dto.CampaignSignupRequest) (*dto.SubmitProfileResponse, error) {
	normEmail := utils.NormalizeEmail(req.Email)

	if _, err := s.profileRepo.FindByEmail(db, normEmail); err == nil {
		return &dto.SubmitProfileResponse{
			Stored:        false,
			AlreadyExists: true,
			Message:       "You're already signed up!",
		}, nil
	} else if !apperrors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.ErrDatabase(err, "campaign_signup")
	}

	profile := &models.Profile{
		FullName: req.Name,
		Email:    normEmail,
		County:   req.County,
		// County doubles as location until they complete a full profile.
		Location:           req.County,
		Role:               req.Sector,
		Experience:         "Not specified",
		WorkHours:          "Not specified",
		ProfileVisibility:  string(models.VisibilityCampaignOnly),
		GovernmentCampaign: true,
	}

	if err := s.profileRepo.Create(db, profile); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateEmail) {
			// Lost the race against a concurrent signup with the same email.
			// Same outcome as the lookup above.
			return &dto.SubmitProfileResponse{
				Stored:        false,
				AlreadyExists: true,
				Message:       "You're already signed up!",
			}, nil
		}
		return nil, apperrors.ErrDatabase(err, "campaign_signup")
	}

	s.sendWelcome(ctx, normEmail, req.Name, models.VisibilityCampaignOnly)

	return &dto.SubmitProfileResponse{
		Stored:  true,
		Message: "Thanks for joining the campaign!",
	}, nil
}

func (s *SignupServiceImpl) sendWelcome(ctx context.Context, to, name string, tier models.Visibility) {
	if err := s.emailProvider.SendWelcome(to, name, tier); err != nil {
		logger.CtxWarn(ctx, "welcome email failed", "error", err.Error(), "tier", string(tier))
	}
}
