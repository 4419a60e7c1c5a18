package services

import (
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/pkg/apperrors"

	"gorm.io/gorm"
)

// AuthSession is what the auth middleware extracted from a valid token. The
// gate is a pure function of this value and the profile lookup, never of
// ambient state.
type AuthSession struct {
	Email  string
	UserID string
}

// GateOutcome routes an authenticated visitor.
type GateOutcome string

const (
	// GateOutcomeSignup forces the visitor onward to complete signup.
	GateOutcomeSignup GateOutcome = "signup"
	// GateOutcomeProfile allows the profile view.
	GateOutcomeProfile GateOutcome = "profile"
)

// GateService decides whether an authenticated visitor sees their profile or
// is steered back into signup. The same decision runs in the route guard
// middleware and in the gate endpoint, so a bypassed client-side check still
// hits it.
type GateService interface {
	DecideForSession(db *gorm.DB, session AuthSession) (GateOutcome, *models.Profile, error)
}

type GateServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewGateService(profileRepo repositories.ProfileRepository) GateService {
	return &GateServiceImpl{profileRepo: profileRepo}
}

func (s *GateServiceImpl) DecideForSession(db *gorm.DB, session AuthSession) (GateOutcome, *models.Profile, error) {
	profile, err := s.profileRepo.FindByEmail(db, session.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return Decide(session, nil), nil, nil
		}
		return GateOutcomeSignup, nil, apperrors.ErrDatabase(err, "gate")
	}
	return Decide(session, profile), profile, nil
}

// Decide maps (session, profile) to an outcome. A missing profile and a
// campaign_only profile are the same thing here: the visitor has not
// finished signup. Tier comparison goes through the normalizer, so casing
// and spacing variants of campaign_only cannot slip through the gate.
func Decide(session AuthSession, profile *models.Profile) GateOutcome {
	if session.Email == "" {
		return GateOutcomeSignup
	}
	if profile == nil || !profile.Visibility().UnlocksProfile() {
		return GateOutcomeSignup
	}
	return GateOutcomeProfile
}
