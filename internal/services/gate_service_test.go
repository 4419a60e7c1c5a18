package services

import (
	"errors"
	"testing"

	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	session := AuthSession{Email: "aoife@example.com"}

	tests := []struct {
		name    string
		session AuthSession
		profile *models.Profile
		want    GateOutcome
	}{
		{"no session", AuthSession{}, nil, GateOutcomeSignup},
		{"no profile", session, nil, GateOutcomeSignup},
		{"visible", session, &models.Profile{ProfileVisibility: "visible"}, GateOutcomeProfile},
		{"email", session, &models.Profile{ProfileVisibility: "email"}, GateOutcomeProfile},
		{"campaign only", session, &models.Profile{ProfileVisibility: "campaign_only"}, GateOutcomeSignup},
		{"campaign only cased", session, &models.Profile{ProfileVisibility: "Campaign_Only"}, GateOutcomeSignup},
		{"campaign only spaced", session, &models.Profile{ProfileVisibility: "campaign only"}, GateOutcomeSignup},
		{"uppercase visible", session, &models.Profile{ProfileVisibility: "VISIBLE"}, GateOutcomeProfile},
		{"unset tier", session, &models.Profile{ProfileVisibility: ""}, GateOutcomeSignup},
		{"garbage tier", session, &models.Profile{ProfileVisibility: "public"}, GateOutcomeSignup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.session, tt.profile))
		})
	}
}

func TestDecideForSessionNoProfile(t *testing.T) {
	svc := NewGateService(&fakeProfileRepo{})

	outcome, profile, err := svc.DecideForSession(nil, AuthSession{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, GateOutcomeSignup, outcome)
	assert.Nil(t, profile)
}

func TestDecideForSessionUnlockedProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName: "Aoife Byrne", Email: "aoife@example.com",
		County:            "Galway",
		ProfileVisibility: string(models.VisibilityEmail),
	})
	svc := NewGateService(repo)

	outcome, profile, err := svc.DecideForSession(nil, AuthSession{Email: "AOIFE@example.com"})
	require.NoError(t, err)
	assert.Equal(t, GateOutcomeProfile, outcome)
	require.NotNil(t, profile)
	assert.Equal(t, "Aoife Byrne", profile.FullName)
}

func TestDecideForSessionCampaignOnlyProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName: "Sean Murphy", Email: "sean@example.com",
		County:            "Mayo",
		ProfileVisibility: string(models.VisibilityCampaignOnly),
	})
	svc := NewGateService(repo)

	outcome, _, err := svc.DecideForSession(nil, AuthSession{Email: "sean@example.com"})
	require.NoError(t, err)
	assert.Equal(t, GateOutcomeSignup, outcome)
}

func TestDecideForSessionStoreFailure(t *testing.T) {
	svc := NewGateService(&fakeProfileRepo{failWith: errors.New("connection reset")})

	_, _, err := svc.DecideForSession(nil, AuthSession{Email: "aoife@example.com"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeDatabaseError, appErr.Code)
}
