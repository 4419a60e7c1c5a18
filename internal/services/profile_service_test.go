package services

import (
	"testing"

	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedProfile(repo *fakeProfileRepo, p *models.Profile) *models.Profile {
	if err := repo.Create(nil, p); err != nil {
		panic(err)
	}
	return p
}

func TestGetProfile(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName:          "Aoife Byrne",
		Email:             "aoife@example.com",
		County:            "Galway",
		Town:              "Tuam",
		Role:              "Software Engineer",
		ExpectedSalary:    "€80k",
		Phone:             "+353 85 000 0000",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	svc := NewProfileService(repo)

	resp, err := svc.GetProfile(nil, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, "Aoife Byrne", resp.FullName)
	assert.Equal(t, "Tuam, Galway", resp.Location)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	_, err := svc.GetProfile(nil, "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateProfileAppliesMutableFields(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName:          "Aoife Byrne",
		Email:             "aoife@example.com",
		County:            "Galway",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	svc := NewProfileService(repo)

	resp, err := svc.UpdateProfile(nil, "profile-1", &dto.UpdateProfileRequest{
		CurrentCompany:  strPtr("Shopify"),
		LinkURL:         strPtr("https://aoife.dev"),
		WorkEnvironment: strPtr("Home office"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Shopify", resp.CurrentCompany)
	assert.Equal(t, "https://aoife.dev", resp.LinkURL)
	assert.Equal(t, "Home office", resp.WorkEnvironment)
}

func TestUpdateProfileIgnoresImmutableFields(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName:          "Aoife Byrne",
		Email:             "aoife@example.com",
		County:            "Galway",
		Town:              "Tuam",
		Role:              "Software Engineer",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	svc := NewProfileService(repo)

	// The immutable fields bind but must never reach the store. The fake
	// repository errors on any column outside the mutable set, so this also
	// proves nothing leaked through.
	resp, err := svc.UpdateProfile(nil, "profile-1", &dto.UpdateProfileRequest{
		Phone:      strPtr("+353 85 111 1111"),
		Email:      strPtr("hijack@example.com"),
		County:     strPtr("Dublin"),
		Role:       strPtr("CTO"),
		Experience: strPtr("Lead"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Galway", resp.County)
	assert.Equal(t, "Software Engineer", resp.Role)
	assert.Equal(t, "aoife@example.com", repo.profiles[0].Email)
	assert.Equal(t, "+353 85 111 1111", repo.profiles[0].Phone)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	_, err := svc.UpdateProfile(nil, "missing", &dto.UpdateProfileRequest{
		Phone: strPtr("+353 85 111 1111"),
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestListVisibleFiltersTiers(t *testing.T) {
	repo := &fakeProfileRepo{}
	seedProfile(repo, &models.Profile{
		FullName: "A", Email: "a@example.com", County: "Galway",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	seedProfile(repo, &models.Profile{
		FullName: "B", Email: "b@example.com", County: "Cork",
		ProfileVisibility: string(models.VisibilityEmail),
	})
	seedProfile(repo, &models.Profile{
		FullName: "C", Email: "c@example.com", County: "Mayo",
		ProfileVisibility: string(models.VisibilityCampaignOnly),
	})
	seedProfile(repo, &models.Profile{
		FullName: "D", Email: "d@example.com", County: "Clare",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	svc := NewProfileService(repo)

	listed, err := svc.ListVisible(nil)
	require.NoError(t, err)

	require.Len(t, listed, 2)
	// Newest first.
	assert.Equal(t, "D", listed[0].FullName)
	assert.Equal(t, "A", listed[1].FullName)
}
