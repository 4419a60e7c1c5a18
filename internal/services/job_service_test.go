package services

import (
	"context"
	"testing"

	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListJobs(t *testing.T) {
	jobRepo := &fakeJobRepo{}
	svc := NewJobService(jobRepo, &fakeProfileRepo{}, &fakeEmailProvider{})

	first, err := svc.CreateJob(nil, &dto.CreateJobRequest{Title: "Backend Engineer", Company: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = svc.CreateJob(nil, &dto.CreateJobRequest{Title: "Data Analyst", Company: "Lir Analytics"})
	require.NoError(t, err)

	jobs, err := svc.ListJobs(nil, 0, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Data Analyst", jobs[0].Title)

	jobs, err = svc.ListJobs(nil, 1, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Backend Engineer", jobs[0].Title)
}

func TestGetJobNotFound(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, &fakeProfileRepo{}, &fakeEmailProvider{})

	_, err := svc.GetJob(nil, "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestNotifySubscribersTargetsEmailTier(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	seedProfile(profileRepo, &models.Profile{
		FullName: "A", Email: "a@example.com", County: "Galway",
		ProfileVisibility: string(models.VisibilityEmail),
	})
	seedProfile(profileRepo, &models.Profile{
		FullName: "B", Email: "b@example.com", County: "Cork",
		ProfileVisibility: string(models.VisibilityVisible),
	})
	seedProfile(profileRepo, &models.Profile{
		FullName: "C", Email: "c@example.com", County: "Mayo",
		ProfileVisibility: string(models.VisibilityEmail),
	})

	jobRepo := &fakeJobRepo{}
	require.NoError(t, jobRepo.Create(nil, &models.JobPosting{Title: "Backend Engineer", Company: "Acme"}))

	emailProvider := &fakeEmailProvider{failFor: map[string]bool{}}
	svc := NewJobService(jobRepo, profileRepo, emailProvider)

	resp, err := svc.NotifySubscribers(context.Background(), nil, "job-1")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Notified)
	assert.Equal(t, 0, resp.Failed)

	require.Len(t, emailProvider.sent, 2)
	for _, sent := range emailProvider.sent {
		assert.Equal(t, "job_alert", sent.kind)
		assert.NotEqual(t, "b@example.com", sent.to)
	}
}

func TestNotifySubscribersCountsFailures(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	seedProfile(profileRepo, &models.Profile{
		FullName: "A", Email: "a@example.com", County: "Galway",
		ProfileVisibility: string(models.VisibilityEmail),
	})
	seedProfile(profileRepo, &models.Profile{
		FullName: "C", Email: "c@example.com", County: "Mayo",
		ProfileVisibility: string(models.VisibilityEmail),
	})

	jobRepo := &fakeJobRepo{}
	require.NoError(t, jobRepo.Create(nil, &models.JobPosting{Title: "Backend Engineer", Company: "Acme"}))

	emailProvider := &fakeEmailProvider{failFor: map[string]bool{"a@example.com": true}}
	svc := NewJobService(jobRepo, profileRepo, emailProvider)

	resp, err := svc.NotifySubscribers(context.Background(), nil, "job-1")
	require.NoError(t, err)

	// One bounce never aborts the run.
	assert.Equal(t, 1, resp.Notified)
	assert.Equal(t, 1, resp.Failed)
}

func TestNotifySubscribersJobNotFound(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, &fakeProfileRepo{}, &fakeEmailProvider{})

	_, err := svc.NotifySubscribers(context.Background(), nil, "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
