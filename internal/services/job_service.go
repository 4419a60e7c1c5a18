package services

import (
	"context"
	"fmt"

	"github.com/hello383/Sway/internal/email"
	"github.com/hello383/Sway/internal/logger"
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/services/dto"
	"github.com/hello383/Sway/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultJobPageSize = 50

type JobService interface {
	CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.JobPosting, error)
	GetJob(db *gorm.DB, id string) (*models.JobPosting, error)
	ListJobs(db *gorm.DB, limit, offset int) ([]models.JobPosting, error)
	NotifySubscribers(ctx context.Context, db *gorm.DB, jobID string) (*dto.NotifyResponse, error)
}

type JobServiceImpl struct {
	jobRepo       repositories.JobRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) JobService {
	return &JobServiceImpl{
		jobRepo:       jobRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	job := &models.JobPosting{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
		Location:    req.Location,
		RemoteType:  req.RemoteType,
		SalaryRange: req.SalaryRange,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.ErrDatabase(err, "jobs")
	}
	return job, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, id string) (*models.JobPosting, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		return nil, handleJobError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, limit, offset int) ([]models.JobPosting, error) {
	if limit <= 0 || limit > defaultJobPageSize {
		limit = defaultJobPageSize
	}
	if offset < 0 {
		offset = 0
	}
	jobs, err := s.jobRepo.List(db, limit, offset)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "jobs")
	}
	return jobs, nil
}

// NotifySubscribers fans a job alert out to every email-tier subscriber.
// Each recipient is independent: a bounced send is logged and counted, the
// run keeps going, and the caller gets both tallies.
func (s *JobServiceImpl) NotifySubscribers(ctx context.Context, db *gorm.DB, jobID string) (*dto.NotifyResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}

	emails, err := s.profileRepo.ListEmailsByVisibility(db, models.VisibilityEmail)
	if err != nil {
		return nil, apperrors.ErrDatabase(err, "jobs")
	}

	notified, failed := 0, 0
	for _, to := range emails {
		if err := s.emailProvider.SendJobAlert(to, job.Title, job.Company); err != nil {
			logger.CtxWarn(ctx, "job alert failed", "error", err.Error())
			failed++
			continue
		}
		notified++
	}

	logger.CtxInfo(ctx, "job alert run finished",
		"job_id", jobID, "notified", notified, "failed", failed)

	return &dto.NotifyResponse{
		Message:  fmt.Sprintf("Notified %d subscribers", notified),
		Notified: notified,
		Failed:   failed,
	}, nil
}

func handleJobError(err error) error {
	if apperrors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrNotFound(err, "jobs", "Job posting not found")
	}
	return apperrors.ErrDatabase(err, "jobs")
}
