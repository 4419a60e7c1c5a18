package repositories

import (
	"errors"

	"github.com/hello383/Sway/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job posting not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.JobPosting) error
	FindByID(db *gorm.DB, id string) (*models.JobPosting, error)
	List(db *gorm.DB, limit, offset int) ([]models.JobPosting, error)
	CountAll(db *gorm.DB) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.JobPosting) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(db *gorm.DB, limit, offset int) ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	err := db.Order("posted_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.JobPosting{}).Count(&count).Error
	return count, err
}
