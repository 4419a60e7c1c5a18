package repositories

import (
	"errors"
	"time"

	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail means the normalized email already has a row. Callers
	// treat this as "already signed up", not as a failure: re-submission is an
	// ordinary user action and the unique index is what settles the race
	// between two near-simultaneous signups.
	ErrDuplicateEmail = errors.New("email already registered")
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// LocationRow is the anonymized projection handed to the aggregation code.
// It deliberately carries no name, email or any other identifying column.
type LocationRow struct {
	Location string
	County   string
	Town     string
}

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByID(db *gorm.DB, id string) (*models.Profile, error)
	FindByEmail(db *gorm.DB, email string) (*models.Profile, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Profile, error)
	ListVisible(db *gorm.DB) ([]models.Profile, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByVisibility(db *gorm.DB, v models.Visibility) (int64, error)
	ListLocationRows(db *gorm.DB) ([]LocationRow, error)
	ListEmailsByVisibility(db *gorm.DB, v models.Visibility) ([]string, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// Create inserts a profile. The email is normalized and the composite
// location field derived before the write, so the stored row is canonical no
// matter what the caller passed in. A unique-index conflict comes back as
// ErrDuplicateEmail.
func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	profile.Email = utils.NormalizeEmail(profile.Email)
	if profile.Location == "" {
		if profile.Town != "" {
			profile.Location = profile.Town + ", " + profile.County
		} else {
			profile.Location = profile.County
		}
	}

	q := db
	// Older databases predate the auth-linkage column. Degrade to an
	// unlinked profile rather than failing the signup.
	if profile.AuthUserID != nil && !db.Migrator().HasColumn(&models.Profile{}, "auth_user_id") {
		profile.AuthUserID = nil
		q = db.Omit("auth_user_id")
	}

	if err := q.Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "email = ?", utils.NormalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateFields applies an already-whitelisted column map and returns the
// fresh row. Whitelisting is the service's job; the repository applies
// whatever it is given.
func (r *ProfileRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Profile, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		result := db.Model(&models.Profile{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrProfileNotFound
		}
	}
	return r.FindByID(db, id)
}

func (r *ProfileRepositoryImpl) ListVisible(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Where("profile_visibility = ?", string(models.VisibilityVisible)).
		Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) CountByVisibility(db *gorm.DB, v models.Visibility) (int64, error) {
	var count int64
	err := db.Model(&models.Profile{}).
		Where("profile_visibility = ?", string(v)).Count(&count).Error
	return count, err
}

func (r *ProfileRepositoryImpl) ListLocationRows(db *gorm.DB) ([]LocationRow, error) {
	var rows []LocationRow
	err := db.Model(&models.Profile{}).
		Select("location", "county", "town").Find(&rows).Error
	return rows, err
}

func (r *ProfileRepositoryImpl) ListEmailsByVisibility(db *gorm.DB, v models.Visibility) ([]string, error) {
	var emails []string
	err := db.Model(&models.Profile{}).
		Where("profile_visibility = ?", string(v)).
		Pluck("email", &emails).Error
	return emails, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
