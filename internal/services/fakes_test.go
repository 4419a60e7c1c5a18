package services

import (
	"context"
	"fmt"

	"github.com/hello383/Sway/internal/identity"
	"github.com/hello383/Sway/internal/models"
	"github.com/hello383/Sway/internal/repositories"
	"github.com/hello383/Sway/internal/utils"

	"gorm.io/gorm"
)

// fakeProfileRepo keeps profiles in memory and mirrors the real store's
// normalization and unique-email behaviour, so the services can be tested
// without a database. The *gorm.DB argument is ignored.
type fakeProfileRepo struct {
	profiles []*models.Profile
	nextID   int
	failWith error
}

func (f *fakeProfileRepo) Create(db *gorm.DB, profile *models.Profile) error {
	if f.failWith != nil {
		return f.failWith
	}
	profile.Email = utils.NormalizeEmail(profile.Email)
	for _, p := range f.profiles {
		if p.Email == profile.Email {
			return repositories.ErrDuplicateEmail
		}
	}
	if profile.Location == "" {
		if profile.Town != "" {
			profile.Location = profile.Town + ", " + profile.County
		} else {
			profile.Location = profile.County
		}
	}
	f.nextID++
	profile.ID = fmt.Sprintf("profile-%d", f.nextID)
	f.profiles = append(f.profiles, profile)
	return nil
}

func (f *fakeProfileRepo) FindByID(db *gorm.DB, id string) (*models.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindByEmail(db *gorm.DB, email string) (*models.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	norm := utils.NormalizeEmail(email)
	for _, p := range f.profiles {
		if p.Email == norm {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

// UpdateFields rejects columns outside the real schema's mutable set, so a
// service that leaks an immutable column into the map fails loudly here.
func (f *fakeProfileRepo) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) (*models.Profile, error) {
	p, err := f.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	for column, value := range fields {
		s, _ := value.(string)
		switch column {
		case "current_company":
			p.CurrentCompany = s
		case "expected_salary":
			p.ExpectedSalary = s
		case "link_url":
			p.LinkURL = s
		case "work_environment":
			p.WorkEnvironment = s
		case "remote_retreats":
			p.RemoteRetreats = s
		case "phone":
			p.Phone = s
		default:
			return nil, fmt.Errorf("unexpected column %q in update", column)
		}
	}
	return p, nil
}

func (f *fakeProfileRepo) ListVisible(db *gorm.DB) ([]models.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Profile
	// Newest first, matching the store's created_at ordering.
	for i := len(f.profiles) - 1; i >= 0; i-- {
		if f.profiles[i].ProfileVisibility == string(models.VisibilityVisible) {
			out = append(out, *f.profiles[i])
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) CountAll(db *gorm.DB) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.profiles)), nil
}

func (f *fakeProfileRepo) CountByVisibility(db *gorm.DB, v models.Visibility) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, p := range f.profiles {
		if p.ProfileVisibility == string(v) {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileRepo) ListLocationRows(db *gorm.DB) ([]repositories.LocationRow, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	rows := make([]repositories.LocationRow, 0, len(f.profiles))
	for _, p := range f.profiles {
		rows = append(rows, repositories.LocationRow{
			Location: p.Location,
			County:   p.County,
			Town:     p.Town,
		})
	}
	return rows, nil
}

func (f *fakeProfileRepo) ListEmailsByVisibility(db *gorm.DB, v models.Visibility) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var emails []string
	for _, p := range f.profiles {
		if p.ProfileVisibility == string(v) {
			emails = append(emails, p.Email)
		}
	}
	return emails, nil
}

type fakeJobRepo struct {
	jobs     []*models.JobPosting
	nextID   int
	failWith error
}

func (f *fakeJobRepo) Create(db *gorm.DB, job *models.JobPosting) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	job.ID = fmt.Sprintf("job-%d", f.nextID)
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeJobRepo) FindByID(db *gorm.DB, id string) (*models.JobPosting, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, repositories.ErrJobNotFound
}

func (f *fakeJobRepo) List(db *gorm.DB, limit, offset int) ([]models.JobPosting, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.JobPosting
	for i := len(f.jobs) - 1; i >= 0; i-- {
		out = append(out, *f.jobs[i])
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJobRepo) CountAll(db *gorm.DB) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.jobs)), nil
}

type sentEmail struct {
	kind string
	to   string
	tier models.Visibility
}

// fakeEmailProvider records sends and can be told to fail for specific
// addresses.
type fakeEmailProvider struct {
	sent    []sentEmail
	failFor map[string]bool
}

func (f *fakeEmailProvider) SendWelcome(to, name string, tier models.Visibility) error {
	if f.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentEmail{kind: "welcome", to: to, tier: tier})
	return nil
}

func (f *fakeEmailProvider) SendJobAlert(to, jobTitle, company string) error {
	if f.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentEmail{kind: "job_alert", to: to})
	return nil
}

func (f *fakeEmailProvider) SendProfileViewed(to, company string) error {
	if f.failFor[to] {
		return fmt.Errorf("smtp refused %s", to)
	}
	f.sent = append(f.sent, sentEmail{kind: "profile_viewed", to: to})
	return nil
}

func (f *fakeEmailProvider) Close() error { return nil }

type fakeIdentityProvider struct {
	ref   *identity.Ref
	err   error
	calls int
}

func (f *fakeIdentityProvider) EnsureUser(ctx context.Context, email, fullName string) (*identity.Ref, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ref, nil
}
