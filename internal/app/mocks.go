package app

import "github.com/hello383/Sway/internal/models"

// MockEmailProvider is used when SMTP is not configured and in local
// development. Every send silently succeeds.
type MockEmailProvider struct{}

func (m *MockEmailProvider) SendWelcome(to, name string, tier models.Visibility) error { return nil }
func (m *MockEmailProvider) SendJobAlert(to, jobTitle, company string) error          { return nil }
func (m *MockEmailProvider) SendProfileViewed(to, company string) error               { return nil }
func (m *MockEmailProvider) Close() error                                             { return nil }
