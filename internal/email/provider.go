// Package email dispatches the campaign's transactional mail. Every send is
// a non-essential side effect: callers log failures and move on.
package email

import "github.com/hello383/Sway/internal/models"

// TemplateData is the payload handed to a template on render.
type TemplateData map[string]interface{}

// Provider sends the campaign's transactional emails.
type Provider interface {
	// SendWelcome greets a new signup. The body depends on the chosen tier.
	SendWelcome(to, name string, tier models.Visibility) error

	// SendJobAlert notifies an email-tier subscriber about a new posting.
	SendJobAlert(to, jobTitle, company string) error

	// SendProfileViewed tells a visible-tier person an employer viewed them.
	SendProfileViewed(to, company string) error

	// Close releases the underlying transport.
	Close() error
}
