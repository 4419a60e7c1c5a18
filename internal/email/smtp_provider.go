package email

import (
	"fmt"

	"github.com/hello383/Sway/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through an SMTP relay.
type SMTPProvider struct {
	config    *SMTPConfig
	dialer    *gomail.Dialer
	templates *TemplateManager
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.UseTLS

	return &SMTPProvider{
		config:    config,
		dialer:    dialer,
		templates: tm,
	}, nil
}

func (p *SMTPProvider) SendWelcome(to, name string, tier models.Visibility) error {
	var templateName, subject string
	switch models.NormalizeVisibility(string(tier)) {
	case models.VisibilityVisible:
		templateName = TemplateWelcomeVisible
		subject = "Welcome to Sway - your profile is live"
	case models.VisibilityEmail:
		templateName = TemplateWelcomeEmail
		subject = "Welcome to Sway - you're on the list"
	default:
		templateName = TemplateWelcomeCampaign
		subject = "Thanks for backing the remote work campaign"
	}

	return p.send(to, subject, templateName, TemplateData{"Name": name})
}

func (p *SMTPProvider) SendJobAlert(to, jobTitle, company string) error {
	subject := fmt.Sprintf("New remote role: %s at %s", jobTitle, company)
	return p.send(to, subject, TemplateJobAlert, TemplateData{
		"JobTitle": jobTitle,
		"Company":  company,
	})
}

func (p *SMTPProvider) SendProfileViewed(to, company string) error {
	return p.send(to, "An employer viewed your Sway profile", TemplateProfileViewed, TemplateData{
		"Company": company,
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) send(to, subject, templateName string, data TemplateData) error {
	body, err := p.templates.Render(templateName, data)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return p.dialer.DialAndSend(m)
}
