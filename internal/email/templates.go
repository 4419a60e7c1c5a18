package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

// Template names used by the provider.
const (
	TemplateWelcomeVisible  = "welcome_visible"
	TemplateWelcomeEmail    = "welcome_email"
	TemplateWelcomeCampaign = "welcome_campaign"
	TemplateJobAlert        = "job_alert"
	TemplateProfileViewed   = "profile_viewed"
)

// Built-in bodies. Files in the templates dir with a matching name override
// these at startup.
var defaultTemplates = map[string]string{
	TemplateWelcomeVisible: `<h2>Welcome to Sway, {{.Name}}!</h2>
<p>Your profile is visible to employers. They can search for you and contact you directly about remote roles.</p>
<p>Thanks for standing up for remote work in Ireland.</p>`,

	TemplateWelcomeEmail: `<h2>Welcome to Sway, {{.Name}}!</h2>
<p>Your profile is private. We'll email you when a remote opportunity matches what you're looking for.</p>
<p>Thanks for standing up for remote work in Ireland.</p>`,

	TemplateWelcomeCampaign: `<h2>Thanks for joining the campaign, {{.Name}}!</h2>
<p>You're now counted among the people asking the government to back remote work. Your details are not stored in the searchable database.</p>
<p>You can complete a full profile any time if you'd like employers to find you.</p>`,

	TemplateJobAlert: `<h2>New remote role: {{.JobTitle}}</h2>
<p>{{.Company}} just posted a remote position that might suit you.</p>
<p>Visit Sway to read the full posting.</p>`,

	TemplateProfileViewed: `<h2>An employer viewed your profile</h2>
<p>{{.Company}} had a look at your Sway profile. Fingers crossed!</p>`,
}

// TemplateManager renders named HTML bodies.
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager parses the built-in templates and then any overrides
// found in dir (may be empty).
func NewTemplateManager(dir string) (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	for name, body := range defaultTemplates {
		t, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse built-in template %s: %w", name, err)
		}
		tm.templates[name] = t
	}

	if dir != "" {
		if err := tm.loadOverrides(dir); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

func (tm *TemplateManager) loadOverrides(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		body, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		t, err := template.New(name).Parse(string(body))
		if err != nil {
			return fmt.Errorf("failed to parse template override %s: %w", name, err)
		}
		tm.templates[name] = t
	}
	return nil
}

// Render executes a named template with the given data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
