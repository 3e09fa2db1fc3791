package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const TemplateWelcome = "welcome"

const welcomeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a1a;">
  <h2>Welcome to CeloBuddy{{if .ProjectName}}, {{.ProjectName}}{{end}}!</h2>
  <p>Thanks for subscribing. We will send you new opportunities for your Web3 project as they appear.</p>
  {{if .Interests}}
  <p>You told us you are looking for:</p>
  <ul>
    {{range .Interests}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
  {{if .ProjectStage}}<p>Project stage: {{.ProjectStage}}</p>{{end}}
  <p>The CeloBuddy team</p>
</body>
</html>`

// TemplateManager реализует TemplateRenderer для управления шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер со встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate(TemplateWelcome, welcomeTemplate); err != nil {
		return nil, err
	}
	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate добавляет шаблон в менеджер
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
