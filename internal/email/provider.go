package email

import "sync"

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendTemplate отправляет email по шаблону
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	Close() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}

// NoopProvider ничего не отправляет: email выключен в конфиге или идут тесты.
// Отправленные письма запоминаются, чтобы тесты могли их проверить.
type NoopProvider struct {
	mu   sync.Mutex
	sent []Email
}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, *email)
	return nil
}

// Sent возвращает копию отправленных писем
func (p *NoopProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Email(nil), p.sent...)
}

func (p *NoopProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	return p.Send(&Email{To: to, Subject: subject, Body: templateName})
}

func (p *NoopProvider) Validate() error { return nil }
func (p *NoopProvider) Close() error    { return nil }
