package app

import (
	"sync"

	"networknode/internal/email"
	"networknode/internal/logger"
)

// SentEmail - письмо, которое "отправил" MockEmailProvider
type SentEmail struct {
	To       []string
	Subject  string
	Template string
	Data     email.TemplateData
}

// MockEmailProvider используется для тестов и локальной разработки.
// Письма не отправляются, а логируются и запоминаются.
type MockEmailProvider struct {
	mu   sync.Mutex
	Sent []SentEmail
	// Err возвращается из Send и SendTemplate, если задан
	Err error
}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	return m.record(SentEmail{To: msg.To, Subject: msg.Subject})
}

func (m *MockEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	return m.record(SentEmail{To: to, Subject: subject, Template: templateName, Data: data})
}

func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }

// Messages возвращает копию отправленных писем
func (m *MockEmailProvider) Messages() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.Sent))
	copy(out, m.Sent)
	return out
}

func (m *MockEmailProvider) record(e SentEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, e)
	logger.Debug("mock email", "to", e.To, "subject", e.Subject, "template", e.Template)
	return nil
}
