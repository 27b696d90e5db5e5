package services

import (
	"context"
	"strings"

	"networknode/internal/email"
	"networknode/internal/logger"
	"networknode/internal/models"
)

// EmailService - письма пользователям поверх email.Provider
type EmailService struct {
	provider email.Provider
	siteURL  string
}

func NewEmailService(provider email.Provider, siteURL string) *EmailService {
	return &EmailService{
		provider: provider,
		siteURL:  strings.TrimRight(siteURL, "/"),
	}
}

// SendTemplatedEmail отправляет письмо по шаблону
func (s *EmailService) SendTemplatedEmail(ctx context.Context, to []string, subject, templateName string, data email.TemplateData) error {
	if s == nil || s.provider == nil {
		return nil
	}
	return s.provider.SendTemplate(to, subject, templateName, data)
}

// NotifyMeetingRequest сообщает получателю о новом запросе на встречу.
// Ошибка только логируется: запрос уже сохранен.
func (s *EmailService) NotifyMeetingRequest(ctx context.Context, meeting *models.MeetingRequest, recipient *models.Profile, requesterName string) {
	if s == nil || recipient == nil || recipient.Email == "" {
		return
	}
	if requesterName == "" {
		requesterName = "A member"
	}

	data := email.TemplateData{
		"RecipientName": recipient.Name,
		"RequesterName": requesterName,
		"MeetingType":   string(meeting.MeetingType),
		"Location":      derefString(meeting.Location),
		"Message":       derefString(meeting.Message),
		"DashboardURL":  s.siteURL + PathMeetings,
	}

	err := s.SendTemplatedEmail(ctx,
		[]string{recipient.Email},
		requesterName+" wants to meet you on NetworkNode",
		email.TemplateMeetingRequest,
		data,
	)
	if err != nil {
		logger.CtxWarn(ctx, "meeting request notification failed",
			"meeting_id", meeting.ID, "recipient_id", recipient.ID, "error", err)
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
