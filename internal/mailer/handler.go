package mailer

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// EventHandler turns application events into e-mails: the company hears
// about new applications, the student about status changes.
type EventHandler struct {
	sender Sender
}

func NewEventHandler(sender Sender) *EventHandler {
	return &EventHandler{sender: sender}
}

func (h *EventHandler) HandleMessage(ctx context.Context, key, value []byte) error {
	var evt dto.ApplicationEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return fmt.Errorf("invalid event payload: %w", err)
	}

	var to, subject, tmpl string
	switch string(key) {
	case dto.EventApplicationSubmitted:
		to = evt.CompanyEmail
		subject = fmt.Sprintf("New application for %s", evt.JobTitle)
		tmpl = "application-submitted.html"
	case dto.EventApplicationStatusChanged:
		to = evt.StudentEmail
		subject = fmt.Sprintf("Your application for %s is %s", evt.JobTitle, evt.Status)
		tmpl = "application-status.html"
	default:
		log.Debug().Str("key", string(key)).Msg("ignoring unknown event")
		return nil
	}

	if to == "" {
		log.Warn().Str("key", string(key)).Uint("application_id", evt.ApplicationID).Msg("event has no recipient")
		return nil
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, tmpl, evt); err != nil {
		return fmt.Errorf("render %s: %w", tmpl, err)
	}

	if err := h.sender.Send(ctx, to, subject, body.String()); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	log.Info().Str("key", string(key)).Str("to", to).Msg("mail sent")
	return nil
}
