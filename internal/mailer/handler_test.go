package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SundayYogurt/jobboard_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

func sampleEvent(t *testing.T, status string) []byte {
	t.Helper()
	b, err := json.Marshal(dto.ApplicationEvent{
		ApplicationID: 7,
		JobID:         3,
		JobTitle:      "Backend Intern",
		StudentID:     5,
		StudentName:   "Alice <script>",
		StudentEmail:  "alice@uni.edu",
		CompanyName:   "Acme",
		CompanyEmail:  "hr@acme.com",
		Status:        status,
		OccurredAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return b
}

func TestSubmittedEventMailsCompany(t *testing.T) {
	sender := &fakeSender{}
	h := NewEventHandler(sender)

	err := h.HandleMessage(context.Background(), []byte(dto.EventApplicationSubmitted), sampleEvent(t, "APPLIED"))
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	mail := sender.sent[0]
	assert.Equal(t, "hr@acme.com", mail.to)
	assert.Equal(t, "New application for Backend Intern", mail.subject)
	assert.Contains(t, mail.body, "alice@uni.edu")
	assert.NotContains(t, mail.body, "<script>")
}

func TestStatusEventMailsStudent(t *testing.T) {
	sender := &fakeSender{}
	h := NewEventHandler(sender)

	err := h.HandleMessage(context.Background(), []byte(dto.EventApplicationStatusChanged), sampleEvent(t, "SHORTLISTED"))
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	mail := sender.sent[0]
	assert.Equal(t, "alice@uni.edu", mail.to)
	assert.True(t, strings.HasSuffix(mail.subject, "SHORTLISTED"))
	assert.Contains(t, mail.body, "SHORTLISTED")
	assert.Contains(t, mail.body, "Acme")
}

func TestUnknownEventIgnored(t *testing.T) {
	sender := &fakeSender{}
	h := NewEventHandler(sender)

	require.NoError(t, h.HandleMessage(context.Background(), []byte("job.created"), sampleEvent(t, "APPLIED")))
	assert.Empty(t, sender.sent)
}

func TestHandleMessageErrors(t *testing.T) {
	h := NewEventHandler(&fakeSender{})
	err := h.HandleMessage(context.Background(), []byte(dto.EventApplicationSubmitted), []byte("{not json"))
	assert.Error(t, err)

	failing := NewEventHandler(&fakeSender{err: errors.New("smtp down")})
	err = failing.HandleMessage(context.Background(), []byte(dto.EventApplicationSubmitted), sampleEvent(t, "APPLIED"))
	assert.ErrorContains(t, err, "smtp down")
}

func TestBuildMessageHeaders(t *testing.T) {
	s := &smtpSender{cfg: SMTPConfig{From: "noreply@jobs.test", FromName: "Campus Job Board"}}
	msg := string(s.buildMessage("alice@uni.edu", "Hello", "<p>hi</p>"))

	assert.Contains(t, msg, "From: ")
	assert.Contains(t, msg, "<noreply@jobs.test>")
	assert.Contains(t, msg, "To: alice@uni.edu\r\n")
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>"))
}
