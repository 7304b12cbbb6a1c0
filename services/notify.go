// Package services talks to outbound notification providers.
package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// Notifier tells festival staff about new submissions by email and SMS.
// A channel without credentials or recipients is skipped.
type Notifier struct {
	email           *EmailSender
	emailRecipients []string
	sms             *SMSSender
	smsRecipients   []string
}

func NewNotifier(cfg config.Notify) *Notifier {
	return &Notifier{
		email:           NewEmailSender(cfg.ResendAPIKey, cfg.ResendFromEmail),
		emailRecipients: cfg.EmailRecipients,
		sms:             NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber),
		smsRecipients:   cfg.SMSRecipients,
	}
}

// Enabled reports whether at least one channel can deliver.
func (n *Notifier) Enabled() bool {
	return (n.email != nil && len(n.emailRecipients) > 0) || (n.sms != nil && len(n.smsRecipients) > 0)
}

// NotifySubmission sends every configured notification and joins their errors.
func (n *Notifier) NotifySubmission(ctx context.Context, s models.Submission) error {
	var errs []error
	if n.email != nil && len(n.emailRecipients) > 0 {
		subject := fmt.Sprintf("New %s submission: %s", s.Type, s.Title)
		if err := n.email.SendEmail(ctx, subject, SubmissionEmailBody(s), n.emailRecipients); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if n.sms != nil && len(n.smsRecipients) > 0 {
		if err := n.sms.SendSMS(SubmissionSMSBody(s), n.smsRecipients); err != nil {
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}

// SubmissionEmailBody renders an HTML summary of s.
func SubmissionEmailBody(s models.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(s.Title))
	fmt.Fprintf(&b, "<p><strong>Type:</strong> %s</p>", html.EscapeString(string(s.Type)))
	fmt.Fprintf(&b, "<p><strong>From:</strong> %s &lt;%s&gt;</p>", html.EscapeString(s.SubmittedBy), html.EscapeString(s.ContactEmail))
	if s.ContactPhone != nil && *s.ContactPhone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(*s.ContactPhone))
	}
	if s.Location != nil && *s.Location != "" {
		fmt.Fprintf(&b, "<p><strong>Location:</strong> %s</p>", html.EscapeString(*s.Location))
	}
	if desc, ok := s.Content["description"].(string); ok && desc != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(desc))
	}
	if len(s.Files) > 0 {
		b.WriteString("<ul>")
		for _, f := range s.Files {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, html.EscapeString(f.URL), html.EscapeString(f.Name))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// SubmissionSMSBody renders a one-line summary of s.
func SubmissionSMSBody(s models.Submission) string {
	return fmt.Sprintf("New %s submission %q from %s (%d files)", s.Type, s.Title, s.SubmittedBy, len(s.Files))
}
