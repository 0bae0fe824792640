package email

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/urlopy/urlopy-backend-go/internal/config"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// LeaveNotifier emails administrators about submitted leaves.
type LeaveNotifier struct {
	cfg       config.SMTPConfig
	templates *template.Template
	send      sendFunc
	backoff   time.Duration
}

var _ leave.Notifier = (*LeaveNotifier)(nil)

// NewLeaveNotifier parses the embedded templates and returns a notifier
// sending through cfg. An empty cfg.Host turns sending into a logged no-op.
func NewLeaveNotifier(cfg config.SMTPConfig) (*LeaveNotifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &LeaveNotifier{
		cfg:       cfg,
		templates: tmpl,
		send:      smtp.SendMail,
		backoff:   time.Second,
	}, nil
}

type leaveSubmittedData struct {
	AdminName    string
	EmployeeName string
	DateFrom     string
	DateTo       string
	CalendarDays int
	Comment      string
}

// NotifyLeaveSubmitted implements leave.Notifier. Every admin gets a
// separate message; failures are joined.
func (n *LeaveNotifier) NotifyLeaveSubmitted(ctx context.Context, admins []user.User, employee user.User, l leave.Leave) error {
	var errs []error
	for _, admin := range admins {
		if err := ctx.Err(); err != nil {
			return err
		}

		data := leaveSubmittedData{
			AdminName:    admin.Name,
			EmployeeName: employee.Name,
			DateFrom:     l.From().String(),
			DateTo:       l.To().String(),
			CalendarDays: l.CalendarDays(),
		}
		if l.Comment != nil {
			data.Comment = *l.Comment
		}

		var body bytes.Buffer
		if err := n.templates.ExecuteTemplate(&body, "leave_submitted.html", data); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}

		subject := fmt.Sprintf("Nowy wniosek urlopowy: %s (%s - %s)", employee.Name, data.DateFrom, data.DateTo)
		if err := n.sendHTML(ctx, admin.Email, subject, body.String()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *LeaveNotifier) sendHTML(ctx context.Context, to, subject, htmlBody string) error {
	if n.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := n.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", n.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := n.send(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// 1x, 2x, 4x backoff
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(n.backoff << (attempt - 1)):
			}
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
