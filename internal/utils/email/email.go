package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/easyliving-service/internal/config"
	"github.com/Dan9191/easyliving-service/internal/forecast"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// DigestSubject is the subject line of the weekly forecast email
const DigestSubject = "Your EasyLiving weekly spending forecast"

// DigestBody formats the weekly forecast email text
func DigestBody(name string, res *forecast.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Your spending over the next %d days is forecast at %s (last week: %s).\n\n",
		len(res.Predictions), forecast.FormatRupees(res.PredictedCumulative), forecast.FormatRupees(res.Last7Cumulative))
	b.WriteString("Daily forecast:\n")
	for i, p := range res.Predictions {
		fmt.Fprintf(&b, "  Day %d: %s\n", i+1, forecast.FormatRupees(p))
	}
	b.WriteString("\nRecommendations:\n")
	for _, r := range res.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", r)
	}
	b.WriteString("\nBest regards,\nEasyLiving")
	return b.String()
}

// SendForecastDigest emails a user their forecast and recommendations
func (s *Sender) SendForecastDigest(to, name string, res *forecast.Result) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = DigestSubject
	e.Text = []byte(DigestBody(name, res))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
