package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/docpoint/doctor-scheduler/internal/config"
)

type Sender interface {
	SendReviewRequest(email, appointmentRef, doctorName string) error
}

type SMTPMailer struct {
	dialer      *gomail.Dialer
	from        string
	frontendURL string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:        cfg.SMTPUser,
		frontendURL: cfg.FrontendURL,
	}
}

func (m *SMTPMailer) SendReviewRequest(email, appointmentRef, doctorName string) error {
	reviewLink := fmt.Sprintf("%s/review/%s", m.frontendURL, appointmentRef)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Please Rate Your Doctor Visit")
	msg.SetBody("text/html", reviewRequestBody(doctorName, reviewLink))

	return m.dialer.DialAndSend(msg)
}

func reviewRequestBody(doctorName, reviewLink string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px;">
          <h2 style="color: #1976d2;">How was your visit with Dr. %s?</h2>
          <p style="color: #666; line-height: 1.6;">
            Your feedback is important to us! Please take a moment to rate your experience.
          </p>
          <div style="margin: 30px 0; text-align: center;">
            <a href="%s"
              style="background-color: #1976d2; color: white; padding: 12px 24px;
                     text-decoration: none; border-radius: 5px;">
              Rate Your Visit
            </a>
          </div>
        </div>
      </div>`, doctorName, reviewLink)
}

var _ Sender = (*SMTPMailer)(nil)
