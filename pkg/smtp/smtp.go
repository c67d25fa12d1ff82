package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendFeedback(userLabel string, message string) error
}

type smtp struct {
	auth  smtpPkg.Auth
	mail  string
	inbox string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	inbox := os.Getenv("FEEDBACK_INBOX")
	if inbox == "" {
		inbox = "glimmerservice@mail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, "smtp.gmail.com")

	return &smtp{auth: auth, mail: mail, inbox: inbox}
}

// SendFeedback forwards a shopper's feedback message to the store inbox.
func (s *smtp) SendFeedback(userLabel string, message string) error {
	to := []string{s.inbox}

	body := []byte(fmt.Sprintf("To: %s\r\nSubject: Chatbot feedback from %s\r\n\r\n%s",
		s.inbox, userLabel, message))

	if err := smtpPkg.SendMail("smtp.gmail.com:587", s.auth, s.mail, to, body); err != nil {
		return err
	}

	return nil
}
