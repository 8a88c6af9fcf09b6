package mail

import (
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name    string
	Content io.Reader
}

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	from   string
	dialer Dialer
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		from:   email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	return s.dialer.DialAndSend(s.compose(to, subject, htmlBody, textBody, attachments))
}

func (s *sender) compose(to []string, subject, htmlBody, textBody string, attachments []Attachment) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.AddAlternative("text/plain", textBody)
	}
	if htmlBody != "" {
		m.SetBody("text/html", htmlBody)
	}

	for _, a := range attachments {
		if a.Name == "" || a.Content == nil {
			continue
		}
		content := a.Content
		m.Attach(a.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}
	return m
}
