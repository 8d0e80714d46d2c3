package alert

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// SMTPProvider delivers alert e-mails over plain SMTP. Used in development
// against Mailhog.
type SMTPProvider struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
}

func NewSMTPProvider(host string, port int, username, password, fromEmail, fromName string) ports.EmailProvider {
	return &SMTPProvider{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (p *SMTPProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	contentType := "text/plain; charset=UTF-8"
	if isHTML {
		contentType = "text/html; charset=UTF-8"
	}

	var message strings.Builder
	fmt.Fprintf(&message, "From: %s <%s>\r\n", p.fromName, p.fromEmail)
	fmt.Fprintf(&message, "To: %s\r\n", to)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&message, "Content-Type: %s\r\n", contentType)
	message.WriteString("\r\n")
	message.WriteString(body)

	var auth smtp.Auth
	if p.username != "" && p.password != "" {
		auth = smtp.PlainAuth("", p.username, p.password, p.host)
	}

	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	if err := smtp.SendMail(addr, auth, p.fromEmail, []string{to}, []byte(message.String())); err != nil {
		return fmt.Errorf("smtp error: %w", err)
	}

	return nil
}
