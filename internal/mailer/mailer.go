// Package mailer реализует отправку писем через SMTP.
package mailer

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Sender описывает контракт отправки письма. Отправка лучшая из возможных:
// вызывающая сторона логирует ошибку и продолжает работу.
type Sender interface {
	Send(subject, body string, recipients []string) error
}

// SMTPMailer отправляет письма через SMTP с аутентификацией PLAIN.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer создаёт почтовый клиент с указанными реквизитами сервера.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Send отправляет текстовое письмо указанным получателям.
func (m *SMTPMailer) Send(subject, body string, recipients []string) error {
	if m == nil || m.host == "" || m.username == "" {
		return fmt.Errorf("mailer not configured")
	}
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	msg := buildMessage(m.from, subject, body, recipients)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, recipients, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// buildMessage собирает заголовки и тело письма. Тема кодируется по
// RFC 2047: заголовки не допускают сырой UTF-8.
func buildMessage(from, subject, body string, recipients []string) []byte {
	msg := strings.Builder{}
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return []byte(msg.String())
}
