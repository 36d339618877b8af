package notifsrvc

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/opsfront/intake-backend/intake"
)

// SmtpSender delivers notifications through a plain SMTP relay.
type SmtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string

	// send is swapped out in tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSmtpSender(host string, port int, username, password, from, to string) *SmtpSender {
	return &SmtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		send:     smtp.SendMail,
	}
}

// SetSendFunc replaces the delivery function, used by tests to avoid a
// live relay.
func (s *SmtpSender) SetSendFunc(send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	s.send = send
}

func (s *SmtpSender) Send(ctx context.Context, subm intake.Submission) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.from, s.to, Subject(subm), Body(subm))

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	err := s.send(addr, auth, s.from, []string{s.to}, []byte(msg))
	if err != nil {
		return fmt.Errorf("failed to send notification via smtp relay %s: %w", addr, err)
	}
	return nil
}
