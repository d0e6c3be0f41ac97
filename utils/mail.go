package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disposable/disposable"
	"github.com/ieee-swc/ClubBack/config"
	"gopkg.in/gomail.v2"
)

func InitMailer() {
	cfg := config.GetConfig()
	num, err := strconv.Atoi(cfg.SmtpPort)
	if err != nil {
		Fatal("Invalid SMTP port", "err", err)
		return
	}
	d := gomail.NewDialer(cfg.SmtpHost, num, cfg.SmtpUser, cfg.SmtpPass)
	s, err := d.Dial()
	if err != nil {
		Fatal("Mailer unreachable", "err", err)
		return
	}
	_ = s.Close()
	Success("Mailer connection OK")
}

func SendMail(to string, subject string, content string) error {
	cfg := config.GetConfig()
	num, err := strconv.Atoi(cfg.SmtpPort)
	if err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SmtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", content)
	m.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	m.SetHeader("Message-ID", fmt.Sprintf("<%d@%s>", time.Now().UnixNano(), "ieee-swc.club"))

	d := gomail.NewDialer(cfg.SmtpHost, num, cfg.SmtpUser, cfg.SmtpPass)

	if err := d.DialAndSend(m); err != nil {
		Error("Failed to send email", "err", err)
		return err
	}

	Info("📧 Email sent", "to", to, "subject", subject)
	return nil
}

// CheckEmailDomain rejects aliased and disposable addresses before we hand
// the sign-up off to the hosted auth backend.
func CheckEmailDomain(email string) error {
	if strings.Contains(email, "+") {
		return errors.New("email addresses with an alias ('+' symbol) are not allowed")
	}

	atIndex := strings.LastIndex(email, "@")
	if atIndex == -1 || atIndex == len(email)-1 {
		return errors.New("invalid email address: missing or misplaced '@'")
	}

	domain := strings.ToLower(email[atIndex+1:])
	if disposable.Domain(domain) {
		return errors.New("disposable email addresses are not allowed")
	}
	return nil
}
