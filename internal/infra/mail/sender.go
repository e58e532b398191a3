package mail

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"
)

// EmailSender 寄信介面
type EmailSender interface {
	SendEmail(subject string, content string, to []string, cc []string, bcc []string, attachFiles []string) error
}

type SmtpSender struct {
	name              string
	fromEmailAddress  string
	fromEmailPassword string
	host              string
	port              int
}

/*
NewSmtpSender 以帳號密碼登入smtp寄信

參數:

	name: 寄件者屬名
	fromEmailAddress: 寄件者郵件地址
	fromEmailPassword: 寄件者郵件密碼或app key
	host, port: smtp server, 例如 smtp.gmail.com:587
*/
func NewSmtpSender(name, fromEmailAddress, fromEmailPassword, host string, port int) *SmtpSender {
	return &SmtpSender{
		name:              name,
		fromEmailAddress:  fromEmailAddress,
		fromEmailPassword: fromEmailPassword,
		host:              host,
		port:              port,
	}
}

func (sender *SmtpSender) SendEmail(subject string, content string, to []string, cc []string, bcc []string, attachFiles []string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", sender.name, sender.fromEmailAddress)
	e.Subject = subject
	e.HTML = []byte(content)
	e.To = to
	e.Cc = cc
	e.Bcc = bcc

	for _, f := range attachFiles {
		if _, err := e.AttachFile(f); err != nil {
			return fmt.Errorf("failed to attach file %s: %w", f, err)
		}
	}

	smtpAuth := smtp.PlainAuth("", sender.fromEmailAddress, sender.fromEmailPassword, sender.host)
	return e.Send(sender.host+":"+strconv.Itoa(sender.port), smtpAuth)
}

// LogSender smtp 未設定時使用, 只記錄收件人與主旨
type LogSender struct {
	logger *zerolog.Logger
}

func NewLogSender(logger *zerolog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (sender *LogSender) SendEmail(subject string, content string, to []string, cc []string, bcc []string, attachFiles []string) error {
	sender.logger.Info().
		Strs("to", to).
		Str("subject", subject).
		Int("content_length", len(content)).
		Msg("email not sent, smtp is not configured")
	return nil
}

var (
	_ EmailSender = (*SmtpSender)(nil)
	_ EmailSender = (*LogSender)(nil)
)
