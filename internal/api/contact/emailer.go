package contact

import (
	"fmt"
	"net/smtp"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/internal/domain/contact"
)

func sendNotification(cfg config.SMTPConfig, msg *contact.Message) error {
	auth := smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host)

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	payload := []byte("Subject: " + subject + "\r\n" +
		"From: " + cfg.From + "\r\n" +
		"To: " + cfg.NotifyTo + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(cfg.Host+":"+cfg.Port, auth, cfg.From, []string{cfg.NotifyTo}, payload)
}
