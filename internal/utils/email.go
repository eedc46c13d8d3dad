package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

func senderEmail() string {
	if s := os.Getenv("SENDER_EMAIL"); s != "" {
		return s
	}
	return "support@laundry-express.co.uk"
}

// AdminEmail : destinataire des notifications internes (nouvelle commande).
func AdminEmail() string {
	if a := os.Getenv("ADMIN_EMAIL"); a != "" {
		return a
	}
	return "support@laundry-express.co.uk"
}

// SendEmail envoie un e-mail HTML via SMTP.
func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(senderEmail()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
