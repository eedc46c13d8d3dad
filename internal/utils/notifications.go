package utils

import (
	"fmt"
	"log"

	"laundry_express_back_end/internal/models"
)

// Notifications transactionnelles. Toujours best-effort : un échec est loggé
// et jamais remonté à l'opération déclenchante : une commande créée reste
// créée même si aucun e-mail ne part.

// SendOrderConfirmationEmail envoie la confirmation au client.
func SendOrderConfirmationEmail(order models.Order, recipientEmail string) error {
	subject := fmt.Sprintf("Order Confirmed #%d - Laundry Express 🧺", order.OrderNumber)
	html := GenerateOrderConfirmationHTML(order)

	if err := SendEmail(recipientEmail, subject, html); err != nil {
		log.Printf("❌ Erreur envoi confirmation commande #%d: %v", order.OrderNumber, err)
		return err
	}

	log.Printf("📧 Confirmation envoyée pour la commande #%d → %s", order.OrderNumber, recipientEmail)
	return nil
}

// SendAdminOrderNotification prévient l'équipe d'une nouvelle commande.
func SendAdminOrderNotification(order models.Order) error {
	subject := fmt.Sprintf("🔔 New Order #%d - £%.2f", order.OrderNumber, order.TotalAmount)
	html := GenerateAdminOrderHTML(order)

	if err := SendEmail(AdminEmail(), subject, html); err != nil {
		log.Printf("❌ Erreur envoi notification admin pour la commande #%d: %v", order.OrderNumber, err)
		return err
	}

	log.Printf("📧 Notification admin envoyée pour la commande #%d", order.OrderNumber)
	return nil
}

// SendOrderStatusEmail envoie un e-mail de changement de statut au client.
func SendOrderStatusEmail(order models.Order, newStatus, recipientEmail string) error {
	subject := StatusEmailSubject(newStatus)
	html := GenerateStatusUpdateHTML(order, newStatus)

	if err := SendEmail(recipientEmail, subject, html); err != nil {
		log.Printf("❌ Erreur envoi email statut: %v", err)
		return err
	}

	log.Printf("📧 Email de statut envoyé: %s → %s", newStatus, recipientEmail)
	return nil
}
