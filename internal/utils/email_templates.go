package utils

import (
	"fmt"
	"strings"

	"laundry_express_back_end/internal/models"
)

// Templates d'e-mails transactionnels. Contenu en anglais (marché UK),
// montants en livres sterling.

func itemsTableHTML(items []models.CartItem) string {
	var b strings.Builder
	for _, item := range items {
		categoryLine := item.Category
		if item.Subcategory != "" {
			categoryLine += " › " + item.Subcategory
		}
		b.WriteString(fmt.Sprintf(`
				<tr>
					<td style="padding: 12px; border-bottom: 1px solid #e2e8f0;">
						<div style="font-weight: 500; color: #1e293b;">%s</div>
						<div style="font-size: 13px; color: #64748b;">%s</div>
					</td>
					<td style="padding: 12px; border-bottom: 1px solid #e2e8f0; text-align: center; color: #64748b;">× %d</td>
					<td style="padding: 12px; border-bottom: 1px solid #e2e8f0; text-align: right; font-weight: 500; color: #1e293b;">£%.2f</td>
				</tr>`, item.ProductName, categoryLine, item.Quantity, item.Price*float64(item.Quantity)))
	}
	return b.String()
}

// GenerateOrderConfirmationHTML génère l'e-mail de confirmation client.
func GenerateOrderConfirmationHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Order confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f8fafc;">
	<table role="presentation" style="width: 100%%; border-collapse: collapse; background-color: #f8fafc;">
		<tr>
			<td style="padding: 40px 20px;">
				<table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 16px; overflow: hidden;">
					<tr>
						<td style="background: linear-gradient(135deg, #2563eb 0%%, #1d4ed8 100%%); padding: 40px; text-align: center;">
							<h1 style="margin: 0; color: #ffffff; font-size: 32px; font-weight: 600;">Order Confirmed! 🎉</h1>
							<p style="margin: 12px 0 0 0; color: #dbeafe; font-size: 16px;">Thank you for choosing Laundry Express</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 40px;">
							<div style="background-color: #f1f5f9; border-radius: 12px; padding: 24px; margin-bottom: 32px;">
								<div style="font-size: 14px; color: #64748b;">Order Number</div>
								<div style="font-size: 24px; font-weight: 700; color: #2563eb;">#%d</div>
								<div style="font-size: 14px; color: #64748b; margin-top: 12px;">Total Amount</div>
								<div style="font-size: 24px; font-weight: 700; color: #2563eb;">£%.2f</div>
							</div>
							<h2 style="margin: 0 0 20px 0; font-size: 20px; color: #1e293b;">Order Items</h2>
							<table style="width: 100%%; border-collapse: collapse; border: 1px solid #e2e8f0; border-radius: 8px; margin-bottom: 32px;">
								<tbody>%s</tbody>
							</table>
							<h2 style="margin: 0 0 20px 0; font-size: 20px; color: #1e293b;">Pickup &amp; Delivery Schedule</h2>
							<div style="background-color: #f1f5f9; border-radius: 8px; padding: 20px; margin-bottom: 12px;">
								<div style="font-size: 14px; color: #64748b; margin-bottom: 8px;">🧺 Pickup</div>
								<div style="font-size: 16px; font-weight: 600; color: #1e293b;">%s</div>
								<div style="font-size: 14px; color: #64748b;">%s</div>
							</div>
							<div style="background-color: #f1f5f9; border-radius: 8px; padding: 20px; margin-bottom: 32px;">
								<div style="font-size: 14px; color: #64748b; margin-bottom: 8px;">🚚 Delivery</div>
								<div style="font-size: 16px; font-weight: 600; color: #1e293b;">%s</div>
								<div style="font-size: 14px; color: #64748b;">%s</div>
							</div>
							<div style="background-color: #f8fafc; border-left: 4px solid #2563eb; padding: 16px; border-radius: 4px;">
								<div style="font-size: 14px; color: #64748b; margin-bottom: 4px;">Payment Method</div>
								<div style="font-size: 16px; font-weight: 500; color: #1e293b; text-transform: capitalize;">%s</div>
							</div>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8fafc; padding: 32px; text-align: center; border-top: 1px solid #e2e8f0;">
							<p style="margin: 0 0 8px 0; color: #64748b; font-size: 14px;">Need help? Contact us</p>
							<p style="margin: 0; color: #2563eb; font-size: 14px; font-weight: 500;">support@laundry-express.co.uk</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`,
		order.OrderNumber, order.TotalAmount, itemsTableHTML(order.Items),
		order.PickupDate, order.PickupTime,
		order.DeliveryDate, order.DeliveryTime,
		strings.ReplaceAll(order.PaymentMethod, "_", " "))
}

// GenerateAdminOrderHTML génère la notification interne de nouvelle commande.
func GenerateAdminOrderHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f8fafc;">
	<table role="presentation" style="width: 100%%; border-collapse: collapse;">
		<tr>
			<td style="padding: 40px 20px;">
				<table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
					<tr>
						<td style="background-color: #1e293b; padding: 32px; text-align: center;">
							<h1 style="margin: 0; color: #ffffff; font-size: 24px;">🔔 New Order #%d</h1>
						</td>
					</tr>
					<tr>
						<td style="padding: 32px;">
							<p style="margin: 0 0 8px 0; color: #334155; font-size: 15px;"><strong>Customer:</strong> %s (%s)</p>
							<p style="margin: 0 0 8px 0; color: #334155; font-size: 15px;"><strong>Total:</strong> £%.2f — %s</p>
							<p style="margin: 0 0 8px 0; color: #334155; font-size: 15px;"><strong>Pickup:</strong> %s, %s</p>
							<p style="margin: 0 0 8px 0; color: #334155; font-size: 15px;"><strong>Delivery:</strong> %s, %s</p>
							<p style="margin: 0 0 24px 0; color: #334155; font-size: 15px;"><strong>Address:</strong> %s (%s)</p>
							<table style="width: 100%%; border-collapse: collapse; border: 1px solid #e2e8f0; border-radius: 8px;">
								<tbody>%s</tbody>
							</table>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`,
		order.OrderNumber, order.UserName, order.UserEmail,
		order.TotalAmount, order.PaymentMethod,
		order.PickupDate, order.PickupTime,
		order.DeliveryDate, order.DeliveryTime,
		order.Address, order.PinCode,
		itemsTableHTML(order.Items))
}

// GenerateStatusUpdateHTML génère l'e-mail de changement de statut.
func GenerateStatusUpdateHTML(order models.Order, newStatus string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f8fafc;">
	<table role="presentation" style="width: 100%%; border-collapse: collapse;">
		<tr>
			<td style="padding: 40px 20px;">
				<table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
					<tr>
						<td style="background: linear-gradient(135deg, #2563eb 0%%, #1d4ed8 100%%); padding: 32px; text-align: center;">
							<h1 style="margin: 0; color: #ffffff; font-size: 24px;">%s Order Update</h1>
						</td>
					</tr>
					<tr>
						<td style="padding: 32px;">
							<p style="margin: 0 0 20px 0; color: #334155; font-size: 16px; line-height: 1.6;">%s</p>
							<div style="display: inline-block; padding: 10px 20px; background-color: %s; color: #ffffff; border-radius: 20px; font-weight: 600; font-size: 13px; text-transform: uppercase;">%s</div>
							<p style="margin: 24px 0 0 0; color: #64748b; font-size: 14px;">Order <strong>#%d</strong> — £%.2f</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`,
		statusIcon(newStatus), statusMessage(newStatus), statusColor(newStatus),
		newStatus, order.OrderNumber, order.TotalAmount)
}

func StatusEmailSubject(status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return "✅ Your order has been confirmed - Laundry Express"
	case models.OrderStatusProcessing:
		return "🧺 Your laundry is being processed - Laundry Express"
	case models.OrderStatusCompleted:
		return "🎉 Your order is complete - Laundry Express"
	case models.OrderStatusCancelled:
		return "❌ Your order has been cancelled - Laundry Express"
	default:
		return "📋 Your order has been updated - Laundry Express"
	}
}

func statusMessage(status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return "Good news! Your order has been confirmed and your pickup is scheduled."
	case models.OrderStatusProcessing:
		return "Your items have been collected and are being cleaned with care."
	case models.OrderStatusCompleted:
		return "Your order has been delivered. We hope everything is spotless!"
	case models.OrderStatusCancelled:
		return "Your order has been cancelled. If you have any questions, please contact us."
	default:
		return "The status of your order has been updated."
	}
}

func statusIcon(status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return "✅"
	case models.OrderStatusProcessing:
		return "🧺"
	case models.OrderStatusCompleted:
		return "🎉"
	case models.OrderStatusCancelled:
		return "❌"
	default:
		return "📋"
	}
}

func statusColor(status string) string {
	switch status {
	case models.OrderStatusConfirmed:
		return "#10b981" // Green
	case models.OrderStatusProcessing:
		return "#3b82f6" // Blue
	case models.OrderStatusCompleted:
		return "#8b5cf6" // Purple
	case models.OrderStatusCancelled:
		return "#ef4444" // Red
	default:
		return "#6b7280" // Gray
	}
}
