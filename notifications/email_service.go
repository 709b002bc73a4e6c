package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/tomasgiraldo/serconn/configs"
)

// BrevoService sends transactional email through the Brevo HTTP API. Booking
// decision mails ride on it; the in-app Notification records are the source
// of truth and email delivery is best effort.
type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured, booking emails disabled")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized")
}

// SendEmail delivers one message. Callers run it in a goroutine; failures are
// logged and never surfaced to the request.
func SendEmail(recipientName, recipientEmail, subject, htmlContent string) {
	if EmailClient == nil {
		return
	}

	payload := brevoPayload{
		Sender: map[string]string{
			"name":  EmailClient.SenderName,
			"email": EmailClient.SenderEmail,
		},
		To: []map[string]string{
			{"name": recipientName, "email": recipientEmail},
		},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("🔥 Failed to marshal email payload: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		log.Printf("🔥 Failed to build email request: %v", err)
		return
	}
	req.Header.Set("api-key", EmailClient.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", recipientEmail, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("🔥 Brevo rejected email to %s: %d %s", recipientEmail, resp.StatusCode, string(respBody))
	}
}

// BookingDecisionEmail builds the subject and body for a booking outcome.
func BookingDecisionEmail(serviceName string, confirmed bool) (string, string) {
	if confirmed {
		return "Tu reserva ha sido confirmada",
			fmt.Sprintf("<h1>Reserva confirmada</h1><p>El proveedor aceptó tu reserva de <b>%s</b>.</p>", serviceName)
	}
	return "Tu solicitud de reserva fue rechazada",
		fmt.Sprintf("<h1>Reserva rechazada</h1><p>El proveedor no aceptó tu reserva de <b>%s</b>.</p>", serviceName)
}
