package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"atelier/internal/domain"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>Thank you for your order!</h2>
<p>Hi {{.Customer.FirstName}},</p>
<p>Your order <strong>{{.ID}}</strong> has been received and is now being prepared.</p>
<table>
  <tr><td>Subtotal</td><td>${{printf "%.2f" .Subtotal}}</td></tr>
  {{if gt .Tax 0.0}}<tr><td>Tax</td><td>${{printf "%.2f" .Tax}}</td></tr>{{end}}
  {{if gt .Deposit 0.0}}<tr><td>Deposit paid</td><td>${{printf "%.2f" .Deposit}}</td></tr>{{end}}
  <tr><td><strong>Total</strong></td><td><strong>${{printf "%.2f" .Total}}</strong></td></tr>
</table>
<p>We will contact you at {{.Customer.Phone}} when your order is ready.</p>
`))

type sendGridRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []emailContent    `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SendOrderConfirmation emails the templated confirmation for a placed
// order. Callers run it through Go(); a failure only produces a log line.
func (d *Dispatcher) SendOrderConfirmation(ctx context.Context, order domain.Order) error {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, order); err != nil {
		return fmt.Errorf("rendering confirmation email: %w", err)
	}

	payload := sendGridRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: order.Customer.Email}}},
		},
		From:    emailAddress{Email: d.cfg.FromEmail, Name: d.cfg.FromName},
		Subject: fmt.Sprintf("Order confirmation %s", order.ID),
		Content: []emailContent{
			{Type: "text/html", Value: body.String()},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.SendGridURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.cfg.SendGridAPIKey)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending confirmation email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}
