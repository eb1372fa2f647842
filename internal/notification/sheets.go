package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atelier/internal/domain"
)

type sheetsAppendRequest struct {
	Values [][]interface{} `json:"values"`
}

// BackupOrderRow appends a flattened order row to the backup spreadsheet.
// Purely a backup: the datastore is authoritative and failures here are
// swallowed by the dispatcher.
func (d *Dispatcher) BackupOrderRow(ctx context.Context, order domain.Order) error {
	designs := make([]string, len(order.Items))
	for i, item := range order.Items {
		designs[i] = fmt.Sprintf("%s (%s)", item.DesignName, item.PersonName)
	}

	row := []interface{}{
		order.ID,
		order.CreatedAt.Format(time.RFC3339),
		order.Customer.FirstName + " " + order.Customer.LastName,
		order.Customer.Email,
		order.Customer.Phone,
		strings.Join(designs, "; "),
		order.Subtotal,
		order.Tax,
		order.Deposit,
		order.Total,
		order.PaymentMethod,
		order.Status,
	}

	payload, err := json.Marshal(sheetsAppendRequest{Values: [][]interface{}{row}})
	if err != nil {
		return fmt.Errorf("marshaling sheet row: %w", err)
	}

	url := fmt.Sprintf("%s/v4/spreadsheets/%s/values/Orders!A1:append?valueInputOption=RAW&key=%s",
		d.cfg.SheetsURL, d.cfg.SpreadsheetID, d.cfg.SheetsAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("appending sheet row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("spreadsheet backend returned status %d", resp.StatusCode)
	}
	return nil
}
