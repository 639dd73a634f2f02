// Package inventory implements the InventoryClient port over the remote
// inventory system's HTTP API.
package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopfloor/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Client pushes stock adjustments to the inventory service. Calls are
// synchronous with no retry; the completion handler treats any failure as a
// dependency failure and aborts.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an inventory client for the given base URL
// (e.g. "http://inventory:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type stockCreditRequest struct {
	DestinationLocationID string `json:"destinationLocationId"`
	ItemKind              string `json:"itemKind"`
	ItemID                string `json:"itemId"`
	Delta                 int    `json:"delta"`
	ReasonCode            string `json:"reasonCode"`
	Note                  string `json:"note,omitempty"`
}

// CreditStock posts one stock adjustment. Any non-2xx response is an error.
func (c *Client) CreditStock(ctx context.Context, credit ports.StockCredit) error {
	body, err := json.Marshal(stockCreditRequest{
		DestinationLocationID: credit.DestinationLocationID,
		ItemKind:              string(credit.ItemKind),
		ItemID:                credit.ItemID,
		Delta:                 credit.Delta,
		ReasonCode:            credit.ReasonCode,
		Note:                  credit.Note,
	})
	if err != nil {
		return err
	}

	url := c.baseURL + "/api/v1/stock/credits"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Include a bounded piece of the response for diagnostics.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("inventory credit rejected: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
