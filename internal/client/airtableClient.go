package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lobby-signup/internal/config"
)

type AirtableClient interface {
	CreateRecord(ctx context.Context, fields map[string]interface{}) (*AirtableRecord, error)
	UpdateRecord(ctx context.Context, recordID string, fields map[string]interface{}) (*AirtableRecord, error)
}

type airtableClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	baseID     string
	tableName  string
}

// AirtableRecord is the store's representation of one row.
type AirtableRecord struct {
	ID          string                 `json:"id"`
	CreatedTime string                 `json:"createdTime,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
}

// AirtableError carries the store's error body verbatim so handlers can
// surface it for diagnostics.
type AirtableError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *AirtableError) Error() string {
	return fmt.Sprintf("airtable error %d: %s", e.StatusCode, string(e.Body))
}

func NewAirtableClient(airtableCfg *config.Airtable) AirtableClient {
	return &airtableClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   airtableCfg.BaseURL,
		apiKey:    airtableCfg.APIKey,
		baseID:    airtableCfg.BaseID,
		tableName: airtableCfg.TableName,
	}
}

func (c *airtableClientImpl) CreateRecord(ctx context.Context, fields map[string]interface{}) (*AirtableRecord, error) {
	url := fmt.Sprintf("%s/v0/%s/%s", c.baseURL, c.baseID, c.tableName)

	return c.doRequest(ctx, http.MethodPost, url, fields)
}

func (c *airtableClientImpl) UpdateRecord(ctx context.Context, recordID string, fields map[string]interface{}) (*AirtableRecord, error) {
	url := fmt.Sprintf("%s/v0/%s/%s/%s", c.baseURL, c.baseID, c.tableName, recordID)

	return c.doRequest(ctx, http.MethodPatch, url, fields)
}

func (c *airtableClientImpl) doRequest(ctx context.Context, method, url string, fields map[string]interface{}) (*AirtableRecord, error) {
	payload := struct {
		Fields map[string]interface{} `json:"fields"`
	}{Fields: fields}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read airtable response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AirtableError{
			StatusCode: resp.StatusCode,
			Body:       json.RawMessage(respBody),
		}
	}

	var record AirtableRecord
	if err := json.Unmarshal(respBody, &record); err != nil {
		return nil, fmt.Errorf("decode airtable response: %w", err)
	}

	return &record, nil
}
