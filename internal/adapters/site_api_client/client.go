package site_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/constants"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/contextkeys"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/domain"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/core/port"
)

const defaultTimeout = 10 * time.Second

// Client — HTTP-клиент CRUD API сайта. Реализует PropertyReaderPort и InquirySenderPort.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ port.PropertyReaderPort = (*Client)(nil)
	_ port.InquirySenderPort  = (*Client)(nil)
)

// NewClient принимает адрес вида http://host:port/api/v1
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// doRequest - внутренний хелпер: проставляет trace_id и заголовки
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(constants.TraceIDHeader, traceID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func statusError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr errorDTO
	if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("site api returned status %d: %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("site api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
}

func (c *Client) ListProperties(ctx context.Context, query domain.PropertyQuery) ([]domain.Property, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SiteApiClient",
		"method":    "ListProperties",
	})

	params := url.Values{}
	if query.Published != nil {
		params.Set("published", strconv.FormatBool(*query.Published))
	}
	if query.Featured != nil {
		params.Set("featured", strconv.FormatBool(*query.Featured))
	}
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	if query.Near != "" {
		params.Set("near", query.Near)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}
	endpoint := c.baseURL + "/properties"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	clientLogger.Debug("Sending request to site api", port.Fields{"url": endpoint})

	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to site api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := statusError(resp)
		clientLogger.Error("Received error response from site api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var items []PropertyDTO
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		clientLogger.Error("Failed to decode response from site api", err, nil)
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	result := make([]domain.Property, len(items))
	for i, item := range items {
		result[i] = item.toDomain()
	}
	clientLogger.Debug("Successfully received properties", port.Fields{"count": len(result)})
	return result, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SiteApiClient",
		"method":      "GetProperty",
		"property_id": id,
	})

	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrPropertyNotFound
	}
	endpoint := c.baseURL + "/properties/" + url.PathEscape(id)
	resp, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to site api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrPropertyNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := statusError(resp)
		clientLogger.Error("Received error response from site api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var item PropertyDTO
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		clientLogger.Error("Failed to decode response from site api", err, nil)
		return nil, fmt.Errorf("decode property: %w", err)
	}
	prop := item.toDomain()
	return &prop, nil
}

// SendInquiry: 400 с конвертом {success:false} означает отказ валидации, а не ошибка
func (c *Client) SendInquiry(ctx context.Context, inquiry domain.Inquiry) (*domain.InquiryReceipt, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SiteApiClient",
		"method":    "SendInquiry",
	})

	payload, err := json.Marshal(InquiryRequestDTO{
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Message:       inquiry.Message,
		PropertyID:    inquiry.PropertyID,
		PropertyTitle: inquiry.PropertyTitle,
	})
	if err != nil {
		return nil, fmt.Errorf("encode inquiry: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/inquiries", bytes.NewReader(payload))
	if err != nil {
		clientLogger.Error("Failed to perform request to site api", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		err := statusError(resp)
		clientLogger.Error("Received error response from site api", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var envelope InquiryResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		clientLogger.Error("Failed to decode response from site api", err, nil)
		return nil, fmt.Errorf("decode inquiry response: %w", err)
	}
	if resp.StatusCode == http.StatusBadRequest && envelope.Success {
		return nil, errors.New("site api returned 400 with a success envelope")
	}
	return &domain.InquiryReceipt{Success: envelope.Success, Message: envelope.Message}, nil
}
