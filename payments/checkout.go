package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CheckoutProvider is the slice of the external checkout API this backend
// consumes: create a session, poll it back by id.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}

// Client talks to a Stripe-compatible checkout API. Requests are form-encoded,
// responses are JSON.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

func NewClient(secretKey, apiURL string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateSession(ctx context.Context, params CreateSessionParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", params.Currency)
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.ProductDescription != "" {
		form.Set("line_items[0][price_data][product_data][description]", params.ProductDescription)
	}
	if params.ProductImage != "" {
		form.Set("line_items[0][price_data][product_data][images][0]", params.ProductImage)
	}
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.UnitAmount, 10))
	form.Set("line_items[0][quantity]", strconv.FormatInt(params.Quantity, 10))
	form.Set("customer_email", params.CustomerEmail)
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	return c.do(ctx, http.MethodPost, "/checkout/sessions", form)
}

func (c *Client) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	return c.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(id), nil)
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (*Session, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checkout provider: unexpected status %s", resp.Status)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}

	return &session, nil
}
