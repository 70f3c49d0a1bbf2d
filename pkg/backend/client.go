package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zeevo-shop/zeevo-edge/pkg/config"
	pkgerrors "github.com/zeevo-shop/zeevo-edge/pkg/errors"
)

// Client is the typed HTTP client for the commerce backend. Responses are
// decoded out of the {data: ...} envelope and schema-checked; anything the
// schema rejects is treated the same as an unreachable upstream.
type Client struct {
	baseURL string
	http    *http.Client
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// New builds a backend client from config. A zero timeout means requests
// have no client-side deadline.
func New(cfg config.UpstreamConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("upstream base url required")
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// BaseURL exposes the configured upstream root, used as an absolutization base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks upstream reachability for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping upstream: %w", err)
	}
	defer drain(resp)
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("upstream unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// GetStoreBySlug fetches a store's public record by its tenant identifier.
func (c *Client) GetStoreBySlug(ctx context.Context, slug string) (*Store, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "store identifier required")
	}

	var store Store
	if err := c.getJSON(ctx, "/v1/store/by/"+url.PathEscape(slug), "", &store); err != nil {
		return nil, err
	}
	return &store, nil
}

// GetProductByID fetches a product together with its embedded store.
func (c *Client) GetProductByID(ctx context.Context, id string) (*Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	var product Product
	if err := c.getJSON(ctx, "/v1/product/by-id/"+url.PathEscape(id), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Sitemap proxies the backend-generated sitemap XML.
func (c *Client) Sitemap(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/store/sitemap.xml", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build sitemap request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "fetch sitemap")
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("sitemap fetch returned %d", resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read sitemap body")
	}
	return body, nil
}

// VerifyMagicToken exchanges a magic-link token for a session token. On
// failure the backend's literal message is carried in the returned error.
func (c *Client) VerifyMagicToken(ctx context.Context, token string) (string, error) {
	var out struct {
		Token string `json:"token" validate:"required"`
	}
	payload := map[string]string{"token": token}
	if err := c.postJSON(ctx, "/v1/user/verify-magic-token", payload, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// VerifyPayoutAccount asks the backend to confirm a payout account.
func (c *Client) VerifyPayoutAccount(ctx context.Context, payoutAccountID, userID string) error {
	payload := map[string]string{
		"payoutAccountId": payoutAccountID,
		"userId":          userID,
	}
	return c.postJSON(ctx, "/v1/user/verify-payout-account", payload, nil)
}

// ListNotifications fetches the caller's notifications, forwarding their token.
func (c *Client) ListNotifications(ctx context.Context, bearer string) ([]Notification, error) {
	var items []Notification
	if err := c.getJSON(ctx, "/v1/notification", bearer, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, bearer, id string) error {
	return c.do(ctx, http.MethodPatch, "/v1/notification/"+url.PathEscape(id)+"/read", bearer, nil, nil)
}

// MarkAllNotificationsRead marks every notification for the caller as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, bearer string) error {
	return c.do(ctx, http.MethodPost, "/v1/notification/read-all", bearer, nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path, bearer string, dest any) error {
	return c.do(ctx, http.MethodGet, path, bearer, nil, dest)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, dest any) error {
	return c.do(ctx, http.MethodPost, path, "", payload, dest)
}

func (c *Client) do(ctx context.Context, method, path, bearer string, payload, dest any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request payload")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, fmt.Sprintf("%s %s", method, path))
	}
	defer drain(resp)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read upstream body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}
	if dest == nil {
		return nil
	}

	if err := decodeEnvelope(raw, dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode upstream payload")
	}
	if err := validatePayload(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "upstream payload failed schema check")
	}
	return nil
}

// decodeEnvelope unwraps {data: ...} when present and otherwise decodes the
// body directly, tolerating both envelope styles the backend has shipped.
func decodeEnvelope(raw []byte, dest any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		return json.Unmarshal(envelope.Data, dest)
	}
	return json.Unmarshal(raw, dest)
}

func validatePayload(dest any) error {
	v := reflect.ValueOf(dest)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if v.Index(i).Kind() != reflect.Struct {
				continue
			}
			if err := validate.Struct(v.Index(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// statusError converts a non-2xx response into a typed error, preserving the
// backend's literal message so verification flows can show it verbatim.
func statusError(status int, raw []byte) error {
	msg := upstreamMessage(raw)

	switch {
	case status == http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return pkgerrors.New(pkgerrors.CodeNotFound, msg)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if msg == "" {
			msg = "authentication required"
		}
		return pkgerrors.New(pkgerrors.CodeUnauthorized, msg)
	case status >= 400 && status < 500:
		if msg == "" {
			msg = fmt.Sprintf("upstream rejected request with status %d", status)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("upstream returned status %d", status)
		}
		return pkgerrors.New(pkgerrors.CodeUpstream, msg)
	}
}

// upstreamMessage pulls a human-readable message out of an error body,
// accepting both {error:{message}} and flat {message} shapes.
func upstreamMessage(raw []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return ""
	}
	if nested.Error.Message != "" {
		return nested.Error.Message
	}
	return nested.Message
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
