package invitations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// REST talks to the provider's invitation endpoints with a secret key.
type REST struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewREST(baseURL, secretKey string) *REST {
	return &REST{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// invitation is the provider's wire format. Timestamps are unix milliseconds.
type invitation struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Status       Status `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func (i invitation) toInvitation() Invitation {
	return Invitation{
		ID:           i.ID,
		EmailAddress: i.EmailAddress,
		Status:       i.Status,
		CreatedAt:    time.UnixMilli(i.CreatedAt).UTC(),
		UpdatedAt:    time.UnixMilli(i.UpdatedAt).UTC(),
	}
}

func (r *REST) ListPending(ctx context.Context) ([]Invitation, error) {
	query := url.Values{}
	query.Set("status", string(StatusPending))
	query.Set("paginated", "true")

	var page struct {
		Data []invitation `json:"data"`
	}

	if err := r.do(ctx, http.MethodGet, "/invitations?"+query.Encode(), nil, &page); err != nil {
		return nil, err
	}

	out := make([]Invitation, 0, len(page.Data))
	for _, i := range page.Data {
		out = append(out, i.toInvitation())
	}
	return out, nil
}

func (r *REST) Create(ctx context.Context, email, redirectURL string) (Invitation, error) {
	if email == "" {
		return Invitation{}, ErrEmailRequired
	}

	body := map[string]string{
		"email_address": email,
		"redirect_url":  redirectURL,
	}

	var created invitation
	if err := r.do(ctx, http.MethodPost, "/invitations", body, &created); err != nil {
		return Invitation{}, err
	}
	return created.toInvitation(), nil
}

func (r *REST) Revoke(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodPost, "/invitations/"+url.PathEscape(id)+"/revoke", nil, nil)
}

// do sends the request and decodes the response into out. Every failure
// other than a 404 wraps ErrProviderFailed.
func (r *REST) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: marshal request: %w", ErrProviderFailed, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrProviderFailed, err)
	}

	req.Header.Set("Authorization", "Bearer "+r.secretKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrProviderFailed, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w (status %d): %s", ErrProviderFailed, resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: parse response: %w", ErrProviderFailed, err)
	}
	return nil
}
