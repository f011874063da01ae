package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nextstep-go/internal/nextstep"
)

// Client talks to the external identity provider's REST API. The provider
// owns the whole account lifecycle; this client only exchanges credentials
// for a session token and triggers password-reset mails.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an identity Client. An empty apiKey is allowed here so
// commands that never talk to the provider still work on a fresh config;
// provider calls fail with a clear message instead.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("identity base URL is required")
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type credentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type credentialsResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges email and password for a session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (*nextstep.Credentials, error) {
	return c.credentialsCall(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp creates a new account and returns its session token.
func (c *Client) SignUp(ctx context.Context, email, password string) (*nextstep.Credentials, error) {
	return c.credentialsCall(ctx, "accounts:signUp", email, password)
}

// SendPasswordReset asks the provider to e-mail a password reset link.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return c.post(ctx, "accounts:sendOobCode", body, nil)
}

func (c *Client) credentialsCall(ctx context.Context, endpoint, email, password string) (*nextstep.Credentials, error) {
	req := credentialsRequest{Email: email, Password: password, ReturnSecureToken: true}
	var resp credentialsResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}
	return &nextstep.Credentials{
		Token:  resp.IDToken,
		UserID: resp.LocalID,
		Email:  resp.Email,
	}, nil
}

// post performs one provider call. Non-2xx responses are mapped to
// *AuthError with the provider's error code; transport failures map to
// CodeNetworkFailed so they hit the translation table too.
func (c *Client) post(ctx context.Context, endpoint string, body any, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("identity API key is not configured; set identity.api_key in the config file")
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request failed: %w: %w", &AuthError{Code: CodeNetworkFailed}, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Error.Message == "" {
		return &AuthError{Code: CodeInternal, StatusCode: resp.StatusCode}
	}
	return &AuthError{Code: normalizeCode(parsed.Error.Message), StatusCode: resp.StatusCode}
}

// Compile-time check that Client implements nextstep.IdentityProvider
var _ nextstep.IdentityProvider = (*Client)(nil)
