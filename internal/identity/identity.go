// Package identity talks to an identity-toolkit style REST provider for
// registration, password and OAuth sign-in, and profile management.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawmart/pawmart/internal/metrics"
	"github.com/pawmart/pawmart/pkg/logger"
	domain "github.com/pawmart/pawmart/pkg/types"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Session is a signed-in user: provider tokens plus the profile at sign-in.
type Session struct {
	IDToken      string             `yaml:"id_token"      json:"idToken"`
	RefreshToken string             `yaml:"refresh_token" json:"refreshToken"`
	ExpiresAt    time.Time          `yaml:"expires_at"    json:"expiresAt"`
	Profile      domain.UserProfile `yaml:"profile"       json:"profile"`
}

// Live reports whether s holds an unexpired ID token.
func (s *Session) Live(now time.Time) bool {
	return s != nil && s.IDToken != "" && now.Before(s.ExpiresAt)
}

// Client is an identity provider client. The zero value is not usable; call New.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	nowFunc    func() time.Time
	log        *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New creates a client for the provider at baseURL (the public
// identity-toolkit endpoint when empty) authenticated with apiKey.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		nowFunc:    time.Now,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type authResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
}

type lookupUser struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl"`
	EmailVerified bool   `json:"emailVerified"`
	CreatedAt     string `json:"createdAt"`   // unix millis
	LastLoginAt   string `json:"lastLoginAt"` // unix millis
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Registration is the input of the registration form.
type Registration struct {
	Name     string
	Email    string
	PhotoURL string
	Password string
}

// SignUp creates an account, sets its display name and photo, and returns
// the new session. The password is checked locally first.
func (c *Client) SignUp(ctx context.Context, reg Registration) (*Session, error) {
	if err := ValidatePassword(reg.Password); err != nil {
		return nil, err
	}

	var resp authResponse
	err := c.call(ctx, "signUp", "accounts:signUp", map[string]any{
		"email":             reg.Email,
		"password":          reg.Password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if reg.Name != "" || reg.PhotoURL != "" {
		if _, err := c.UpdateProfile(ctx, resp.IDToken, reg.Name, reg.PhotoURL); err != nil {
			return nil, fmt.Errorf("setting profile: %w", err)
		}
	}
	return c.session(ctx, &resp)
}

// SignIn signs in with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp authResponse
	err := c.call(ctx, "signIn", "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return c.session(ctx, &resp)
}

// SignInWithIdp exchanges an OAuth provider ID token (for example a Google
// ID token, providerID "google.com") for a session.
func (c *Client) SignInWithIdp(ctx context.Context, providerID, idpToken string) (*Session, error) {
	postBody := url.Values{"id_token": {idpToken}, "providerId": {providerID}}.Encode()

	var resp authResponse
	err := c.call(ctx, "signInWithIdp", "accounts:signInWithIdp", map[string]any{
		"postBody":            postBody,
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return c.session(ctx, &resp)
}

// Lookup returns the profile of the user owning idToken.
func (c *Client) Lookup(ctx context.Context, idToken string) (*domain.UserProfile, error) {
	var resp struct {
		Users []lookupUser `json:"users"`
	}
	if err := c.call(ctx, "lookup", "accounts:lookup", map[string]any{"idToken": idToken}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, &ProviderError{StatusCode: http.StatusBadRequest, Code: "USER_NOT_FOUND"}
	}
	p := resp.Users[0].profile()
	return &p, nil
}

// UpdateProfile changes the display name and photo URL and returns the
// refreshed profile.
func (c *Client) UpdateProfile(
	ctx context.Context,
	idToken, displayName, photoURL string,
) (*domain.UserProfile, error) {
	body := map[string]any{"idToken": idToken, "returnSecureToken": false}
	if displayName != "" {
		body["displayName"] = displayName
	}
	if photoURL != "" {
		body["photoUrl"] = photoURL
	}
	if err := c.call(ctx, "update", "accounts:update", body, nil); err != nil {
		return nil, err
	}
	return c.Lookup(ctx, idToken)
}

func (c *Client) session(ctx context.Context, resp *authResponse) (*Session, error) {
	s := &Session{
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    c.expiry(resp),
		Profile: domain.UserProfile{
			UID:         resp.LocalID,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
			PhotoURL:    resp.PhotoURL,
		},
	}

	p, err := c.Lookup(ctx, resp.IDToken)
	if err != nil {
		c.log.Warn("profile lookup after sign-in failed", "error", err)
		return s, nil
	}
	s.Profile = *p
	return s, nil
}

// expiry reads the exp claim of the ID token. Signature verification is
// the provider's concern; the claim only decides when to ask the user to
// sign in again. Falls back to expiresIn.
func (c *Client) expiry(resp *authResponse) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.IDToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	secs, err := strconv.Atoi(resp.ExpiresIn)
	if err != nil || secs <= 0 {
		secs = 3600
	}
	return c.nowFunc().Add(time.Duration(secs) * time.Second)
}

func (u *lookupUser) profile() domain.UserProfile {
	return domain.UserProfile{
		UID:           u.LocalID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		PhotoURL:      u.PhotoURL,
		EmailVerified: u.EmailVerified,
		Metadata: domain.UserMetadata{
			CreationTime:   millisToHTTPTime(u.CreatedAt),
			LastSignInTime: millisToHTTPTime(u.LastLoginAt),
		},
	}
}

func millisToHTTPTime(ms string) string {
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil || n <= 0 {
		return ""
	}
	return time.UnixMilli(n).UTC().Format(http.TimeFormat)
}

func (c *Client) call(ctx context.Context, op, method string, body, dst any) (err error) {
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.IdentityCallsTotal.WithLabelValues(op, result).Inc()
	}()

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", op, err)
	}

	endpoint := c.baseURL + "/" + method + "?" + url.Values{"key": {c.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s request: %w", op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(respBody, &errResp) //nolint:errcheck // best-effort error parsing
		perr := parseProviderMessage(resp.StatusCode, errResp.Error.Message)
		c.log.Debug("identity provider rejected request", "operation", op, "code", perr.Code)
		return perr
	}

	if dst != nil {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("parsing %s response: %w", op, err)
		}
	}
	return nil
}

// IsProviderError reports whether err came from the identity provider
// rather than from transport or local validation.
func IsProviderError(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr)
}
