package devserver

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawmart/pawmart/internal/api/auth"
)

var errUnknownUser = errors.New("unknown user")

// devUser is an account of the fake identity provider.
type devUser struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Hash        []byte // nil for IdP-only accounts
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// IdentityProvider fakes the identity-toolkit accounts endpoints.
type IdentityProvider struct {
	tokens *auth.Tokens
	now    func() time.Time
	cost   int

	mu      sync.Mutex
	byEmail map[string]*devUser
	byUID   map[string]*devUser
}

// NewIdentityProvider creates an empty provider.
func NewIdentityProvider(tokens *auth.Tokens, now func() time.Time) *IdentityProvider {
	if now == nil {
		now = time.Now
	}
	return &IdentityProvider{
		tokens:  tokens,
		now:     now,
		cost:    bcrypt.MinCost,
		byEmail: map[string]*devUser{},
		byUID:   map[string]*devUser{},
	}
}

type accountsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	IDToken     string `json:"idToken"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	PostBody    string `json:"postBody"`
}

type accountsResponse struct {
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    string `json:"expiresIn,omitempty"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
}

type lookupEntry struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName,omitempty"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
	CreatedAt     string `json:"createdAt"`
	LastLoginAt   string `json:"lastLoginAt"`
}

// Handle serves POST /identity/v1/:method, e.g. accounts:signUp.
func (p *IdentityProvider) Handle(c echo.Context) error {
	if c.QueryParam("key") == "" {
		return providerError(c, http.StatusBadRequest, "API key not valid. Please pass a valid API key.")
	}

	var req accountsRequest
	if err := c.Bind(&req); err != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_JSON_PAYLOAD")
	}

	switch c.Param("method") {
	case "accounts:signUp":
		return p.signUp(c, &req)
	case "accounts:signInWithPassword":
		return p.signInWithPassword(c, &req)
	case "accounts:signInWithIdp":
		return p.signInWithIdp(c, &req)
	case "accounts:lookup":
		return p.lookup(c, &req)
	case "accounts:update":
		return p.update(c, &req)
	default:
		return providerError(c, http.StatusNotFound, "UNKNOWN_METHOD")
	}
}

func (p *IdentityProvider) signUp(c echo.Context, req *accountsRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return providerError(c, http.StatusBadRequest, "INVALID_EMAIL")
	}
	if len(req.Password) < 6 {
		return providerError(c, http.StatusBadRequest, "WEAK_PASSWORD : Password should be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), p.cost)
	if err != nil {
		return providerError(c, http.StatusInternalServerError, "INTERNAL_ERROR")
	}

	p.mu.Lock()
	if _, exists := p.byEmail[email]; exists {
		p.mu.Unlock()
		return providerError(c, http.StatusBadRequest, "EMAIL_EXISTS")
	}
	now := p.now().UTC()
	u := &devUser{UID: uuid.NewString(), Email: email, Hash: hash, CreatedAt: now, LastLoginAt: now}
	p.byEmail[email] = u
	p.byUID[u.UID] = u
	snapshot := *u
	p.mu.Unlock()

	return p.respondSession(c, &snapshot)
}

func (p *IdentityProvider) signInWithPassword(c echo.Context, req *accountsRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	p.mu.Lock()
	u, ok := p.byEmail[email]
	var hash []byte
	if ok {
		hash = u.Hash
	}
	p.mu.Unlock()

	if !ok || hash == nil || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_LOGIN_CREDENTIALS")
	}

	p.mu.Lock()
	u.LastLoginAt = p.now().UTC()
	snapshot := *u
	p.mu.Unlock()

	return p.respondSession(c, &snapshot)
}

// signInWithIdp trusts the email and name claims of the OAuth ID token
// without verifying it. Unknown users are created on first sign-in.
func (p *IdentityProvider) signInWithIdp(c echo.Context, req *accountsRequest) error {
	form, err := url.ParseQuery(req.PostBody)
	if err != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_IDP_RESPONSE")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(form.Get("id_token"), claims); err != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_IDP_RESPONSE")
	}
	email, _ := claims["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return providerError(c, http.StatusBadRequest, "INVALID_IDP_RESPONSE")
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	p.mu.Lock()
	now := p.now().UTC()
	u, ok := p.byEmail[email]
	if !ok {
		u = &devUser{UID: uuid.NewString(), Email: email, DisplayName: name, PhotoURL: picture, CreatedAt: now}
		p.byEmail[email] = u
		p.byUID[u.UID] = u
	}
	u.LastLoginAt = now
	snapshot := *u
	p.mu.Unlock()

	return p.respondSession(c, &snapshot)
}

func (p *IdentityProvider) lookup(c echo.Context, req *accountsRequest) error {
	u, err := p.userForToken(req.IDToken)
	if err != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_ID_TOKEN")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"users": []lookupEntry{{
			LocalID:       u.UID,
			Email:         u.Email,
			DisplayName:   u.DisplayName,
			PhotoURL:      u.PhotoURL,
			EmailVerified: u.Hash == nil,
			CreatedAt:     strconv.FormatInt(u.CreatedAt.UnixMilli(), 10),
			LastLoginAt:   strconv.FormatInt(u.LastLoginAt.UnixMilli(), 10),
		}},
	})
}

func (p *IdentityProvider) update(c echo.Context, req *accountsRequest) error {
	claims, err := p.tokens.Verify(req.IDToken)
	if err != nil {
		return providerError(c, http.StatusBadRequest, "INVALID_ID_TOKEN")
	}

	p.mu.Lock()
	u, ok := p.byUID[claims.Subject]
	if ok {
		if req.DisplayName != "" {
			u.DisplayName = req.DisplayName
		}
		if req.PhotoURL != "" {
			u.PhotoURL = req.PhotoURL
		}
	}
	var snapshot devUser
	if ok {
		snapshot = *u
	}
	p.mu.Unlock()

	if !ok {
		return providerError(c, http.StatusBadRequest, "USER_NOT_FOUND")
	}
	return c.JSON(http.StatusOK, accountsResponse{
		LocalID:     snapshot.UID,
		Email:       snapshot.Email,
		DisplayName: snapshot.DisplayName,
		PhotoURL:    snapshot.PhotoURL,
	})
}

func (p *IdentityProvider) userForToken(raw string) (*devUser, error) {
	claims, err := p.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.byUID[claims.Subject]
	if !ok {
		return nil, errUnknownUser
	}
	snapshot := *u
	return &snapshot, nil
}

func (p *IdentityProvider) respondSession(c echo.Context, u *devUser) error {
	token, _, err := p.tokens.Issue(u.UID, u.Email, u.DisplayName)
	if err != nil {
		return providerError(c, http.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return c.JSON(http.StatusOK, accountsResponse{
		IDToken:      token,
		RefreshToken: uuid.NewString(),
		ExpiresIn:    strconv.Itoa(int(auth.TTL.Seconds())),
		LocalID:      u.UID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		PhotoURL:     u.PhotoURL,
	})
}

func providerError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{
		"error": map[string]any{"code": status, "message": message},
	})
}
