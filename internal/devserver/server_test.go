package devserver_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawmart/pawmart/internal/api/client"
	"github.com/pawmart/pawmart/internal/devserver"
	"github.com/pawmart/pawmart/internal/identity"
	"github.com/pawmart/pawmart/internal/store"
	"github.com/pawmart/pawmart/pkg/orderform"
	domain "github.com/pawmart/pawmart/pkg/types"
)

var devNow = time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	f, err := store.DefaultFixture()
	require.NoError(t, err)

	now := func() time.Time { return devNow }
	srv, err := devserver.New(devserver.Options{
		TokenSecret: "test-secret",
		Store:       store.NewMemoryStore(f, now),
		Now:         now,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func signUp(t *testing.T, ts *httptest.Server, name, email string) *identity.Session {
	t.Helper()
	idc := identity.New(ts.URL+devserver.IdentityPath, "dev-key")
	sess, err := idc.SignUp(context.Background(), identity.Registration{
		Name:     name,
		Email:    email,
		Password: "Secret1",
	})
	require.NoError(t, err)
	return sess
}

func apiClient(ts *httptest.Server, sess *identity.Session) *client.Client {
	return client.New(ts.URL, client.WithTokenSource(client.TokenFunc(
		func(context.Context) (string, error) {
			if sess == nil {
				return "", nil
			}
			return sess.IDToken, nil
		},
	)))
}

func TestNew_RequiresStoreAndSecret(t *testing.T) {
	t.Parallel()

	_, err := devserver.New(devserver.Options{TokenSecret: "x"})
	require.Error(t, err)

	_, err = devserver.New(devserver.Options{Store: store.NewMemoryStore(nil, nil)})
	require.Error(t, err)
}

func TestServer_IdentityFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)
	idc := identity.New(ts.URL+devserver.IdentityPath, "dev-key")

	sess := signUp(t, ts, "Nadia Rahman", "nadia@pawmart.dev")
	assert.NotEmpty(t, sess.IDToken)
	assert.Equal(t, "nadia@pawmart.dev", sess.Profile.Email)
	assert.Equal(t, "Nadia Rahman", sess.Profile.DisplayName)
	assert.True(t, devNow.Add(time.Hour).Equal(sess.ExpiresAt), "expires at %s", sess.ExpiresAt)
	assert.NotEmpty(t, sess.Profile.Metadata.CreationTime)

	_, err := idc.SignUp(ctx, identity.Registration{Email: "nadia@pawmart.dev", Password: "Secret1"})
	require.ErrorIs(t, err, identity.ErrEmailExists)

	again, err := idc.SignIn(ctx, "NADIA@pawmart.dev", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, sess.Profile.UID, again.Profile.UID)

	_, err = idc.SignIn(ctx, "nadia@pawmart.dev", "wrong")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)

	p, err := idc.UpdateProfile(ctx, sess.IDToken, "Nadia R.", "https://images.pawmart.dev/nadia.png")
	require.NoError(t, err)
	assert.Equal(t, "Nadia R.", p.DisplayName)
	assert.Equal(t, "https://images.pawmart.dev/nadia.png", p.PhotoURL)

	_, err = idc.Lookup(ctx, "forged")
	require.ErrorIs(t, err, identity.ErrSessionExpired)
}

func TestServer_IdentityRequiresKey(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	idc := identity.New(ts.URL+devserver.IdentityPath, "")

	_, err := idc.SignIn(context.Background(), "a@b.c", "Secret1")
	require.Error(t, err)
	assert.True(t, identity.IsProviderError(err))
}

func TestServer_ListingsAndOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)
	sess := signUp(t, ts, "Nadia Rahman", "nadia@pawmart.dev")
	api := apiClient(ts, sess)

	recent, err := api.ListRecentListings(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Oscar", recent[0].Name)

	care, err := api.ListListings(ctx, &client.ListListingsParams{Category: "Care Products"})
	require.NoError(t, err)
	assert.Len(t, care, 3)

	categories, err := api.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pets", "Foods", "Care Products", "Accessories"}, categories)

	created, err := api.CreateListing(ctx, &domain.Listing{
		Name:     "Hamster Wheel",
		Category: "Accessories",
		Price:    14,
		Location: "Sylhet",
		Email:    "nadia@pawmart.dev",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.CreatedAt)
	assert.Equal(t, devNow, created.CreatedAt.UTC())

	price := 12.0
	ok, err := api.UpdateListing(ctx, created.ID, &domain.ListingUpdate{Price: &price})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := api.GetListing(ctx, created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, got.Price, 0)

	mine, err := api.ListMyListings(ctx, "nadia@pawmart.dev")
	require.NoError(t, err)
	assert.Len(t, mine, 5) // four seeded plus the new one

	order, err := orderform.Build(got, &orderform.Input{
		BuyerName: "Nadia Rahman",
		Email:     "nadia@pawmart.dev",
		Quantity:  3,
		Address:   "4 Hill View, Sylhet",
		Date:      "2026-05-02",
		Phone:     "+8801700000003",
	}, devNow)
	require.NoError(t, err)

	id, err := api.PlaceOrder(ctx, order)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	orders, err := api.ListOrders(ctx, "nadia@pawmart.dev")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.InDelta(t, 36.0, orders[0].Total, 0.001)
	assert.Equal(t, "$12", orders[0].Price)

	n, err := api.DeleteListing(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = api.GetListing(ctx, created.ID)
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestServer_WritesNeedOwnership(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := newTestServer(t)

	anon := apiClient(ts, nil)
	_, err := anon.CreateListing(ctx, &domain.Listing{Name: "x", Category: "Foods", Location: "y"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// Bella belongs to rina@pawmart.dev in the seed data.
	arif := apiClient(ts, signUp(t, ts, "Arif", "arif@pawmart.dev"))
	_, err = arif.DeleteListing(ctx, "665f1a000000000000000001")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestServer_OpsEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	for path, want := range map[string]string{
		"/healthz":              `"ok"`,
		"/readyz":               `"ready"`,
		"/metrics":              "pawmart_",
		"/openapi.json":         "list-listings",
		"/swagger/swagger.json": "PawMart Dev API",
		"/swagger/index.html":   "swagger-ui",
	} {
		resp, err := http.Get(ts.URL + path) //nolint:noctx // test helper
		require.NoError(t, err, path)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), want, path)
	}
}

func TestServer_StartShutdown(t *testing.T) {
	t.Parallel()

	srv, err := devserver.New(devserver.Options{
		Addr:        "127.0.0.1:0",
		TokenSecret: "test-secret",
		Store:       store.NewMemoryStore(nil, nil),
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Shutdown may race the listener setup; either way Start must return.
	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
