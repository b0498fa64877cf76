package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lobby-signup/internal/config"
	"lobby-signup/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
)

type stubStripeClient struct {
	createCalls   []*stripe.CheckoutSessionParams
	retrieveCalls []string
	session       *stripe.CheckoutSession
	err           error
}

func (s *stubStripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.createCalls = append(s.createCalls, params)
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubStripeClient) RetrieveCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	s.retrieveCalls = append(s.retrieveCalls, sessionID)
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func testPrices() config.Prices {
	return config.Prices{
		FoundationTier:     "price_foundation",
		BuilderTier:        "price_builder",
		FlagshipTier:       "price_flagship",
		JobOrEvent:         "price_job_event",
		VirtualHiringEvent: "price_virtual_hiring",
		HiringEvent:        "price_hiring_event",
		NetworkSponsorship: "price_network_sponsorship",
	}
}

func newCheckoutTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Host = "signup.example"
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCreateCheckoutSessionReturnsSessionID(t *testing.T) {
	stub := &stubStripeClient{session: &stripe.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.example"}}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/api/create-checkout-session",
		`{"subscriptionTier":"builder","selectedAddons":["job-event"],"email":"jo@example.com","mobileNumber":"123-456-7890","metadata":{"recordId":"rec123"}}`)
	require.NoError(t, h.CreateCheckoutSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessionId":"cs_test_123"}`, rec.Body.String())

	// The success URL is derived from the inbound request's origin.
	require.Len(t, stub.createCalls, 1)
	assert.Equal(t, "http://signup.example/success?session_id={CHECKOUT_SESSION_ID}", *stub.createCalls[0].SuccessURL)
}

func TestCreateCheckoutSessionEmptySelection(t *testing.T) {
	stub := &stubStripeClient{}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/api/create-checkout-session",
		`{"subscriptionTier":null,"selectedAddons":[],"email":"jo@example.com"}`)
	require.NoError(t, h.CreateCheckoutSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No valid subscription or add-on selected."}`, rec.Body.String())
	assert.Empty(t, stub.createCalls)
}

func TestCreateCheckoutSessionInvalidAddOn(t *testing.T) {
	stub := &stubStripeClient{}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/api/create-checkout-session",
		`{"selectedAddons":["not-a-thing"],"email":"jo@example.com"}`)
	require.NoError(t, h.CreateCheckoutSession(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid add-on ID: not-a-thing"}`, rec.Body.String())
	assert.Empty(t, stub.createCalls)
}

func TestRetrieveCheckoutSessionMissingID(t *testing.T) {
	stub := &stubStripeClient{}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodGet, "/api/retrieve-checkout-session", "")
	require.NoError(t, h.RetrieveCheckoutSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing session_id"}`, rec.Body.String())
	assert.Empty(t, stub.retrieveCalls)
}

func TestRetrieveCheckoutSessionReturnsSessionVerbatim(t *testing.T) {
	stub := &stubStripeClient{session: &stripe.CheckoutSession{
		ID:       "cs_test_123",
		Metadata: map[string]string{"recordId": "rec123"},
	}}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodGet, "/api/retrieve-checkout-session?session_id=cs_test_123", "")
	require.NoError(t, h.RetrieveCheckoutSession(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cs_test_123"}, stub.retrieveCalls)

	var session map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "cs_test_123", session["id"])
}

func TestRetrieveCheckoutSessionProviderError(t *testing.T) {
	stub := &stubStripeClient{err: assert.AnError}
	h := NewCheckoutHandler(service.NewCheckoutService(stub, testPrices()))

	c, rec := newCheckoutTestContext(t, http.MethodGet, "/api/retrieve-checkout-session?session_id=cs_test_123", "")
	require.NoError(t, h.RetrieveCheckoutSession(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve session"}`, rec.Body.String())
}
