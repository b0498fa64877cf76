package service

import (
	"context"
	"errors"
	"fmt"

	"lobby-signup/internal/client"
	"lobby-signup/internal/config"
	"lobby-signup/internal/dto"

	"github.com/stripe/stripe-go/v79"
)

// ErrNoLineItems means the selection resolved to nothing purchasable; the
// provider is never contacted in that case.
var ErrNoLineItems = errors.New("no valid subscription or add-on selected")

type CheckoutService interface {
	CreateSession(ctx context.Context, req *dto.CheckoutSessionRequest, origin string) (*CheckoutSessionResult, error)
	RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}

type CheckoutSessionResult struct {
	SessionID   string
	CheckoutURL string
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	tierPrices   map[string]string
	addOnPrices  map[string]string
}

func NewCheckoutService(stripeClient client.StripeClient, prices config.Prices) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		tierPrices: map[string]string{
			"foundation": prices.FoundationTier,
			"builder":    prices.BuilderTier,
			"flagship":   prices.FlagshipTier,
		},
		addOnPrices: map[string]string{
			"job-event":           prices.JobOrEvent,
			"virtual-hiring":      prices.VirtualHiringEvent,
			"hiring-event":        prices.HiringEvent,
			"network-sponsorship": prices.NetworkSponsorship,
		},
	}
}

// CreateSession resolves the selection to provider price ids and creates a
// hosted checkout session. A tier that does not resolve is skipped; an
// add-on that does not resolve aborts the whole request before any provider
// call, so no partial session is ever created.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req *dto.CheckoutSessionRequest, origin string) (*CheckoutSessionResult, error) {
	var lineItems []*stripe.CheckoutSessionLineItemParams

	hasTier := false
	if req.SubscriptionTier != "" {
		if priceID := s.tierPrices[req.SubscriptionTier]; priceID != "" {
			lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			})
			hasTier = true
		}
	}

	for _, id := range req.SelectedAddons {
		priceID := s.addOnPrices[id]
		if priceID == "" {
			return nil, fmt.Errorf("Invalid add-on ID: %s", id)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		})
	}

	if len(lineItems) == 0 {
		return nil, ErrNoLineItems
	}

	mode := stripe.CheckoutSessionModePayment
	if hasTier {
		mode = stripe.CheckoutSessionModeSubscription
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(mode)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		CustomerEmail:      stripe.String(req.Email),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/cancel"),
	}

	// Caller metadata first, then email and mobile number; on key collision
	// the latter two win.
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("email", req.Email)
	params.AddMetadata("mobileNumber", req.MobileNumber)

	session, err := s.stripeClient.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &CheckoutSessionResult{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	}, nil
}

func (s *checkoutServiceImpl) RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	session, err := s.stripeClient.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}
	return session, nil
}
