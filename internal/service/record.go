package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"lobby-signup/internal/client"
	"lobby-signup/internal/config"
	"lobby-signup/internal/dto"
)

var (
	ErrMissingAirtableConfig = errors.New("missing Airtable configuration")
	ErrMissingRecordID       = errors.New("missing record ID")
)

type RecordService interface {
	SubmitRecord(ctx context.Context, req *dto.SubmitRecordRequest) (*client.AirtableRecord, error)
	UpdatePaymentStatus(ctx context.Context, req *dto.UpdatePaymentStatusRequest) (*client.AirtableRecord, error)
}

type recordServiceImpl struct {
	airtableClient client.AirtableClient
	cfg            config.Airtable
	now            func() time.Time
}

func NewRecordService(airtableClient client.AirtableClient, airtableCfg config.Airtable) RecordService {
	return &recordServiceImpl{
		airtableClient: airtableClient,
		cfg:            airtableCfg,
		now:            time.Now,
	}
}

func (s *recordServiceImpl) configured() bool {
	return s.cfg.APIKey != "" && s.cfg.BaseID != "" && s.cfg.TableName != ""
}

// SubmitRecord creates exactly one row per call. There is no idempotency;
// resubmitting identical input creates a duplicate row.
func (s *recordServiceImpl) SubmitRecord(ctx context.Context, req *dto.SubmitRecordRequest) (*client.AirtableRecord, error) {
	if !s.configured() {
		return nil, ErrMissingAirtableConfig
	}

	fields := map[string]interface{}{
		"FirstName":        req.FirstName,
		"LastName":         req.LastName,
		"Email":            req.Email,
		"SubscriptionTier": req.SubscriptionTier,
		"AddOns":           strings.Join(req.AddOns, ", "),
		"MobileNumber":     req.MobileNumber,
		"CompanyName":      req.CompanyName,
		"CompanyWebsite":   req.CompanyWebsite,
		"HearAboutUs":      req.HearAboutUs,
		"Total":            req.Total,
		"SubmissionDate":   s.now().UTC().Format("2006-01-02"),
	}

	return s.airtableClient.CreateRecord(ctx, fields)
}

// UpdatePaymentStatus patches only the payment status and session id fields
// of the identified row. The caller is trusted to pass the correct status;
// the session's real payment state is not verified here.
func (s *recordServiceImpl) UpdatePaymentStatus(ctx context.Context, req *dto.UpdatePaymentStatusRequest) (*client.AirtableRecord, error) {
	if !s.configured() {
		return nil, ErrMissingAirtableConfig
	}
	if req.RecordID == "" {
		return nil, ErrMissingRecordID
	}

	fields := map[string]interface{}{
		"Payment_Status":    req.PaymentStatus,
		"Stripe_Session_ID": req.SessionID,
	}

	return s.airtableClient.UpdateRecord(ctx, req.RecordID, fields)
}
