package handler

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"lobby-signup/internal/dto"
	"lobby-signup/internal/pricing"
	"lobby-signup/internal/service"

	"github.com/labstack/echo/v4"
)

// PageHandler drives the form and result pages. The submit orchestration
// runs server-side: validate, create the record, create the checkout
// session, then redirect to the hosted checkout. A record created before a
// failed session creation is left in place; there is no compensation.
type PageHandler struct {
	checkoutService service.CheckoutService
	recordService   service.RecordService
	publishableKey  string
}

func NewPageHandler(checkoutService service.CheckoutService, recordService service.RecordService, publishableKey string) *PageHandler {
	return &PageHandler{
		checkoutService: checkoutService,
		recordService:   recordService,
		publishableKey:  publishableKey,
	}
}

type formValues struct {
	FirstName        string
	LastName         string
	Email            string
	SubscriptionTier string
	AddOns           []string
	MobileNumber     string
	CompanyName      string
	CompanyWebsite   string
	HearAboutUs      string
}

type formPageData struct {
	Tiers              []pricing.Tier
	AddOns             []pricing.AddOn
	HearAboutUsOptions []string
	PublishableKey     string
	CatalogJSON        template.JS
	FormError          string
	Values             formValues
	SelectedAddOns     map[string]bool
}

type successPageData struct {
	SessionID    string
	CustomerName string
	Updated      bool
	Error        string
}

// catalogJSON serializes the catalog for the page script that mirrors the
// live total and price breakdown.
func catalogJSON() template.JS {
	type entry struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Price int    `json:"price"`
	}
	catalog := struct {
		Tiers  []entry `json:"tiers"`
		AddOns []entry `json:"addOns"`
	}{}
	for _, t := range pricing.Tiers {
		catalog.Tiers = append(catalog.Tiers, entry{ID: t.ID, Label: t.Label, Price: t.Price})
	}
	for _, a := range pricing.AddOns {
		catalog.AddOns = append(catalog.AddOns, entry{ID: a.ID, Label: a.Label, Price: a.Price})
	}
	b, _ := json.Marshal(catalog)
	return template.JS(b)
}

func (h *PageHandler) renderForm(c echo.Context, status int, values formValues, formError string) error {
	selected := make(map[string]bool, len(values.AddOns))
	for _, id := range values.AddOns {
		selected[id] = true
	}

	return c.Render(status, "form.html", formPageData{
		Tiers:              pricing.Tiers,
		AddOns:             pricing.AddOns,
		HearAboutUsOptions: pricing.HearAboutUsOptions,
		PublishableKey:     h.publishableKey,
		CatalogJSON:        catalogJSON(),
		FormError:          formError,
		Values:             values,
		SelectedAddOns:     selected,
	})
}

func (h *PageHandler) Form(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, formValues{SubscriptionTier: pricing.TierNone}, "")
}

func (h *PageHandler) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	values := formValues{
		FirstName:        c.FormValue("firstName"),
		LastName:         c.FormValue("lastName"),
		Email:            c.FormValue("email"),
		SubscriptionTier: c.FormValue("subscriptionTier"),
		AddOns:           form["addOns"],
		MobileNumber:     pricing.FormatPhoneNumber(c.FormValue("mobileNumber")),
		CompanyName:      c.FormValue("companyName"),
		CompanyWebsite:   c.FormValue("companyWebsite"),
		HearAboutUs:      c.FormValue("hearAboutUs"),
	}
	if values.SubscriptionTier == "" {
		values.SubscriptionTier = pricing.TierNone
	}

	if values.SubscriptionTier == pricing.TierNone && len(values.AddOns) == 0 {
		return h.renderForm(c, http.StatusBadRequest, values,
			"Please select a subscription tier or at least one add-on.")
	}

	total := pricing.ComputeTotal(values.SubscriptionTier, values.AddOns)

	record, err := h.recordService.SubmitRecord(ctx, &dto.SubmitRecordRequest{
		FirstName:        values.FirstName,
		LastName:         values.LastName,
		Email:            values.Email,
		SubscriptionTier: pricing.TierLabel(values.SubscriptionTier),
		AddOns:           pricing.AddOnLabels(values.AddOns),
		MobileNumber:     values.MobileNumber,
		CompanyName:      values.CompanyName,
		CompanyWebsite:   values.CompanyWebsite,
		HearAboutUs:      values.HearAboutUs,
		Total:            total,
	})
	if err != nil {
		log.Println("submit record:", err)
		return h.renderForm(c, http.StatusInternalServerError, values, "Failed to submit to Airtable.")
	}

	tier := values.SubscriptionTier
	if tier == pricing.TierNone {
		tier = ""
	}

	result, err := h.checkoutService.CreateSession(ctx, &dto.CheckoutSessionRequest{
		SubscriptionTier: tier,
		SelectedAddons:   values.AddOns,
		Email:            values.Email,
		MobileNumber:     values.MobileNumber,
		Metadata: map[string]string{
			"recordId":     record.ID,
			"email":        values.Email,
			"mobileNumber": values.MobileNumber,
		},
	}, requestOrigin(c))
	if err != nil {
		log.Println("create checkout session:", err)
		return h.renderForm(c, http.StatusInternalServerError, values, "Payment initiation failed.")
	}

	return c.Redirect(http.StatusSeeOther, result.CheckoutURL)
}

// Success reconciles the checkout outcome. The record is marked "Paid" as
// soon as the session's metadata names it; the session's actual payment
// state is not consulted (known trust gap, kept as-is).
func (h *PageHandler) Success(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.Render(http.StatusBadRequest, "success.html", successPageData{
			Error: "Missing session_id",
		})
	}

	session, err := h.checkoutService.RetrieveSession(ctx, sessionID)
	if err != nil {
		log.Println("retrieve checkout session:", err)
		return c.Render(http.StatusInternalServerError, "success.html", successPageData{
			Error: "Something went wrong. Please try again later.",
		})
	}

	data := successPageData{
		SessionID:    session.ID,
		CustomerName: "Customer",
	}
	if session.CustomerDetails != nil && session.CustomerDetails.Name != "" {
		data.CustomerName = session.CustomerDetails.Name
	}

	if recordID := session.Metadata["recordId"]; recordID != "" {
		_, err := h.recordService.UpdatePaymentStatus(ctx, &dto.UpdatePaymentStatusRequest{
			RecordID:      recordID,
			PaymentStatus: "Paid",
			SessionID:     session.ID,
		})
		if err != nil {
			log.Println("update payment status:", err)
			data.Error = "Failed to update payment status."
		} else {
			data.Updated = true
		}
	}

	return c.Render(http.StatusOK, "success.html", data)
}

func (h *PageHandler) Cancel(c echo.Context) error {
	return c.Render(http.StatusOK, "cancel.html", nil)
}
