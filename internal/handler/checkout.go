package handler

import (
	"errors"
	"log"
	"net/http"

	"lobby-signup/internal/dto"
	"lobby-signup/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// requestOrigin derives the redirect origin from the inbound request; it is
// never configured.
func requestOrigin(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request payload",
		})
	}

	result, err := h.checkoutService.CreateSession(ctx, &req, requestOrigin(c))
	if err != nil {
		if errors.Is(err, service.ErrNoLineItems) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "No valid subscription or add-on selected.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &dto.CheckoutSessionResponse{
		SessionID: result.SessionID,
	})
}

func (h *CheckoutHandler) RetrieveCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Missing session_id",
		})
	}

	session, err := h.checkoutService.RetrieveSession(ctx, sessionID)
	if err != nil {
		log.Println("retrieve checkout session:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to retrieve session",
		})
	}

	return c.JSON(http.StatusOK, session)
}
