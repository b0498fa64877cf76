package handler

import (
	"errors"
	"log"
	"net/http"

	"lobby-signup/internal/client"
	"lobby-signup/internal/dto"
	"lobby-signup/internal/service"

	"github.com/labstack/echo/v4"
)

type RecordHandler struct {
	recordService service.RecordService
}

func NewRecordHandler(recordService service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

func (h *RecordHandler) SubmitToAirtable(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubmitRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Server error",
			"error":   err.Error(),
		})
	}

	record, err := h.recordService.SubmitRecord(ctx, &req)
	if err != nil {
		var airtableErr *client.AirtableError
		switch {
		case errors.Is(err, service.ErrMissingAirtableConfig):
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Missing Airtable configuration",
			})
		case errors.As(err, &airtableErr):
			log.Println("airtable submission failed:", airtableErr)
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Airtable submission failed",
				"error":   airtableErr.Body,
			})
		default:
			log.Println("submit record:", err)
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Server error",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "Success",
		"airtableResponse": record,
	})
}

func (h *RecordHandler) UpdatePaymentStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"message": "Server error",
			"error":   err.Error(),
		})
	}

	record, err := h.recordService.UpdatePaymentStatus(ctx, &req)
	if err != nil {
		var airtableErr *client.AirtableError
		switch {
		case errors.Is(err, service.ErrMissingAirtableConfig):
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Missing Airtable configuration",
			})
		case errors.Is(err, service.ErrMissingRecordID):
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"message": "Missing record ID",
			})
		case errors.As(err, &airtableErr):
			log.Println("airtable update failed:", airtableErr)
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Airtable update failed",
				"error":   airtableErr.Body,
			})
		default:
			log.Println("update payment status:", err)
			return c.JSON(http.StatusInternalServerError, map[string]interface{}{
				"message": "Server error",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "Payment status updated",
		"airtableResponse": record,
	})
}
