package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/shopdash-lab/shopdash/internal/api/v1"
	httperr "github.com/shopdash-lab/shopdash/internal/core/errors"
	"github.com/shopdash-lab/shopdash/internal/core/storage"
	"github.com/shopspring/decimal"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgPersistFailed  = "Failed to record sale"
	msgDuplicateSale  = "Transaction already recorded"
)

// checkoutError carries the structured HTTP error shape from a helper back to the handler.
type checkoutError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *checkoutError) Error() string {
	return e.message
}

// CheckoutHandler handles POST /v1/sales. Every cart item becomes one sale
// line under a shared transaction id.
func (s *Service) CheckoutHandler(c *gin.Context) {
	req, payloadSize, cerr := s.parseCheckout(c)
	if cerr != nil {
		writeError(c, cerr)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Warn("[Checkout] Validation failed", "error", err, "transaction_id", req.TransactionID)
		writeError(c, &checkoutError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    err.Error(),
		})
		return
	}

	txID := req.TransactionID
	if txID == "" {
		txID = s.newID()
	}
	lines := req.Lines(txID, s.nowFn())

	if cerr := s.persistLines(c.Request.Context(), txID, lines); cerr != nil {
		writeError(c, cerr)
		return
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}

	slog.Info("[Checkout] Sale recorded",
		"transaction_id", txID,
		"sold_by", req.SoldBy,
		"lines", len(lines),
		"total", total.StringFixed(2),
		"payload_size", payloadSize)

	c.JSON(http.StatusCreated, v1.CheckoutResponse{
		TransactionID: txID,
		Lines:         len(lines),
		Total:         total,
	})
}

// parseCheckout reads the size-limited body and decodes it.
func (s *Service) parseCheckout(c *gin.Context) (*v1.CheckoutRequest, int, *checkoutError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Checkout] Failed to read request body", "error", err)
		return nil, 0, &checkoutError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Checkout] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &checkoutError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	var req v1.CheckoutRequest
	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		slog.Warn("[Checkout] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &checkoutError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}

	return &req, len(bodyBytes), nil
}

// persistLines saves every line of the checkout or none of them.
func (s *Service) persistLines(ctx context.Context, txID string, lines []*v1.SaleLine) *checkoutError {
	if err := s.store.SaveSaleLines(ctx, lines); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("[Checkout] Duplicate transaction rejected", "transaction_id", txID)
			return &checkoutError{
				statusCode: http.StatusConflict,
				errorType:  httperr.HttpDuplicateSaleError,
				message:    msgDuplicateSale,
				details:    map[string]interface{}{"transaction_id": txID},
			}
		}

		slog.Error("[Checkout] Failed to record sale", "error", err, "transaction_id", txID)
		return &checkoutError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}
	return nil
}

// writeError serializes a checkoutError as the JSON HTTP response.
func writeError(c *gin.Context, err *checkoutError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
