package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	httperr "github.com/shopdash-lab/shopdash/internal/core/errors"
)

// RegisterRoutes registers all dashboard API routes on the given router.
func (b *Board) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/dashboard", b.HandleCurrent)
	r.PUT("/v1/dashboard/selection", b.HandleSelect)

	// Stateless: computes the requested pair without touching the board.
	r.GET("/v1/dashboard/charts", b.HandleCharts)
}

// HandleCharts handles GET /v1/dashboard/charts
// Query parameters: sales, orders (granularities; default to the board's selection)
func (b *Board) HandleCharts(c *gin.Context) {
	var query struct {
		Sales  string `form:"sales"`
		Orders string `form:"orders"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	overlay, err := parseOverlay(query.Sales, query.Orders)
	if err != nil {
		writeInvalidSelection(c, err)
		return
	}

	res, err := b.Charts(c.Request.Context(), b.Selection().Overlay(overlay))
	if err != nil {
		writeComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// HandleSelect handles PUT /v1/dashboard/selection
// Body: {"sales": "weekly", "orders": "monthly"}; an omitted field keeps its current value.
func (b *Board) HandleSelect(c *gin.Context) {
	var body struct {
		Sales  string `json:"sales"`
		Orders string `json:"orders"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON payload",
			Details:   err.Error(),
		})
		return
	}

	overlay, err := parseOverlay(body.Sales, body.Orders)
	if err != nil {
		writeInvalidSelection(c, err)
		return
	}

	snap, err := b.Patch(c.Request.Context(), overlay)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			c.JSON(http.StatusAccepted, gin.H{"status": "superseded"})
			return
		}
		writeComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// HandleCurrent handles GET /v1/dashboard
func (b *Board) HandleCurrent(c *gin.Context) {
	snap, err := b.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			c.JSON(http.StatusAccepted, gin.H{"status": "superseded"})
			return
		}
		writeComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// parseOverlay parses the non-empty granularity strings. Omitted fields stay
// empty so Selection.Overlay keeps their current value.
func parseOverlay(sales, orders string) (Selection, error) {
	var o Selection
	if sales != "" {
		g, err := analytics.ParseGranularity(sales)
		if err != nil {
			return o, invalidQueryf("sales: %v", err)
		}
		o.Sales = g
	}
	if orders != "" {
		g, err := analytics.ParseGranularity(orders)
		if err != nil {
			return o, invalidQueryf("orders: %v", err)
		}
		o.Orders = g
	}
	return o, nil
}

func writeInvalidSelection(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   "Invalid granularity",
		Details:   err.Error(),
	})
}

func writeComputeError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidQuery) {
		writeInvalidSelection(c, err)
		return
	}
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   "Failed to compute dashboard",
		Details:   err.Error(),
	})
}
