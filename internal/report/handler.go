package report

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
	httperr "github.com/shopdash-lab/shopdash/internal/core/errors"
)

// RegisterRoutes registers all report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/reports/sales", s.HandleSalesReport)
}

// HandleSalesReport handles GET /v1/reports/sales
// Query parameters: sold_by, period (daily|weekly|monthly|yearly)
func (s *Service) HandleSalesReport(c *gin.Context) {
	var query struct {
		SoldBy string `form:"sold_by"`
		Period string `form:"period"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	f := Filter{SoldBy: strings.TrimSpace(query.SoldBy)}
	if query.Period != "" {
		g, err := analytics.ParseGranularity(query.Period)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid period",
				Details:   err.Error(),
			})
			return
		}
		f.Period = g
	}

	rep, err := s.SalesReport(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to build sales report",
			Details:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, rep)
}
