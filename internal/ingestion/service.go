package ingestion

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopdash-lab/shopdash/internal/core/storage"
)

// Service records point-of-sale checkouts into the sales table.
type Service struct {
	store            storage.SaleLineStore
	maxBodySizeBytes int
	nowFn            func() time.Time
	newID            func() string
}

func NewService(store storage.SaleLineStore, maxBodySizeMB int) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            func() time.Time { return time.Now().UTC() },
		newID:            func() string { return uuid.NewString() },
	}
}

// RegisterRoutes registers the checkout routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/sales", s.CheckoutHandler)
}
