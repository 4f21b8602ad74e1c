package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	v1 "github.com/shopdash-lab/shopdash/internal/api/v1"
	"github.com/shopdash-lab/shopdash/internal/core/analytics"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// eventTime picks the instant a row belongs to: date, else created_at.
func eventTime(date, createdAt sql.NullTime) (time.Time, bool) {
	if date.Valid && !date.Time.IsZero() {
		return date.Time, true
	}
	if createdAt.Valid && !createdAt.Time.IsZero() {
		return createdAt.Time, true
	}
	return time.Time{}, false
}

// scanSaleEvent scans a queryFetchSales row.
// Returns an error wrapping analytics.ErrMalformedRecord when the row has
// neither date nor created_at.
func scanSaleEvent(row scanner) (analytics.SaleEvent, error) {
	var (
		id              int64
		total, soldBy   sql.NullString
		date, createdAt sql.NullTime
	)
	if err := row.Scan(&id, &total, &date, &createdAt, &soldBy); err != nil {
		return analytics.SaleEvent{}, fmt.Errorf("failed to scan sale row: %w", err)
	}

	ts, ok := eventTime(date, createdAt)
	if !ok {
		return analytics.SaleEvent{}, fmt.Errorf("%w: sale %d has no date or created_at", analytics.ErrMalformedRecord, id)
	}

	return analytics.SaleEvent{
		Timestamp: ts,
		Amount:    analytics.ParseAmount(total.String),
		Channel:   analytics.ParseChannel(soldBy.String),
	}, nil
}

// scanOrderEvent scans a queryFetchOrders row.
func scanOrderEvent(row scanner) (analytics.OrderEvent, error) {
	var (
		id        string
		status    sql.NullString
		createdAt sql.NullTime
	)
	if err := row.Scan(&id, &status, &createdAt); err != nil {
		return analytics.OrderEvent{}, fmt.Errorf("failed to scan order row: %w", err)
	}

	ts, ok := eventTime(sql.NullTime{}, createdAt)
	if !ok {
		return analytics.OrderEvent{}, fmt.Errorf("%w: order %s has no created_at", analytics.ErrMalformedRecord, id)
	}

	return analytics.OrderEvent{
		Timestamp: ts,
		Status:    strings.TrimSpace(status.String),
	}, nil
}

// scanSaleLine scans a queryFetchSaleLines row. Missing amounts read as zero.
func scanSaleLine(row scanner) (*v1.SaleLine, error) {
	var (
		line                                   v1.SaleLine
		productName, paymentMethod, soldBy     sql.NullString
		price, subtotal, shipping, cost, total sql.NullString
		quantity                               sql.NullInt64
		date, createdAt                        sql.NullTime
	)

	err := row.Scan(
		&line.ID,
		&line.TransactionID,
		&line.ProductID,
		&productName,
		&quantity,
		&price,
		&subtotal,
		&shipping,
		&cost,
		&total,
		&paymentMethod,
		&soldBy,
		&date,
		&createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan sale line row: %w", err)
	}

	line.ProductName = productName.String
	line.Quantity = int(quantity.Int64)
	line.Price = analytics.ParseAmount(price.String)
	line.Subtotal = analytics.ParseAmount(subtotal.String)
	line.ShippingFee = analytics.ParseAmount(shipping.String)
	line.Cost = analytics.ParseAmount(cost.String)
	line.Total = analytics.ParseAmount(total.String)
	line.PaymentMethod = paymentMethod.String
	line.SoldBy = strings.TrimSpace(soldBy.String)
	if date.Valid {
		line.Date = date.Time
	}
	if createdAt.Valid {
		line.CreatedAt = createdAt.Time
	}

	return &line, nil
}
