package postgres

// SQL for the sales and orders tables.

const (
	// queryFetchSales reads the columns the chart pipeline needs.
	// Amounts are read as text so a bad value degrades to zero instead of
	// failing the scan.
	queryFetchSales = `
		SELECT id, total::text, date, created_at, sold_by
		FROM sales
	`

	// queryFetchOrders reads every order. No status filter: classification
	// happens in the aggregator.
	queryFetchOrders = `
		SELECT id, status, created_at
		FROM orders
	`

	// queryFetchSaleLines reads full rows for the sales report, newest first.
	queryFetchSaleLines = `
		SELECT
			id, transaction_id, product_id, product_name, quantity,
			price::text, subtotal::text, shipping_fee::text, cost::text, total::text,
			payment_method, sold_by, date, created_at
		FROM sales
		ORDER BY COALESCE(date, created_at) DESC NULLS LAST, id DESC
	`

	// queryInsertSaleLine inserts one line of a checkout.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for a retried
	// transaction.
	queryInsertSaleLine = `
		INSERT INTO sales (
			transaction_id, product_id, product_name, quantity,
			price, subtotal, shipping_fee, cost, total,
			payment_method, sold_by, date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (transaction_id, product_id) DO NOTHING
		RETURNING id
	`

	querySchemaTables = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name IN ('sales', 'orders')
	`
)
