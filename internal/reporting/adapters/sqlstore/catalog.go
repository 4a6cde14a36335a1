package sqlstore

import "revenue-dashboard/internal/reporting/core/domain"

// Earned revenue comes from completed orders; everything else is unearned.
// The statements are plain SQL accepted by both PostgreSQL and SQLite.

const earnedRevenueByCitySQL = `
SELECT
    offices.city AS city,
    SUM(orderdetails.quantityOrdered * orderdetails.priceEach) AS revenue
FROM orders
JOIN orderdetails ON orders.orderNumber = orderdetails.orderNumber
JOIN customers ON orders.customerNumber = customers.customerNumber
JOIN employees ON customers.salesRepEmployeeNumber = employees.employeeNumber
JOIN offices ON employees.officeCode = offices.officeCode
WHERE orders.status IN ('Shipped', 'Resolved')
GROUP BY offices.city
ORDER BY offices.city`

const unearnedRevenueByCitySQL = `
SELECT
    offices.city AS city,
    SUM(orderdetails.quantityOrdered * orderdetails.priceEach) AS revenue
FROM orders
JOIN orderdetails ON orders.orderNumber = orderdetails.orderNumber
JOIN customers ON orders.customerNumber = customers.customerNumber
JOIN employees ON customers.salesRepEmployeeNumber = employees.employeeNumber
JOIN offices ON employees.officeCode = offices.officeCode
WHERE orders.status NOT IN ('Shipped', 'Resolved')
GROUP BY offices.city
ORDER BY offices.city`

const earnedRevenueByProductLineSQL = `
SELECT
    products.productLine AS productline,
    SUM(orderdetails.quantityOrdered * orderdetails.priceEach) AS revenue
FROM orders
JOIN orderdetails ON orders.orderNumber = orderdetails.orderNumber
JOIN products ON orderdetails.productCode = products.productCode
WHERE orders.status IN ('Shipped', 'Resolved')
GROUP BY products.productLine
ORDER BY products.productLine`

const unearnedRevenueByProductLineSQL = `
SELECT
    products.productLine AS productline,
    SUM(orderdetails.quantityOrdered * orderdetails.priceEach) AS revenue
FROM orders
JOIN orderdetails ON orders.orderNumber = orderdetails.orderNumber
JOIN products ON orderdetails.productCode = products.productCode
WHERE orders.status NOT IN ('Shipped', 'Resolved')
GROUP BY products.productLine
ORDER BY products.productLine`

const revenueTimeSeriesByProductLineSQL = `
SELECT
    orders.orderDate AS order_date,
    products.productLine AS productline,
    SUM(orderdetails.quantityOrdered * orderdetails.priceEach) AS revenue
FROM orders
JOIN orderdetails ON orders.orderNumber = orderdetails.orderNumber
JOIN products ON orderdetails.productCode = products.productCode
WHERE orders.status IN ('Shipped', 'Resolved')
GROUP BY products.productLine, orders.orderDate
ORDER BY orders.orderDate, products.productLine`

type catalogEntry struct {
	spec domain.QuerySpec
	sql  string
}

var catalog = map[domain.QueryID]catalogEntry{
	domain.EarnedRevenueByCity: {
		spec: domain.QuerySpec{ID: domain.EarnedRevenueByCity, KeyColumn: "city", ValueColumn: "revenue"},
		sql:  earnedRevenueByCitySQL,
	},
	domain.UnearnedRevenueByCity: {
		spec: domain.QuerySpec{ID: domain.UnearnedRevenueByCity, KeyColumn: "city", ValueColumn: "revenue"},
		sql:  unearnedRevenueByCitySQL,
	},
	domain.EarnedRevenueByProductLine: {
		spec: domain.QuerySpec{ID: domain.EarnedRevenueByProductLine, KeyColumn: "productline", ValueColumn: "revenue"},
		sql:  earnedRevenueByProductLineSQL,
	},
	domain.UnearnedRevenueByProductLine: {
		spec: domain.QuerySpec{ID: domain.UnearnedRevenueByProductLine, KeyColumn: "productline", ValueColumn: "revenue"},
		sql:  unearnedRevenueByProductLineSQL,
	},
	domain.RevenueTimeSeriesByProductLine: {
		spec: domain.QuerySpec{
			ID:          domain.RevenueTimeSeriesByProductLine,
			KeyColumn:   "productline",
			ValueColumn: "revenue",
			DateColumn:  "order_date",
		},
		sql: revenueTimeSeriesByProductLineSQL,
	},
}

// Catalog lists every query id in a stable order.
func Catalog() []domain.QuerySpec {
	return []domain.QuerySpec{
		catalog[domain.EarnedRevenueByCity].spec,
		catalog[domain.UnearnedRevenueByCity].spec,
		catalog[domain.EarnedRevenueByProductLine].spec,
		catalog[domain.UnearnedRevenueByProductLine].spec,
		catalog[domain.RevenueTimeSeriesByProductLine].spec,
	}
}

// Statement returns the SQL text behind a query id.
func Statement(id domain.QueryID) (string, bool) {
	e, ok := catalog[id]
	return e.sql, ok
}
