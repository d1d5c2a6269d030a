package http

// Request and response bodies for the REST API. Money values travel as
// decimal strings ("42.50") to avoid float rounding on the wire.

// Error is the uniform error body for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCustomer is the body of POST /api/v1/customers.
type NewCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Customer is one directory entry in search results.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// NewMenuItem is the body of POST /api/v1/menu-items.
type NewMenuItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

// MenuItem is one catalog entry.
type MenuItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Menu is the body of GET /api/v1/menu responses.
type Menu struct {
	Rendered string     `json:"rendered"`
	Items    []MenuItem `json:"items"`
}

// NewOrderLine is one requested line of a new order.
type NewOrderLine struct {
	MenuItem string `json:"menuItem"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	Address       string         `json:"address"`
	Lines         []NewOrderLine `json:"lines"`
}

// OrderCreated acknowledges a placed order.
type OrderCreated struct {
	ID string `json:"id"`
}

// ProcessedOrder is the body of POST /api/v1/orders/next/process responses.
type ProcessedOrder struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Total  string `json:"total"`
}

// StatusChange is the body of POST /api/v1/orders/next/advance responses.
type StatusChange struct {
	Status string `json:"status"`
}

// CancelOrder is the body of POST /api/v1/orders/next/cancel.
type CancelOrder struct {
	Reason string `json:"reason"`
}

// PaymentSelection is both the request and response body of
// POST /api/v1/orders/next/payment-method; the response carries the
// normalized method.
type PaymentSelection struct {
	Method string `json:"method"`
}

// OpenOrder is one row of GET /api/v1/orders/open, queue position implied by
// slice order.
type OpenOrder struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	Total        string `json:"total"`
}
