package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is a line item shared by orders and quote requests.
type OrderItem struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// OrderCustomer is the contact record embedded in an order.
type OrderCustomer struct {
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"taxId,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Order carries caller-supplied totals; subtotal/shippingCost/total are not
// derived or cross-checked server-side. Orders are never deleted.
type Order struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shippingCost"`
	Total         float64       `json:"total"`
	Customer      OrderCustomer `json:"customer"`
	Type          string        `json:"type"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

// Timestamp renders t the way the collection documents store instants.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
