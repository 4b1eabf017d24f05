package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/intechds/storefront/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

type OrderInput struct {
	Items         []domain.OrderItem   `json:"items"`
	Subtotal      float64              `json:"subtotal"`
	ShippingCost  float64              `json:"shippingCost"`
	Total         float64              `json:"total"`
	Customer      domain.OrderCustomer `json:"customer"`
	Type          string               `json:"type"`
	PaymentMethod string               `json:"paymentMethod"`
}

// OrderPatch shallow-merges over the stored record: only non-nil fields are
// applied. The id itself is immutable.
type OrderPatch struct {
	Items         *[]domain.OrderItem   `json:"items"`
	Subtotal      *float64              `json:"subtotal"`
	ShippingCost  *float64              `json:"shippingCost"`
	Total         *float64              `json:"total"`
	Customer      *domain.OrderCustomer `json:"customer"`
	Type          *string               `json:"type"`
	Status        *domain.OrderStatus   `json:"status"`
	PaymentMethod *string               `json:"paymentMethod"`
}

// nextSequenceID numbers records INV-/QUO-{year}{seq4}. The sequence is the
// count of ids mentioning the current year plus one, evaluated inside the
// caller's locked update, which is what keeps it collision-free in-process.
func nextSequenceID(prefix string, year int, ids []string) string {
	y := strconv.Itoa(year)
	n := 0
	for _, id := range ids {
		if strings.Contains(id, y) {
			n++
		}
	}
	return fmt.Sprintf("%s-%d%04d", prefix, year, n+1)
}

// Create persists the order with status forced to pending. Totals are taken
// from the caller as-is; nothing is derived or cross-checked, and product
// stock is not touched.
func (uc *OrderUC) Create(ctx context.Context, in OrderInput) (*domain.Order, error) {
	now := domain.Timestamp(time.Now())
	o := domain.Order{
		Items:         in.Items,
		Subtotal:      in.Subtotal,
		ShippingCost:  in.ShippingCost,
		Total:         in.Total,
		Customer:      in.Customer,
		Type:          in.Type,
		Status:        domain.OrderStatusPending,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if o.Type == "" {
		o.Type = "order"
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = "transfer"
	}
	err := uc.Orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		ids := make([]string, len(orders))
		for i := range orders {
			ids[i] = orders[i].ID
		}
		o.ID = nextSequenceID("INV", time.Now().Year(), ids)
		return append(orders, o), nil
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (uc *OrderUC) List(ctx context.Context) ([]domain.Order, error) {
	return uc.Orders.List(ctx)
}

// Patch merges the supplied fields over the stored record and refreshes
// updatedAt. Any status value overwrites any other; there is no transition
// graph. Orders are never deleted.
func (uc *OrderUC) Patch(ctx context.Context, id string, p OrderPatch) (*domain.Order, error) {
	var updated domain.Order
	err := uc.Orders.Update(ctx, func(orders []domain.Order) ([]domain.Order, error) {
		for i := range orders {
			if orders[i].ID != id {
				continue
			}
			o := &orders[i]
			if p.Items != nil {
				o.Items = *p.Items
			}
			if p.Subtotal != nil {
				o.Subtotal = *p.Subtotal
			}
			if p.ShippingCost != nil {
				o.ShippingCost = *p.ShippingCost
			}
			if p.Total != nil {
				o.Total = *p.Total
			}
			if p.Customer != nil {
				o.Customer = *p.Customer
			}
			if p.Type != nil {
				o.Type = *p.Type
			}
			if p.Status != nil {
				o.Status = *p.Status
			}
			if p.PaymentMethod != nil {
				o.PaymentMethod = *p.PaymentMethod
			}
			o.UpdatedAt = domain.Timestamp(time.Now())
			updated = *o
			return orders, nil
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
