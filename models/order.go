package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderPending = "pending"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableID     uint        `gorm:"index;not null" json:"table_id"`
	TableNumber *string     `gorm:"->;-:migration" json:"table_number,omitempty"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      string      `gorm:"size:30;not null" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is immutable once written. Price is the unit price at order time,
// not a reference to the dish's current price.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"order_id"`
	DishID   uint    `gorm:"index;not null" json:"dish_id"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// OrderItemInput accepts the dish reference either as "id" (what the
// ordering UI sends from its cart) or as "dish_id".
type OrderItemInput struct {
	ID       uint    `json:"id" binding:"required_without=DishID"`
	DishID   uint    `json:"dish_id" binding:"required_without=ID"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Price    float64 `json:"price" binding:"gte=0"`
}

func (i OrderItemInput) DishRef() uint {
	if i.DishID != 0 {
		return i.DishID
	}
	return i.ID
}

// LineTotal is quantity times unit price.
func (i OrderItemInput) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CreateOrderInput struct {
	TableID     uint             `json:"table_id" binding:"required"`
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount *float64         `json:"total_amount" binding:"omitempty,gte=0"`
}

// Total sums the line totals, rounded to cents.
func (in CreateOrderInput) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.LineTotal())
	}
	return total.Round(2)
}

// Amount is the total to persist: the supplied total_amount when present,
// otherwise the computed one.
func (in CreateOrderInput) Amount() decimal.Decimal {
	if in.TotalAmount == nil {
		return in.Total()
	}
	return decimal.NewFromFloat(*in.TotalAmount).Round(2)
}

// TotalMatches reports whether the client supplied total, if any, agrees with
// the computed one once both are rounded to cents.
func (in CreateOrderInput) TotalMatches() bool {
	if in.TotalAmount == nil {
		return true
	}
	return decimal.NewFromFloat(*in.TotalAmount).Round(2).Equal(in.Total())
}

type OrderStatusInput struct {
	Status string `json:"status" binding:"required,max=30"`
}
