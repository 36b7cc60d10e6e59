package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is applied to every bill unless configured otherwise.
var DefaultTaxRate = decimal.RequireFromString("0.10")

// BillItemRow is one order item joined with its dish name. Name is nil when
// the dish has since been deleted.
type BillItemRow struct {
	DishID   uint
	Name     *string
	Quantity int
	Price    float64
}

type BillLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type Bill struct {
	OrderID     uint       `json:"orderId"`
	TableNumber string     `json:"tableNumber"`
	Date        time.Time  `json:"date"`
	Items       []BillLine `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	TaxRate     float64    `json:"taxRate"`
	Tax         float64    `json:"tax"`
	Total       float64    `json:"total"`
}

// NewBill builds the receipt view of an order. The order subtotal is the
// persisted total_amount; line subtotals are computed from each row.
func NewBill(order Order, rows []BillItemRow, taxRate decimal.Decimal) Bill {
	subtotal := decimal.NewFromFloat(order.TotalAmount)
	tax := subtotal.Mul(taxRate)

	bill := Bill{
		OrderID:  order.ID,
		Date:     order.CreatedAt,
		Items:    make([]BillLine, 0, len(rows)),
		Subtotal: money(subtotal),
		TaxRate:  taxRate.InexactFloat64(),
		Tax:      money(tax),
		Total:    money(subtotal.Add(tax)),
	}
	if order.TableNumber != nil {
		bill.TableNumber = *order.TableNumber
	}
	for _, row := range rows {
		name := fmt.Sprintf("dish #%d", row.DishID)
		if row.Name != nil {
			name = *row.Name
		}
		price := decimal.NewFromFloat(row.Price)
		bill.Items = append(bill.Items, BillLine{
			Name:     name,
			Quantity: row.Quantity,
			Price:    row.Price,
			Subtotal: money(price.Mul(decimal.NewFromInt(int64(row.Quantity)))),
		})
	}
	return bill
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
