package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/models"
)

func (s *Store) orders(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.*, t.table_number").
		Joins("LEFT JOIN tables t ON t.id = o.table_id")
}

// ListOrders returns every order with its table number, newest first.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.orders(ctx).Order("o.created_at DESC, o.id DESC").Find(&orders).Error
	return orders, err
}

// GetOrder returns the order with its table number and items.
func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.orders(ctx).Where("o.id = ?", id).Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("order_id = ?", id).Order("id").Find(&order.Items).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) ListOrdersByTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	return update[models.Order](ctx, s.db, "order", id, map[string]any{"status": status})
}

// DeleteOrder removes the order and its items.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Order{}, id), "order", id)
	})
}

// CreateOrder writes the order, its items and the table's move to occupied
// in one transaction; any error leaves the database untouched. The stored
// total is the supplied total_amount, or the sum of the items when none is
// given.
func (s *Store) CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.Order, error) {
	order := &models.Order{
		TableID:     in.TableID,
		TotalAmount: in.Amount().InexactFloat64(),
		Status:      models.OrderPending,
	}
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.OrderItem{
			DishID:   item.DishRef(),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkDishes(tx, items); err != nil {
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to insert order item for dish %d: %w", items[i].DishID, err)
			}
		}
		return occupyTable(tx, in.TableID)
	})
	if err != nil {
		return nil, err
	}

	order.Items = items
	return order, nil
}

// checkDishes requires every referenced dish to exist.
func checkDishes(tx *gorm.DB, items []models.OrderItem) error {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.DishID)
	}

	var found []uint
	if err := tx.Model(&models.Dish{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("failed to load dishes: %w", err)
	}
	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}

	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %d", ErrUnknownDish, id)
		}
	}
	return nil
}

// occupyTable marks the table occupied whatever its current status, so a
// table already seated can take further orders.
func occupyTable(tx *gorm.DB, id uint) error {
	res := tx.Model(&models.Table{}).Where("id = ?", id).Update("status", models.TableOccupied)
	if res.Error != nil {
		return fmt.Errorf("failed to occupy table: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("table", id)
	}
	return nil
}

// GetBill builds the receipt for an order, applying taxRate to its total.
func (s *Store) GetBill(ctx context.Context, id uint, taxRate decimal.Decimal) (*models.Bill, error) {
	var order models.Order
	if err := s.orders(ctx).Where("o.id = ?", id).Take(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, err
	}

	var rows []models.BillItemRow
	err := s.db.WithContext(ctx).
		Table("order_items AS oi").
		Select("oi.dish_id, m.name AS name, oi.quantity, oi.price").
		Joins("LEFT JOIN menu_items m ON m.id = oi.dish_id").
		Where("oi.order_id = ?", id).
		Order("oi.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	bill := models.NewBill(order, rows, taxRate)
	return &bill, nil
}
