package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/models"
)

func (s *Store) dishes(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("menu_items AS m").
		Select("m.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON c.id = m.category_id")
}

func (s *Store) ListDishes(ctx context.Context) ([]models.Dish, error) {
	dishes := []models.Dish{}
	err := s.dishes(ctx).Order("m.id").Find(&dishes).Error
	return dishes, err
}

func (s *Store) GetDish(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := s.dishes(ctx).Where("m.id = ?", id).Take(&dish).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("dish", id)
		}
		return nil, err
	}
	return &dish, nil
}

// CreateDish inserts d and reloads it with its category name.
func (s *Store) CreateDish(ctx context.Context, d *models.Dish) (*models.Dish, error) {
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return s.GetDish(ctx, d.ID)
}

func (s *Store) UpdateDish(ctx context.Context, id uint, changes map[string]any) error {
	return update[models.Dish](ctx, s.db, "dish", id, changes)
}

func (s *Store) DeleteDish(ctx context.Context, id uint) error {
	return remove[models.Dish](ctx, s.db, "dish", id)
}

// ToggleDishAvailability flips is_available in place and returns the dish.
func (s *Store) ToggleDishAvailability(ctx context.Context, id uint) (*models.Dish, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Dish{}).
		Where("id = ?", id).
		Update("is_available", gorm.Expr("NOT is_available"))
	if err := affected(res, "dish", id); err != nil {
		return nil, err
	}
	return s.GetDish(ctx, id)
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (s *Store) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	return get[models.Category](ctx, s.db, "category", id)
}

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, changes map[string]any) error {
	return update[models.Category](ctx, s.db, "category", id, changes)
}

// DeleteCategory detaches the category's dishes (category_id becomes NULL)
// and deletes it, atomically.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Dish{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
			return err
		}
		return affected(tx.Delete(&models.Category{}, id), "category", id)
	})
}

func (s *Store) ListTaxes(ctx context.Context) ([]models.Tax, error) {
	taxes := []models.Tax{}
	err := s.db.WithContext(ctx).Order("id").Find(&taxes).Error
	return taxes, err
}

func (s *Store) GetTax(ctx context.Context, id uint) (*models.Tax, error) {
	return get[models.Tax](ctx, s.db, "tax", id)
}

func (s *Store) CreateTax(ctx context.Context, t *models.Tax) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Store) UpdateTax(ctx context.Context, id uint, changes map[string]any) error {
	return update[models.Tax](ctx, s.db, "tax", id, changes)
}

func (s *Store) DeleteTax(ctx context.Context, id uint) error {
	return remove[models.Tax](ctx, s.db, "tax", id)
}
