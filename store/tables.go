package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/models"
)

func (s *Store) ListTables(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	err := s.db.WithContext(ctx).Order("table_number").Find(&tables).Error
	return tables, err
}

func (s *Store) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	return get[models.Table](ctx, s.db, "table", id)
}

// CreateTable inserts t as an available table whatever status it carries.
func (s *Store) CreateTable(ctx context.Context, t *models.Table) error {
	t.Status = models.TableAvailable
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Store) UpdateTable(ctx context.Context, id uint, changes map[string]any) error {
	return update[models.Table](ctx, s.db, "table", id, changes)
}

func (s *Store) SetTableStatus(ctx context.Context, id uint, status string) error {
	return s.UpdateTable(ctx, id, map[string]any{"status": status})
}

func (s *Store) DeleteTable(ctx context.Context, id uint) error {
	return remove[models.Table](ctx, s.db, "table", id)
}

// ResetTables marks every table available in one statement and returns the
// number of rows touched.
func (s *Store) ResetTables(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Table{}).
		Update("status", models.TableAvailable)
	return res.RowsAffected, res.Error
}
