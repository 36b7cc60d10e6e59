// Package store is the data-access layer. Every method runs parameterized
// queries through gorm with the caller's context.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownDish = errors.New("unknown dish")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

func get[T any](ctx context.Context, db *gorm.DB, what string, id uint) (*T, error) {
	var v T
	if err := db.WithContext(ctx).Take(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(what, id)
		}
		return nil, err
	}
	return &v, nil
}

// affected turns a statement that touched no rows into ErrNotFound.
func affected(res *gorm.DB, what string, id uint) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(what, id)
	}
	return nil
}

func update[T any](ctx context.Context, db *gorm.DB, what string, id uint, changes map[string]any) error {
	res := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
	return affected(res, what, id)
}

func remove[T any](ctx context.Context, db *gorm.DB, what string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	return affected(res, what, id)
}
