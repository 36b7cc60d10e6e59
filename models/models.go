package models

import "time"

// Table statuses. They gate which tables the ordering UI offers for selection.
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// ValidTableStatus reports whether s is one of the known table statuses.
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableNumber string    `gorm:"size:50;uniqueIndex;not null" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Status      string    `gorm:"size:20;not null;default:'available'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dish is a menu item. CategoryName is filled by read queries that join categories.
type Dish struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID   *uint     `gorm:"index" json:"category_id"`
	CategoryName *string   `gorm:"->;-:migration" json:"category_name"`
	IsAvailable  bool      `gorm:"not null" json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Dish) TableName() string { return "menu_items" }

// Tax rates are stored as fractions, 0.1 meaning 10%.
type Tax struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Rate      float64   `gorm:"type:decimal(5,4);not null" json:"rate"`
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
