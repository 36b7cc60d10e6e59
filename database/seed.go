package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/models"
)

// Seed inserts the default menu categories and the standard VAT entry.
// Existing rows with the same name are left alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	for _, name := range []string{"Starters", "Mains", "Desserts", "Drinks"} {
		category := models.Category{Name: name}
		if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", name, err)
		}
	}

	vat := models.Tax{Name: "VAT", Rate: models.DefaultTaxRate.InexactFloat64(), IsActive: true}
	if err := db.Where(models.Tax{Name: vat.Name}).FirstOrCreate(&vat).Error; err != nil {
		return fmt.Errorf("failed to seed tax %s: %w", vat.Name, err)
	}
	return nil
}
