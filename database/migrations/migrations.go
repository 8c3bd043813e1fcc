// Package migrations registers the storefront schema. Import it for its
// side effects before running migration.New(db, out).Run().
package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_catalog_tables", &tables{
		models: []any{&models.Brand{}, &models.Category{}, &models.Product{}, &models.ProductImage{}},
	})
	migration.Register("20260101000001_create_inventory_tables", &tables{
		models: []any{&models.Size{}, &models.Inventory{}},
	})
	migration.Register("20260101000002_create_order_tables", &tables{
		models: []any{&models.Order{}, &models.OrderItem{}, &models.ShippingAddress{}},
	})
	migration.Register("20260101000003_create_shop_tables", &tables{
		models: []any{&models.CartItem{}, &models.PaymentMethod{}, &models.Payment{}, &models.User{}},
	})
}

// tables creates a group of tables and drops them in reverse on rollback.
type tables struct {
	models []any
}

func (m *tables) Up(db *gorm.DB) error {
	return db.AutoMigrate(m.models...)
}

func (m *tables) Down(db *gorm.DB) error {
	for i := len(m.models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(m.models[i]); err != nil {
			return err
		}
	}
	return nil
}
