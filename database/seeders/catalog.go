package seeders

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/storefront/app/models"
)

func init() {
	Register("sizes", SeedSizes)
	Register("payment_methods", SeedPaymentMethods)
	Register("catalog", SeedCatalog)
}

// SeedSizes inserts the standard apparel sizes. Existing names are kept.
func SeedSizes(db *gorm.DB) error {
	sizes := []models.Size{{Name: "XS"}, {Name: "S"}, {Name: "M"}, {Name: "L"}, {Name: "XL"}}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sizes).Error
}

func SeedPaymentMethods(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.PaymentMethod{}).Count(&n).Error; err != nil || n > 0 {
		return err
	}
	methods := []models.PaymentMethod{{MethodName: "Credit Card"}, {MethodName: "PayPal"}, {MethodName: "Bank Transfer"}}
	return db.Create(&methods).Error
}

// SeedCatalog creates one brand, one category and two stocked products so a
// fresh install can take an order.
func SeedCatalog(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Product{}).Count(&n).Error; err != nil || n > 0 {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		brand := models.Brand{Title: "Northwind"}
		if err := tx.Create(&brand).Error; err != nil {
			return err
		}
		category := models.Category{Title: "Outerwear"}
		if err := tx.Create(&category).Error; err != nil {
			return err
		}
		products := []models.Product{
			{SKU: "NW-JKT-001", Title: "Rain Jacket", Description: "Lightweight waterproof shell.", CategoryID: category.ID, BrandID: brand.ID, Price: 89.9},
			{SKU: "NW-VST-002", Title: "Down Vest", Description: "Packable vest with recycled down fill.", CategoryID: category.ID, BrandID: brand.ID, Price: 59.5},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		for _, p := range products {
			if err := tx.Create(&models.Inventory{ProductID: p.ID, Stock: 25}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
