package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

const startedAtKey = "storefront:started_at"

// queryMetrics is a GORM plugin timing every statement into
// metrics.DBQueryDuration.
type queryMetrics struct{}

func (queryMetrics) Name() string { return "storefront:query_metrics" }

func (p queryMetrics) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op     string
		before func(string, func(*gorm.DB)) error
		after  func(string, func(*gorm.DB)) error
	}{
		{"select", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"insert", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
	}

	for _, h := range hooks {
		op := h.op
		if err := h.before("storefront:before_"+op, start); err != nil {
			return err
		}
		if err := h.after("storefront:after_"+op, func(tx *gorm.DB) { observe(tx, op) }); err != nil {
			return err
		}
	}
	return nil
}

func start(tx *gorm.DB) {
	tx.InstanceSet(startedAtKey, time.Now())
}

func observe(tx *gorm.DB, op string) {
	v, ok := tx.InstanceGet(startedAtKey)
	if !ok {
		return
	}
	began, ok := v.(time.Time)
	if !ok {
		return
	}
	table := ""
	if tx.Statement != nil {
		table = tx.Statement.Table
	}
	metrics.ObserveDBQuery(op, table, began)
}
