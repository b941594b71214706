package postgres

import (
	"fmt"

	"tailor/internal/adapters/out/postgres/customerrepo"
	"tailor/internal/adapters/out/postgres/measurementrepo"
	"tailor/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

type foreignKey struct {
	model      any
	name       string
	table      string
	onDelete   string
	refColumns string
}

// foreignKeys tie orders and measurements to customers. Orders block the
// physical removal of a customer row, measurements go with it.
var foreignKeys = []foreignKey{
	{model: &orderrepo.OrderDTO{}, name: "fk_orders_customer", table: "orders", onDelete: "RESTRICT", refColumns: "customers(id)"},
	{model: &measurementrepo.MeasurementDTO{}, name: "fk_measurements_customer", table: "measurements", onDelete: "CASCADE", refColumns: "customers(id)"},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&measurementrepo.MeasurementDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}
		stmt := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (customer_id) REFERENCES %s ON DELETE %s",
			fk.table, fk.name, fk.refColumns, fk.onDelete,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}
