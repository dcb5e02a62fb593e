package main

import (
	"insureflow/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the purchase ledger.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.PurchaseLedgerModel{})

	g.Execute()
}
