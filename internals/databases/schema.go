package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// ForeignKey describes a constraint AutoMigrate cannot infer because models
// only carry plain uuid columns.
type ForeignKey struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string // CASCADE | SET NULL
}

const (
	Cascade = "CASCADE"
	SetNull = "SET NULL"
)

func FK(table, column, refTable, refColumn, onDelete string) ForeignKey {
	return ForeignKey{Table: table, Column: column, RefTable: refTable, RefColumn: refColumn, OnDelete: onDelete}
}

func (f ForeignKey) Name() string {
	return fmt.Sprintf("fk_%s_%s", f.Table, f.Column)
}

// Schema is one area's contribution to the database layout.
type Schema struct {
	Models      []any
	ForeignKeys []ForeignKey
	Statements  []string // idempotent DDL (partial indexes, checks)
}

func Migrate(db *gorm.DB, schemas ...Schema) error {
	for _, s := range schemas {
		if err := db.AutoMigrate(s.Models...); err != nil {
			return err
		}
	}
	for _, s := range schemas {
		for _, fk := range s.ForeignKeys {
			if err := ensureForeignKey(db, fk); err != nil {
				return fmt.Errorf("%s: %w", fk.Name(), err)
			}
		}
		for _, stmt := range s.Statements {
			if err := db.Exec(stmt).Error; err != nil {
				return fmt.Errorf("statement %q: %w", stmt, err)
			}
		}
	}
	log.Println("[INFO] migrations applied")
	return nil
}

func ensureForeignKey(db *gorm.DB, fk ForeignKey) error {
	var exists bool
	if err := db.Raw(
		`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, fk.Name(),
	).Scan(&exists).Error; err != nil {
		return err
	}
	if exists {
		return nil
	}
	return db.Exec(fmt.Sprintf(
		`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q (%q) ON DELETE %s`,
		fk.Table, fk.Name(), fk.Column, fk.RefTable, fk.RefColumn, fk.OnDelete,
	)).Error
}

// Check adds a named CHECK constraint if it is missing.
func Check(table, name, expr string) string {
	return fmt.Sprintf(`DO $$ BEGIN
IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
  ALTER TABLE %q ADD CONSTRAINT %q CHECK (%s);
END IF;
END $$;`, name, table, name, expr)
}
