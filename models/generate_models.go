package models

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
)

/*
Schema tooling.

AUTO_MIGRATE=true creates or alters the attorneys and blog_posts tables to
match AttorneyRow and BlogPostRow before the server starts.

GENERATE_MODELS=true migrates, prints the column report and writes typed
query helpers to ./generated, then exits.

The column report lists columns that exist in the database but have no
field in the Go row type, e.g. a column added by hand in the hosted
dashboard:

	attorneys: 1 unmapped column(s): [office]
	blog_posts: all columns mapped
*/

// Rows lists every backend row type, keyed by table name
func Rows() map[string]any {
	return map[string]any{
		AttorneyRow{}.TableName(): &AttorneyRow{},
		BlogPostRow{}.TableName(): &BlogPostRow{},
	}
}

// Migrate creates or updates the backend tables
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(&AttorneyRow{}, &BlogPostRow{}); err != nil {
		return fmt.Errorf("migrating content tables: %w", err)
	}
	log.Info().Msg("content tables migrated")
	return nil
}

// GenerateModels migrates the schema, reports unmapped columns and emits query helpers
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := Migrate(db); err != nil {
		return err
	}

	report, err := ColumnMismatchReport(db)
	if err != nil {
		return err
	}
	LogColumnReport(report)

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(AttorneyRow{}, BlogPostRow{})
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("query helpers generated")
	return nil
}

// ColumnMismatchReport maps each table to the database columns with no matching row field.
// Tables that do not exist yet are omitted.
func ColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	migrator := db.Migrator()

	for table, row := range Rows() {
		if !migrator.HasTable(table) {
			continue
		}

		columnTypes, err := migrator.ColumnTypes(table)
		if err != nil {
			return nil, fmt.Errorf("reading columns of %s: %w", table, err)
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(row); err != nil {
			return nil, fmt.Errorf("parsing schema of %s: %w", table, err)
		}

		mapped := make(map[string]bool, len(stmt.Schema.DBNames))
		for _, name := range stmt.Schema.DBNames {
			mapped[name] = true
		}

		unmapped := []string{}
		for _, col := range columnTypes {
			if !mapped[col.Name()] {
				unmapped = append(unmapped, col.Name())
			}
		}
		sort.Strings(unmapped)
		report[table] = unmapped
	}

	return report, nil
}

// LogColumnReport writes the report one line per table
func LogColumnReport(report map[string][]string) {
	tables := make([]string, 0, len(report))
	for table := range report {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	total := 0
	for _, table := range tables {
		unmapped := report[table]
		total += len(unmapped)
		if len(unmapped) == 0 {
			log.Info().Str("table", table).Msg("all columns mapped")
			continue
		}
		log.Warn().Str("table", table).Strs("columns", unmapped).Msgf("%d unmapped column(s)", len(unmapped))
	}
	log.Info().Int("total", total).Msg("column report complete")
}
