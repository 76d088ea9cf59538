package database

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/sleeklegal-backend/errs"
)

// Row is implemented by every backend row type
type Row[R any] interface {
	TableName() string
	WithIdentity(id string, createdAt time.Time) R
	Validate() error
}

// Table is the gateway to one backend table. A Table built on a nil
// handle is unconfigured: IsAvailable reports false and every call fails
// with errs.ErrConfigMissing.
type Table[R Row[R]] struct {
	db      *gorm.DB
	entity  string
	columns map[string]bool
	now     func() time.Time
}

// NewTable returns a gateway to the table of R. orderable lists the
// columns ListAll may sort on.
func NewTable[R Row[R]](db *gorm.DB, entity string, orderable ...string) *Table[R] {
	columns := make(map[string]bool, len(orderable))
	for _, c := range orderable {
		columns[c] = true
	}
	return &Table[R]{
		db:      db,
		entity:  entity,
		columns: columns,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// GetDB returns the underlying database connection for debugging purposes
func (t *Table[R]) GetDB() *gorm.DB {
	return t.db
}

// Name returns the backend table name
func (t *Table[R]) Name() string {
	var zero R
	return zero.TableName()
}

// IsAvailable reports whether the gateway was configured. It does no I/O.
func (t *Table[R]) IsAvailable() bool {
	return t != nil && t.db != nil
}

// IsReachable probes the backend with a trivial query
func (t *Table[R]) IsReachable(ctx context.Context) error {
	if !t.IsAvailable() {
		return errs.NewConfigMissingError("database")
	}
	var one int
	if err := t.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return errs.NewDatabaseError("reach", "database", err)
	}
	return nil
}

// ListAll returns every row sorted by orderBy. A leading "-" sorts descending.
// An empty table yields an empty slice and a nil error.
func (t *Table[R]) ListAll(ctx context.Context, orderBy string) ([]R, error) {
	if !t.IsAvailable() {
		return nil, errs.NewConfigMissingError("database")
	}

	query := t.db.WithContext(ctx)
	if orderBy != "" {
		desc := strings.HasPrefix(orderBy, "-")
		column := strings.TrimPrefix(orderBy, "-")
		if !t.columns[column] {
			return nil, errs.NewInvalidFieldError("orderBy", "cannot sort on "+column)
		}
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}

	rows := []R{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.NewDatabaseError("list", t.entity, err)
	}
	return rows, nil
}

// Count returns the number of rows in the table
func (t *Table[R]) Count(ctx context.Context) (int64, error) {
	if !t.IsAvailable() {
		return 0, errs.NewConfigMissingError("database")
	}
	var count int64
	if err := t.db.WithContext(ctx).Model(new(R)).Count(&count).Error; err != nil {
		return 0, errs.NewDatabaseError("count", t.entity, err)
	}
	return count, nil
}

// Insert stores one row and returns it with its assigned id and creation time.
// Missing required columns are rejected before the query is issued.
func (t *Table[R]) Insert(ctx context.Context, row R) (R, error) {
	var zero R
	if !t.IsAvailable() {
		return zero, errs.NewConfigMissingError("database")
	}
	if err := row.Validate(); err != nil {
		return zero, err
	}

	row = row.WithIdentity(uuid.NewString(), t.now())
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return zero, errs.NewDatabaseError("create", t.entity, err)
	}
	return row, nil
}

// InsertMany stores all rows in a single transaction
func (t *Table[R]) InsertMany(ctx context.Context, rows []R) ([]R, error) {
	if !t.IsAvailable() {
		return nil, errs.NewConfigMissingError("database")
	}
	if len(rows) == 0 {
		return []R{}, nil
	}

	stamped := make([]R, 0, len(rows))
	now := t.now()
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
		stamped = append(stamped, row.WithIdentity(uuid.NewString(), now))
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&stamped).Error
	})
	if err != nil {
		return nil, errs.NewDatabaseError("create", t.entity, err)
	}
	return stamped, nil
}

// Update sets only the given columns on the row with the given id and
// returns the stored row. id and created_at are never written.
func (t *Table[R]) Update(ctx context.Context, id string, columns map[string]any) (R, error) {
	var row R
	if !t.IsAvailable() {
		return row, errs.NewConfigMissingError("database")
	}
	if !validID(id) {
		return row, errs.NewNotFound(t.entity)
	}

	updates := make(map[string]any, len(columns))
	for column, value := range columns {
		if column == "id" || column == "created_at" {
			continue
		}
		updates[column] = value
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(new(R)).Where("id = ?", id).Updates(updates)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return tx.Where("id = ?", id).First(&row).Error
	})
	if err != nil {
		var zero R
		return zero, errs.NewDatabaseError("update", t.entity, err)
	}
	return row, nil
}

// Delete removes the row with the given id. Deleting a missing row fails with errs.ErrNotFound.
func (t *Table[R]) Delete(ctx context.Context, id string) error {
	if !t.IsAvailable() {
		return errs.NewConfigMissingError("database")
	}
	if !validID(id) {
		return errs.NewNotFound(t.entity)
	}

	result := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(R))
	if result.Error != nil {
		return errs.NewDatabaseError("delete", t.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound(t.entity)
	}
	return nil
}

// FindByID returns the row with the given id
func (t *Table[R]) FindByID(ctx context.Context, id string) (R, error) {
	var row R
	if !t.IsAvailable() {
		return row, errs.NewConfigMissingError("database")
	}
	if !validID(id) {
		return row, errs.NewNotFound(t.entity)
	}
	if err := t.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		var zero R
		return zero, errs.NewDatabaseError("find", t.entity, err)
	}
	return row, nil
}

// ids are uuids on the backend, anything else cannot match a row
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
