package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"mis/pkg/apperror"
	"mis/pkg/pagination"
	"mis/pkg/query"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ValueKind selects how a request value is coerced before it is bound.
type ValueKind int

const (
	Text ValueKind = iota
	Int
	Decimal
	Date
	Bool
)

// Column maps a request/JSON key onto a table column.
type Column struct {
	Key      string
	Name     string
	Kind     ValueKind
	ReadOnly bool // projected but never written from request fields
}

// Filter appends an optional predicate for one query parameter.
// Apply is only called with a non-blank value.
type Filter struct {
	Param string
	Apply func(b *query.Builder, value string)
}

// Eq filters on equality of a column.
func Eq(param, column string) Filter {
	return Filter{Param: param, Apply: func(b *query.Builder, v string) { b.Eq(column, v) }}
}

// Search filters on a case-insensitive substring across columns.
func Search(param string, columns ...string) Filter {
	return Filter{Param: param, Apply: func(b *query.Builder, v string) { b.Contains(v, columns...) }}
}

// Schema configures a Table for one entity.
type Schema struct {
	Entity         string
	Table          string
	ID             Column
	Columns        []Column
	Required       []string // keys required on create
	UpdateRequired []string // keys required on update, besides the id
	OrderBy        string
	Limit          int
	Filters        []Filter
	Audited        bool // table carries created_by/created_at/modified_by/modified_at
}

// Params are the raw query-string filters of a list or delete request.
type Params map[string]string

// Fields are the decoded body of a create or update request.
type Fields map[string]interface{}

var auditColumns = []string{"created_by", "created_at", "modified_by", "modified_at"}

// Table is the generic tabular resource accessor, instantiated once per entity.
type Table[T any] struct {
	db     *gorm.DB
	schema Schema
}

// NewTable binds a schema to the shared connection.
func NewTable[T any](db *gorm.DB, schema Schema) *Table[T] {
	if schema.Limit <= 0 {
		schema.Limit = pagination.MaxLimit
	}
	return &Table[T]{db: db, schema: schema}
}

func (t *Table[T]) Schema() Schema {
	return t.schema
}

// session joins any transaction carried by ctx.
func (t *Table[T]) session(ctx context.Context) *gorm.DB {
	return GetDB(ctx, t.db).Model(new(T)).Table(t.schema.Table)
}

func (t *Table[T]) projection() []string {
	cols := []string{t.schema.ID.Name}
	for _, c := range t.schema.Columns {
		if c.Name != t.schema.ID.Name {
			cols = append(cols, c.Name)
		}
	}
	if t.schema.Audited {
		cols = append(cols, auditColumns...)
	}
	return cols
}

func (t *Table[T]) filters(params Params) *query.Builder {
	b := query.New()
	for _, f := range t.schema.Filters {
		if v := strings.TrimSpace(params[f.Param]); v != "" {
			f.Apply(b, v)
		}
	}
	return b
}

// List returns rows matching the present filters, ordered by the schema key and capped.
// It never returns nil.
func (t *Table[T]) List(ctx context.Context, params Params) ([]T, error) {
	scope, err := t.filters(params).Scope()
	if err != nil {
		return nil, apperror.Internal("failed to build "+t.schema.Entity+" query", err)
	}

	rows := make([]T, 0)
	err = t.session(ctx).
		Select(t.projection()).
		Scopes(scope).
		Order(t.schema.OrderBy).
		Limit(pagination.Cap(params["limit"], t.schema.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, apperror.Internal("failed to list "+t.schema.Entity, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// Get returns one row by identifier.
func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	key, err := t.idValue(id)
	if err != nil {
		return nil, err
	}
	var row T
	err = t.session(ctx).Where(t.schema.ID.Name+" = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound(t.schema.Entity + " not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to fetch "+t.schema.Entity, err)
	}
	return &row, nil
}

// Create validates the required fields then inserts one row.
// Repeating a create inserts another row unless the table enforces uniqueness.
func (t *Table[T]) Create(ctx context.Context, actor string, fields Fields) error {
	if missing := Missing(fields, t.schema.Required); len(missing) > 0 {
		return apperror.BadRequest("missing required fields: " + strings.Join(missing, ", "))
	}

	values := t.values(fields, true)
	if t.schema.Audited {
		values["created_by"] = actor
		values["created_at"] = time.Now()
	}

	if err := t.session(ctx).Create(values).Error; err != nil {
		return apperror.Internal("failed to create "+t.schema.Entity, err)
	}
	return nil
}

// Update writes the recognised fields of one row. Zero affected rows is NotFound,
// which does not distinguish a missing id from an unchanged row on every store.
func (t *Table[T]) Update(ctx context.Context, actor, id string, fields Fields) error {
	if strings.TrimSpace(id) == "" {
		return apperror.BadRequest("missing required fields: " + t.schema.ID.Key)
	}
	if missing := Missing(fields, t.schema.UpdateRequired); len(missing) > 0 {
		return apperror.BadRequest("missing required fields: " + strings.Join(missing, ", "))
	}
	key, err := t.idValue(id)
	if err != nil {
		return err
	}

	values := t.values(fields, false)
	if len(values) == 0 {
		return apperror.BadRequest("no updatable fields supplied")
	}
	if t.schema.Audited {
		values["modified_by"] = actor
		values["modified_at"] = time.Now()
	}

	res := t.session(ctx).Where(t.schema.ID.Name+" = ?", key).Updates(values)
	if res.Error != nil {
		return apperror.Internal("failed to update "+t.schema.Entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(t.schema.Entity + " not found")
	}
	return nil
}

// Delete removes one row by identifier; an absent row is NotFound.
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperror.BadRequest("missing required fields: " + t.schema.ID.Key)
	}
	key, err := t.idValue(id)
	if err != nil {
		return err
	}
	res := t.session(ctx).Where(t.schema.ID.Name+" = ?", key).Delete(new(T))
	if res.Error != nil {
		return apperror.Internal("failed to delete "+t.schema.Entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFound(t.schema.Entity + " not found")
	}
	return nil
}

// DeleteWhere removes every row matching the present filters. Without any
// recognised filter it refuses rather than emptying the table.
func (t *Table[T]) DeleteWhere(ctx context.Context, params Params) (int64, error) {
	b := t.filters(params)
	if b.Len() == 0 {
		return 0, apperror.BadRequest("at least one filter is required")
	}
	scope, err := b.Scope()
	if err != nil {
		return 0, apperror.Internal("failed to build "+t.schema.Entity+" query", err)
	}
	res := t.session(ctx).Scopes(scope).Delete(new(T))
	if res.Error != nil {
		return 0, apperror.Internal("failed to delete "+t.schema.Entity, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, apperror.NotFound(t.schema.Entity + " not found")
	}
	return res.RowsAffected, nil
}

func (t *Table[T]) idValue(id string) (interface{}, error) {
	id = strings.TrimSpace(id)
	if t.schema.ID.Kind != Int {
		return id, nil
	}
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, apperror.BadRequest("invalid " + t.schema.ID.Key)
	}
	return n, nil
}

// values coerces the recognised request fields into column values.
// The identifier is only writable on create, and only when it is not read-only.
func (t *Table[T]) values(fields Fields, creating bool) map[string]interface{} {
	out := make(map[string]interface{})
	cols := t.schema.Columns
	if creating && !t.schema.ID.ReadOnly {
		cols = append([]Column{t.schema.ID}, cols...)
	}
	for _, c := range cols {
		if c.ReadOnly || (c.Name == t.schema.ID.Name && !creating) {
			continue
		}
		raw, ok := fields[c.Key]
		if !ok {
			continue
		}
		out[c.Name] = Coerce(c.Kind, raw)
	}
	return out
}

// Missing lists the required keys that are absent, null or blank, in sorted order.
func Missing(fields Fields, required []string) []string {
	var missing []string
	for _, key := range required {
		v, ok := fields[key]
		if !ok || v == nil {
			missing = append(missing, key)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// intOf truncates f, or yields 0 when it is NaN or outside the int64 range.
func intOf(f float64) int {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int(f)
}

// Coerce converts a decoded JSON value leniently: unparsable numbers become 0,
// unparsable dates become NULL and unparsable booleans become false.
func Coerce(kind ValueKind, raw interface{}) interface{} {
	switch kind {
	case Int:
		switch v := raw.(type) {
		case float64:
			return intOf(v)
		case int:
			return v
		case int64:
			return int(v)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				if f, ferr := strconv.ParseFloat(strings.TrimSpace(v), 64); ferr == nil {
					return intOf(f)
				}
				return 0
			}
			return n
		}
		return 0
	case Decimal:
		switch v := raw.(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case int:
			return decimal.NewFromInt(int64(v))
		case string:
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return decimal.Zero
			}
			return d
		case decimal.Decimal:
			return v
		}
		return decimal.Zero
	case Date:
		switch v := raw.(type) {
		case time.Time:
			return v
		case string:
			if t, ok := ParseDate(v); ok {
				return t
			}
		}
		return nil
	case Bool:
		switch v := raw.(type) {
		case bool:
			return v
		case float64:
			return v != 0
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return strings.EqualFold(strings.TrimSpace(v), "yes")
			}
			return b
		}
		return false
	default:
		switch v := raw.(type) {
		case nil:
			return ""
		case string:
			return strings.TrimSpace(v)
		default:
			return fmt.Sprint(v)
		}
	}
}

// ParseDate accepts YYYY-MM-DD or RFC 3339.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
