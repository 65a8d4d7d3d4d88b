// Package crud mounts list/detail/create/edit/delete endpoints for one model
// with paging, search, filters, uniqueness checks and confirmed deletes.
package crud

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"schooloffice_backend/internals/constants"
)

// Form is a create/edit payload that can build its model.
type Form[M any] interface {
	ToModel() M
}

type Op uint8

const (
	OpList Op = 1 << iota
	OpGet
	OpCreate
	OpUpdate
	OpDelete

	OpsRead = OpList | OpGet
	OpsAll  = OpsRead | OpCreate | OpUpdate | OpDelete
)

func (o Op) Has(x Op) bool { return o&x == x }

// WriteContext is handed to hooks running inside the write transaction.
type WriteContext struct {
	Ctx   context.Context
	Tx    *gorm.DB
	Actor uuid.UUID
	Role  string
}

// ActorPtr is the acting user for nullable *_by columns.
func (w WriteContext) ActorPtr() *uuid.UUID {
	if w.Actor == uuid.Nil {
		return nil
	}
	id := w.Actor
	return &id
}

type FilterKind int

const (
	FilterUUID FilterKind = iota
	FilterString
	FilterEnum // upper-cased before comparing
	FilterBool
	FilterDate
	FilterInt
)

// Filter maps ?<Param>= to an equality on Column.
type Filter struct {
	Param  string
	Column string
	Kind   FilterKind
}

// Unique rejects a write when another row already holds the same values in
// Columns. Field is the json key the error is reported under.
type Unique struct {
	Field   string
	Columns []string
	Message string
}

type Resource[M any, F Form[M]] struct {
	Name     string // human label, e.g. "subject"
	Area     constants.Area
	OrderBy  string
	PageSize int
	Ops      Op
	Search   []string // SQL expressions matched with ILIKE
	Filters  []Filter
	Unique   []Unique
	Keep     []string // columns copied from the stored row on edit

	// Caps overrides the capability guarding an operation.
	Caps map[Op]constants.Capability

	Scope        func(tx *gorm.DB, c *fiber.Ctx) (*gorm.DB, error)
	BeforeWrite  func(w WriteContext, old, m *M) error
	AfterWrite   func(w WriteContext, m *M) error
	BeforeDelete func(w WriteContext, m *M) error
	Decorate     func(ctx context.Context, db *gorm.DB, items []M) error

	schema *schema.Schema
}

const defaultPageSize = 10

func (r *Resource[M, F]) capFor(op Op) constants.Capability {
	if c, ok := r.Caps[op]; ok {
		return c
	}
	if op == OpList || op == OpGet {
		return constants.Read(r.Area)
	}
	return constants.Write(r.Area)
}

var schemaCache sync.Map

func (r *Resource[M, F]) parse(db *gorm.DB) error {
	if r.schema != nil {
		return nil
	}
	var namer schema.Namer = schema.NamingStrategy{}
	if db != nil && db.Config != nil && db.NamingStrategy != nil {
		namer = db.NamingStrategy
	}
	s, err := schema.Parse(new(M), &schemaCache, namer)
	if err != nil {
		return fmt.Errorf("crud: parse %s: %w", r.Name, err)
	}
	if s.PrioritizedPrimaryField == nil {
		return fmt.Errorf("crud: %s has no primary key", r.Name)
	}
	r.schema = s
	if r.PageSize <= 0 {
		r.PageSize = defaultPageSize
	}
	if r.Ops == 0 {
		r.Ops = OpsAll
	}
	return nil
}

func (r *Resource[M, F]) table() string { return r.schema.Table }

func (r *Resource[M, F]) pk() *schema.Field { return r.schema.PrioritizedPrimaryField }
