package crud

import (
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "schooloffice_backend/internals/helpers"
	"schooloffice_backend/internals/helpers/apperr"
	"schooloffice_backend/internals/metrics"
	"schooloffice_backend/internals/middlewares/auth"
)

type handler[M any, F Form[M]] struct {
	db  *gorm.DB
	res *Resource[M, F]
	v   *helper.Validator
}

// Register mounts the resource's operations on r. Routes registered on r
// before this call take precedence over "/:id".
func Register[M any, F Form[M]](r fiber.Router, db *gorm.DB, res *Resource[M, F]) {
	if err := res.parse(db); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	h := &handler[M, F]{db: db, res: res, v: helper.NewValidator()}
	ops := res.Ops

	if ops.Has(OpList) {
		r.Get("/", auth.Require(res.capFor(OpList)), h.List)
	}
	if ops.Has(OpCreate) {
		r.Post("/", auth.Require(res.capFor(OpCreate)), h.Create)
	}
	if ops.Has(OpDelete) {
		guard := auth.Require(res.capFor(OpDelete))
		r.Get("/:id/delete", guard, h.ConfirmDelete)
		r.Post("/:id/delete", guard, h.Delete)
		r.Delete("/:id", guard, h.Delete)
	}
	if ops.Has(OpGet) {
		r.Get("/:id", auth.Require(res.capFor(OpGet)), h.Get)
	}
	if ops.Has(OpUpdate) {
		guard := auth.Require(res.capFor(OpUpdate))
		r.Put("/:id", guard, h.Update)
		r.Patch("/:id", guard, h.Update)
	}
}

/* ===============================
   Read
=================================*/

func (h *handler[M, F]) List(c *fiber.Ctx) error {
	q, err := h.query(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonAppError(c, err)
	}

	p := helper.ResolvePaging(c, h.res.PageSize, h.res.PageSize)
	items := make([]M, 0, p.Limit)
	page := q
	if h.res.OrderBy != "" {
		page = page.Order(h.res.OrderBy)
	}
	if err := page.Offset(p.Offset).Limit(p.Limit).Find(&items).Error; err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := h.decorate(c, items); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, "ok", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (h *handler[M, F]) Get(c *fiber.Ctx) error {
	m, err := h.load(c, h.db.WithContext(c.UserContext()), false)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	items := []M{*m}
	if err := h.decorate(c, items); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", items[0])
}

/* ===============================
   Write
=================================*/

func (h *handler[M, F]) Create(c *fiber.Ctx) error {
	form, errs := h.bind(c)
	if errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, echoInput(c))
	}
	m := form.ToModel()
	w := h.writeContext(c)

	err := h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		w.Tx = tx
		if h.res.BeforeWrite != nil {
			if err := h.res.BeforeWrite(w, nil, &m); err != nil {
				return err
			}
		}
		if err := h.checkUnique(tx, &m, nil); err != nil {
			return err
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if h.res.AfterWrite != nil {
			return h.res.AfterWrite(w, &m)
		}
		return nil
	})
	if err != nil {
		return h.writeError(c, err)
	}
	metrics.RecordWrites.WithLabelValues(h.res.table(), "create").Inc()

	items := []M{m}
	_ = h.decorate(c, items)
	return helper.JsonCreated(c, h.res.Name+" created", items[0])
}

func (h *handler[M, F]) Update(c *fiber.Ctx) error {
	form, errs := h.bind(c)
	if errs != nil {
		return helper.JsonValidationErrorWithInput(c, errs, echoInput(c))
	}
	w := h.writeContext(c)

	var saved M
	err := h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		w.Tx = tx
		old, err := h.load(c, tx, true)
		if err != nil {
			return err
		}
		m := form.ToModel()
		if err := h.carryOver(c, old, &m); err != nil {
			return err
		}
		if h.res.BeforeWrite != nil {
			if err := h.res.BeforeWrite(w, old, &m); err != nil {
				return err
			}
		}
		if err := h.checkUnique(tx, &m, old); err != nil {
			return err
		}
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		if h.res.AfterWrite != nil {
			if err := h.res.AfterWrite(w, &m); err != nil {
				return err
			}
		}
		saved = m
		return nil
	})
	if err != nil {
		return h.writeError(c, err)
	}
	metrics.RecordWrites.WithLabelValues(h.res.table(), "update").Inc()

	items := []M{saved}
	_ = h.decorate(c, items)
	return helper.JsonUpdated(c, h.res.Name+" updated", items[0])
}

// ConfirmDelete returns the record with a token that authorises its deletion.
func (h *handler[M, F]) ConfirmDelete(c *fiber.Ctx) error {
	m, err := h.load(c, h.db.WithContext(c.UserContext()), false)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id := c.Params("id")
	token, exp, err := IssueConfirmToken(h.res.table(), id, time.Now())
	if err != nil {
		return helper.JsonAppError(c, apperr.Internal("could not issue confirmation", err))
	}
	return helper.JsonOK(c, "confirm deletion of this "+h.res.Name, fiber.Map{
		"record":        m,
		"confirm_token": token,
		"expires_at":    exp,
	})
}

func (h *handler[M, F]) Delete(c *fiber.Ctx) error {
	if err := VerifyConfirmToken(confirmTokenFrom(c), h.res.table(), c.Params("id")); err != nil {
		return helper.JsonAppError(c, apperr.Validation("confirm_token", err.Error()))
	}
	w := h.writeContext(c)
	err := h.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		w.Tx = tx
		m, err := h.load(c, tx, true)
		if err != nil {
			return err
		}
		if h.res.BeforeDelete != nil {
			if err := h.res.BeforeDelete(w, m); err != nil {
				return err
			}
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	metrics.RecordWrites.WithLabelValues(h.res.table(), "delete").Inc()
	return helper.JsonDeleted(c, h.res.Name+" deleted", fiber.Map{"id": c.Params("id")})
}

/* ===============================
   Internals
=================================*/

func (h *handler[M, F]) writeContext(c *fiber.Ctx) WriteContext {
	return WriteContext{Ctx: c.UserContext(), Actor: helper.ActorID(c), Role: helper.ActorRole(c)}
}

func (h *handler[M, F]) bind(c *fiber.Ctx) (F, map[string][]string) {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return form, map[string][]string{"__all__": {"invalid request body"}}
	}
	return form, h.v.Struct(form)
}

func (h *handler[M, F]) writeError(c *fiber.Ctx, err error) error {
	ae := apperr.From(err)
	if ae.Kind != apperr.KindValidation {
		return helper.JsonAppError(c, err)
	}
	fields := ae.Fields
	if len(fields) == 0 {
		fields = map[string][]string{"__all__": {ae.Message}}
	}
	return helper.JsonValidationErrorWithInput(c, fields, echoInput(c))
}

func (h *handler[M, F]) decorate(c *fiber.Ctx, items []M) error {
	if h.res.Decorate == nil || len(items) == 0 {
		return nil
	}
	return h.res.Decorate(c.UserContext(), h.db.WithContext(c.UserContext()), items)
}

func (h *handler[M, F]) scoped(tx *gorm.DB, c *fiber.Ctx) (*gorm.DB, error) {
	if h.res.Scope == nil {
		return tx, nil
	}
	return h.res.Scope(tx, c)
}

func (h *handler[M, F]) load(c *fiber.Ctx, tx *gorm.DB, forUpdate bool) (*M, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, apperr.NotFound(h.res.Name)
	}
	q, err := h.scoped(tx.Model(new(M)), c)
	if err != nil {
		return nil, err
	}
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m M
	if err := q.Where(fmt.Sprintf("%s.%s = ?", h.res.table(), h.res.pk().DBName), id).Take(&m).Error; err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.NotFound(h.res.Name)
		}
		return nil, err
	}
	return &m, nil
}

// carryOver keeps the key, creation stamps and server-managed columns of old.
func (h *handler[M, F]) carryOver(c *fiber.Ctx, old, m *M) error {
	ctx := c.UserContext()
	src, dst := reflect.ValueOf(old), reflect.ValueOf(m)
	cols := append([]string{h.res.pk().DBName}, h.res.Keep...)
	for _, f := range h.res.schema.Fields {
		if f.AutoCreateTime > 0 {
			cols = append(cols, f.DBName)
		}
	}
	for _, col := range cols {
		f := h.res.schema.LookUpField(col)
		if f == nil {
			return fmt.Errorf("crud: %s has no column %s", h.res.Name, col)
		}
		v, _ := f.ValueOf(ctx, src)
		if err := f.Set(ctx, dst, v); err != nil {
			return err
		}
	}
	return nil
}

func (h *handler[M, F]) checkUnique(tx *gorm.DB, m *M, old *M) error {
	if len(h.res.Unique) == 0 {
		return nil
	}
	ctx := tx.Statement.Context
	rv := reflect.ValueOf(m)
	fields := map[string][]string{}

rules:
	for _, rule := range h.res.Unique {
		q := tx.Session(&gorm.Session{NewDB: true}).Table(h.res.table())
		for _, col := range rule.Columns {
			f := h.res.schema.LookUpField(col)
			if f == nil {
				return fmt.Errorf("crud: %s has no column %s", h.res.Name, col)
			}
			v, zero := f.ValueOf(ctx, rv)
			if zero {
				continue rules
			}
			q = q.Where(fmt.Sprintf("%s = ?", f.DBName), v)
		}
		if old != nil {
			id, _ := h.res.pk().ValueOf(ctx, reflect.ValueOf(old))
			q = q.Where(fmt.Sprintf("%s <> ?", h.res.pk().DBName), id)
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			msg := rule.Message
			if msg == "" {
				msg = fmt.Sprintf("%s with this %s already exists", h.res.Name, strings.Join(rule.Columns, ", "))
			}
			fields[rule.Field] = append(fields[rule.Field], msg)
		}
	}
	if len(fields) > 0 {
		return apperr.ValidationFields(fields)
	}
	return nil
}

func (h *handler[M, F]) query(c *fiber.Ctx) (*gorm.DB, error) {
	q := h.db.WithContext(c.UserContext()).Model(new(M))
	table := h.res.table()

	if term := strings.TrimSpace(c.Query("search")); term != "" && len(h.res.Search) > 0 {
		like := "%" + likeEscaper.Replace(term) + "%"
		conds := make([]string, len(h.res.Search))
		args := make([]any, len(h.res.Search))
		for i, expr := range h.res.Search {
			conds[i] = expr + " ILIKE ?"
			args[i] = like
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	for _, f := range h.res.Filters {
		raw := strings.TrimSpace(c.Query(f.Param))
		if raw == "" {
			continue
		}
		val, err := parseFilter(f, raw)
		if err != nil {
			return nil, err
		}
		col := f.Column
		if !strings.Contains(col, ".") {
			col = table + "." + col
		}
		q = q.Where(col+" = ?", val)
	}
	return h.scoped(q, c)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func parseFilter(f Filter, raw string) (any, error) {
	switch f.Kind {
	case FilterUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.Validation(f.Param, "must be a valid UUID")
		}
		return id, nil
	case FilterBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperr.Validation(f.Param, "must be true or false")
		}
		return b, nil
	case FilterDate:
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, apperr.Validation(f.Param, "must be a date (YYYY-MM-DD)")
		}
		return d, nil
	case FilterInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.Validation(f.Param, "must be a number")
		}
		return n, nil
	case FilterEnum:
		return strings.ToUpper(raw), nil
	default:
		return raw, nil
	}
}
