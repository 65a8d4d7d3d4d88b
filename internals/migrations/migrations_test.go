package migrations

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

type tabler interface{ TableName() string }

func TestAll_TablesAreUniqueAndKeysPointAtKnownTables(t *testing.T) {
	tables := map[string]bool{}
	for _, s := range All() {
		for _, m := range s.Models {
			tb, ok := m.(tabler)
			if !assert.True(t, ok, "%s has no TableName", reflect.TypeOf(m)) {
				continue
			}
			assert.False(t, tables[tb.TableName()], "table %s declared twice", tb.TableName())
			tables[tb.TableName()] = true
		}
	}
	for _, s := range All() {
		for _, fk := range s.ForeignKeys {
			assert.True(t, tables[fk.Table], "fk %s: unknown table", fk.Name())
			assert.True(t, tables[fk.RefTable], "fk %s: unknown referenced table %s", fk.Name(), fk.RefTable)
		}
	}
}

func TestAll_ForeignKeyColumnsExist(t *testing.T) {
	var cache sync.Map
	byTable := map[string]*schema.Schema{}
	for _, s := range All() {
		for _, m := range s.Models {
			sch, err := schema.Parse(m, &cache, schema.NamingStrategy{})
			if !assert.NoError(t, err) {
				continue
			}
			byTable[sch.Table] = sch
		}
	}
	for _, s := range All() {
		for _, fk := range s.ForeignKeys {
			if sch := byTable[fk.Table]; sch != nil {
				assert.NotNil(t, sch.LookUpField(fk.Column), "fk %s: no column %s", fk.Name(), fk.Column)
			}
			if sch := byTable[fk.RefTable]; sch != nil {
				assert.NotNil(t, sch.LookUpField(fk.RefColumn), "fk %s: no column %s.%s", fk.Name(), fk.RefTable, fk.RefColumn)
			}
		}
	}
}
