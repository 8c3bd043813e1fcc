package migration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   int64
	Body string
}

type createNotes struct{}

func (createNotes) Up(db *gorm.DB) error   { return db.AutoMigrate(&note{}) }
func (createNotes) Down(db *gorm.DB) error { return db.Migrator().DropTable(&note{}) }

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func withRegistry(t *testing.T, entries ...entry) {
	t.Helper()
	mu.Lock()
	saved := registry
	registry = entries
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = saved
		mu.Unlock()
	})
}

func TestRunThenRollback(t *testing.T) {
	withRegistry(t, entry{name: "20260101000000_create_notes", m: createNotes{}})
	db := openDB(t)
	var out bytes.Buffer
	r := New(db, &out)

	pending, err := r.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"20260101000000_create_notes"}, pending)

	require.NoError(t, r.Run())
	assert.True(t, db.Migrator().HasTable(&note{}))

	pending, err = r.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, r.Run())
	assert.Contains(t, out.String(), "Nothing to migrate.")

	require.NoError(t, r.Rollback())
	assert.False(t, db.Migrator().HasTable(&note{}))
}

func TestStatusSeparatorIsPrintable(t *testing.T) {
	withRegistry(t, entry{name: "20260101000000_create_notes", m: createNotes{}})
	var out bytes.Buffer
	require.NoError(t, New(openDB(t), &out).Status())

	assert.NotContains(t, out.String(), "\x00")
	assert.Contains(t, out.String(), "Pending")
}

func TestRegisteredIsSorted(t *testing.T) {
	withRegistry(t,
		entry{name: "20260102_b", m: createNotes{}},
		entry{name: "20260101_a", m: createNotes{}},
	)
	got := registered()
	assert.Equal(t, "20260101_a", got[0].name)
}
