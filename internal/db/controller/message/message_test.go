package message

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/errs"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Message{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		message       models.Message
		expectedError error
	}{
		{
			name:          "missing name",
			message:       models.Message{Email: "a@b.c", Message: "hi"},
			expectedError: errs.ErrValidation,
		},
		{
			name:          "missing email",
			message:       models.Message{Name: "Ann", Message: "hi"},
			expectedError: errs.ErrValidation,
		},
		{
			name:          "missing body",
			message:       models.Message{Name: "Ann", Email: "a@b.c"},
			expectedError: errs.ErrValidation,
		},
		{
			name:    "subject is optional",
			message: models.Message{Name: "Ann", Email: "a@b.c", Message: "hi"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)

			created, err := Create(db, &tc.message)
			var count int64
			require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Equal(t, int64(0), count, "rejected messages must not persist")
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.IsRead, "new messages start unread")
			assert.Equal(t, int64(1), count)
		})
	}
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := []models.Message{
		{ID: "m1", Name: "Ann", Email: "a@b.c", Message: "oldest", CreatedAt: base},
		{ID: "m2", Name: "Ben", Email: "b@b.c", Message: "middle", CreatedAt: base.Add(time.Hour)},
		{ID: "m3", Name: "Cat", Email: "c@b.c", Message: "newest", CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	messages, err := List(db)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	// newest first
	assert.Equal(t, "m3", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, "m1", messages[2].ID)
}

func TestSetRead(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, &models.Message{Name: "Ann", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	_, err = SetRead(db, created.ID, true)
	require.NoError(t, err)

	reloaded, err := Get(db, created.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsRead)

	// repeating the same transition is a no-op
	_, err = SetRead(db, created.ID, true)
	require.NoError(t, err)

	_, err = SetRead(db, created.ID, false)
	require.NoError(t, err)

	reloaded, err = Get(db, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsRead)

	_, err = SetRead(db, "missing", true)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, &models.Message{Name: "Ann", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))

	err = Delete(db, created.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestCountUnread(t *testing.T) {
	db := setupTestDB(t)

	for _, m := range []models.Message{
		{ID: "m1", Name: "Ann", Email: "a@b.c", Message: "x", IsRead: true},
		{ID: "m2", Name: "Ben", Email: "b@b.c", Message: "y"},
		{ID: "m3", Name: "Cat", Email: "c@b.c", Message: "z"},
	} {
		msg := m
		require.NoError(t, db.Create(&msg).Error)
	}

	count, err := CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
