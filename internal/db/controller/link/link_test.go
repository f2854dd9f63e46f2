package link

import (
	"testing"

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
	err = db.AutoMigrate(&models.Link{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		link          models.Link
		expectedError error
		expectedIcon  string
	}{
		{
			name:          "missing title",
			link:          models.Link{URL: "https://example.com"},
			expectedError: errs.ErrValidation,
		},
		{
			name:          "missing url",
			link:          models.Link{Title: "Example"},
			expectedError: errs.ErrValidation,
		},
		{
			name:         "known icon kept",
			link:         models.Link{Title: "GitHub", URL: "https://github.com/x", Icon: "github"},
			expectedIcon: "github",
		},
		{
			name:         "unknown icon normalized",
			link:         models.Link{Title: "Blog", URL: "https://example.com", Icon: "myspace"},
			expectedIcon: models.DefaultLinkIcon,
		},
		{
			name:         "empty icon normalized",
			link:         models.Link{Title: "Blog", URL: "https://example.com"},
			expectedIcon: models.DefaultLinkIcon,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)

			created, err := Create(db, &tc.link)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, tc.expectedIcon, created.Icon)
		})
	}
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	for _, l := range []models.Link{
		{ID: "l2", Title: "B", URL: "https://b", Order: 1, IsActive: true},
		{ID: "l3", Title: "C", URL: "https://c", Order: 2, IsActive: false},
		{ID: "l1", Title: "A", URL: "https://a", Order: 0, IsActive: true},
	} {
		lnk := l
		require.NoError(t, db.Create(&lnk).Error)
	}

	all, err := List(db, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "l1", all[0].ID)
	assert.Equal(t, "l2", all[1].ID)
	assert.Equal(t, "l3", all[2].ID)

	active, err := List(db, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, &models.Link{Title: "GitHub", URL: "https://github.com/x", Icon: "github"})
	require.NoError(t, err)

	updated, err := Update(db, created.ID, Fields{Icon: strPtr("bogus")})
	require.NoError(t, err)

	// icon normalization applies on update too, other fields survive
	assert.Equal(t, models.DefaultLinkIcon, updated.Icon)
	assert.Equal(t, "GitHub", updated.Title)

	_, err = Update(db, "missing", Fields{Title: strPtr("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, &models.Link{Title: "A", URL: "https://a"})
	require.NoError(t, err)

	require.NoError(t, Delete(db, created.ID))

	err = Delete(db, created.ID)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
