package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ContactGroup{}, &models.ContactType{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func seedGroups(t *testing.T, db *gorm.DB, groups ...models.ContactGroup) []models.ContactGroup {
	t.Helper()

	for i := range groups {
		require.NoError(t, db.Create(&groups[i]).Error, "failed to seed test data")
	}

	return groups
}

func TestFind(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedGroups(t, db, models.ContactGroup{Name: "Family"})

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		id            uint
		expectedError error
	}{
		{name: "nil database", dbParam: nil, id: 1, expectedError: ErrDBNil},
		{name: "zero id", dbParam: db, id: 0, expectedError: ErrInvalidID},
		{name: "not found", dbParam: db, id: 999, expectedError: ErrRecordNotFound},
		{name: "found", dbParam: db, id: seeded[0].ID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Find[models.ContactGroup](tc.dbParam, tc.id)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, g)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Family", g.Name)
		})
	}
}

func TestFindActive(t *testing.T) {
	db := setupTestDB(t)
	seedGroups(t, db,
		models.ContactGroup{Name: "Family"},
		models.ContactGroup{Name: "Old", Deleted: true},
		models.ContactGroup{Name: "Work"},
	)

	groups, err := FindActive[models.ContactGroup](db)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Family", groups[0].Name)
	assert.Equal(t, "Work", groups[1].Name)

	_, err = FindActive[models.ContactGroup](nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestNameExists(t *testing.T) {
	db := setupTestDB(t)
	seedGroups(t, db,
		models.ContactGroup{Name: "Family"},
		models.ContactGroup{Name: "Gone", Deleted: true},
	)

	testCases := []struct {
		name     string
		lookup   string
		expected bool
	}{
		{name: "exact match", lookup: "Family", expected: true},
		{name: "different case is not a duplicate", lookup: "family", expected: false},
		{name: "deleted record is ignored", lookup: "Gone", expected: false},
		{name: "unknown", lookup: "Friends", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exists, err := NameExists[models.ContactGroup](db, tc.lookup)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, exists)
		})
	}
}

func TestDeleteByID(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedGroups(t, db, models.ContactGroup{Name: "Family"})

	require.NoError(t, DeleteByID[models.ContactGroup](db, seeded[0].ID))

	g, err := Find[models.ContactGroup](db, seeded[0].ID)
	require.NoError(t, err, "soft deleted records stay in the table")
	assert.True(t, g.Deleted)

	// deleting twice is fine
	require.NoError(t, DeleteByID[models.ContactGroup](db, seeded[0].ID))

	err = DeleteByID[models.ContactGroup](db, 999)
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	ct := models.ContactType{Name: "Work", ImagePath: "/a/"}
	require.NoError(t, db.Create(&ct).Error)

	err := Update(db, &ct, map[string]interface{}{"name": "Office"})
	require.NoError(t, err)
	assert.Equal(t, "Office", ct.Name)
	assert.Equal(t, "/a/", ct.ImagePath)

	var stored models.ContactType
	require.NoError(t, db.First(&stored, ct.ID).Error)
	assert.Equal(t, "Office", stored.Name)

	// empty field map is a no-op
	require.NoError(t, Update(db, &ct, map[string]interface{}{}))

	require.ErrorIs(t, Update[models.ContactType](nil, &ct, map[string]interface{}{"name": "x"}), ErrDBNil)
}

func TestFilterFields(t *testing.T) {
	allowed := map[string]string{
		"name":      "name",
		"imagePath": "image_path",
	}

	got := FilterFields(map[string]string{
		"id":        "12",
		"name":      "  Office ",
		"imagePath": "/c",
		"deleted":   "1",
	}, allowed)

	assert.Equal(t, map[string]interface{}{
		"name":       "Office",
		"image_path": "/c",
	}, got)
}
