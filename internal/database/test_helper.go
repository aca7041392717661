package database

import (
	"fmt"
	"testing"
	"time"

	"expense-insights/internal/config"
	"expense-insights/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	// Each test gets its own named in-memory database; the shared cache keeps it alive across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestLocation(t *testing.T, db *DB, country, state, city string) *models.Location {
	t.Helper()

	location := &models.Location{
		Country:        country,
		State:          state,
		City:           city,
		CurrencyCode:   "INR",
		CurrencySymbol: "₹",
	}

	if err := db.Create(location).Error; err != nil {
		t.Fatalf("failed to create test location: %v", err)
	}

	return location
}

func CreateTestUser(t *testing.T, db *DB, location *models.Location) *models.User {
	t.Helper()

	user := &models.User{}
	if location != nil {
		user.LocationID = &location.ID
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestExpense(t *testing.T, db *DB, userID uuid.UUID, category models.Category, amount string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		ExpenseDate: date,
	}

	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	return expense
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"expenses", "users", "locations"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
