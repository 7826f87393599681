package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer',
		phone TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createRestaurantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE restaurants (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		custom_url TEXT UNIQUE NOT NULL,
		whatsapp TEXT,
		logo_url TEXT,
		banner_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSubscriptionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE subscriptions (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price_usd REAL NOT NULL DEFAULT 0,
		image_url TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentMethodTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_methods (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		type TEXT NOT NULL,
		cedula TEXT,
		phone TEXT,
		bank TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createDeliveryOptionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE delivery_options (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		type TEXT NOT NULL,
		price REAL,
		is_active BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (restaurant_id, type)
	);`)
}

func createOpeningHourTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE opening_hours (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		day_of_week TEXT NOT NULL,
		open_time TEXT NOT NULL,
		close_time TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createPasswordResetTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE password_resets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token TEXT UNIQUE NOT NULL,
		used BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createSaleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sales (
		id TEXT PRIMARY KEY,
		restaurant_id TEXT NOT NULL,
		user_id TEXT,
		total_usd REAL NOT NULL DEFAULT 0,
		total_ves REAL NOT NULL DEFAULT 0,
		commission_usd REAL NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE sale_items (
		id TEXT PRIMARY KEY,
		sale_id TEXT NOT NULL,
		product_id TEXT,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		price_usd REAL NOT NULL DEFAULT 0
	);`)
}
