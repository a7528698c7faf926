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
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createBalanceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE user_balances (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		main_balance TEXT NOT NULL DEFAULT '0',
		locked_bonus TEXT NOT NULL DEFAULT '0',
		quest_earnings TEXT NOT NULL DEFAULT '0',
		investment_tier INTEGER NOT NULL DEFAULT 0,
		last_daily_reset DATETIME,
		role TEXT NOT NULL DEFAULT 'user'
	);`)
}

func createQuestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE quests (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL,
		reward_amount TEXT NOT NULL,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		completed_at DATETIME,
		created_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
