package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func tableName(t *testing.T, model interface{}) string {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s.Table
}

func TestModelTableNames(t *testing.T) {
	require.Equal(t, "users", tableName(t, &User{}))
	require.Equal(t, "user_balances", tableName(t, &UserBalance{}))
	require.Equal(t, "quests", tableName(t, &Quest{}))
	require.Equal(t, "transactions", tableName(t, &Transaction{}))
}
