package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/config"
	dbpkg "github.com/divinasnails/salon-manager/internal/db"
	"github.com/divinasnails/salon-manager/internal/routes"
)

// NewTestDB opens an in-memory sqlite database with the full schema.
// The pool is pinned to a single connection so every query sees the
// same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func NewTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "0",
		Timezone:   "America/Bogota",
	}
}

// NewTestRouter wires the full route table over the given database,
// without Redis.
func NewTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	routes.RegisterRoutes(r, db, nil, NewTestConfig(), zap.NewNop())

	return r
}
