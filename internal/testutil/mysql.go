package testutil

import (
	"os"
	"testing"

	"hospital-booking-api/internal/database"
	"hospital-booking-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLDSNEnv names the variable holding a DSN for a disposable MySQL
// database. Tests that need MySQL semantics skip when it is unset.
const MySQLDSNEnv = "TEST_MYSQL_DSN"

// NewMySQLDB returns a freshly migrated MySQL database. Its tables are
// dropped before and after the test.
func NewMySQLDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(MySQLDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", MySQLDSNEnv)
	}

	db, err := gorm.Open(mysql.Open(dsn), database.GormConfig(logger.Discard))
	if err != nil {
		t.Fatalf("open mysql test database: %v", err)
	}

	drop := func() {
		if err := db.Migrator().DropTable(models.All()...); err != nil {
			t.Errorf("drop mysql test tables: %v", err)
		}
	}
	drop()
	t.Cleanup(func() {
		drop()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := database.Migrate(db, zap.NewNop()); err != nil {
		t.Fatalf("migrate mysql test database: %v", err)
	}

	return db
}
