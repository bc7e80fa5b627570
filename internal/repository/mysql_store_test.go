package repository_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/MjedAl/Fyyur/internal/database"
	"github.com/MjedAl/Fyyur/internal/repository"
)

// TestMySQLStoreContract runs the shared contract against a throwaway MySQL
// container.  Set FYYUR_INTEGRATION=1 to enable it; Docker is required.
func TestMySQLStoreContract(t *testing.T) {
	if os.Getenv("FYYUR_INTEGRATION") != "1" {
		t.Skip("set FYYUR_INTEGRATION=1 to run MySQL integration tests")
	}
	ctx := context.Background()

	ctr, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("fyyur"),
		tcmysql.WithUsername("fyyur"),
		tcmysql.WithPassword("fyyur"),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true", "loc=UTC")
	require.NoError(t, err)
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, database.Migrate(ctx, db))

	runStoreContract(t, func(t *testing.T) repository.Store {
		for _, table := range []string{"shows", "venues", "artists"} {
			_, err := db.ExecContext(ctx, "DELETE FROM "+table)
			require.NoError(t, err)
		}
		return repository.NewMySQLStore(db)
	})
}
