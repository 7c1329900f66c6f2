//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/portfolio-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain sets up a shared MongoDB container for all integration tests in this package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer creates a MongoDB connection using the shared container
// with a unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	t.Helper()
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})
	return db
}
