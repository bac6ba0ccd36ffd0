package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	pkgtesting "github.com/DjordjeVuckovic/html-validator/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx     context.Context
	testPool    *ConnectionPool
	testStorer  *Storer
	testConnStr string
)

func TestMain(m *testing.M) {
	if !pkgtesting.IntegrationEnabled() {
		os.Exit(m.Run())
	}

	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.DefaultPGConfig())
	if err != nil {
		panic(err)
	}

	testConnStr = pg.ConnString
	if err := RunMigrations(pg.MigrationURL, testConnStr); err != nil {
		panic(err)
	}

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: testConnStr})
	if err != nil {
		panic(err)
	}

	testStorer, err = NewStorer(testPool)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	testPool.Close()
	_ = testcontainers.TerminateContainer(pg.Container)
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testStorer == nil {
		t.Skip("set INTEGRATION_TESTS=true to run PostgreSQL tests")
	}
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE validation_runs")
	require.NoError(t, err)
}

func TestNewStorer_RequiresPool(t *testing.T) {
	_, err := NewStorer(nil)
	assert.Error(t, err)
}

func TestStorer_SaveAndGet(t *testing.T) {
	requireDB(t)

	run := domain.Run{
		Source:     "e.html",
		Issue:      "mismatched_close",
		Token:      "</body>",
		Name:       "body",
		Expected:   "html",
		Reason:     "no matching opening tag; expected to close html",
		Line:       1,
		Column:     7,
		Offset:     6,
		TokenCount: 2,
		Bytes:      13,
		Duration:   domain.Duration(42 * time.Microsecond),
	}

	id, err := testStorer.Save(testCtx, run)
	require.NoError(t, err)

	got, err := testStorer.Get(testCtx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "</body>", got.Token)
	assert.Equal(t, "html", got.Expected)
	assert.Equal(t, 7, got.Column)
	assert.Equal(t, int64(42), got.Duration.Microseconds())
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStorer_GetUnknown(t *testing.T) {
	requireDB(t)

	_, err := testStorer.Get(testCtx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrRunNotFound)
}

func TestStorer_List(t *testing.T) {
	requireDB(t)

	base := time.Date(2030, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := testStorer.Save(testCtx, domain.Run{Source: string(rune('a' + i)), Valid: true, CreatedAt: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}

	runs, err := testStorer.List(testCtx, 2, nil)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Source)
	assert.Equal(t, "b", runs[1].Source)

	next, err := testStorer.List(testCtx, 1, &storage.Cursor{CreatedAt: runs[1].CreatedAt, ID: runs[1].ID})
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "a", next[0].Source)
}

func TestHealthChecker(t *testing.T) {
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))

	requireDB(t)
	assert.True(t, NewHealthChecker(testPool).Healthy(testCtx))
}
