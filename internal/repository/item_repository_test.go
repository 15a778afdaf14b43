package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/ezcheckout/internal/domain"
	"github.com/nikolayk812/ezcheckout/internal/port"
	"github.com/nikolayk812/ezcheckout/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/goleak"
)

type itemRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.ItemRepository
	container testcontainers.Container
}

// entry point to run the tests in the suite
func TestItemRepositorySuite(t *testing.T) {
	// Verifies no leaks after all tests in the suite run.
	defer goleak.VerifyNone(t)

	suite.Run(t, new(itemRepositorySuite))
}

// before all tests in the suite
func (suite *itemRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.NoError(repository.Migrate(ctx, suite.pool))

	suite.repo = repository.NewItem(suite.pool, zerolog.Nop())
}

// after all tests in the suite
func (suite *itemRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *itemRepositorySuite) TestCreateItem() {
	defer suite.deleteAll()

	tests := []struct {
		name string
		item domain.Item
	}{
		{
			name: "item with all fields: ok",
			item: domain.Item{Name: "Cola", Description: "Soda", Price: 150},
		},
		{
			name: "item without description: ok",
			item: domain.Item{Name: "Chips", Price: 250},
		},
		{
			name: "free item: ok",
			item: domain.Item{Name: "Water", Price: 0},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			created, err := suite.repo.CreateItem(ctx, tt.item)
			require.NoError(t, err)
			require.Positive(t, created.Identifier)

			actual, err := suite.repo.GetItem(ctx, created.Identifier)
			require.NoError(t, err)

			assertItem(t, tt.item, actual)
		})
	}
}

func (suite *itemRepositorySuite) TestGetItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.GetItem(ctx, 424242)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *itemRepositorySuite) TestListItems() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	items, err := suite.repo.ListItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	item1, err := suite.repo.CreateItem(ctx, randomItem())
	require.NoError(t, err)

	item2, err := suite.repo.CreateItem(ctx, randomItem())
	require.NoError(t, err)

	items, err = suite.repo.ListItems(ctx)
	require.NoError(t, err)

	// ordered by identifier
	assert.Empty(t, cmp.Diff([]domain.Item{item1, item2}, items))
}

func (suite *itemRepositorySuite) TestUpdateItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	created, err := suite.repo.CreateItem(ctx, randomItem())
	require.NoError(t, err)

	updated := created
	updated.Name = "Renamed"
	updated.Price = created.Price + 100

	returned, err := suite.repo.UpdateItem(ctx, updated)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(updated, returned))

	actual, err := suite.repo.GetItem(ctx, created.Identifier)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(updated, actual))
}

func (suite *itemRepositorySuite) TestUpdateItemMissing() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	// An update of a missing row is logged as a warning, not failed.
	missing := randomItem()
	missing.Identifier = 424242

	_, err := suite.repo.UpdateItem(ctx, missing)
	require.NoError(t, err)
}

func (suite *itemRepositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	created, err := suite.repo.CreateItem(ctx, randomItem())
	require.NoError(t, err)

	deleted, err := suite.repo.DeleteItem(ctx, created.Identifier)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(created, deleted))

	_, err = suite.repo.GetItem(ctx, created.Identifier)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = suite.repo.DeleteItem(ctx, created.Identifier)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func (suite *itemRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE item CASCADE")
	suite.NoError(err)
}

func assertItem(t *testing.T, expected, actual domain.Item) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Item{}, "Identifier"),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.Positive(t, actual.Identifier)
}
