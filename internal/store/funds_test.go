package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkline/marketdesk/internal/models"
)

func fundTables() []interface{} {
	return []interface{}{
		&models.MutualFund{},
		&models.FundAllocation{},
		&models.FundHolding{},
		&models.FundReturn{},
	}
}

func TestFundCreateAndGet(t *testing.T) {
	db := openTestDB(t, fundTables()...)
	funds := NewFundStore(db)

	f := &models.MutualFund{
		Name:      "Bluechip Growth Fund",
		FundHouse: "Northwind AMC",
		NAV:       models.Dec(48.23),
		Allocations: []models.FundAllocation{
			{AssetClass: "Equity", Percentage: models.Dec(92.5)},
			{AssetClass: "Cash", Percentage: models.Dec(7.5)},
		},
		Holdings: []models.FundHolding{
			{Name: "Acme Industries", Sector: "Manufacturing", Percentage: models.Dec(6.1)},
		},
		Returns: &models.FundReturn{OneYear: models.Dec(18.4)},
	}
	require.NoError(t, funds.Create(f))

	got, err := funds.Get(f.ID)
	require.NoError(t, err)
	assert.Len(t, got.Allocations, 2)
	assert.Len(t, got.Holdings, 1)
	require.NotNil(t, got.Returns)
	assert.Equal(t, models.Dec(18.4), got.Returns.OneYear)
}

func TestFundUpdateReplacesChildren(t *testing.T) {
	db := openTestDB(t, fundTables()...)
	funds := NewFundStore(db)

	f := &models.MutualFund{
		Name:        "Bluechip Growth Fund",
		Allocations: []models.FundAllocation{{AssetClass: "Equity", Percentage: models.Dec(100)}},
		Returns:     &models.FundReturn{OneYear: models.Dec(18.4)},
	}
	require.NoError(t, funds.Create(f))

	require.NoError(t, funds.Update(f.ID, &models.MutualFund{
		Name: "Bluechip Growth Fund Direct",
		Allocations: []models.FundAllocation{
			{AssetClass: "Equity", Percentage: models.Dec(95)},
			{AssetClass: "Debt", Percentage: models.Dec(5)},
		},
	}))

	got, err := funds.Get(f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bluechip Growth Fund Direct", got.Name)
	assert.Len(t, got.Allocations, 2)
	assert.Nil(t, got.Returns)
}

func TestFundDeleteCascades(t *testing.T) {
	db := openTestDB(t, fundTables()...)
	funds := NewFundStore(db)

	f := &models.MutualFund{
		Name:     "Short Lived Fund",
		Holdings: []models.FundHolding{{Name: "Acme Industries"}},
	}
	require.NoError(t, funds.Create(f))
	require.NoError(t, funds.Delete(f.ID))

	var holdingCount int64
	db.Model(&models.FundHolding{}).Count(&holdingCount)
	assert.Zero(t, holdingCount)

	assert.ErrorIs(t, funds.Delete(f.ID), ErrNotFound)
}
