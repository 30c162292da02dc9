package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkline/marketdesk/internal/models"
)

func companyTables() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.CashFlow{},
		&models.BalanceSheet{},
		&models.AnnualProfitLoss{},
		&models.FinancialMetrics{},
		&models.FinancialRatios{},
		&models.PeerAnalysis{},
		&models.PeerValuation{},
		&models.QuarterlyFinancial{},
		&models.ValuationInput{},
	}
}

func sampleCompany() *models.Company {
	return &models.Company{
		Name:   "Acme Industries",
		Symbol: "ACME",
		Sector: "Manufacturing",
		CashFlow: &models.CashFlow{
			FiscalYear:        "FY24",
			OperatingActivity: models.Dec(120.5),
			NetCashFlow:       models.Dec(80.25),
		},
		FinancialRatios: &models.FinancialRatios{
			PERatio: models.Dec(18.2),
			ROE:     models.Dec(14.5),
		},
		PeerValuations: []models.PeerValuation{
			{PeerName: "Rival Corp", PERatio: models.Dec(21.1)},
		},
		QuarterlyFinancials: []models.QuarterlyFinancial{
			{Period: "Q1FY24", Revenue: models.Dec(500)},
			{Period: "Q2FY24", Revenue: models.Dec(525.5)},
		},
	}
}

func TestCompanyCreateAndGet(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	c := sampleCompany()
	require.NoError(t, companies.Create(c))
	require.NotZero(t, c.ID)

	got, err := companies.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Symbol)
	require.NotNil(t, got.CashFlow)
	assert.Equal(t, models.Dec(120.5), got.CashFlow.OperatingActivity)
	assert.Equal(t, c.ID, got.CashFlow.CompanyID)
	assert.Len(t, got.QuarterlyFinancials, 2)
	assert.Len(t, got.PeerValuations, 1)
	assert.Nil(t, got.BalanceSheet)
}

// A failing child insert must roll back the parent and every sibling.
// Duplicate reporting periods violate the (company_id, period) unique
// index on the last insert of the batch.
func TestCompanyCreateRollsBackOnChildFailure(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	c := sampleCompany()
	c.QuarterlyFinancials = []models.QuarterlyFinancial{
		{Period: "Q1FY24", Revenue: models.Dec(500)},
		{Period: "Q1FY24", Revenue: models.Dec(525.5)},
	}

	err := companies.Create(c)
	require.Error(t, err)

	var companyCount, cashFlowCount, peerCount int64
	db.Model(&models.Company{}).Count(&companyCount)
	db.Model(&models.CashFlow{}).Count(&cashFlowCount)
	db.Model(&models.PeerValuation{}).Count(&peerCount)
	assert.Zero(t, companyCount)
	assert.Zero(t, cashFlowCount)
	assert.Zero(t, peerCount)
}

// All-null sections are skipped instead of stored as empty rows.
func TestCompanyCreateSkipsEmptySections(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	c := &models.Company{
		Name:         "Hollow Ltd",
		Symbol:       "HLW",
		CashFlow:     &models.CashFlow{},
		BalanceSheet: &models.BalanceSheet{},
	}
	require.NoError(t, companies.Create(c))

	var cashFlowCount, balanceCount int64
	db.Model(&models.CashFlow{}).Count(&cashFlowCount)
	db.Model(&models.BalanceSheet{}).Count(&balanceCount)
	assert.Zero(t, cashFlowCount)
	assert.Zero(t, balanceCount)
}

func TestCompanyUpdateReplacesChildren(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	c := sampleCompany()
	require.NoError(t, companies.Create(c))

	replacement := &models.Company{
		Name:   "Acme Industries Ltd",
		Symbol: "ACME",
		PeerValuations: []models.PeerValuation{
			{PeerName: "Rival Corp", PERatio: models.Dec(20)},
			{PeerName: "Upstart Inc", PERatio: models.Dec(35.5)},
		},
	}
	require.NoError(t, companies.Update(c.ID, replacement))

	got, err := companies.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries Ltd", got.Name)
	assert.Len(t, got.PeerValuations, 2)
	// Sections absent from the payload are gone after the rewrite
	assert.Nil(t, got.CashFlow)
	assert.Empty(t, got.QuarterlyFinancials)
}

func TestCompanyUpdateNotFound(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	err := companies.Update(42, &models.Company{Name: "Ghost", Symbol: "GST"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompanyDeleteCascades(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	c := sampleCompany()
	require.NoError(t, companies.Create(c))
	require.NoError(t, companies.Delete(c.ID))

	_, err := companies.Get(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for _, m := range []interface{}{
		&models.CashFlow{},
		&models.FinancialRatios{},
		&models.PeerValuation{},
		&models.QuarterlyFinancial{},
	} {
		var count int64
		db.Model(m).Count(&count)
		assert.Zero(t, count)
	}
}

func TestCompanyDeleteNotFound(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	assert.ErrorIs(t, companies.Delete(42), ErrNotFound)
}

// Two companies may file the same period; the unique index is scoped to
// the company.
func TestQuarterlyPeriodUniquePerCompany(t *testing.T) {
	db := openTestDB(t, companyTables()...)
	companies := NewCompanyStore(db)

	first := &models.Company{
		Name: "First", Symbol: "FST",
		QuarterlyFinancials: []models.QuarterlyFinancial{{Period: "Q1FY24"}},
	}
	second := &models.Company{
		Name: "Second", Symbol: "SND",
		QuarterlyFinancials: []models.QuarterlyFinancial{{Period: "Q1FY24"}},
	}
	require.NoError(t, companies.Create(first))
	require.NoError(t, companies.Create(second))
}
