package models_test

import (
	"testing"

	"audit-manager/feature/audit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.ResultSet {
	return &models.ResultSet{
		Found: []models.FoundItem{
			{Identifier: "A1", Description: "Gold Ring", ExpectedQty: 10, ScanCount: 3,
				Sources: []models.ScanSource{models.SourceOldBarcode, models.SourceLabelNumber}},
		},
		Missing: []models.MissingItem{
			{Identifier: "A2", Description: "Silver Chain", ExpectedQty: 5},
		},
		Duplicates: []models.DuplicateScan{
			{Identifier: "A1", Count: 3,
				Sources: []models.ScanSource{models.SourceOldBarcode, models.SourceLabelNumber}},
		},
	}
}

func TestResultSet_Report(t *testing.T) {
	r := sampleResult()

	found, ok := r.Report(models.ReportFound)
	require.True(t, ok)
	assert.Equal(t, []string{"Identifier", "Description", "Expected Qty", "Scan Count", "Sources"}, found.Columns)
	require.Equal(t, 1, found.Len())
	assert.Equal(t, []string{"A1", "Gold Ring", "10", "3", "old-barcode,label-number"}, found.Rows[0])

	missing, ok := r.Report(models.ReportMissing)
	require.True(t, ok)
	require.Equal(t, 1, missing.Len())
	assert.Equal(t, []string{"A2", "Silver Chain", "5"}, missing.Rows[0])

	dups, ok := r.Report(models.ReportDuplicates)
	require.True(t, ok)
	require.Equal(t, 1, dups.Len())
	assert.Equal(t, []string{"A1", "3", "old-barcode,label-number"}, dups.Rows[0])
}

func TestResultSet_Report_Unknown(t *testing.T) {
	_, ok := sampleResult().Report("bogus")
	assert.False(t, ok)
}
