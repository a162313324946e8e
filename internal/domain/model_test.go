package domain_test

import (
	"testing"

	"github.com/openkraft/docguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComplianceRate(t *testing.T) {
	tests := []struct {
		valid, total int
		want         float64
	}{
		{0, 0, 0},
		{3, 3, 100},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{0, 5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, domain.ComplianceRate(tt.valid, tt.total), 0.0001, "%d/%d", tt.valid, tt.total)
	}
}

func TestTally_Record(t *testing.T) {
	var tally domain.Tally
	tally.Record(domain.CategoryDocumentation, true)
	tally.Record(domain.CategoryDocumentation, false)
	tally.Record(domain.CategoryHooks, true)

	assert.Equal(t, 3, tally.Summary.TotalFilesAnalyzed)
	assert.Equal(t, 2, tally.Summary.ValidFiles)
	assert.Equal(t, 1, tally.Summary.ViolationsFound)
	assert.InDelta(t, 66.67, tally.Summary.ComplianceRate, 0.0001)

	for cat, stats := range tally.Categories {
		assert.Equal(t, stats.Total, stats.Valid+stats.Violations, "category %s", cat)
	}
	assert.Equal(t, domain.CategoryStats{Total: 2, Valid: 1, Violations: 1}, tally.Categories[domain.CategoryDocumentation])
}

func TestNamingReport_Passed(t *testing.T) {
	r := &domain.NamingReport{}
	assert.True(t, r.Passed())
	r.Record(domain.CategoryConfig, false)
	assert.False(t, r.Passed())
}
