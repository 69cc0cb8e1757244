package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukaji3/chansynth-go/pkg/chansynth/models"
)

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		input  string
		region models.RegionVector
		label  string
	}{
		{"CNN W", models.OnlyRegion(models.Wallonia), "CNN"},
		{"BX1 B", models.OnlyRegion(models.Brussels), "BX1"},
		{"BRF G", models.OnlyRegion(models.GermanCommunity), "BRF"},
		{"Discovery", models.AllRegions, "Discovery"},
		{"  Discovery  ", models.AllRegions, "Discovery"},
		{"TV5 W HD", models.OnlyRegion(models.Wallonia), "TV5 HD"},
		{"Canal W B", models.OnlyRegion(models.Wallonia), "Canal B"},
		{"La Une B W", models.OnlyRegion(models.Wallonia), "La Une B"},
		{"CNN\u00a0W", models.OnlyRegion(models.Wallonia), "CNN"},
		{"CNN\tG", models.OnlyRegion(models.GermanCommunity), "CNN"},
		{"CNN w", models.AllRegions, "CNN w"},
		{"W9", models.AllRegions, "W9"},
		{"Club RTL BE", models.AllRegions, "Club RTL BE"},
		{"W", models.AllRegions, "W"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			region, label := ClassifyRegion(tt.input)
			assert.Equal(t, tt.region, region)
			assert.Equal(t, tt.label, label)
			assert.True(t, region.Valid())
		})
	}
}

func TestClassifyRegionIdempotent(t *testing.T) {
	labels := []string{"CNN W", "BX1 B", "BRF G", "Discovery", "TV5 W HD", "Eén", "VTM 2"}
	for _, in := range labels {
		_, once := ClassifyRegion(in)
		region, twice := ClassifyRegion(once)
		assert.Equal(t, once, twice, in)
		assert.Equal(t, models.AllRegions, region, in)
	}
}

func TestRegionRulesOrder(t *testing.T) {
	tokens := make([]string, 0, len(RegionRules))
	for _, r := range RegionRules {
		tokens = append(tokens, r.Token)
	}
	assert.Equal(t, []string{"W", "B", "G"}, tokens)
}
