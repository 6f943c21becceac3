package firstset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refactorings/internal/domain"
)

// results runs a suite and returns its output without the variant banners.
func results(t *testing.T, suite domain.Suite) (banners, lines []string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, suite.Call(&buf))

	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case line == "" || line == "##":
		case strings.HasPrefix(line, "# "):
			banners = append(banners, strings.TrimPrefix(line, "# "))
		default:
			lines = append(lines, line)
		}
	}
	return banners, lines
}

func TestSuites(t *testing.T) {
	tests := []struct {
		name      string
		suite     domain.Suite
		namespace string
		variants  []string
		perResult []string
	}{
		{
			name:      "split phase",
			suite:     NewSplitPhaseTests(),
			namespace: SplitPhaseNamespace,
			variants:  []string{"BeforeRefactor", "Refactor1", "Refactor2", "Refactor3", "Refactor4", "Refactor5", "Refactor6"},
			perResult: []string{"true"},
		},
		{
			name:      "combine functions into a class",
			suite:     NewCombineFunctionsIntoAClassTests(),
			namespace: CombineFunctionsIntoAClassNamespace,
			variants:  []string{"BeforeRefactor", "Refactor1", "Refactor2", "Refactor3", "Refactor4", "Refactor5", "Refactor6"},
			perResult: []string{"Client 1: true", "Client 2: true", "Client 3: true"},
		},
		{
			name:      "combine functions into a transform",
			suite:     NewCombineFunctionsIntoATransformTests(),
			namespace: CombineFunctionsIntoATransformNamespace,
			variants:  []string{"BeforeRefactor", "Refactor1", "Refactor2", "Refactor3", "Refactor4", "Refactor5", "Refactor6", "Refactor7"},
			perResult: []string{"Client 1: true", "Client 2: true", "Client 3: true"},
		},
		{
			name:      "introduce parameter object",
			suite:     NewIntroduceParameterObjectTests(),
			namespace: IntroduceParameterObjectNamespace,
			variants:  []string{"BeforeRefactor", "Refactor1", "Refactor2", "Refactor3", "Refactor4", "Refactor5"},
			perResult: []string{"true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			banners, lines := results(t, tt.suite)

			var wantBanners, wantLines []string
			for _, v := range tt.variants {
				wantBanners = append(wantBanners, tt.namespace+"::"+v)
				wantLines = append(wantLines, tt.perResult...)
			}
			assert.Equal(t, wantBanners, banners)
			assert.Equal(t, wantLines, lines)
		})
	}
}

func TestReading(t *testing.T) {
	r := newReading(teaReading)
	assert.Equal(t, "ivan", r.Customer())
	assert.Equal(t, 100_850, r.BaseCharge())
	assert.Equal(t, 98_833, r.TaxableCharge())

	small := newReading(rawReading{Quantity: 1, Month: 1, Year: 2017})
	assert.Equal(t, 0, small.TaxableCharge(), "taxable charge never goes negative")
}

func TestNumberRangeIncludes(t *testing.T) {
	r := NewNumberRange(48, 57)
	tests := []struct {
		value int
		want  bool
	}{
		{47, false},
		{48, true},
		{53, true},
		{57, true},
		{58, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Includes(tt.value), "value %d", tt.value)
	}
}

func TestReadingsOutsideRangeLeavesStationUntouched(t *testing.T) {
	before := len(zb1Station.Readings)
	_ = parameterObjectRefactor5{}.Alerts()
	assert.Len(t, zb1Station.Readings, before)
	assert.Equal(t, 47, zb1Station.Readings[0].Temp)
	assert.Equal(t, 53, zb1Station.Readings[1].Temp)
}
