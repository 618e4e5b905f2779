package listing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePriceBound_RangeUsesLowerBound asserts the deliberate policy:
// the first numeric token of a range is the bucketing value.
func TestParsePriceBound_RangeUsesLowerBound(t *testing.T) {
	assert.Equal(t, 500000.0, ParsePriceBound("$500K - $700K"))
	assert.Equal(t, 350000.0, ParsePriceBound("$350K - $700K"))
}

func TestParsePriceBound_Suffixes(t *testing.T) {
	assert.Equal(t, 1200000.0, ParsePriceBound("$1.2M"))
	assert.Equal(t, 900000.0, ParsePriceBound("from $900k"))
	assert.Equal(t, 450000.0, ParsePriceBound("450000"))
}

func TestParsePriceBound_Unparseable(t *testing.T) {
	assert.Equal(t, 0.0, ParsePriceBound(""))
	assert.Equal(t, 0.0, ParsePriceBound("call for pricing"))
}

func TestParseCommuteMinutes_LeadingInteger(t *testing.T) {
	assert.Equal(t, 20.0, ParseCommuteMinutes("20-30 mins"))
	assert.Equal(t, 45.0, ParseCommuteMinutes("45 minutes"))
	assert.Equal(t, 5.0, ParseCommuteMinutes("about 5 min"))
}

// TestParseCommuteMinutes_UnparseableIsInfinite: authored strings without a
// number degrade to an infinite commute, so any bounded bucket excludes
// them rather than treating them as zero-distance.
func TestParseCommuteMinutes_UnparseableIsInfinite(t *testing.T) {
	assert.True(t, math.IsInf(ParseCommuteMinutes("nearby"), 1))
	assert.True(t, math.IsInf(ParseCommuteMinutes(""), 1))
}
