package impl

import (
	"testing"

	"shipway/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMatchesZipCode_EmptySpecMatchesEverything(t *testing.T) {
	assert.True(t, MatchesZipCode("12345", "", entity.ZipInclusive))
	assert.True(t, MatchesZipCode("12345", "   ", entity.ZipExclusive))
	assert.True(t, MatchesZipCode("", "", entity.ZipInclusive))
}

func TestMatchesZipCode_ExactMatch(t *testing.T) {
	assert.True(t, MatchesZipCode("54000", "54000", entity.ZipInclusive))
	assert.False(t, MatchesZipCode("54001", "54000", entity.ZipInclusive))
	assert.True(t, MatchesZipCode("54000", " 54000 , 60000 ", entity.ZipInclusive))
}

func TestMatchesZipCode_RangeInclusiveBounds(t *testing.T) {
	assert.True(t, MatchesZipCode("100", "100-200", entity.ZipInclusive))
	assert.True(t, MatchesZipCode("200", "100-200", entity.ZipInclusive))
	assert.True(t, MatchesZipCode("150", "100-200", entity.ZipInclusive))
	assert.False(t, MatchesZipCode("99", "100-200", entity.ZipInclusive))
	assert.False(t, MatchesZipCode("201", "100-200", entity.ZipInclusive))
}

func TestMatchesZipCode_RangeNonNumericNeverMatches(t *testing.T) {
	assert.False(t, MatchesZipCode("abc", "100-200", entity.ZipInclusive))
}

func TestMatchesZipCode_WildcardPrefix(t *testing.T) {
	assert.True(t, MatchesZipCode("75001", "75*", entity.ZipInclusive))
	assert.True(t, MatchesZipCode("75", "75*", entity.ZipInclusive))
	assert.False(t, MatchesZipCode("76001", "75*", entity.ZipInclusive))
}

func TestMatchesZipCode_ExclusiveInverts(t *testing.T) {
	assert.False(t, MatchesZipCode("54000", "54000", entity.ZipExclusive))
	assert.True(t, MatchesZipCode("54001", "54000", entity.ZipExclusive))
	assert.False(t, MatchesZipCode("150", "100-200,75*", entity.ZipExclusive))
	assert.True(t, MatchesZipCode("300", "100-200,75*", entity.ZipExclusive))
}

func TestMatchesZipCode_MixedPatterns(t *testing.T) {
	spec := "100-200, 75*, 54000"

	assert.True(t, MatchesZipCode("150", spec, entity.ZipInclusive))
	assert.True(t, MatchesZipCode("75999", spec, entity.ZipInclusive))
	assert.True(t, MatchesZipCode("54000", spec, entity.ZipInclusive))
	assert.False(t, MatchesZipCode("54001", spec, entity.ZipInclusive))
}

func TestInvalidZipPatterns(t *testing.T) {
	assert.Nil(t, InvalidZipPatterns(""))
	assert.Nil(t, InvalidZipPatterns("100-200, 75*, 54000"))

	invalid := InvalidZipPatterns("100-200, AB12, 75**, 54000, 1-2-3")
	assert.Equal(t, []string{"AB12", "75**", "1-2-3"}, invalid)
}
