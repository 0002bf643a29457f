package clinic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsStableCatalog(t *testing.T) {
	d := NewDirectory()

	first := d.All()
	second := d.All()

	require.Len(t, first, 5)
	assert.Equal(t, first, second)
	assert.Equal(t, "赤羽中央総合病院", first[0].Name)
	assert.Equal(t, 1, first[0].ID)
}

func TestByID(t *testing.T) {
	d := NewDirectory()

	c, ok := d.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "北区クリニック", c.Name)

	_, ok = d.ByID(99)
	assert.False(t, ok)
}

func TestSearchSynthesizesThreeCandidates(t *testing.T) {
	d := NewDirectory()

	for _, query := range []string{"赤羽", "Shinjuku", "a"} {
		results := d.Search(query)
		require.Len(t, results, 3, "query %q", query)
		for _, r := range results {
			assert.True(t, strings.Contains(r.Name, query),
				"candidate %q should contain query %q", r.Name, query)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	d := NewDirectory()
	assert.Empty(t, d.Search(""))
}

func TestSuggestMatchesSubstring(t *testing.T) {
	d := NewDirectory()

	results := d.Suggest("央")
	require.Len(t, results, 1)
	assert.Equal(t, "赤羽中央総合病院", results[0])
}

func TestSuggestPreservesCatalogOrder(t *testing.T) {
	d := NewDirectory()

	results := d.Suggest("病院")
	require.Len(t, results, 2)
	assert.Equal(t, "赤羽中央総合病院", results[0])
	assert.Equal(t, "東京医科大学病院", results[1])
}

func TestSuggestEmptyPrefixCapsAtFive(t *testing.T) {
	d := NewDirectory()

	// An empty prefix matches everything; the cap keeps the payload bounded.
	results := d.Suggest("")
	assert.Len(t, results, 5)
}

func TestIsDepartment(t *testing.T) {
	assert.True(t, IsDepartment("内科"))
	assert.True(t, IsDepartment("呼吸器内科"))
	assert.False(t, IsDepartment("獣医科"))
	assert.False(t, IsDepartment(""))
	assert.Len(t, Departments, 15)
}
