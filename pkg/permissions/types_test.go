package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetAndHas(t *testing.T) {
	set := NewSet("viewThemes", "createTheme")

	assert.True(t, set.Has(CapViewThemes))
	assert.True(t, set.Has(CapCreateTheme))
	assert.False(t, set.Has(CapDeleteTheme))
}

func TestHasAll(t *testing.T) {
	set := NewSet("viewThemes", "createTheme")

	assert.True(t, set.HasAll(CapViewThemes))
	assert.True(t, set.HasAll(CapViewThemes, CapCreateTheme))
	assert.False(t, set.HasAll(CapViewThemes, CapDeleteTheme))
	assert.True(t, set.HasAll())
}

func TestEqual(t *testing.T) {
	assert.True(t, NewSet("a", "b").Equal(NewSet("b", "a")))
	assert.False(t, NewSet("a").Equal(NewSet("a", "b")))
	assert.False(t, NewSet("a", "c").Equal(NewSet("a", "b")))
	assert.True(t, NewSet().Equal(NewSet()))
}

func TestCloneIsIndependent(t *testing.T) {
	set := NewSet("viewThemes")
	clone := set.Clone()
	clone[CapDeleteTheme] = struct{}{}

	assert.False(t, set.Has(CapDeleteTheme))
}

func TestTokensSorted(t *testing.T) {
	set := NewSet("viewThemes", "createTheme", "declareResults")

	assert.Equal(t, []string{"createTheme", "declareResults", "viewThemes"}, set.Tokens())
}
