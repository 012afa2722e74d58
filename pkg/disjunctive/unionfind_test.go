package disjunctive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindStartsDisjoint(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.find(i))
	}
	assert.Equal(t, 5, uf.size())
}

func TestUnionFindMergesAndFindsRoot(t *testing.T) {
	uf := newUnionFind(4)
	uf.union(0, 1)
	assert.Equal(t, uf.find(0), uf.find(1))

	uf.union(1, 2)
	assert.Equal(t, uf.find(0), uf.find(2))
	assert.NotEqual(t, uf.find(0), uf.find(3))
}

func TestUnionFindIsIdempotent(t *testing.T) {
	uf := newUnionFind(3)
	uf.union(0, 1)
	root := uf.find(0)
	uf.union(0, 1)
	assert.Equal(t, root, uf.find(0))
}
