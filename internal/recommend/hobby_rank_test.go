package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankHobbies_DefaultCatalog(t *testing.T) {
	metas := DefaultHobbyMeta()
	ranked := RankHobbies(beginnerGardenProfile(), metas)

	require.Len(t, ranked, len(metas))
	require.Len(t, ranked, 6)
	for i := 0; i < len(ranked)-1; i++ {
		assert.GreaterOrEqual(t, ranked[i].Score, ranked[i+1].Score, "not sorted at index %d", i)
	}
	assert.Equal(t, "gardening", ranked[0].Slug)
	assert.Equal(t, 100, ranked[0].Score)
	for _, r := range ranked {
		assert.Equal(t, MaxHobbyScore, r.MaxScore)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Icon)
	}

	again := RankHobbies(beginnerGardenProfile(), metas)
	assert.Equal(t, ranked, again)
}

func TestRankHobbies_StableForEqualScores(t *testing.T) {
	twin := func(slug string) HobbyMeta {
		m := mustMeta(t, "gardening")
		m.Slug = slug
		return m
	}
	metas := []HobbyMeta{twin("a"), mustMeta(t, "photography"), twin("b"), twin("c")}

	ranked := RankHobbies(beginnerGardenProfile(), metas)
	slugs := make([]string, len(ranked))
	for i, r := range ranked {
		slugs[i] = r.Slug
	}
	assert.Equal(t, []string{"a", "b", "c", "photography"}, slugs)

	metas = []HobbyMeta{twin("c"), twin("b"), twin("a")}
	ranked = RankHobbies(beginnerGardenProfile(), metas)
	assert.Equal(t, "c", ranked[0].Slug)
	assert.Equal(t, "b", ranked[1].Slug)
	assert.Equal(t, "a", ranked[2].Slug)
}

func TestRankHobbies_Empty(t *testing.T) {
	ranked := RankHobbies(beginnerGardenProfile(), nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestTopHobbies(t *testing.T) {
	ranked := RankHobbies(beginnerGardenProfile(), DefaultHobbyMeta())

	assert.Len(t, TopHobbies(ranked, 3), 3)
	assert.Len(t, TopHobbies(ranked, 10), 6)
	assert.Empty(t, TopHobbies(ranked, -1))
}

func TestCatalog(t *testing.T) {
	metas := DefaultHobbyMeta()
	metas = append(metas, HobbyMeta{Slug: "gardening", Name: "Duplicate"})
	c := NewCatalog(metas)

	assert.Equal(t, 6, c.Len())
	g, ok := c.Get("gardening")
	require.True(t, ok)
	assert.Equal(t, "Gardening", g.Name)

	_, ok = c.Get("knitting")
	assert.False(t, ok)

	all := c.All()
	all[0].SupportedMotivations[0] = "mutated"
	g, _ = c.Get("gardening")
	assert.NotEqual(t, "mutated", g.SupportedMotivations[0], "catalog must not share backing arrays")

	assert.Equal(t, RankHobbies(beginnerGardenProfile(), DefaultHobbyMeta()), c.Rank(beginnerGardenProfile()))
}
