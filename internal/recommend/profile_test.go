package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillLevelNormalize(t *testing.T) {
	assert.Equal(t, SkillBeginner, SkillSome.Normalize())
	assert.Equal(t, SkillBeginner, SkillBeginner.Normalize())
	assert.Equal(t, SkillAdvanced, SkillAdvanced.Normalize())
	assert.True(t, SkillSome.IsBeginnerTier())
	assert.False(t, SkillIntermediate.IsBeginnerTier())
	assert.Equal(t, LevelBeginner, LevelForSkill(SkillSome))
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, beginnerGardenProfile().Validate())

	p := beginnerGardenProfile()
	p.Budget = "lavish"
	p.Environment = "yurt"
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `budget="lavish"`)
	assert.Contains(t, err.Error(), `environment="yurt"`)
	assert.NotContains(t, err.Error(), "skillLevel")
}
