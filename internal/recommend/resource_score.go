package recommend

import "math"

const (
	popularityWeight = 30
	feedbackUpBonus  = 30
	feedbackDownCost = -20
	tagPointsEach    = 5
	tagPointsCap     = 20
)

// ResourceFactors are the inputs to ScoreResource. TagMatchCount is computed
// by the caller.
type ResourceFactors struct {
	SkillLevel      SkillLevel
	ResourceLevel   ResourceLevel
	Feedback        Feedback
	PopularityScore float64
	TagMatchCount   int
}

type levelPair struct {
	skill    ResourceLevel
	resource ResourceLevel
}

// levelMatchPoints rewards exact matches, then review material one tier
// below, then stretch material one tier above. Two-tier gaps score nothing.
var levelMatchPoints = map[levelPair]float64{
	{LevelBeginner, LevelBeginner}:         40,
	{LevelIntermediate, LevelIntermediate}: 40,
	{LevelAdvanced, LevelAdvanced}:         40,
	{LevelIntermediate, LevelBeginner}:     20,
	{LevelAdvanced, LevelIntermediate}:     20,
	{LevelBeginner, LevelIntermediate}:     10,
	{LevelIntermediate, LevelAdvanced}:     10,
	{LevelBeginner, LevelAdvanced}:         0,
	{LevelAdvanced, LevelBeginner}:         0,
}

var feedbackPoints = map[Feedback]float64{
	FeedbackNone: 0,
	FeedbackUp:   feedbackUpBonus,
	FeedbackDown: feedbackDownCost,
}

// ScoreResource returns an additive relevance score for one resource. The
// result is floored at zero and has no upper bound.
func ScoreResource(f ResourceFactors) float64 {
	score := f.PopularityScore * popularityWeight

	pair := levelPair{skill: LevelForSkill(f.SkillLevel), resource: f.ResourceLevel}
	if pts, ok := levelMatchPoints[pair]; ok {
		score += pts
	} else {
		warnUnknown("level", string(f.SkillLevel)+"/"+string(f.ResourceLevel))
	}

	if pts, ok := feedbackPoints[f.Feedback]; ok {
		score += pts
	} else {
		warnUnknown("feedback", string(f.Feedback))
	}

	if f.TagMatchCount > 0 {
		score += math.Min(tagPointsCap, float64(f.TagMatchCount*tagPointsEach))
	}

	return math.Max(0, score)
}
