package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginnerGardenProfile() Profile {
	return Profile{
		Motivations:             []string{"stress-relief", "mindfulness"},
		TimeAvailabilityMinutes: 180,
		SchedulePreference:      ScheduleWeekend,
		SkillLevel:              SkillBeginner,
		LearningStyle:           StyleProjects,
		Budget:                  BudgetLow,
		Environment:             EnvHouse,
		SocialPreference:        SocialSolo,
		Intensity:               IntensityGentle,
		CommitmentHorizon:       CommitOngoing,
	}
}

func mustMeta(t *testing.T, slug string) HobbyMeta {
	t.Helper()
	m, ok := NewCatalog(DefaultHobbyMeta()).Get(slug)
	require.True(t, ok, "missing hobby %q", slug)
	return m
}

func TestScoreHobby_BeginnerGardener(t *testing.T) {
	got := ScoreHobby(beginnerGardenProfile(), mustMeta(t, "gardening"))

	assert.GreaterOrEqual(t, got.Score, 60)
	assert.GreaterOrEqual(t, len(got.Reasons), 2)
}

func TestScoreHobby_NaturalMaximumIsExactly100(t *testing.T) {
	p := beginnerGardenProfile()
	meta := mustMeta(t, "gardening")

	got := ScoreHobby(p, meta)
	require.Equal(t, MaxHobbyScore, got.Score)

	sum := scoreMotivations(p, meta).points + scoreTime(p, meta).points +
		scoreLearningStyle(p, meta).points + scoreBudget(p, meta).points +
		scoreEnvironment(p, meta).points + scoreSocial(p, meta).points +
		scoreSkill(p, meta).points
	assert.Equal(t, MaxHobbyScore, sum, "factor caps should add up to the maximum without clamping")
	assert.Equal(t, MaxHobbyScore,
		motivationPoints+timePoints+stylePoints+budgetPoints+envPoints+socialPoints+skillFriendly)
}

func TestScoreHobby_ReasonsInFactorOrderAndTruncated(t *testing.T) {
	got := ScoreHobby(beginnerGardenProfile(), mustMeta(t, "gardening"))

	require.Len(t, got.Reasons, MaxReasons)
	assert.Equal(t, []string{
		"Matches your interest in stress-relief & mindfulness",
		"Your 3 hrs/week is ideal for this hobby",
		"Great for hands-on projects learners",
		"Fits your budget: mostly low-cost",
		"Works well in your house setup",
	}, got.Reasons)
}

func TestScoreHobby_LowTimeScoresLower(t *testing.T) {
	meta := mustMeta(t, "gardening")
	base := ScoreHobby(beginnerGardenProfile(), meta)

	p := beginnerGardenProfile()
	p.TimeAvailabilityMinutes = 20
	low := ScoreHobby(p, meta)

	assert.Less(t, low.Score, base.Score)
}

func TestScoreHobby_Photography(t *testing.T) {
	got := ScoreHobby(beginnerGardenProfile(), mustMeta(t, "photography"))

	// 20 motivation + 15 time + 10 style + 0 budget + 10 env + 5 social + 3 skill
	assert.Equal(t, 63, got.Score)
	assert.Equal(t, "Matches your interest in mindfulness", got.Reasons[0])
}

func TestScoreMotivations(t *testing.T) {
	meta := HobbyMeta{SupportedMotivations: []string{"fun", "creativity", "social"}}

	tests := []struct {
		name       string
		motives    []string
		wantPoints int
		wantReason string
	}{
		{"empty", nil, 0, ""},
		{"no overlap", []string{"career"}, 0, ""},
		{"one of three", []string{"fun", "career", "fitness"}, 13, "Matches your interest in fun"},
		{"two of three", []string{"fun", "social", "career"}, 27, "Matches your interest in fun & social"},
		{"names at most two", []string{"social", "creativity", "fun"}, 40, "Matches your interest in social & creativity"},
		{"duplicates collapse", []string{"fun", "fun"}, 40, "Matches your interest in fun"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreMotivations(Profile{Motivations: tt.motives}, meta)
			assert.Equal(t, tt.wantPoints, got.points)
			assert.Equal(t, tt.wantReason, got.reason)
		})
	}
}

func TestScoreTime(t *testing.T) {
	meta := HobbyMeta{MinTimeMinutes: 60}

	tests := []struct {
		available  int
		wantPoints int
		wantReason bool
	}{
		{600, 15, true},
		{60, 15, true},
		{59, 8, false},
		{36, 8, false},
		{35, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got := scoreTime(Profile{TimeAvailabilityMinutes: tt.available}, meta)
		assert.Equal(t, tt.wantPoints, got.points, "available=%d", tt.available)
		assert.Equal(t, tt.wantReason, got.reason != "", "available=%d", tt.available)
	}

	assert.Equal(t, "Your 1.5 hrs/week is ideal for this hobby",
		scoreTime(Profile{TimeAvailabilityMinutes: 90}, meta).reason)
}

func TestScoreTime_Monotonic(t *testing.T) {
	meta := HobbyMeta{MinTimeMinutes: 120}
	prev := scoreTime(Profile{TimeAvailabilityMinutes: 600}, meta).points
	for avail := 599; avail >= 0; avail-- {
		cur := scoreTime(Profile{TimeAvailabilityMinutes: avail}, meta).points
		require.LessOrEqual(t, cur, prev, "time credit rose when availability dropped to %d", avail)
		prev = cur
	}
}

func TestScoreBudget(t *testing.T) {
	tests := []struct {
		budget     Budget
		cost       CostLevel
		wantPoints int
		wantReason string
	}{
		{BudgetFree, CostFree, 10, "Fits your budget: mostly completely free"},
		{BudgetFree, CostLow, 4, ""},
		{BudgetFree, CostHigh, 0, ""},
		{BudgetLow, CostLow, 10, "Fits your budget: mostly low-cost"},
		{BudgetMedium, CostHigh, 4, ""},
		{BudgetNoLimit, CostHigh, 10, "Fits your budget: mostly high-cost"},
		{Budget("lavish"), CostLow, 4, ""},
		{BudgetNoLimit, CostLevel("priceless"), 10, "Fits your budget: mostly priceless-cost"},
		{BudgetMedium, CostLevel("priceless"), 4, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.budget)+"/"+string(tt.cost), func(t *testing.T) {
			got := scoreBudget(Profile{Budget: tt.budget}, HobbyMeta{CostLevel: tt.cost})
			assert.Equal(t, tt.wantPoints, got.points)
			assert.Equal(t, tt.wantReason, got.reason)
		})
	}
}

func TestScoreBudget_FreeProfilePrefersCheaperHobby(t *testing.T) {
	p := beginnerGardenProfile()
	p.Budget = BudgetFree

	garden := scoreBudget(p, mustMeta(t, "gardening"))
	photo := scoreBudget(p, mustMeta(t, "photography"))
	assert.GreaterOrEqual(t, garden.points, photo.points)
	assert.GreaterOrEqual(t, ScoreHobby(p, mustMeta(t, "gardening")).Score, ScoreHobby(p, mustMeta(t, "photography")).Score)
}

func TestScoreEnvironment(t *testing.T) {
	tests := []struct {
		env        Environment
		need       EnvironmentNeed
		wantPoints int
	}{
		{EnvSmallApartment, NeedIndoor, 10},
		{EnvSmallApartment, NeedBoth, 10},
		{EnvSmallApartment, NeedOutdoor, 0},
		{EnvHouse, NeedOutdoor, 10},
		{EnvOutdoorAccess, NeedIndoor, 10},
		{Environment("boat"), NeedBoth, 0},
		{EnvHouse, EnvironmentNeed("space"), 0},
	}
	for _, tt := range tests {
		got := scoreEnvironment(Profile{Environment: tt.env}, HobbyMeta{EnvironmentNeeds: tt.need})
		assert.Equal(t, tt.wantPoints, got.points, "%s/%s", tt.env, tt.need)
	}

	got := scoreEnvironment(Profile{Environment: EnvSmallApartment}, HobbyMeta{EnvironmentNeeds: NeedIndoor})
	assert.Equal(t, "Works well in your small apartment setup", got.reason)
}

func TestScoreSocial_NeverExplains(t *testing.T) {
	modes := []SocialMode{SocialSolo, SocialCommunity, SocialBoth}
	for _, user := range modes {
		for _, hobby := range modes {
			got := scoreSocial(Profile{SocialPreference: user}, HobbyMeta{SocialNature: hobby})
			want := 0
			if user == hobby || user == SocialBoth || hobby == SocialBoth {
				want = 5
			}
			assert.Equal(t, want, got.points, "%s/%s", user, hobby)
			assert.Empty(t, got.reason)
		}
	}
}

func TestScoreSkill(t *testing.T) {
	friendly := HobbyMeta{BeginnerFriendly: true}
	demanding := HobbyMeta{BeginnerFriendly: false}

	assert.Equal(t, 10, scoreSkill(Profile{SkillLevel: SkillBeginner}, friendly).points)
	assert.Equal(t, 10, scoreSkill(Profile{SkillLevel: SkillSome}, friendly).points)
	assert.Equal(t, 3, scoreSkill(Profile{SkillLevel: SkillSome}, demanding).points)
	assert.Equal(t, 7, scoreSkill(Profile{SkillLevel: SkillIntermediate}, demanding).points)
	assert.Equal(t, 7, scoreSkill(Profile{SkillLevel: SkillAdvanced}, friendly).points)
	assert.Empty(t, scoreSkill(Profile{SkillLevel: SkillAdvanced}, friendly).reason)
	assert.Equal(t, 0, scoreSkill(Profile{SkillLevel: "guru"}, friendly).points)
}

func TestScoreHobby_UnknownEnumsFailClosed(t *testing.T) {
	p := beginnerGardenProfile()
	p.Budget = "lavish"
	p.Environment = "yurt"
	p.SkillLevel = "guru"
	p.LearningStyle = "osmosis"
	p.SocialPreference = "hermit"

	var got HobbyScore
	require.NotPanics(t, func() { got = ScoreHobby(p, mustMeta(t, "gardening")) })

	// 40 motivation + 15 time + 4 budget (lavish treated as free)
	assert.Equal(t, 59, got.Score)
}

func TestScoreHobby_BoundsAcrossProfiles(t *testing.T) {
	metas := DefaultHobbyMeta()
	motivationSets := [][]string{
		nil,
		{"fun"},
		{"stress-relief", "mindfulness", "creativity", "skill-building", "fun"},
		{"career", "career", "social"},
	}
	for _, motives := range motivationSets {
		for _, minutes := range []int{0, 30, 90, 600} {
			for _, skill := range []SkillLevel{SkillBeginner, SkillSome, SkillIntermediate, SkillAdvanced} {
				for _, budget := range []Budget{BudgetFree, BudgetLow, BudgetMedium, BudgetNoLimit} {
					for _, env := range []Environment{EnvSmallApartment, EnvHouse, EnvOutdoorAccess} {
						p := Profile{
							Motivations:             motives,
							TimeAvailabilityMinutes: minutes,
							SkillLevel:              skill,
							LearningStyle:           StyleVideo,
							Budget:                  budget,
							Environment:             env,
							SocialPreference:        SocialBoth,
						}
						for _, m := range metas {
							got := ScoreHobby(p, m)
							require.GreaterOrEqual(t, got.Score, 0)
							require.LessOrEqual(t, got.Score, MaxHobbyScore)
							require.LessOrEqual(t, len(got.Reasons), MaxReasons)
						}
					}
				}
			}
		}
	}
}
