package recommend

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	MaxHobbyScore = 100
	MaxReasons    = 5

	motivationPoints = 40
	timePoints       = 15
	timePartial      = 8
	stylePoints      = 10
	budgetPoints     = 10
	budgetStretch    = 4
	envPoints        = 10
	socialPoints     = 5
	skillFriendly    = 10
	skillUnfriendly  = 3
	skillExperienced = 7

	// partialTimeRatio is the share of a hobby's minimum weekly time that
	// still earns partial time credit.
	partialTimeRatio = 0.6
)

// HobbyScore is the result of scoring one hobby for one profile.
type HobbyScore struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type factor struct {
	points int
	reason string
}

var (
	budgetRank = map[Budget]int{BudgetFree: 0, BudgetLow: 1, BudgetMedium: 2, BudgetNoLimit: 3}
	costRank   = map[CostLevel]int{CostFree: 0, CostLow: 1, CostMedium: 2, CostHigh: 3}

	// environmentFit maps where a user lives onto the hobby environment vocabulary.
	environmentFit = map[Environment]EnvironmentNeed{
		EnvSmallApartment: NeedIndoor,
		EnvHouse:          NeedBoth,
		EnvOutdoorAccess:  NeedBoth,
	}

	styleLabels = map[LearningStyle]string{
		StyleVideo:     "video tutorials",
		StyleReading:   "reading guides",
		StyleProjects:  "hands-on projects",
		StyleCommunity: "community learning",
	}

	validNeeds = map[EnvironmentNeed]bool{NeedIndoor: true, NeedOutdoor: true, NeedBoth: true}
)

// ScoreHobby computes a 0-100 fit score for meta and the reasons behind it.
// Seven factors are summed in a fixed order; reasons follow the same order
// and are capped at MaxReasons.
func ScoreHobby(p Profile, meta HobbyMeta) HobbyScore {
	factors := [...]factor{
		scoreMotivations(p, meta),
		scoreTime(p, meta),
		scoreLearningStyle(p, meta),
		scoreBudget(p, meta),
		scoreEnvironment(p, meta),
		scoreSocial(p, meta),
		scoreSkill(p, meta),
	}

	total := 0
	reasons := make([]string, 0, MaxReasons)
	for _, f := range factors {
		total += f.points
		if f.reason != "" && len(reasons) < MaxReasons {
			reasons = append(reasons, f.reason)
		}
	}

	return HobbyScore{Score: min(total, MaxHobbyScore), Reasons: reasons}
}

func scoreMotivations(p Profile, meta HobbyMeta) factor {
	wanted := p.motivationSet()
	if len(wanted) == 0 {
		return factor{}
	}
	supported := make(map[string]bool, len(meta.SupportedMotivations))
	for _, m := range meta.SupportedMotivations {
		supported[m] = true
	}

	var matched []string
	for _, m := range wanted {
		if supported[m] {
			matched = append(matched, m)
		}
	}

	points := int(math.Round(motivationPoints * float64(len(matched)) / float64(len(wanted))))
	if len(matched) == 0 {
		return factor{points: points}
	}
	return factor{
		points: points,
		reason: "Matches your interest in " + strings.Join(matched[:min(2, len(matched))], " & "),
	}
}

func scoreTime(p Profile, meta HobbyMeta) factor {
	available := p.TimeAvailabilityMinutes
	if available >= meta.MinTimeMinutes {
		hours := math.Round(float64(available)/60*10) / 10
		return factor{
			points: timePoints,
			reason: fmt.Sprintf("Your %s hrs/week is ideal for this hobby", strconv.FormatFloat(hours, 'f', -1, 64)),
		}
	}
	if float64(available) >= float64(meta.MinTimeMinutes)*partialTimeRatio {
		return factor{points: timePartial}
	}
	return factor{}
}

func scoreLearningStyle(p Profile, meta HobbyMeta) factor {
	label, ok := styleLabels[p.LearningStyle]
	if !ok {
		warnUnknown("learningStyle", string(p.LearningStyle))
		return factor{}
	}
	for _, s := range meta.LearningStyles {
		if s == p.LearningStyle {
			return factor{points: stylePoints, reason: "Great for " + label + " learners"}
		}
	}
	return factor{}
}

func scoreBudget(p Profile, meta HobbyMeta) factor {
	userRank, ok := budgetRank[p.Budget]
	if !ok {
		warnUnknown("budget", string(p.Budget))
		userRank = budgetRank[BudgetFree]
	}
	hobbyRank, ok := costRank[meta.CostLevel]
	if !ok {
		warnUnknown("costLevel", string(meta.CostLevel))
		hobbyRank = costRank[CostHigh]
	}

	switch {
	case hobbyRank <= userRank:
		label := string(meta.CostLevel) + "-cost"
		if meta.CostLevel == CostFree {
			label = "completely free"
		}
		return factor{points: budgetPoints, reason: "Fits your budget: mostly " + label}
	case hobbyRank == userRank+1:
		return factor{points: budgetStretch}
	default:
		return factor{}
	}
}

func scoreEnvironment(p Profile, meta HobbyMeta) factor {
	userEnv, ok := environmentFit[p.Environment]
	if !ok {
		warnUnknown("environment", string(p.Environment))
		return factor{}
	}
	if !validNeeds[meta.EnvironmentNeeds] {
		warnUnknown("environmentNeeds", string(meta.EnvironmentNeeds))
		return factor{}
	}
	if meta.EnvironmentNeeds == NeedBoth || userEnv == NeedBoth || meta.EnvironmentNeeds == userEnv {
		return factor{
			points: envPoints,
			reason: fmt.Sprintf("Works well in your %s setup", strings.Replace(string(p.Environment), "-", " ", 1)),
		}
	}
	return factor{}
}

func scoreSocial(p Profile, meta HobbyMeta) factor {
	if !validSocial[p.SocialPreference] {
		warnUnknown("socialPreference", string(p.SocialPreference))
		return factor{}
	}
	if !validSocial[meta.SocialNature] {
		warnUnknown("socialNature", string(meta.SocialNature))
		return factor{}
	}
	if meta.SocialNature == SocialBoth || p.SocialPreference == SocialBoth || meta.SocialNature == p.SocialPreference {
		return factor{points: socialPoints}
	}
	return factor{}
}

func scoreSkill(p Profile, meta HobbyMeta) factor {
	switch p.SkillLevel.Normalize() {
	case SkillBeginner:
		if meta.BeginnerFriendly {
			return factor{points: skillFriendly, reason: "Very beginner-friendly, no experience needed"}
		}
		return factor{points: skillUnfriendly}
	case SkillIntermediate, SkillAdvanced:
		return factor{points: skillExperienced}
	default:
		warnUnknown("skillLevel", string(p.SkillLevel))
		return factor{}
	}
}

// warnUnknown flags an out-of-domain enum value. Scoring continues with the
// factor failing closed.
func warnUnknown(field, value string) {
	slog.Warn("unrecognized enum value", "field", field, "value", value)
}
