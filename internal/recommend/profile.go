// Package recommend scores and ranks hobbies and learning resources against a
// user's self-reported profile. Every function here is pure: inputs are value
// snapshots owned by the caller and outputs are freshly allocated.
package recommend

import (
	"fmt"
	"strings"
)

type SchedulePreference string

const (
	ScheduleWeekday  SchedulePreference = "weekday"
	ScheduleWeekend  SchedulePreference = "weekend"
	ScheduleFlexible SchedulePreference = "flexible"
)

// SkillLevel is the user's self-assessed experience. SkillSome is treated
// as SkillBeginner in every tier comparison.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillSome         SkillLevel = "some"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Normalize folds SkillSome into SkillBeginner.
func (s SkillLevel) Normalize() SkillLevel {
	if s == SkillSome {
		return SkillBeginner
	}
	return s
}

// IsBeginnerTier reports whether s is beginner or "some".
func (s SkillLevel) IsBeginnerTier() bool {
	return s.Normalize() == SkillBeginner
}

type LearningStyle string

const (
	StyleVideo     LearningStyle = "video"
	StyleReading   LearningStyle = "reading"
	StyleProjects  LearningStyle = "projects"
	StyleCommunity LearningStyle = "community"
)

// Budget is ordered by spending capacity: free < low < medium < no-limit.
type Budget string

const (
	BudgetFree    Budget = "free"
	BudgetLow     Budget = "low"
	BudgetMedium  Budget = "medium"
	BudgetNoLimit Budget = "no-limit"
)

type Environment string

const (
	EnvSmallApartment Environment = "small-apartment"
	EnvHouse          Environment = "house"
	EnvOutdoorAccess  Environment = "outdoor-access"
)

// SocialMode is shared by a user's social preference and a hobby's social nature.
type SocialMode string

const (
	SocialSolo      SocialMode = "solo"
	SocialCommunity SocialMode = "community"
	SocialBoth      SocialMode = "both"
)

type Intensity string

const (
	IntensityGentle   Intensity = "gentle"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

type CommitmentHorizon string

const (
	CommitExploring CommitmentHorizon = "exploring"
	Commit30Days    CommitmentHorizon = "30-days"
	CommitOngoing   CommitmentHorizon = "ongoing"
)

// Profile is a snapshot of a user's stated preferences.
type Profile struct {
	Motivations             []string           `json:"motivations"`
	TimeAvailabilityMinutes int                `json:"timeAvailabilityMinutes"`
	SchedulePreference      SchedulePreference `json:"schedulePreference"`
	SkillLevel              SkillLevel         `json:"skillLevel"`
	LearningStyle           LearningStyle      `json:"learningStyle"`
	Budget                  Budget             `json:"budget"`
	Environment             Environment        `json:"environment"`
	Location                string             `json:"location,omitempty"`
	SocialPreference        SocialMode         `json:"socialPreference"`
	Intensity               Intensity          `json:"intensity"`
	CommitmentHorizon       CommitmentHorizon  `json:"commitmentHorizon"`
}

var (
	validSchedules = map[SchedulePreference]bool{ScheduleWeekday: true, ScheduleWeekend: true, ScheduleFlexible: true}
	validSkills    = map[SkillLevel]bool{SkillBeginner: true, SkillSome: true, SkillIntermediate: true, SkillAdvanced: true}
	validStyles    = map[LearningStyle]bool{StyleVideo: true, StyleReading: true, StyleProjects: true, StyleCommunity: true}
	validBudgets   = map[Budget]bool{BudgetFree: true, BudgetLow: true, BudgetMedium: true, BudgetNoLimit: true}
	validEnvs      = map[Environment]bool{EnvSmallApartment: true, EnvHouse: true, EnvOutdoorAccess: true}
	validSocial    = map[SocialMode]bool{SocialSolo: true, SocialCommunity: true, SocialBoth: true}
	validIntensity = map[Intensity]bool{IntensityGentle: true, IntensityModerate: true, IntensityIntense: true}
	validHorizons  = map[CommitmentHorizon]bool{CommitExploring: true, Commit30Days: true, CommitOngoing: true}
)

// Validate reports every enum field holding a value outside its domain.
// Scoring never requires a valid profile; this is for callers that want to
// reject bad input before storing it.
func (p Profile) Validate() error {
	var bad []string
	check := func(field string, ok bool, value string) {
		if !ok {
			bad = append(bad, fmt.Sprintf("%s=%q", field, value))
		}
	}
	check("schedulePreference", validSchedules[p.SchedulePreference], string(p.SchedulePreference))
	check("skillLevel", validSkills[p.SkillLevel], string(p.SkillLevel))
	check("learningStyle", validStyles[p.LearningStyle], string(p.LearningStyle))
	check("budget", validBudgets[p.Budget], string(p.Budget))
	check("environment", validEnvs[p.Environment], string(p.Environment))
	check("socialPreference", validSocial[p.SocialPreference], string(p.SocialPreference))
	check("intensity", validIntensity[p.Intensity], string(p.Intensity))
	check("commitmentHorizon", validHorizons[p.CommitmentHorizon], string(p.CommitmentHorizon))
	if len(bad) > 0 {
		return fmt.Errorf("invalid profile fields: %s", strings.Join(bad, ", "))
	}
	return nil
}

// motivationSet returns the distinct motivations in first-seen order.
func (p Profile) motivationSet() []string {
	seen := make(map[string]bool, len(p.Motivations))
	out := make([]string, 0, len(p.Motivations))
	for _, m := range p.Motivations {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
