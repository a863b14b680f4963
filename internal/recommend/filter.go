package recommend

// PersonalizedLimit caps the personalized resource view.
const PersonalizedLimit = 5

// ResourceFilter narrows a resource list. A nil criterion matches
// everything, a non-nil empty one matches nothing, and criteria are ANDed.
type ResourceFilter struct {
	Types      []ResourceType
	Levels     []ResourceLevel
	FreePaid   []FreePaid
	MinMinutes *int
	MaxMinutes *int
	SavedOnly  bool
}

// Match reports whether a resource with the given saved state passes f.
// A resource with no duration never passes a duration-filtered view.
func (f ResourceFilter) Match(r Resource, saved bool) bool {
	if f.Types != nil && !contains(f.Types, r.Type) {
		return false
	}
	if f.Levels != nil && !contains(f.Levels, r.Level) {
		return false
	}
	if f.FreePaid != nil && !contains(f.FreePaid, r.FreePaid) {
		return false
	}
	if f.MinMinutes != nil || f.MaxMinutes != nil {
		if r.TimeMinutes == nil {
			return false
		}
		if f.MinMinutes != nil && *r.TimeMinutes < *f.MinMinutes {
			return false
		}
		if f.MaxMinutes != nil && *r.TimeMinutes > *f.MaxMinutes {
			return false
		}
	}
	if f.SavedOnly && !saved {
		return false
	}
	return true
}

// FilterResources returns the items passing f, in input order.
func FilterResources(f ResourceFilter, items []ScoredResource) []ScoredResource {
	out := make([]ScoredResource, 0, len(items))
	for _, it := range items {
		if f.Match(it.Resource, it.IsSaved) {
			out = append(out, it)
		}
	}
	return out
}

// styleToType picks the resource type that best serves a learning style.
// There is no project resource type, so projects learners get videos.
var styleToType = map[LearningStyle]ResourceType{
	StyleVideo:     TypeVideo,
	StyleReading:   TypeArticle,
	StyleCommunity: TypeCommunity,
	StyleProjects:  TypeVideo,
}

// budgetFreePaid lists the price tiers each budget can afford.
var budgetFreePaid = map[Budget][]FreePaid{
	BudgetFree:    {PriceFree},
	BudgetLow:     {PriceFree, PriceFreemium},
	BudgetMedium:  {PriceFree, PriceFreemium, PricePaid},
	BudgetNoLimit: {PriceFree, PriceFreemium, PricePaid},
}

// PersonalizedFilter derives a filter from a profile: one resource type for
// the learning style, the affordable price tiers, and either the user's
// level or beginner material. Unknown style or budget values match nothing.
func PersonalizedFilter(p Profile) ResourceFilter {
	f := ResourceFilter{
		Types:    []ResourceType{},
		FreePaid: []FreePaid{},
	}

	if t, ok := styleToType[p.LearningStyle]; ok {
		f.Types = []ResourceType{t}
	} else {
		warnUnknown("learningStyle", string(p.LearningStyle))
	}

	if tiers, ok := budgetFreePaid[p.Budget]; ok {
		f.FreePaid = append(f.FreePaid, tiers...)
	} else {
		warnUnknown("budget", string(p.Budget))
	}

	level := LevelForSkill(p.SkillLevel)
	f.Levels = []ResourceLevel{level}
	if level != LevelBeginner {
		f.Levels = append(f.Levels, LevelBeginner)
	}
	return f
}

// Personalize filters items for p and keeps the first PersonalizedLimit.
// Order is preserved, so pass a ranked list to get the best matches.
func Personalize(p Profile, items []ScoredResource) []ScoredResource {
	out := FilterResources(PersonalizedFilter(p), items)
	if len(out) > PersonalizedLimit {
		out = out[:PersonalizedLimit]
	}
	return out
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
