package recommend

// CostLevel is ordered: free < low < medium < high.
type CostLevel string

const (
	CostFree   CostLevel = "free"
	CostLow    CostLevel = "low"
	CostMedium CostLevel = "medium"
	CostHigh   CostLevel = "high"
)

type EnvironmentNeed string

const (
	NeedIndoor  EnvironmentNeed = "indoor"
	NeedOutdoor EnvironmentNeed = "outdoor"
	NeedBoth    EnvironmentNeed = "both"
)

// HobbyMeta is the static reference data used to score a hobby.
type HobbyMeta struct {
	Slug                 string          `json:"slug"`
	Name                 string          `json:"name"`
	Icon                 string          `json:"icon"`
	SupportedMotivations []string        `json:"supportedMotivations"`
	MinTimeMinutes       int             `json:"minTimeMinutes"`
	LearningStyles       []LearningStyle `json:"learningStyles"`
	CostLevel            CostLevel       `json:"costLevel"`
	EnvironmentNeeds     EnvironmentNeed `json:"environmentNeeds"`
	SocialNature         SocialMode      `json:"socialNature"`
	IntensityLevel       Intensity       `json:"intensityLevel"`
	BeginnerFriendly     bool            `json:"beginnerFriendly"`
}

// Catalog is an immutable, ordered hobby metadata table. Build it once at
// startup and pass it to whatever ranks hobbies.
type Catalog struct {
	metas  []HobbyMeta
	bySlug map[string]int
}

// NewCatalog copies metas into a new catalog. Later entries with a duplicate
// slug are dropped so the table keeps one row per hobby.
func NewCatalog(metas []HobbyMeta) *Catalog {
	c := &Catalog{
		metas:  make([]HobbyMeta, 0, len(metas)),
		bySlug: make(map[string]int, len(metas)),
	}
	for _, m := range metas {
		if _, dup := c.bySlug[m.Slug]; dup {
			continue
		}
		c.bySlug[m.Slug] = len(c.metas)
		c.metas = append(c.metas, cloneMeta(m))
	}
	return c
}

// All returns a copy of the table in catalog order.
func (c *Catalog) All() []HobbyMeta {
	out := make([]HobbyMeta, len(c.metas))
	for i, m := range c.metas {
		out[i] = cloneMeta(m)
	}
	return out
}

// Get looks a hobby up by slug.
func (c *Catalog) Get(slug string) (HobbyMeta, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return HobbyMeta{}, false
	}
	return cloneMeta(c.metas[i]), true
}

func (c *Catalog) Len() int { return len(c.metas) }

// Rank scores every hobby in the catalog for p.
func (c *Catalog) Rank(p Profile) []RankedHobby {
	return RankHobbies(p, c.metas)
}

func cloneMeta(m HobbyMeta) HobbyMeta {
	m.SupportedMotivations = append([]string(nil), m.SupportedMotivations...)
	m.LearningStyles = append([]LearningStyle(nil), m.LearningStyles...)
	return m
}

// DefaultHobbyMeta is the seeded reference table for the six launch hobbies.
func DefaultHobbyMeta() []HobbyMeta {
	return []HobbyMeta{
		{
			Slug:                 "gardening",
			Name:                 "Gardening",
			Icon:                 "🌱",
			SupportedMotivations: []string{"stress-relief", "mindfulness", "fitness", "creativity", "fun"},
			MinTimeMinutes:       60,
			LearningStyles:       []LearningStyle{StyleProjects, StyleVideo, StyleReading},
			CostLevel:            CostLow,
			EnvironmentNeeds:     NeedBoth,
			SocialNature:         SocialSolo,
			IntensityLevel:       IntensityGentle,
			BeginnerFriendly:     true,
		},
		{
			Slug:                 "fitness-yoga",
			Name:                 "Fitness & Yoga",
			Icon:                 "🧘",
			SupportedMotivations: []string{"fitness", "stress-relief", "mindfulness", "social"},
			MinTimeMinutes:       90,
			LearningStyles:       []LearningStyle{StyleVideo, StyleCommunity},
			CostLevel:            CostFree,
			EnvironmentNeeds:     NeedIndoor,
			SocialNature:         SocialBoth,
			IntensityLevel:       IntensityModerate,
			BeginnerFriendly:     true,
		},
		{
			Slug:                 "cooking-baking",
			Name:                 "Cooking & Baking",
			Icon:                 "🍳",
			SupportedMotivations: []string{"creativity", "fun", "skill-building", "social"},
			MinTimeMinutes:       120,
			LearningStyles:       []LearningStyle{StyleVideo, StyleReading, StyleProjects},
			CostLevel:            CostMedium,
			EnvironmentNeeds:     NeedIndoor,
			SocialNature:         SocialBoth,
			IntensityLevel:       IntensityGentle,
			BeginnerFriendly:     true,
		},
		{
			Slug:                 "photography",
			Name:                 "Photography",
			Icon:                 "📸",
			SupportedMotivations: []string{"creativity", "mindfulness", "career", "skill-building"},
			MinTimeMinutes:       120,
			LearningStyles:       []LearningStyle{StyleVideo, StyleProjects, StyleCommunity},
			CostLevel:            CostHigh,
			EnvironmentNeeds:     NeedBoth,
			SocialNature:         SocialBoth,
			IntensityLevel:       IntensityModerate,
			BeginnerFriendly:     false,
		},
		{
			Slug:                 "creative-arts",
			Name:                 "Creative Arts",
			Icon:                 "🎨",
			SupportedMotivations: []string{"creativity", "stress-relief", "mindfulness", "fun"},
			MinTimeMinutes:       90,
			LearningStyles:       []LearningStyle{StyleVideo, StyleProjects, StyleReading},
			CostLevel:            CostLow,
			EnvironmentNeeds:     NeedIndoor,
			SocialNature:         SocialSolo,
			IntensityLevel:       IntensityGentle,
			BeginnerFriendly:     true,
		},
		{
			Slug:                 "music",
			Name:                 "Music",
			Icon:                 "🎵",
			SupportedMotivations: []string{"creativity", "skill-building", "fun", "social", "career"},
			MinTimeMinutes:       150,
			LearningStyles:       []LearningStyle{StyleVideo, StyleCommunity, StyleReading},
			CostLevel:            CostMedium,
			EnvironmentNeeds:     NeedIndoor,
			SocialNature:         SocialBoth,
			IntensityLevel:       IntensityModerate,
			BeginnerFriendly:     false,
		},
	}
}
