package recommend

type ResourceType string

const (
	TypeVideo     ResourceType = "video"
	TypeArticle   ResourceType = "article"
	TypeCommunity ResourceType = "community"
	TypeCourse    ResourceType = "course"
)

// ResourceLevel is the difficulty tier of a resource. It shares values with
// the normalized SkillLevel.
type ResourceLevel string

const (
	LevelBeginner     ResourceLevel = "beginner"
	LevelIntermediate ResourceLevel = "intermediate"
	LevelAdvanced     ResourceLevel = "advanced"
)

type FreePaid string

const (
	PriceFree     FreePaid = "free"
	PriceFreemium FreePaid = "freemium"
	PricePaid     FreePaid = "paid"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Feedback is a thumbs up/down vote. The zero value means no vote.
type Feedback string

const (
	FeedbackNone Feedback = ""
	FeedbackUp   Feedback = "up"
	FeedbackDown Feedback = "down"
)

// Resource is a single learning artifact attached to a hobby.
type Resource struct {
	ID              string        `json:"id"`
	HobbyID         string        `json:"hobbyId"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Type            ResourceType  `json:"type"`
	URL             string        `json:"url,omitempty"`
	Source          string        `json:"source,omitempty"`
	Level           ResourceLevel `json:"level"`
	TimeMinutes     *int          `json:"timeMinutes"`
	FreePaid        FreePaid      `json:"freePaid"`
	PopularityScore float64       `json:"popularityScore"`
	Tags            []string      `json:"tags"`
}

// UserResource is a user's interaction state with one resource.
type UserResource struct {
	Saved    bool     `json:"saved"`
	Status   Status   `json:"status"`
	Feedback Feedback `json:"feedback,omitempty"`
}

// ScoredResource is a resource annotated with the caller's interaction state
// and its ranking score.
type ScoredResource struct {
	Resource
	IsSaved  bool     `json:"isSaved"`
	Status   Status   `json:"status"`
	Feedback Feedback `json:"feedback,omitempty"`
	Value    float64  `json:"score"`
}

func (r ScoredResource) Score() float64 { return r.Value }

// LevelForSkill maps a user skill level onto the resource level vocabulary.
func LevelForSkill(s SkillLevel) ResourceLevel {
	return ResourceLevel(s.Normalize())
}
