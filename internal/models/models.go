package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"hobby-discovery-service/internal/recommend"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its validate tags.
func Validate(req any) error {
	return validate.Struct(req)
}

// User is a registered user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest is the request body for logging in. Unknown emails create a user.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name" validate:"max=100"`
}

// ProfileRequest is the request body for saving a profile.
type ProfileRequest struct {
	Motivations             []string `json:"motivations" validate:"max=8,dive,required,max=40"`
	TimeAvailabilityMinutes int      `json:"timeAvailabilityMinutes" validate:"min=30,max=600"`
	SchedulePreference      string   `json:"schedulePreference" validate:"required,oneof=weekday weekend flexible"`
	SkillLevel              string   `json:"skillLevel" validate:"required,oneof=beginner some intermediate advanced"`
	LearningStyle           string   `json:"learningStyle" validate:"required,oneof=video reading projects community"`
	Budget                  string   `json:"budget" validate:"required,oneof=free low medium no-limit"`
	Environment             string   `json:"environment" validate:"required,oneof=small-apartment house outdoor-access"`
	Location                string   `json:"location" validate:"max=255"`
	SocialPreference        string   `json:"socialPreference" validate:"required,oneof=solo community both"`
	Intensity               string   `json:"intensity" validate:"required,oneof=gentle moderate intense"`
	CommitmentHorizon       string   `json:"commitmentHorizon" validate:"required,oneof=exploring 30-days ongoing"`
}

// Profile converts the request into the scoring profile.
func (r ProfileRequest) Profile() recommend.Profile {
	motivations := r.Motivations
	if motivations == nil {
		motivations = []string{}
	}
	return recommend.Profile{
		Motivations:             motivations,
		TimeAvailabilityMinutes: r.TimeAvailabilityMinutes,
		SchedulePreference:      recommend.SchedulePreference(r.SchedulePreference),
		SkillLevel:              recommend.SkillLevel(r.SkillLevel),
		LearningStyle:           recommend.LearningStyle(r.LearningStyle),
		Budget:                  recommend.Budget(r.Budget),
		Environment:             recommend.Environment(r.Environment),
		Location:                r.Location,
		SocialPreference:        recommend.SocialMode(r.SocialPreference),
		Intensity:               recommend.Intensity(r.Intensity),
		CommitmentHorizon:       recommend.CommitmentHorizon(r.CommitmentHorizon),
	}
}

// StoredProfile is a profile together with its owner.
type StoredProfile struct {
	UserID string `json:"userId"`
	recommend.Profile
	UpdatedAt time.Time `json:"updatedAt"`
}

// Hobby is a hobby with its display fields.
type Hobby struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	ResourceCount int    `json:"resourceCount"`
}

// UserHobby links a user to a hobby they are pursuing.
type UserHobby struct {
	UserID  string                  `json:"userId"`
	HobbyID string                  `json:"hobbyId"`
	Level   recommend.ResourceLevel `json:"level"`
	Goals   *string                 `json:"goals"`
	Hobby   *Hobby                  `json:"hobby,omitempty"`
}

// OnboardingRequest replaces the user's hobbies. Levels and goals are
// matched to hobby IDs by position.
type OnboardingRequest struct {
	HobbyIDs []string `json:"hobbyIds" validate:"required,min=1,dive,required"`
	Levels   []string `json:"levels" validate:"dive,omitempty,oneof=beginner intermediate advanced"`
	Goals    []string `json:"goals"`
}

// DashboardHobbyRequest adds or updates a single hobby without touching others.
type DashboardHobbyRequest struct {
	HobbyID string `json:"hobbyId" validate:"required"`
	Level   string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ResourceInteractionRequest updates a user's state for one resource. Nil
// fields are left unchanged.
type ResourceInteractionRequest struct {
	ResourceID string           `json:"resourceId" validate:"required"`
	Saved      *bool            `json:"saved"`
	Status     *string          `json:"status" validate:"omitempty,oneof=not-started in-progress done"`
	Feedback   OptionalFeedback `json:"feedback"`
}

// OptionalFeedback distinguishes an absent feedback field from an explicit
// null, which clears the stored vote.
type OptionalFeedback struct {
	Set   bool
	Value recommend.Feedback
}

func (f *OptionalFeedback) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = recommend.FeedbackNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	f.Value = recommend.Feedback(s)
	return nil
}

// Valid reports whether the feedback is absent, cleared, up or down.
func (f OptionalFeedback) Valid() bool {
	switch f.Value {
	case recommend.FeedbackNone, recommend.FeedbackUp, recommend.FeedbackDown:
		return true
	}
	return false
}

// UserResource is the stored interaction row.
type UserResource struct {
	UserID     string             `json:"userId"`
	ResourceID string             `json:"resourceId"`
	Saved      bool               `json:"saved"`
	Status     recommend.Status   `json:"status"`
	Feedback   recommend.Feedback `json:"feedback"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// Interaction returns the scoring view of the row.
func (u UserResource) Interaction() recommend.UserResource {
	return recommend.UserResource{Saved: u.Saved, Status: u.Status, Feedback: u.Feedback}
}

// ResourceQuery holds query parameters for resource recommendations.
type ResourceQuery struct {
	HobbySlug string
	Type      string
	Level     string
	TimeMin   *int
	TimeMax   *int
	SavedOnly bool
}

// Filter converts the query into a resource filter.
func (q ResourceQuery) Filter() recommend.ResourceFilter {
	f := recommend.ResourceFilter{
		MinMinutes: q.TimeMin,
		MaxMinutes: q.TimeMax,
		SavedOnly:  q.SavedOnly,
	}
	if q.Type != "" {
		f.Types = []recommend.ResourceType{recommend.ResourceType(q.Type)}
	}
	if q.Level != "" {
		f.Levels = []recommend.ResourceLevel{recommend.ResourceLevel(q.Level)}
	}
	return f
}

// HobbyRecommendationResponse wraps a ranked hobby list.
type HobbyRecommendationResponse struct {
	UserID          string                  `json:"userId"`
	Recommendations []recommend.RankedHobby `json:"recommendations"`
	GeneratedAt     string                  `json:"generatedAt"`
}
