package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

// UserRepository stores users and everything they own: profiles, hobbies and
// resource interactions.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindOrCreateUser returns the user with the given email, creating it first
// if needed. An existing user's name is left unchanged.
func (r *UserRepository) FindOrCreateUser(ctx context.Context, email, name string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, name, created_at
	`, uuid.NewString(), email, name).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create user: %w", err)
	}
	return &user, nil
}

// GetUser returns a user by ID.
func (r *UserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, created_at FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}

const profileColumns = `user_id, motivations, time_availability_minutes, schedule_preference,
	skill_level, learning_style, budget, environment, COALESCE(location, ''),
	social_preference, intensity, commitment_horizon, updated_at`

func scanProfile(row *sql.Row) (*models.StoredProfile, error) {
	var p models.StoredProfile
	err := row.Scan(
		&p.UserID, pq.Array(&p.Motivations), &p.TimeAvailabilityMinutes, &p.SchedulePreference,
		&p.SkillLevel, &p.LearningStyle, &p.Budget, &p.Environment, &p.Location,
		&p.SocialPreference, &p.Intensity, &p.CommitmentHorizon, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Motivations == nil {
		p.Motivations = []string{}
	}
	return &p, nil
}

// GetProfile returns a user's profile.
func (r *UserRepository) GetProfile(ctx context.Context, userID string) (*models.StoredProfile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, `
		SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1
	`, userID))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpsertProfile creates or replaces a user's profile.
func (r *UserRepository) UpsertProfile(ctx context.Context, userID string, p recommend.Profile) (*models.StoredProfile, error) {
	var location sql.NullString
	if p.Location != "" {
		location = sql.NullString{String: p.Location, Valid: true}
	}
	motivations := p.Motivations
	if motivations == nil {
		motivations = []string{}
	}
	stored, err := scanProfile(r.db.QueryRowContext(ctx, `
		INSERT INTO user_profiles (user_id, motivations, time_availability_minutes, schedule_preference,
			skill_level, learning_style, budget, environment, location,
			social_preference, intensity, commitment_horizon, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			motivations = EXCLUDED.motivations,
			time_availability_minutes = EXCLUDED.time_availability_minutes,
			schedule_preference = EXCLUDED.schedule_preference,
			skill_level = EXCLUDED.skill_level,
			learning_style = EXCLUDED.learning_style,
			budget = EXCLUDED.budget,
			environment = EXCLUDED.environment,
			location = EXCLUDED.location,
			social_preference = EXCLUDED.social_preference,
			intensity = EXCLUDED.intensity,
			commitment_horizon = EXCLUDED.commitment_horizon,
			updated_at = NOW()
		RETURNING `+profileColumns,
		userID, pq.Array(motivations), p.TimeAvailabilityMinutes, p.SchedulePreference,
		p.SkillLevel, p.LearningStyle, p.Budget, p.Environment, location,
		p.SocialPreference, p.Intensity, p.CommitmentHorizon,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return stored, nil
}

// ReplaceUserHobbies deletes the user's hobbies and inserts the given ones in
// a single transaction.
func (r *UserRepository) ReplaceUserHobbies(ctx context.Context, userID string, hobbies []models.UserHobby) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace hobbies: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_hobbies WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear user hobbies: %w", err)
	}
	for _, h := range hobbies {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_hobbies (user_id, hobby_id, level, goals)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, hobby_id) DO UPDATE SET level = EXCLUDED.level, goals = EXCLUDED.goals
		`, userID, h.HobbyID, h.Level, h.Goals); err != nil {
			return fmt.Errorf("insert user hobby %s: %w", h.HobbyID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace hobbies: %w", err)
	}
	return nil
}

// UpsertUserHobby adds one hobby for the user or updates its level.
func (r *UserRepository) UpsertUserHobby(ctx context.Context, userID, hobbyID string, level recommend.ResourceLevel) (*models.UserHobby, error) {
	uh := models.UserHobby{UserID: userID, HobbyID: hobbyID}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_hobbies (user_id, hobby_id, level)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, hobby_id) DO UPDATE SET level = EXCLUDED.level
		RETURNING level, goals
	`, userID, hobbyID, level).Scan(&uh.Level, &uh.Goals)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user hobby: %w", err)
	}
	return &uh, nil
}

// ListUserHobbies returns the user's hobbies joined with hobby details.
func (r *UserRepository) ListUserHobbies(ctx context.Context, userID string) ([]models.UserHobby, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT uh.hobby_id, uh.level, uh.goals,
			h.slug, h.name, h.description, h.icon, h.color
		FROM user_hobbies uh
		JOIN hobbies h ON h.id = uh.hobby_id
		WHERE uh.user_id = $1
		ORDER BY uh.created_at, h.sort_order
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user hobbies: %w", err)
	}
	defer rows.Close()

	list := []models.UserHobby{}
	for rows.Next() {
		uh := models.UserHobby{UserID: userID, Hobby: &models.Hobby{}}
		if err := rows.Scan(
			&uh.HobbyID, &uh.Level, &uh.Goals,
			&uh.Hobby.Slug, &uh.Hobby.Name, &uh.Hobby.Description, &uh.Hobby.Icon, &uh.Hobby.Color,
		); err != nil {
			return nil, fmt.Errorf("scan user hobby: %w", err)
		}
		uh.Hobby.ID = uh.HobbyID
		list = append(list, uh)
	}
	return list, rows.Err()
}

// GetHobbyLevel returns the level the user picked for a hobby. ok is false
// when the user has not added the hobby.
func (r *UserRepository) GetHobbyLevel(ctx context.Context, userID, hobbyID string) (level recommend.ResourceLevel, ok bool, err error) {
	err = r.db.QueryRowContext(ctx, `
		SELECT level FROM user_hobbies WHERE user_id = $1 AND hobby_id = $2
	`, userID, hobbyID).Scan(&level)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get hobby level: %w", err)
	}
	return level, true, nil
}

// UpsertUserResource applies a partial update to the user's interaction with
// a resource. Nil fields keep their stored value; new rows start unsaved and
// not-started.
func (r *UserRepository) UpsertUserResource(ctx context.Context, userID string, req models.ResourceInteractionRequest) (*models.UserResource, error) {
	var feedback sql.NullString
	if req.Feedback.Set && req.Feedback.Value != recommend.FeedbackNone {
		feedback = sql.NullString{String: string(req.Feedback.Value), Valid: true}
	}

	ur := models.UserResource{UserID: userID, ResourceID: req.ResourceID}
	var stored sql.NullString
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO user_resources (user_id, resource_id, saved, status, feedback, updated_at)
		VALUES ($1, $2, COALESCE($3::boolean, FALSE), COALESCE($4::varchar, 'not-started'), $5::varchar, NOW())
		ON CONFLICT (user_id, resource_id) DO UPDATE SET
			saved = COALESCE($3::boolean, user_resources.saved),
			status = COALESCE($4::varchar, user_resources.status),
			feedback = CASE WHEN $6::boolean THEN $5::varchar ELSE user_resources.feedback END,
			updated_at = NOW()
		RETURNING saved, status, feedback, updated_at
	`, userID, req.ResourceID, req.Saved, req.Status, feedback, req.Feedback.Set).Scan(
		&ur.Saved, &ur.Status, &stored, &ur.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user resource: %w", err)
	}
	ur.Feedback = recommend.Feedback(stored.String)
	return &ur, nil
}

// DeleteUserResource removes the interaction row. It reports whether a row
// existed.
func (r *UserRepository) DeleteUserResource(ctx context.Context, userID, resourceID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM user_resources WHERE user_id = $1 AND resource_id = $2
	`, userID, resourceID)
	if err != nil {
		return false, fmt.Errorf("delete user resource: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user resource: %w", err)
	}
	return n > 0, nil
}

// ListUserResources returns the user's interactions keyed by resource ID.
// With no IDs every interaction is returned.
func (r *UserRepository) ListUserResources(ctx context.Context, userID string, resourceIDs []string) (map[string]models.UserResource, error) {
	query := `
		SELECT resource_id, saved, status, COALESCE(feedback, ''), updated_at
		FROM user_resources WHERE user_id = $1`
	args := []any{userID}
	if len(resourceIDs) > 0 {
		query += ` AND resource_id = ANY($2)`
		args = append(args, pq.Array(resourceIDs))
	}
	return r.queryUserResources(ctx, query, args...)
}

// ListSavedResources returns the user's saved interactions keyed by resource ID.
func (r *UserRepository) ListSavedResources(ctx context.Context, userID string) (map[string]models.UserResource, error) {
	return r.queryUserResources(ctx, `
		SELECT resource_id, saved, status, COALESCE(feedback, ''), updated_at
		FROM user_resources WHERE user_id = $1 AND saved = TRUE
	`, userID)
}

func (r *UserRepository) queryUserResources(ctx context.Context, query string, args ...any) (map[string]models.UserResource, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query user resources: %w", err)
	}
	defer rows.Close()

	out := make(map[string]models.UserResource)
	for rows.Next() {
		ur := models.UserResource{UserID: args[0].(string)}
		if err := rows.Scan(&ur.ResourceID, &ur.Saved, &ur.Status, &ur.Feedback, &ur.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user resource: %w", err)
		}
		out[ur.ResourceID] = ur
	}
	return out, rows.Err()
}
