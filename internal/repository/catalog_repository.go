package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

// CatalogRepository reads hobbies, hobby metadata and resources.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListHobbies returns every hobby with its resource count.
func (r *CatalogRepository) ListHobbies(ctx context.Context) ([]models.Hobby, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.id, h.slug, h.name, h.description, h.icon, h.color, COUNT(res.id)
		FROM hobbies h
		LEFT JOIN resources res ON res.hobby_id = h.id
		GROUP BY h.id
		ORDER BY h.sort_order, h.name
	`)
	if err != nil {
		return nil, fmt.Errorf("query hobbies: %w", err)
	}
	defer rows.Close()

	hobbies := []models.Hobby{}
	for rows.Next() {
		var h models.Hobby
		if err := rows.Scan(&h.ID, &h.Slug, &h.Name, &h.Description, &h.Icon, &h.Color, &h.ResourceCount); err != nil {
			return nil, fmt.Errorf("scan hobby: %w", err)
		}
		hobbies = append(hobbies, h)
	}
	return hobbies, rows.Err()
}

// GetHobbyBySlug returns sql.ErrNoRows (wrapped) when the slug is unknown.
func (r *CatalogRepository) GetHobbyBySlug(ctx context.Context, slug string) (*models.Hobby, error) {
	return r.getHobby(ctx, "h.slug", slug)
}

// GetHobby returns sql.ErrNoRows (wrapped) when the ID is unknown.
func (r *CatalogRepository) GetHobby(ctx context.Context, id string) (*models.Hobby, error) {
	return r.getHobby(ctx, "h.id", id)
}

func (r *CatalogRepository) getHobby(ctx context.Context, column, value string) (*models.Hobby, error) {
	var h models.Hobby
	err := r.db.QueryRowContext(ctx, `
		SELECT h.id, h.slug, h.name, h.description, h.icon, h.color,
			(SELECT COUNT(*) FROM resources res WHERE res.hobby_id = h.id)
		FROM hobbies h
		WHERE `+column+` = $1
	`, value).Scan(&h.ID, &h.Slug, &h.Name, &h.Description, &h.Icon, &h.Color, &h.ResourceCount)
	if err != nil {
		return nil, fmt.Errorf("get hobby %s: %w", value, err)
	}
	return &h, nil
}

// LoadHobbyMeta returns the scoring metadata of every hobby in catalog order.
func (r *CatalogRepository) LoadHobbyMeta(ctx context.Context) ([]recommend.HobbyMeta, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT h.slug, h.name, h.icon, m.supported_motivations, m.min_time_minutes,
			m.learning_styles, m.cost_level, m.environment_needs, m.social_nature,
			m.intensity_level, m.beginner_friendly
		FROM hobby_meta m
		JOIN hobbies h ON h.id = m.hobby_id
		ORDER BY h.sort_order, h.name
	`)
	if err != nil {
		return nil, fmt.Errorf("query hobby meta: %w", err)
	}
	defer rows.Close()

	var metas []recommend.HobbyMeta
	for rows.Next() {
		var (
			m      recommend.HobbyMeta
			styles []string
		)
		if err := rows.Scan(
			&m.Slug, &m.Name, &m.Icon, pq.Array(&m.SupportedMotivations), &m.MinTimeMinutes,
			pq.Array(&styles), &m.CostLevel, &m.EnvironmentNeeds, &m.SocialNature,
			&m.IntensityLevel, &m.BeginnerFriendly,
		); err != nil {
			return nil, fmt.Errorf("scan hobby meta: %w", err)
		}
		m.LearningStyles = make([]recommend.LearningStyle, len(styles))
		for i, s := range styles {
			m.LearningStyles[i] = recommend.LearningStyle(s)
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

const resourceColumns = `
	res.id, res.hobby_id, res.title, res.description, res.type, res.url, res.source,
	res.level, res.time_minutes, res.free_paid, res.popularity_score,
	COALESCE(array_agg(t.name ORDER BY t.name) FILTER (WHERE t.name IS NOT NULL), '{}')`

const resourceJoins = `
	FROM resources res
	LEFT JOIN resource_tags rt ON rt.resource_id = res.id
	LEFT JOIN tags t ON t.id = rt.tag_id`

// ListResourcesByHobby returns a hobby's resources with their tags.
func (r *CatalogRepository) ListResourcesByHobby(ctx context.Context, hobbyID string) ([]recommend.Resource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+resourceColumns+resourceJoins+`
		WHERE res.hobby_id = $1
		GROUP BY res.id
		ORDER BY res.created_at, res.title
	`, hobbyID)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()
	return scanResources(rows)
}

// GetResourcesByIDs returns the resources whose IDs are listed. Unknown IDs
// are skipped.
func (r *CatalogRepository) GetResourcesByIDs(ctx context.Context, ids []string) ([]recommend.Resource, error) {
	if len(ids) == 0 {
		return []recommend.Resource{}, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT `+resourceColumns+resourceJoins+`
		WHERE res.id = ANY($1)
		GROUP BY res.id
		ORDER BY res.created_at, res.title
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query resources by id: %w", err)
	}
	defer rows.Close()
	return scanResources(rows)
}

// ResourceExists reports whether a resource with the given ID exists.
func (r *CatalogRepository) ResourceExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM resources WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check resource %s: %w", id, err)
	}
	return exists, nil
}

func scanResources(rows *sql.Rows) ([]recommend.Resource, error) {
	resources := []recommend.Resource{}
	for rows.Next() {
		var (
			res     recommend.Resource
			minutes sql.NullInt64
		)
		if err := rows.Scan(
			&res.ID, &res.HobbyID, &res.Title, &res.Description, &res.Type, &res.URL, &res.Source,
			&res.Level, &minutes, &res.FreePaid, &res.PopularityScore, pq.Array(&res.Tags),
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		if minutes.Valid {
			m := int(minutes.Int64)
			res.TimeMinutes = &m
		}
		if res.Tags == nil {
			res.Tags = []string{}
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}
