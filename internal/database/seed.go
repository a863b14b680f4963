package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hobby-discovery-service/internal/recommend"
)

type seedHobby struct {
	slug        string
	description string
	color       string
}

type seedResource struct {
	title, description string
	kind               recommend.ResourceType
	url, source        string
	level              recommend.ResourceLevel
	minutes            int
	freePaid           recommend.FreePaid
	popularity         float64
	tags               []string
}

var seedHobbies = []seedHobby{
	{"gardening", "Learn to grow plants, vegetables, and flowers", "#10b981"},
	{"fitness-yoga", "Get fit, strong, and flexible through exercise and yoga", "#f59e0b"},
	{"cooking-baking", "Master culinary skills from basic recipes to advanced techniques", "#ef4444"},
	{"photography", "Learn to capture stunning photos from composition to editing", "#3b82f6"},
	{"creative-arts", "Express yourself through painting, drawing, and digital art", "#8b5cf6"},
	{"music", "Learn an instrument, music theory, and composition", "#ec4899"},
}

var seedResources = map[string][]seedResource{
	"gardening": {
		{"Complete Beginner's Guide to Gardening", "Start your gardening journey with basics", recommend.TypeArticle, "https://example.com/gardening-guide", "GardenBlog", recommend.LevelBeginner, 20, recommend.PriceFree, 0.9, []string{"beginner-friendly", "soil-care", "herbs"}},
		{"Growing Herbs Indoors", "Learn to grow fresh herbs in your kitchen", recommend.TypeVideo, "https://youtube.com/herbs-indoor", "YouTube", recommend.LevelBeginner, 15, recommend.PriceFree, 0.85, []string{"indoor-plants", "herbs"}},
		{"Organic Pest Control for Gardens", "Natural ways to protect your plants", recommend.TypeArticle, "https://example.com/pest-control", "EcoGarden", recommend.LevelIntermediate, 25, recommend.PriceFree, 0.8, []string{"pests", "organic"}},
		{"Soil Preparation and Maintenance", "Create perfect soil for thriving plants", recommend.TypeVideo, "https://youtube.com/soil-prep", "YouTube", recommend.LevelIntermediate, 30, recommend.PriceFree, 0.82, []string{"soil-care"}},
		{"Advanced Vegetable Gardening", "Master crop rotation and succession planting", recommend.TypeCourse, "https://example.com/veg-course", "MasterClass", recommend.LevelAdvanced, 90, recommend.PricePaid, 0.75, []string{"vegetables", "rotation"}},
	},
	"fitness-yoga": {
		{"Yoga for Complete Beginners", "Get started with basic yoga poses and breathing", recommend.TypeVideo, "https://youtube.com/yoga-beginners", "YouTube", recommend.LevelBeginner, 20, recommend.PriceFree, 0.92, []string{"flexibility", "meditation", "beginner-friendly"}},
		{"Building Strength Without Equipment", "Bodyweight exercises for strength building", recommend.TypeArticle, "https://example.com/bodyweight", "FitBlog", recommend.LevelBeginner, 15, recommend.PriceFree, 0.88, []string{"strength", "workout"}},
		{"HIIT Cardio Workouts", "High-intensity interval training for cardio", recommend.TypeVideo, "https://youtube.com/hiit-cardio", "YouTube", recommend.LevelIntermediate, 30, recommend.PriceFree, 0.86, []string{"cardio", "workout"}},
		{"Flexibility and Mobility Training", "Improve range of motion with stretching routines", recommend.TypeCourse, "https://example.com/flexibility", "MindBody", recommend.LevelIntermediate, 45, recommend.PriceFreemium, 0.79, []string{"flexibility", "meditation"}},
		{"Advanced Yoga Philosophy and Practice", "Deep dive into yoga philosophy and advanced poses", recommend.TypeVideo, "https://youtube.com/yoga-advanced", "YouTube", recommend.LevelAdvanced, 60, recommend.PriceFree, 0.72, []string{"flexibility", "meditation"}},
	},
	"cooking-baking": {
		{"Basic Knife Skills for Beginners", "Learn essential knife techniques safely", recommend.TypeVideo, "https://youtube.com/knife-skills", "YouTube", recommend.LevelBeginner, 20, recommend.PriceFree, 0.91, []string{"cooking", "techniques", "beginner-friendly"}},
		{"Easy Weeknight Recipes", "Quick and delicious meals for busy nights", recommend.TypeArticle, "https://example.com/easy-recipes", "RecipeHub", recommend.LevelBeginner, 10, recommend.PriceFree, 0.9, []string{"cooking", "savory"}},
		{"Bread Baking Fundamentals", "Master the art of baking fresh bread", recommend.TypeCourse, "https://example.com/bread-course", "BakingSchool", recommend.LevelIntermediate, 120, recommend.PricePaid, 0.87, []string{"bread", "baking"}},
		{"Flavor Pairing and Seasoning", "Learn how to balance and combine flavors", recommend.TypeArticle, "https://example.com/flavor-guide", "CulinaryArts", recommend.LevelIntermediate, 25, recommend.PriceFree, 0.8, []string{"cooking", "savory"}},
		{"Advanced Pastry Techniques", "Create elegant pastries and desserts", recommend.TypeVideo, "https://youtube.com/pastry-advanced", "PastryTV", recommend.LevelAdvanced, 90, recommend.PricePaid, 0.74, []string{"pastry", "desserts"}},
	},
	"photography": {
		{"Camera Settings Explained", "Understand aperture, shutter speed, and ISO", recommend.TypeArticle, "https://example.com/camera-settings", "PhotoBlog", recommend.LevelBeginner, 20, recommend.PriceFree, 0.93, []string{"techniques", "equipment", "beginner-friendly"}},
		{"Composition Rules for Better Photos", "Master framing and composition basics", recommend.TypeVideo, "https://youtube.com/composition", "YouTube", recommend.LevelBeginner, 25, recommend.PriceFree, 0.89, []string{"composition", "techniques"}},
		{"Lighting Fundamentals", "Understand natural and artificial lighting", recommend.TypeCourse, "https://example.com/lighting", "PhotoMastery", recommend.LevelIntermediate, 60, recommend.PriceFreemium, 0.86, []string{"lighting", "techniques"}},
		{"Photo Editing in Lightroom", "Post-processing techniques for stunning images", recommend.TypeVideo, "https://youtube.com/lightroom-editing", "YouTube", recommend.LevelIntermediate, 45, recommend.PriceFree, 0.83, []string{"editing", "techniques"}},
		{"Advanced Portrait Photography", "Capture beautiful portraits with professional techniques", recommend.TypeCourse, "https://example.com/portrait-advanced", "ProPhotoSchool", recommend.LevelAdvanced, 120, recommend.PricePaid, 0.76, []string{"portrait", "lighting"}},
	},
	"creative-arts": {
		{"Drawing Fundamentals for Beginners", "Learn basic shapes and shading techniques", recommend.TypeVideo, "https://youtube.com/drawing-basics", "YouTube", recommend.LevelBeginner, 30, recommend.PriceFree, 0.9, []string{"drawing", "beginner-friendly"}},
		{"Color Theory Crash Course", "Understand color relationships and harmony", recommend.TypeArticle, "https://example.com/color-theory", "ArtBlog", recommend.LevelBeginner, 20, recommend.PriceFree, 0.85, []string{"color-theory", "painting"}},
		{"Digital Painting Techniques", "Get started with digital art and painting", recommend.TypeCourse, "https://example.com/digital-painting", "DigitalArtSchool", recommend.LevelIntermediate, 90, recommend.PricePaid, 0.84, []string{"digital", "painting"}},
		{"Portrait Drawing Step by Step", "Learn to draw realistic faces and expressions", recommend.TypeVideo, "https://youtube.com/portrait-drawing", "YouTube", recommend.LevelIntermediate, 50, recommend.PriceFree, 0.81, []string{"drawing", "techniques"}},
		{"Advanced Digital Illustration", "Professional digital art techniques and workflows", recommend.TypeCourse, "https://example.com/digital-illustration", "ProArt", recommend.LevelAdvanced, 150, recommend.PricePaid, 0.73, []string{"digital", "sculpture"}},
	},
	"music": {
		{"Guitar Basics for Complete Beginners", "Start playing guitar from day one", recommend.TypeVideo, "https://youtube.com/guitar-basics", "YouTube", recommend.LevelBeginner, 25, recommend.PriceFree, 0.92, []string{"guitar", "beginner-friendly"}},
		{"Music Theory Fundamentals", "Understand notes, scales, and chords", recommend.TypeArticle, "https://example.com/theory-basics", "MusicBlog", recommend.LevelBeginner, 30, recommend.PriceFree, 0.88, []string{"theory", "composition"}},
		{"Piano Beginner Course", "Learn piano with interactive lessons", recommend.TypeCourse, "https://example.com/piano-course", "MusicAcademy", recommend.LevelBeginner, 60, recommend.PriceFreemium, 0.87, []string{"piano", "beginner-friendly"}},
		{"Songwriting Essentials", "Write your own songs from scratch", recommend.TypeVideo, "https://youtube.com/songwriting", "YouTube", recommend.LevelIntermediate, 40, recommend.PriceFree, 0.79, []string{"composition", "theory"}},
		{"Home Recording Studio Setup", "Create professional recordings at home", recommend.TypeCourse, "https://example.com/recording", "ProStudio", recommend.LevelAdvanced, 120, recommend.PricePaid, 0.75, []string{"recording", "techniques"}},
	},
}

// Seed inserts the launch hobbies, their metadata, tags and resources. It is
// idempotent: existing hobbies are left alone and a hobby that already has
// resources gets no new ones.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	catalog := recommend.NewCatalog(recommend.DefaultHobbyMeta())
	created := 0
	for i, h := range seedHobbies {
		meta, ok := catalog.Get(h.slug)
		if !ok {
			return fmt.Errorf("seed hobby %q has no metadata", h.slug)
		}

		hobbyID, err := upsertSeedHobby(ctx, tx, i, h, meta)
		if err != nil {
			return err
		}

		var existing int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources WHERE hobby_id = $1`, hobbyID).Scan(&existing); err != nil {
			return fmt.Errorf("count resources for %s: %w", h.slug, err)
		}
		if existing > 0 {
			continue
		}

		for _, r := range seedResources[h.slug] {
			if err := insertSeedResource(ctx, tx, hobbyID, r); err != nil {
				return err
			}
			created++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	slog.Info("database seed completed", "hobbies", len(seedHobbies), "resources_created", created)
	return nil
}

func upsertSeedHobby(ctx context.Context, tx *sql.Tx, order int, h seedHobby, meta recommend.HobbyMeta) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `
		INSERT INTO hobbies (id, slug, name, description, icon, color, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id
	`, uuid.NewString(), meta.Slug, meta.Name, h.description, meta.Icon, h.color, order).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert hobby %s: %w", h.slug, err)
	}

	styles := make([]string, len(meta.LearningStyles))
	for i, s := range meta.LearningStyles {
		styles[i] = string(s)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO hobby_meta (hobby_id, supported_motivations, min_time_minutes, learning_styles,
			cost_level, environment_needs, social_nature, intensity_level, beginner_friendly)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (hobby_id) DO NOTHING
	`, id, pq.Array(meta.SupportedMotivations), meta.MinTimeMinutes, pq.Array(styles),
		meta.CostLevel, meta.EnvironmentNeeds, meta.SocialNature, meta.IntensityLevel, meta.BeginnerFriendly)
	if err != nil {
		return "", fmt.Errorf("insert hobby meta %s: %w", h.slug, err)
	}
	return id, nil
}

func insertSeedResource(ctx context.Context, tx *sql.Tx, hobbyID string, r seedResource) error {
	resourceID := uuid.NewString()
	_, err := tx.ExecContext(ctx, `
		INSERT INTO resources (id, hobby_id, title, description, type, url, source, level,
			time_minutes, free_paid, popularity_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, resourceID, hobbyID, r.title, r.description, r.kind, r.url, r.source, r.level,
		r.minutes, r.freePaid, r.popularity)
	if err != nil {
		return fmt.Errorf("insert resource %q: %w", r.title, err)
	}

	for _, name := range r.tags {
		var tagID string
		err := tx.QueryRowContext(ctx, `
			INSERT INTO tags (id, name) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, uuid.NewString(), name).Scan(&tagID)
		if err != nil {
			return fmt.Errorf("upsert tag %s: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO resource_tags (resource_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, resourceID, tagID); err != nil {
			return fmt.Errorf("link tag %s: %w", name, err)
		}
	}
	return nil
}
