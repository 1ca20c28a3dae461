package mongo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	contentmodel "github.com/defnotwig/portfolio/backend/internal/model/content"
)

const (
	aboutCollection           = "about"
	experienceCollection      = "experiences"
	projectsCollection        = "projects"
	certificationsCollection  = "certifications"
	recommendationsCollection = "recommendations"
)

// ContentStore serves portfolio documents from Mongo.
type ContentStore struct {
	db *mongo.Database
}

// NewContentStore returns a content store over the given database.
func NewContentStore(db *mongo.Database) *ContentStore {
	return &ContentStore{db: db}
}

// About returns the most recently updated profile document.
func (s *ContentStore) About(ctx context.Context) (contentmodel.About, error) {
	var about contentmodel.About
	err := s.db.Collection(aboutCollection).
		FindOne(ctx, bson.D{}, options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})).
		Decode(&about)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return contentmodel.About{}, nil
		}
		return contentmodel.About{}, fmt.Errorf("find about: %w", err)
	}
	return about, nil
}

// Experiences returns résumé entries ordered ascending.
func (s *ContentStore) Experiences(ctx context.Context) ([]contentmodel.Experience, error) {
	var out []contentmodel.Experience
	if err := s.findAll(ctx, experienceCollection, bson.D{{Key: "order", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Projects returns project cards ordered ascending.
func (s *ContentStore) Projects(ctx context.Context) ([]contentmodel.Project, error) {
	var out []contentmodel.Project
	if err := s.findAll(ctx, projectsCollection, bson.D{{Key: "order", Value: 1}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Certifications returns credentials, newest first.
func (s *ContentStore) Certifications(ctx context.Context) ([]contentmodel.Certification, error) {
	var out []contentmodel.Certification
	if err := s.findAll(ctx, certificationsCollection, bson.D{{Key: "createdAt", Value: -1}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recommendations returns testimonials, newest first.
func (s *ContentStore) Recommendations(ctx context.Context) ([]contentmodel.Recommendation, error) {
	var out []contentmodel.Recommendation
	if err := s.findAll(ctx, recommendationsCollection, bson.D{{Key: "createdAt", Value: -1}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ContentStore) findAll(ctx context.Context, collection string, sort bson.D, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, options.Find().SetSort(sort))
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// SeedContent replaces each content collection with the supplied seed set
// so only the latest records exist after boot.
func SeedContent(ctx context.Context, db *mongo.Database, seed contentmodel.Seed) error {
	now := time.Now().UTC()
	seed.About.UpdatedAt = now

	if err := resetAndSeed(ctx, db.Collection(aboutCollection), []interface{}{seed.About}); err != nil {
		return err
	}

	experiences := make([]interface{}, 0, len(seed.Experiences))
	for _, e := range seed.Experiences {
		experiences = append(experiences, e)
	}
	if err := resetAndSeed(ctx, db.Collection(experienceCollection), experiences); err != nil {
		return err
	}

	projects := make([]interface{}, 0, len(seed.Projects))
	for _, p := range seed.Projects {
		projects = append(projects, p)
	}
	if err := resetAndSeed(ctx, db.Collection(projectsCollection), projects); err != nil {
		return err
	}

	// Stagger createdAt so "newest first" preserves the seed file order.
	certifications := make([]interface{}, 0, len(seed.Certifications))
	for i, c := range seed.Certifications {
		c.CreatedAt = now.Add(-time.Duration(i) * time.Second)
		certifications = append(certifications, c)
	}
	if err := resetAndSeed(ctx, db.Collection(certificationsCollection), certifications); err != nil {
		return err
	}

	recommendations := make([]interface{}, 0, len(seed.Recommendations))
	for i, rec := range seed.Recommendations {
		rec.CreatedAt = now.Add(-time.Duration(i) * time.Second)
		recommendations = append(recommendations, rec)
	}
	if err := resetAndSeed(ctx, db.Collection(recommendationsCollection), recommendations); err != nil {
		return err
	}

	log.Printf("[mongo] content collections seeded")
	return nil
}

func resetAndSeed(ctx context.Context, collection *mongo.Collection, docs []interface{}) error {
	if _, err := collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear %s: %w", collection.Name(), err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", collection.Name(), err)
	}
	return nil
}
