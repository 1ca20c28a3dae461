package content

import "context"

// Store exposes portfolio document retrieval for HTTP handlers. The
// pipeline only reads content; writes happen through seeding.
type Store interface {
	About(ctx context.Context) (About, error)
	Experiences(ctx context.Context) ([]Experience, error)
	Projects(ctx context.Context) ([]Project, error)
	Certifications(ctx context.Context) ([]Certification, error)
	Recommendations(ctx context.Context) ([]Recommendation, error)
}

// MemoryStore implements Store with preloaded slices, suitable for tests
// and for running without a database.
type MemoryStore struct {
	about           About
	experiences     []Experience
	projects        []Project
	certifications  []Certification
	recommendations []Recommendation
}

// NewMemoryStore returns a MemoryStore holding the supplied seed set.
func NewMemoryStore(seed Seed) *MemoryStore {
	return &MemoryStore{
		about:           seed.About,
		experiences:     append([]Experience(nil), seed.Experiences...),
		projects:        append([]Project(nil), seed.Projects...),
		certifications:  append([]Certification(nil), seed.Certifications...),
		recommendations: append([]Recommendation(nil), seed.Recommendations...),
	}
}

func (s *MemoryStore) About(_ context.Context) (About, error) {
	return s.about, nil
}

func (s *MemoryStore) Experiences(_ context.Context) ([]Experience, error) {
	return append([]Experience(nil), s.experiences...), nil
}

func (s *MemoryStore) Projects(_ context.Context) ([]Project, error) {
	return append([]Project(nil), s.projects...), nil
}

func (s *MemoryStore) Certifications(_ context.Context) ([]Certification, error) {
	return append([]Certification(nil), s.certifications...), nil
}

func (s *MemoryStore) Recommendations(_ context.Context) ([]Recommendation, error) {
	return append([]Recommendation(nil), s.recommendations...), nil
}
