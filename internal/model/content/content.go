// Package content holds the read-only portfolio documents served by the
// content API: about, experience, projects, certifications, recommendations.
package content

import "time"

// About is the single profile document. Only the most recently updated
// record is served.
type About struct {
	Name       string    `json:"name" bson:"name"`
	Location   string    `json:"location" bson:"location"`
	Roles      []string  `json:"roles" bson:"roles"`
	Tagline    string    `json:"tagline" bson:"tagline"`
	Paragraphs []string  `json:"paragraphs" bson:"paragraphs"`
	Highlights []string  `json:"highlights" bson:"highlights"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Experience is one résumé entry, ordered ascending by Order.
type Experience struct {
	Title        string `json:"title" bson:"title"`
	Organization string `json:"organization" bson:"organization"`
	Timeframe    string `json:"timeframe" bson:"timeframe"`
	Description  string `json:"description" bson:"description"`
	Order        int    `json:"order" bson:"order"`
}

// Project is a showcased project card, ordered ascending by Order.
type Project struct {
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Stack       []string `json:"stack" bson:"stack"`
	Year        string   `json:"year" bson:"year"`
	Image       string   `json:"image" bson:"image"`
	Link        string   `json:"link" bson:"link"`
	Highlight   string   `json:"highlight" bson:"highlight"`
	Order       int      `json:"order" bson:"order"`
}

// Certification is a single credential, served newest first.
type Certification struct {
	Title     string    `json:"title" bson:"title"`
	Issuer    string    `json:"issuer" bson:"issuer"`
	Year      string    `json:"year" bson:"year"`
	Badge     string    `json:"badge,omitempty" bson:"badge,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Recommendation is a testimonial quote, served newest first.
type Recommendation struct {
	Quote     string    `json:"quote" bson:"quote"`
	Author    string    `json:"author" bson:"author"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
