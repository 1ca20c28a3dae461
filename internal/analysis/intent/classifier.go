// Package intent implements the rule-based topic classifier used by the
// chat pipeline's second resolution tier.
package intent

import (
	"regexp"
	"strings"
)

// Well-known intent names.
const (
	Empty    = "empty"
	Greeting = "greeting"
	Unknown  = "unknown"
)

// Classification is a coarse topic label with a static confidence
// annotation. Confidence is not computed; each rule carries a fixed value.
type Classification struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// greetingPattern matches messages that open with a salutation, possibly
// with trailing text. Tested before any keyword group.
var greetingPattern = regexp.MustCompile(`^\s*(hi|hello|hey|hiya|yo)\b`)

type rule struct {
	intent     string
	confidence float64
	keywords   []string
}

// rules is the fixed priority order. Order is the tie-break: a message
// containing keywords from several groups always resolves to the first
// group listed here. Changing the order changes observed behavior; keep
// any reordering deliberate.
var rules = []rule{
	{"personal_info", 0.98, []string{"age", "old", "gender", "sex", "pronoun", "married"}},
	{"contact", 0.95, []string{"contact", "email", "phone", "github", "linkedin", "social", "how to reach"}},
	{"education", 0.95, []string{"school", "college", "education", "degree", "bs", "bachelor", "study"}},
	{"projects", 0.94, []string{"project", "projects", "k-wise", "k-wise pc", "qr attendance", "pc build", "build kiosk", "qr attendance tracker"}},
	{"project_details", 0.94, []string{"k-wise details", "k-wise stats", "qr details", "pc build details"}},
	{"skills", 0.93, []string{"tech", "tech stack", "skills", "frontend", "backend", "react", "node", "javascript", "css", "html"}},
	{"experience", 0.93, []string{"experience", "work", "role", "position", "freelance", "qa", "developer"}},
	{"availability", 0.92, []string{"available", "hire", "hiring", "freelance", "open to work", "availability"}},
	{"resume", 0.9, []string{"resume", "cv", "curriculum", "download resume", "portfolio pdf"}},
	{"certifications", 0.9, []string{"certification", "certifications", "huawei", "google", "oracle", "testdome"}},
	{"location", 0.9, []string{"where", "location", "city", "calamba", "philippines", "timezone"}},
	{"repo", 0.9, []string{"github", "repo", "repository", "source code"}},
	{"achievements", 0.9, []string{"achievement", "awards", "results", "roi", "satisfaction"}},
	{"thanks", 0.9, []string{"thanks", "thank you", "thx"}},
}

// Classify normalizes the message and returns the first matching rule in
// priority order. Blank input short-circuits to the empty intent before any
// keyword test; no match at all yields unknown with confidence 0.5.
func Classify(message string) Classification {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return Classification{Intent: Empty, Confidence: 1}
	}

	if greetingPattern.MatchString(normalized) {
		return Classification{Intent: Greeting, Confidence: 0.99}
	}

	for _, r := range rules {
		if containsAny(normalized, r.keywords) {
			return Classification{Intent: r.intent, Confidence: r.confidence}
		}
	}

	return Classification{Intent: Unknown, Confidence: 0.5}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
