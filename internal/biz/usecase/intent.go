package usecase

import "strings"

// recommendationKeywords are checked by simple substring containment; the
// first hit short-circuits
var recommendationKeywords = []string{
	"recommend",
	"advice",
	"suggest",
	"tips",
	"what should i do",
	"how can i improve",
}

// IntentRouter decides whether a message asks for recommendations or logs
// activity. Pure classification, no side effects.
type IntentRouter struct {
	keywords []string
}

// NewIntentRouter creates a router with the default keyword set
func NewIntentRouter() *IntentRouter {
	return &IntentRouter{keywords: recommendationKeywords}
}

// IsRecommendationRequest reports whether the text asks for recommendations
func (r *IntentRouter) IsRecommendationRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
