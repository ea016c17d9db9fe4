package discovery

import "github.com/jonathan/opportunity-hub/internal/types"

// fallbackOpportunities is served whenever the model is unavailable or its answer is unusable.
var fallbackOpportunities = []types.Opportunity{
	{
		ID:           "mock-1",
		Title:        "Global AI Innovation Hackathon 2025",
		Organization: "Neural Systems",
		Type:         types.TypeHackathon,
		Category:     types.CategoryAIML,
		Level:        types.LevelInternational,
		Location:     "Remote / Virtual",
		Deadline:     "2025-06-15",
		IsPaid:       false,
		IsVerified:   true,
		URL:          "https://example.com/hackathon",
		Description:  "Join the world's largest AI hackathon. Build agents, LLM applications, and compete for $50k in prizes. Open to all students globally.",
	},
	{
		ID:           "mock-2",
		Title:        "Cloud Infrastructure Intern",
		Organization: "SkyNet Cloud",
		Type:         types.TypeInternship,
		Category:     types.CategoryIT,
		Level:        types.LevelNational,
		Location:     "San Francisco, CA",
		Deadline:     "2025-05-01",
		IsPaid:       true,
		IsVerified:   true,
		URL:          "https://example.com/internship",
		Description:  "Summer internship for students proficient in Go, Kubernetes, and Distributed Systems. Work on mission-critical cloud infrastructure.",
	},
	{
		ID:           "mock-3",
		Title:        "Future of Finance Case Competition",
		Organization: "Global Bank Corp",
		Type:         types.TypeCompetition,
		Category:     types.CategoryBusiness,
		Level:        types.LevelInternational,
		Location:     "New York, NY",
		Deadline:     "2025-04-20",
		IsPaid:       false,
		IsVerified:   true,
		URL:          "https://example.com/finance",
		Description:  "Analyze real-world financial datasets and propose fintech solutions. Finalists present to executive leadership.",
	},
	{
		ID:           "mock-4",
		Title:        "Astrophysics Research Fellow",
		Organization: "Deep Space Institute",
		Type:         types.TypeWorkshop,
		Category:     types.CategorySpace,
		Level:        types.LevelInternational,
		Location:     "London, UK",
		Deadline:     "2025-07-10",
		IsPaid:       true,
		IsVerified:   true,
		URL:          "https://example.com/space",
		Description:  "A 3-month intensive research fellowship for physics students. Collaborate on dark matter mapping projects.",
	},
}

// FallbackOpportunities returns a fresh copy of the canned dataset.
func FallbackOpportunities() []types.Opportunity {
	out := make([]types.Opportunity, len(fallbackOpportunities))
	copy(out, fallbackOpportunities)
	return out
}
