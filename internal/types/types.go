package types

// ExampleSite is a curated prompt offered to users who want a starting point.
type ExampleSite struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Prompt      string   `json:"prompt"`
	Tags        []string `json:"tags"`
	Preview     string   `json:"preview"`  // e.g., "/creative-portfolio-dark.png"
	Category    string   `json:"category"` // one of examples.Categories()
}
