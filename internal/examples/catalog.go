package examples

import (
	"strings"

	"skyit_builder/internal/types"
)

// AllCategories is the pseudo-category that matches every example.
const AllCategories = "All"

var categories = []string{AllCategories, "Business", "Portfolio", "E-commerce", "Blog", "Health"}

var catalog = []types.ExampleSite{
	{
		ID:          1,
		Title:       "Modern Restaurant Website",
		Description: "Elegant restaurant site with menu, reservations, and gallery",
		Prompt:      "Create a modern restaurant website with a hero section, online menu with prices, reservation form, photo gallery, and contact information. Use warm colors and elegant typography.",
		Tags:        []string{"Restaurant", "Business", "Modern"},
		Preview:     "/modern-restaurant-website-with-elegant-design.jpg",
		Category:    "Business",
	},
	{
		ID:          2,
		Title:       "Creative Portfolio",
		Description: "Stunning portfolio for designers and creatives",
		Prompt:      "Build a creative portfolio website for a graphic designer with a bold hero section, project showcase grid, about section, skills list, and contact form. Use a dark theme with vibrant accent colors.",
		Tags:        []string{"Portfolio", "Creative", "Dark Theme"},
		Preview:     "/creative-portfolio-dark.png",
		Category:    "Portfolio",
	},
	{
		ID:          3,
		Title:       "SaaS Landing Page",
		Description: "Professional landing page for software products",
		Prompt:      "Create a SaaS landing page with hero section, feature highlights, pricing tiers, testimonials, and CTA buttons. Use a clean, professional design with blue and white colors.",
		Tags:        []string{"SaaS", "Landing Page", "Professional"},
		Preview:     "/saas-landing-page-professional-blue-design.jpg",
		Category:    "Business",
	},
	{
		ID:          4,
		Title:       "E-commerce Store",
		Description: "Complete online store with product catalog",
		Prompt:      "Build an e-commerce website for handmade crafts with product grid, individual product pages, shopping cart, and checkout form. Use warm, earthy colors and friendly typography.",
		Tags:        []string{"E-commerce", "Shopping", "Crafts"},
		Preview:     "/ecommerce-store-handmade-crafts-warm-colors.jpg",
		Category:    "E-commerce",
	},
	{
		ID:          5,
		Title:       "Personal Blog",
		Description: "Clean blog layout with article listings",
		Prompt:      "Create a personal blog website with article listings, individual post pages, author bio, categories, and search functionality. Use a minimalist design with good typography.",
		Tags:        []string{"Blog", "Personal", "Minimalist"},
		Preview:     "/personal-blog-minimalist-design-clean-typography.jpg",
		Category:    "Blog",
	},
	{
		ID:          6,
		Title:       "Fitness Studio",
		Description: "Dynamic website for fitness and wellness",
		Prompt:      "Build a fitness studio website with class schedules, trainer profiles, membership plans, and booking system. Use energetic colors and motivational imagery.",
		Tags:        []string{"Fitness", "Health", "Booking"},
		Preview:     "/fitness-studio-website-energetic-design.jpg",
		Category:    "Health",
	},
}

// Categories returns the filter values, "All" first.
func Categories() []string {
	return append([]string(nil), categories...)
}

// All returns a copy of the whole catalog.
func All() []types.ExampleSite {
	return append([]types.ExampleSite(nil), catalog...)
}

// ByCategory filters the catalog. Empty or "All" returns everything;
// matching ignores case.
func ByCategory(category string) []types.ExampleSite {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, AllCategories) {
		return All()
	}

	matches := []types.ExampleSite{}
	for _, ex := range catalog {
		if strings.EqualFold(ex.Category, category) {
			matches = append(matches, ex)
		}
	}
	return matches
}

func ByID(id int) (types.ExampleSite, bool) {
	for _, ex := range catalog {
		if ex.ID == id {
			return ex, true
		}
	}
	return types.ExampleSite{}, false
}
