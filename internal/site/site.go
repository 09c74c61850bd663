// Package site holds the static navigation tree and page content.
package site

import (
	"strings"

	"gemshub/internal/domain"
)

// HomeHref is the landing page
const HomeHref = "/"

// Menu returns the sidebar tree
func Menu() []domain.MenuItem {
	return []domain.MenuItem{
		{Title: "Home", Href: HomeHref},
		{Title: "Gems", Href: "/gems/", Children: []domain.MenuItem{
			{Title: "Precious", Href: "/gems/precious"},
			{Title: "Semi-Precious", Href: "/gems/semi-precious"},
			{Title: "Organic", Href: "/gems/organic"},
		}},
		{Title: "Investments", Href: "/investments/", Children: []domain.MenuItem{
			{Title: "Market Trends", Href: "/investments/market-trends"},
			{Title: "Value Assessment", Href: "/investments/value-assessment"},
		}},
		{Title: "Jewelry", Href: "/jewelry/", Children: []domain.MenuItem{
			{Title: "Rings", Href: "/jewelry/rings"},
			{Title: "Necklaces", Href: "/jewelry/necklaces"},
			{Title: "Earrings", Href: "/jewelry/earrings"},
		}},
		{Title: "Labs", Href: "/labs/", Children: []domain.MenuItem{
			{Title: "GIA", Href: "/labs/gia"},
			{Title: "AGS", Href: "/labs/ags"},
			{Title: "IGI", Href: "/labs/igi"},
			{Title: "EGL", Href: "/labs/egl"},
		}},
		{Title: "Testing", Href: "/testing/", Children: []domain.MenuItem{
			{Title: "Refractive Index", Href: "/testing/refractive-index"},
			{Title: "Specific Gravity", Href: "/testing/specific-gravity"},
			{Title: "Spectroscopy", Href: "/testing/spectroscopy"},
			{Title: "Microscopy", Href: "/testing/microscopy"},
			{Title: "UV Fluorescence", Href: "/testing/uv-fluorescence"},
			{Title: "Polariscope", Href: "/testing/polariscope"},
		}},
		{Title: "Stores", Href: "/stores/"},
		{Title: "About", Href: "/about"},
	}
}

// Lookup finds the page for a menu href. Unknown hrefs get a stub page so
// navigation never dead-ends.
func Lookup(href string) domain.Page {
	if p, ok := pages[href]; ok {
		return p
	}
	return domain.Page{
		Href:        href,
		Title:       titleFromHref(href),
		Description: "Content for this page is coming soon.",
	}
}

func titleFromHref(href string) string {
	parts := strings.FieldsFunc(href, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return "Gems Hub"
	}
	words := strings.Split(parts[len(parts)-1], "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func gemCards(pairs ...string) []domain.Card {
	cards := make([]domain.Card, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		cards = append(cards, domain.Card{Title: pairs[i], Body: pairs[i+1]})
	}
	return cards
}

var preciousCards = gemCards(
	"Diamond", "The hardest natural material, known for brilliance",
	"Ruby", "The red variety of corundum, symbol of passion",
	"Sapphire", "Blue corundum, representing wisdom and royalty",
	"Emerald", "Green beryl, the gem of spring and rebirth",
)

var semiPreciousCards = gemCards(
	"Amethyst", "Purple quartz, stone of spirituality",
	"Topaz", "Available in many colors, known for clarity",
	"Garnet", "Deep red stone, symbol of energy",
	"Aquamarine", "Blue-green beryl, calming and serene",
)

var organicCards = gemCards(
	"Pearl", "Formed by mollusks, symbol of purity",
	"Amber", "Fossilized tree resin, preserving ancient life",
	"Coral", "Marine organism structures, vibrant colors",
)

var pages = map[string]domain.Page{
	HomeHref: {
		Href:        HomeHref,
		Title:       "Discover the World of Gems",
		Description: "Explore **precious** and **semi-precious** stones, learn about gem investments, and find the perfect jewelry pieces.",
		Sections: []domain.Section{
			{Anchor: "#precious", Title: "Precious Gems", Cards: preciousCards},
			{Anchor: "#semi-precious", Title: "Semi-Precious Gems", Cards: semiPreciousCards},
			{Anchor: "#organic", Title: "Organic Gems", Cards: organicCards},
		},
	},
	"/gems/": {
		Href:        "/gems/",
		Title:       "Type of Gems",
		Description: "Explore different types of gems including precious, semi-precious, and organic gemstones.",
		Sections: []domain.Section{
			{Anchor: "#precious", Title: "Precious Gems", Cards: gemCards(
				"Precious Gems", "The four precious gemstones: Diamond, Ruby, Sapphire, and Emerald")},
			{Anchor: "#semi-precious", Title: "Semi-Precious Gems", Cards: gemCards(
				"Semi-Precious Gems", "Beautiful gemstones including Amethyst, Topaz, Garnet, and more")},
			{Anchor: "#organic", Title: "Organic Gems", Cards: gemCards(
				"Organic Gems", "Natural organic materials like Pearl, Amber, and Coral")},
		},
	},
	"/gems/precious": {
		Href:        "/gems/precious",
		Title:       "Precious Gems",
		Description: "Learn about the four precious gemstones.",
		Sections:    []domain.Section{{Anchor: "#gems", Title: "Gems", Cards: preciousCards}},
	},
	"/gems/semi-precious": {
		Href:        "/gems/semi-precious",
		Title:       "Semi-Precious Gems",
		Description: "Discover beautiful semi-precious gemstones.",
		Sections:    []domain.Section{{Anchor: "#gems", Title: "Gems", Cards: semiPreciousCards}},
	},
	"/gems/organic": {
		Href:        "/gems/organic",
		Title:       "Organic Gems",
		Description: "Natural organic gemstones formed by living organisms.",
		Sections:    []domain.Section{{Anchor: "#gems", Title: "Gems", Cards: organicCards}},
	},
	"/labs/": {
		Href:        "/labs/",
		Title:       "Gem Labs",
		Description: "Independent laboratories that grade and certify gemstones.",
		Sections: []domain.Section{
			{Anchor: "#labs", Title: "Laboratories", Cards: gemCards(
				"GIA", "Gemological Institute of America",
				"AGS", "American Gem Society Laboratories",
				"IGI", "International Gemological Institute",
				"EGL", "European Gemological Laboratory",
			)},
		},
	},
	"/about": {
		Href:        "/about",
		Title:       "About Gems Hub",
		Description: "Your comprehensive resource for gems, gemstones, investments, and jewelry information.",
	},
}
