package catalog

import (
	"strings"

	"voyago/models"
)

// Category is the closed set of supported interest tags. Interest strings
// that do not parse to one of these contribute nothing to a template pool.
type Category string

const (
	Culture     Category = "culture"
	Food        Category = "food"
	Nature      Category = "nature"
	Nightlife   Category = "nightlife"
	Shopping    Category = "shopping"
	KidFriendly Category = "kid-friendly"
)

// Categories lists every supported category in a stable order.
func Categories() []Category {
	return []Category{Culture, Food, Nature, Nightlife, Shopping, KidFriendly}
}

// ParseCategory maps an interest tag onto a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Culture:
		return Culture, true
	case Food:
		return Food, true
	case Nature:
		return Nature, true
	case Nightlife:
		return Nightlife, true
	case Shopping:
		return Shopping, true
	case KidFriendly:
		return KidFriendly, true
	}
	return "", false
}

// OpenHours is the fractional-hour window an activity is assumed available.
// A window whose end falls past midnight (End < Start) admits no daytime
// slots under the literal start <= t <= end filter.
type OpenHours struct {
	Start float64
	End   float64
}

// ActivityTemplate is a static stencil for generating concrete activities.
type ActivityTemplate struct {
	Name          string
	Kind          string // display label: Culture, Food, Nature, Nightlife, Shopping, Family
	Duration      string
	Cost          map[models.BudgetTier]string
	Neighborhoods []string
	OpenHours     OpenHours
}

// TemplatesFor returns the templates of a category, nil for unknown ones.
// Callers must treat the returned slice as read-only.
func TemplatesFor(c Category) []ActivityTemplate {
	return templates[c]
}

func cost(low, medium, high string) map[models.BudgetTier]string {
	return map[models.BudgetTier]string{
		models.BudgetLow:    low,
		models.BudgetMedium: medium,
		models.BudgetHigh:   high,
	}
}

var templates = map[Category][]ActivityTemplate{
	Culture: {
		{
			Name:          "Visit Local Museum",
			Kind:          "Culture",
			Duration:      "2-3 hours",
			Cost:          cost("$10-15", "$15-25", "$25-40"),
			Neighborhoods: []string{"Downtown", "Arts District", "Historic Center", "Museum Quarter"},
			OpenHours:     OpenHours{Start: 9, End: 17},
		},
		{
			Name:          "Explore Historic District",
			Kind:          "Culture",
			Duration:      "2-4 hours",
			Cost:          cost("Free", "$5-10", "$15-25"),
			Neighborhoods: []string{"Old Town", "Historic Center", "Heritage District", "Colonial Quarter"},
			OpenHours:     OpenHours{Start: 8, End: 20},
		},
		{
			Name:          "Art Gallery Tour",
			Kind:          "Culture",
			Duration:      "1-2 hours",
			Cost:          cost("$5-10", "$15-20", "$20-35"),
			Neighborhoods: []string{"Arts District", "Gallery Row", "Creative Quarter", "Downtown"},
			OpenHours:     OpenHours{Start: 10, End: 18},
		},
		{
			Name:          "Local Architecture Walk",
			Kind:          "Culture",
			Duration:      "1-3 hours",
			Cost:          cost("Free", "$10-15", "$20-30"),
			Neighborhoods: []string{"Downtown", "Historic Center", "Financial District", "Old Town"},
			OpenHours:     OpenHours{Start: 8, End: 19},
		},
		{
			Name:          "Cultural Workshop",
			Kind:          "Culture",
			Duration:      "2-3 hours",
			Cost:          cost("$20-30", "$40-60", "$80-120"),
			Neighborhoods: []string{"Arts District", "Cultural Center", "Community Hub", "Creative Quarter"},
			OpenHours:     OpenHours{Start: 10, End: 16},
		},
	},
	Food: {
		{
			Name:          "Street Food Tour",
			Kind:          "Food",
			Duration:      "2-3 hours",
			Cost:          cost("$15-25", "$30-50", "$60-90"),
			Neighborhoods: []string{"Food District", "Night Market", "Local Quarter", "Street Food Hub"},
			OpenHours:     OpenHours{Start: 11, End: 22},
		},
		{
			Name:          "Local Market Visit",
			Kind:          "Food",
			Duration:      "1-2 hours",
			Cost:          cost("$10-20", "$20-35", "$40-60"),
			Neighborhoods: []string{"Market District", "Local Market", "Farmers Market", "Central Market"},
			OpenHours:     OpenHours{Start: 7, End: 15},
		},
		{
			Name:          "Cooking Class",
			Kind:          "Food",
			Duration:      "3-4 hours",
			Cost:          cost("$40-60", "$70-100", "$120-180"),
			Neighborhoods: []string{"Culinary District", "Local Kitchen", "Food Center", "Cooking School"},
			OpenHours:     OpenHours{Start: 10, End: 16},
		},
		{
			Name:          "Wine/Beer Tasting",
			Kind:          "Food",
			Duration:      "2-3 hours",
			Cost:          cost("$25-40", "$50-80", "$100-150"),
			Neighborhoods: []string{"Wine District", "Brewery Quarter", "Tasting Room", "Local Vineyard"},
			OpenHours:     OpenHours{Start: 14, End: 22},
		},
		{
			Name:          "Traditional Restaurant",
			Kind:          "Food",
			Duration:      "1-2 hours",
			Cost:          cost("$15-30", "$40-70", "$80-150"),
			Neighborhoods: []string{"Restaurant Row", "Local District", "Food Quarter", "Dining District"},
			OpenHours:     OpenHours{Start: 11, End: 23},
		},
	},
	Nature: {
		{
			Name:          "City Park Exploration",
			Kind:          "Nature",
			Duration:      "2-3 hours",
			Cost:          cost("Free", "$5-10", "$15-25"),
			Neighborhoods: []string{"Central Park", "Green District", "Park Area", "Nature Reserve"},
			OpenHours:     OpenHours{Start: 6, End: 20},
		},
		{
			Name:          "Hiking Trail",
			Kind:          "Nature",
			Duration:      "3-5 hours",
			Cost:          cost("Free", "$10-20", "$30-50"),
			Neighborhoods: []string{"Nature Reserve", "Trail Head", "Mountain Area", "Forest District"},
			OpenHours:     OpenHours{Start: 6, End: 18},
		},
		{
			Name:          "Botanical Garden Visit",
			Kind:          "Nature",
			Duration:      "1-2 hours",
			Cost:          cost("$8-15", "$15-25", "$25-40"),
			Neighborhoods: []string{"Garden District", "Botanical Area", "Green Quarter", "Nature Center"},
			OpenHours:     OpenHours{Start: 8, End: 17},
		},
		{
			Name:          "Scenic Viewpoint",
			Kind:          "Nature",
			Duration:      "1-2 hours",
			Cost:          cost("Free", "$5-15", "$20-35"),
			Neighborhoods: []string{"Viewpoint Area", "Scenic District", "Lookout Point", "Hill District"},
			OpenHours:     OpenHours{Start: 6, End: 21},
		},
		{
			Name:          "Nature Photography Tour",
			Kind:          "Nature",
			Duration:      "3-4 hours",
			Cost:          cost("$30-50", "$60-90", "$120-180"),
			Neighborhoods: []string{"Nature Reserve", "Scenic Area", "Wildlife District", "Photo Spots"},
			OpenHours:     OpenHours{Start: 7, End: 17},
		},
	},
	Nightlife: {
		{
			Name:          "Local Bar Crawl",
			Kind:          "Nightlife",
			Duration:      "3-4 hours",
			Cost:          cost("$30-50", "$60-100", "$120-200"),
			Neighborhoods: []string{"Entertainment District", "Bar Quarter", "Nightlife Area", "Party District"},
			OpenHours:     OpenHours{Start: 18, End: 2},
		},
		{
			Name:          "Live Music Venue",
			Kind:          "Nightlife",
			Duration:      "2-3 hours",
			Cost:          cost("$15-25", "$30-50", "$60-100"),
			Neighborhoods: []string{"Music District", "Live Venue Area", "Concert Hall", "Entertainment Quarter"},
			OpenHours:     OpenHours{Start: 19, End: 1},
		},
		{
			Name:          "Rooftop Cocktails",
			Kind:          "Nightlife",
			Duration:      "2-3 hours",
			Cost:          cost("$40-60", "$80-120", "$150-250"),
			Neighborhoods: []string{"Rooftop District", "Sky Bar Area", "High-rise Quarter", "View District"},
			OpenHours:     OpenHours{Start: 17, End: 1},
		},
		{
			Name:          "Night Market",
			Kind:          "Nightlife",
			Duration:      "2-3 hours",
			Cost:          cost("$10-20", "$25-40", "$50-80"),
			Neighborhoods: []string{"Night Market", "Evening District", "Street Market", "Local Night Scene"},
			OpenHours:     OpenHours{Start: 18, End: 24},
		},
		{
			Name:          "Dance Club",
			Kind:          "Nightlife",
			Duration:      "3-5 hours",
			Cost:          cost("$20-35", "$40-70", "$80-150"),
			Neighborhoods: []string{"Club District", "Dance Quarter", "Party Area", "Nightclub Row"},
			OpenHours:     OpenHours{Start: 21, End: 4},
		},
	},
	Shopping: {
		{
			Name:          "Local Artisan Markets",
			Kind:          "Shopping",
			Duration:      "2-3 hours",
			Cost:          cost("$20-40", "$50-100", "$150-300"),
			Neighborhoods: []string{"Artisan Quarter", "Craft Market", "Local Market", "Handmade District"},
			OpenHours:     OpenHours{Start: 9, End: 17},
		},
		{
			Name:          "Vintage Shopping District",
			Kind:          "Shopping",
			Duration:      "2-4 hours",
			Cost:          cost("$15-50", "$50-150", "$200-500"),
			Neighborhoods: []string{"Vintage Quarter", "Antique District", "Retro Area", "Second-hand Row"},
			OpenHours:     OpenHours{Start: 10, End: 18},
		},
		{
			Name:          "Souvenir Shopping",
			Kind:          "Shopping",
			Duration:      "1-2 hours",
			Cost:          cost("$10-30", "$30-80", "$100-200"),
			Neighborhoods: []string{"Tourist District", "Souvenir Row", "Gift Quarter", "Memorial Area"},
			OpenHours:     OpenHours{Start: 9, End: 19},
		},
		{
			Name:          "Local Boutiques",
			Kind:          "Shopping",
			Duration:      "2-3 hours",
			Cost:          cost("$30-80", "$100-250", "$300-600"),
			Neighborhoods: []string{"Fashion District", "Boutique Row", "Designer Quarter", "Style Area"},
			OpenHours:     OpenHours{Start: 10, End: 19},
		},
		{
			Name:          "Shopping Mall",
			Kind:          "Shopping",
			Duration:      "2-4 hours",
			Cost:          cost("$25-75", "$75-200", "$250-500"),
			Neighborhoods: []string{"Shopping Center", "Mall District", "Retail Quarter", "Commercial Area"},
			OpenHours:     OpenHours{Start: 10, End: 21},
		},
	},
	KidFriendly: {
		{
			Name:          "Children's Museum",
			Kind:          "Family",
			Duration:      "2-3 hours",
			Cost:          cost("$10-20", "$20-35", "$35-55"),
			Neighborhoods: []string{"Family District", "Museum Quarter", "Kids Area", "Educational Center"},
			OpenHours:     OpenHours{Start: 9, End: 17},
		},
		{
			Name:          "Zoo or Aquarium",
			Kind:          "Family",
			Duration:      "3-4 hours",
			Cost:          cost("$15-25", "$25-40", "$40-65"),
			Neighborhoods: []string{"Zoo District", "Animal Park", "Aquarium Area", "Wildlife Center"},
			OpenHours:     OpenHours{Start: 9, End: 17},
		},
		{
			Name:          "Playground & Park",
			Kind:          "Family",
			Duration:      "1-2 hours",
			Cost:          cost("Free", "$5-10", "$15-25"),
			Neighborhoods: []string{"Family Park", "Playground Area", "Kids District", "Recreation Center"},
			OpenHours:     OpenHours{Start: 6, End: 20},
		},
		{
			Name:          "Family-Friendly Show",
			Kind:          "Family",
			Duration:      "1-2 hours",
			Cost:          cost("$20-40", "$40-70", "$80-150"),
			Neighborhoods: []string{"Theater District", "Entertainment Quarter", "Show Area", "Performance Center"},
			OpenHours:     OpenHours{Start: 14, End: 20},
		},
		{
			Name:          "Interactive Science Center",
			Kind:          "Family",
			Duration:      "2-4 hours",
			Cost:          cost("$15-30", "$30-50", "$50-80"),
			Neighborhoods: []string{"Science District", "Discovery Center", "Learning Quarter", "Innovation Hub"},
			OpenHours:     OpenHours{Start: 9, End: 17},
		},
	},
}
