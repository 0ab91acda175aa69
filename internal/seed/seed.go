package seed

import (
	"time"

	"github.com/sohaum/nepalibazar/internal/listing/usecase"
)

// Catalog returns the demo listings the site ships with. Ids and
// creation dates are fixed so seeding is reproducible.
func Catalog() []usecase.CreateInput {
	return []usecase.CreateInput{
		{
			ID:          "p001",
			Title:       "Used iPhone 11 - Good Condition",
			Price:       25000,
			Currency:    "Rs.",
			Category:    "Electronics",
			Location:    "Kathmandu",
			Seller:      "Suresh",
			Contact:     "9800000001",
			Description: "iPhone 11 with minor scratches. Battery health 86%. Charger included.",
			Images:      []string{"assets/images/iphone11.jpg"},
			CreatedAt:   time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p002",
			Title:       "Second-hand Mountain Bike",
			Price:       18000,
			Currency:    "Rs.",
			Category:    "Vehicles",
			Location:    "Pokhara",
			Seller:      "Ramesh",
			Contact:     "9800000002",
			Description: "Hardtail MTB, 26\" wheel, used but strong. Great for college rides.",
			Images:      []string{"assets/images/bike.jpg"},
			CreatedAt:   time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p003",
			Title:       "Textbooks — Engineering (Set of 5)",
			Price:       3500,
			Currency:    "Rs.",
			Category:    "Books",
			Location:    "Dhulikhel",
			Seller:      "CampusStore",
			Contact:     "store@campusbooks.com.np",
			Description: "Semester textbooks in good condition. Physics, Math, Chemistry, C Programming, Economics.",
			Images:      []string{"assets/images/books.jpg"},
			CreatedAt:   time.Date(2025, time.September, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p004",
			Title:       "Vintage Wooden Study Table",
			Price:       4500,
			Currency:    "Rs.",
			Category:    "Furniture",
			Location:    "Lalitpur",
			Seller:      "Anita",
			Contact:     "9800000004",
			Description: "Solid pine table, small marks but sturdy. Dimensions: 120x60 cm.",
			Images:      []string{"assets/images/table.jpg"},
			CreatedAt:   time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p005",
			Title:       "Nike Sports Shoes — Size 9",
			Price:       3200,
			Currency:    "Rs.",
			Category:    "Clothing",
			Location:    "Kathmandu",
			Seller:      "SportsNepal",
			Contact:     "9800000005",
			Description: "Lightweight running shoes, lightly used.",
			Images:      []string{"assets/images/shoes.jpg"},
			CreatedAt:   time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}
