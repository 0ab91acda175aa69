package usecase

import (
	"sort"
	"strings"

	"github.com/sohaum/nepalibazar/internal/listing/domain"
)

// Query carries the page-supplied filter, sort and pagination
// parameters. Zero values are no-ops: empty text and category keep
// everything, empty sort means newest first, and Limit/PageSize of 0
// keep the whole sequence.
type Query struct {
	Text     string
	Category string
	Sort     domain.SortMode
	Limit    int
	Page     int
	PageSize int
}

// ApplyQuery runs the fixed pipeline over an already expiry-filtered
// collection: free-text filter, category filter, stable sort, then
// pagination or limit. It never mutates its input.
func ApplyQuery(listings []domain.Listing, q Query) []domain.Listing {
	out := filterText(listings, q.Text)
	out = filterCategory(out, q.Category)
	out = sortListings(out, q.Sort)
	if q.PageSize > 0 {
		return Paginate(out, q.Page, q.PageSize)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Paginate slices out the 1-based page of the given size. A page past
// the end clamps to the last available page instead of erroring.
func Paginate(listings []domain.Listing, page, pageSize int) []domain.Listing {
	if pageSize <= 0 {
		return listings
	}
	pages := (len(listings) + pageSize - 1) / pageSize
	if pages == 0 {
		return []domain.Listing{}
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}

// PageCount reports how many pages of the given size the sequence
// fills.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func filterText(listings []domain.Listing, text string) []domain.Listing {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return listings
	}
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		haystack := strings.ToLower(l.Title + " " + l.Description + " " + l.Seller + " " + l.Location)
		if strings.Contains(haystack, needle) {
			out = append(out, l)
		}
	}
	return out
}

func filterCategory(listings []domain.Listing, category string) []domain.Listing {
	if category == "" {
		return listings
	}
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// sortListings copies and stable-sorts, so equal keys keep their
// insertion order and repeated calls stay deterministic.
func sortListings(listings []domain.Listing, mode domain.SortMode) []domain.Listing {
	out := make([]domain.Listing, len(listings))
	copy(out, listings)
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt.Time) })
	}
	return out
}
