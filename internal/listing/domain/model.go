package domain

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// View identifies which page asked for a mutation. Only the
// owner-delete rule in Policy cares about it.
type View string

const (
	ViewHome    View = "home"
	ViewBrowse  View = "browse"
	ViewProfile View = "profile"
)

type SortMode string

const (
	SortNewest    SortMode = "newest"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// Listing is the one persisted entity. The JSON field names match the
// payload the store has always held (a plain array of these objects),
// so they must not change.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	Seller      string    `json:"seller,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   Timestamp `json:"createdAt"`
	ExpiryDate  *Date     `json:"expiryDate,omitempty"`
	Pinned      bool      `json:"pinned,omitempty"`
}

// Thumbnail returns the canonical preview image, empty when the caller
// should render a placeholder.
func (l *Listing) Thumbnail() string {
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return ""
}

// PriceLabel renders the price the way every surface must: price 0 is
// the FREE sentinel, never a blank or a zero.
func (l *Listing) PriceLabel(fallbackCurrency string) string {
	if l.Price == 0 {
		return "FREE"
	}
	currency := l.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	return currency + " " + groupDigits(l.Price)
}

func groupDigits(n int64) string {
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return string(out)
}

// Timestamp is a creation instant that reads both the date-only form
// the original store used and RFC3339.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return json.Marshal(t.Format(dateLayout))
	}
	return json.Marshal(t.Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if parsed, err := time.Parse(dateLayout, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Date is a civil date, day granularity only. A malformed payload
// unmarshals to the zero Date instead of erroring: a broken expiryDate
// must never hide a listing.
type Date struct {
	time.Time
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = Date{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		*d = Date{}
		return nil
	}
	d.Time = parsed
	return nil
}
