package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateNewListing checks the sell-form contract before a listing
// may reach the repository: required title, price within [0, maxPrice]
// (0 means free, not absent), and a contact that is either exactly ten
// digits or an email address.
func ValidateNewListing(l *Listing, maxPrice int64) error {
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidListingData)
	}
	if l.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidListingData)
	}
	if l.Price > maxPrice {
		return fmt.Errorf("%w: price cannot exceed %d", ErrInvalidListingData, maxPrice)
	}
	if !phonePattern.MatchString(l.Contact) && !emailPattern.MatchString(l.Contact) {
		return fmt.Errorf("%w: contact must be a 10-digit phone number or an email address", ErrInvalidListingData)
	}
	return nil
}
