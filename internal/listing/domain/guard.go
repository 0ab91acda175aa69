package domain

// Policy is the single place the who-can-do-what rules live. Every
// mutation path must consult it instead of re-deriving the rules.
type Policy struct {
	Admin string
}

// CanDelete decides whether actor may delete the listing from the
// given view. The admin may delete anything from anywhere; an owner
// only their own listing, and only from their profile page; anyone
// else (including no actor at all) never may.
func (p Policy) CanDelete(l *Listing, actor string, view View) bool {
	if actor == "" {
		return false
	}
	if actor == p.Admin {
		return true
	}
	return l.Seller == actor && view == ViewProfile
}

// CanPin allows pin and unpin for the admin only, regardless of view.
func (p Policy) CanPin(actor string) bool {
	return actor != "" && actor == p.Admin
}
