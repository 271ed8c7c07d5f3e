package model

// GuestUsername is the reserved identity for unregistered play.
// Guest rounds are never recorded.
const GuestUsername = "guest"

// Account is a registered player's credential record. The password is
// stored and compared in plain text; this is a local single-player game
// and the store is not a security boundary.
type Account struct {
	// Username keys the account in the store and is not repeated
	// inside the stored document.
	Username string `json:"-"`

	Password string `json:"password"`

	// Games is carried in the stored document for shape compatibility
	// but is not read by anything.
	Games []string `json:"games"`
}

// IsGuest returns true for the reserved guest identity
func (a *Account) IsGuest() bool {
	return a.Username == GuestUsername
}
