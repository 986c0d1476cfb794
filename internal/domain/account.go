package domain

// Account is an identity issued by the auth layer. The ID is an opaque
// UUID string; every other subsystem derives its own identifiers from it.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}

// Profile is the user_profiles row keyed by the account UUID.
type Profile struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
	UpdatedOn   string `json:"updated_on"`
}

// BackendUser mirrors an Account inside the matching engine under a small
// integer id derived from the account UUID. At most one row should exist
// per account; the derivation is a non-cryptographic hash, so collisions
// between distinct accounts are possible and are not detected.
type BackendUser struct {
	UserID int32  `json:"user_id"`
	Name   string `json:"name"`
	Circle string `json:"circle"`
}

// AccountSummary is what account search returns to start a conversation.
type AccountSummary struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Circle string `json:"circle"`
}
