package domain

import "context"

//go:generate mockgen -destination mocks/mock_recipient.go -package mocks github.com/TraineeHub/notify/internal/domain AccountClient,ProfileClient,RecipientService

// UserAccountDetails is the identity-directory view of a trainee's account.
type UserAccountDetails struct {
	Email      string `json:"email"`
	FamilyName string `json:"familyName"`
	GivenName  string `json:"givenName"`
}

// TraineeProfile is the profile-service projection used at enrichment time.
type TraineeProfile struct {
	Email      string `json:"email"`
	Title      string `json:"title"`
	FamilyName string `json:"familyName"`
	GivenName  string `json:"givenName"`
	GmcNumber  string `json:"gmcNumber"`
}

// Recipient is the merged enrichment view built at send time. IsRegistered
// is true when the trainee has exactly one directory account.
type Recipient struct {
	TraineeID    string
	IsRegistered bool
	Email        string
	Title        string
	FamilyName   string
	GivenName    string
	GmcNumber    string
}

// AccountClient looks accounts up in the identity directory.
type AccountClient interface {
	// FindIDsByTraineeID returns zero or more account ids for a trainee.
	FindIDsByTraineeID(ctx context.Context, traineeID string) ([]string, error)
	// FindIDByEmail returns the account id registered with the address.
	FindIDByEmail(ctx context.Context, email string) (string, error)
	GetDetails(ctx context.Context, accountID string) (*UserAccountDetails, error)
}

// ProfileClient reads the trainee-profile service.
type ProfileClient interface {
	GetAccountDetails(ctx context.Context, traineeID string) (*TraineeProfile, error)
}

// RecipientService resolves the merged recipient view for a trainee.
type RecipientService interface {
	Resolve(ctx context.Context, traineeID string) (*Recipient, error)
}
