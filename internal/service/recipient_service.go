package service

import (
	"context"
	"fmt"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// RecipientService merges the identity directory and the profile service
// into a single recipient view.
type RecipientService struct {
	accountClient domain.AccountClient
	profileClient domain.ProfileClient
	logger        logger.Logger
}

func NewRecipientService(accountClient domain.AccountClient, profileClient domain.ProfileClient, logger logger.Logger) *RecipientService {
	return &RecipientService{
		accountClient: accountClient,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Resolve looks the trainee up in the identity directory and enriches the
// result with the profile view. A trainee with exactly one account is
// registered and keeps the directory contact details; zero or multiple
// accounts fall back to the profile alone with IsRegistered false. The
// original lookup failure surfaces only when the profile has nothing either.
func (s *RecipientService) Resolve(ctx context.Context, traineeID string) (*domain.Recipient, error) {
	accountIDs, err := s.accountClient.FindIDsByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up accounts for trainee %s: %w", traineeID, err)
	}

	switch {
	case len(accountIDs) == 0:
		return s.resolveFromProfile(ctx, traineeID, domain.ErrNoAccount)
	case len(accountIDs) > 1:
		s.logger.WithFields(map[string]interface{}{
			"traineeId":  traineeID,
			"accountIds": accountIDs,
		}).Warn("Multiple directory accounts found for trainee")
		return s.resolveFromProfile(ctx, traineeID, &domain.AmbiguousAccountError{TraineeID: traineeID, AccountIDs: accountIDs})
	}

	details, err := s.accountClient.GetDetails(ctx, accountIDs[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get account details for trainee %s: %w", traineeID, err)
	}

	recipient := &domain.Recipient{
		TraineeID:    traineeID,
		IsRegistered: true,
		Email:        details.Email,
		FamilyName:   details.FamilyName,
		GivenName:    details.GivenName,
	}

	// Title and GMC number only live in the profile; an unavailable profile
	// service degrades to blank fields rather than failing the send.
	profile, err := s.profileClient.GetAccountDetails(ctx, traineeID)
	if err != nil {
		s.logger.WithField("traineeId", traineeID).Warn(fmt.Sprintf("Profile service unavailable, sending without profile details: %v", err))
		return recipient, nil
	}
	if profile != nil {
		recipient.Title = profile.Title
		recipient.GmcNumber = profile.GmcNumber
	}

	return recipient, nil
}

// resolveFromProfile builds the unregistered view. cause is returned when the
// profile holds no record for the trainee at all.
func (s *RecipientService) resolveFromProfile(ctx context.Context, traineeID string, cause error) (*domain.Recipient, error) {
	profile, err := s.profileClient.GetAccountDetails(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for trainee %s: %w", traineeID, err)
	}
	if profile == nil {
		return nil, cause
	}

	return &domain.Recipient{
		TraineeID:    traineeID,
		IsRegistered: false,
		Email:        profile.Email,
		Title:        profile.Title,
		FamilyName:   profile.FamilyName,
		GivenName:    profile.GivenName,
		GmcNumber:    profile.GmcNumber,
	}, nil
}
