package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// ProfileClient reads the trainee-profile service.
type ProfileClient struct {
	baseURL    string
	httpClient domain.HTTPClient
	logger     logger.Logger
}

func NewProfileClient(baseURL string, httpClient domain.HTTPClient, logger logger.Logger) *ProfileClient {
	return &ProfileClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetAccountDetails returns the profile view for a trainee, or nil when the
// profile service has no record.
func (c *ProfileClient) GetAccountDetails(ctx context.Context, traineeID string) (*domain.TraineeProfile, error) {
	endpoint := fmt.Sprintf("%s/api/trainee-profile/account-details/%s",
		c.baseURL, url.PathEscape(traineeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithField("traineeId", traineeID).
			Error(fmt.Sprintf("Failed to get trainee profile: %v", err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error(fmt.Sprintf("Profile service returned status %d: %s", resp.StatusCode, string(body)))
		return nil, fmt.Errorf("profile service returned status %d", resp.StatusCode)
	}

	var profile domain.TraineeProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}
