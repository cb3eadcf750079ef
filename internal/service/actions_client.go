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

// ActionsClient reads outstanding onboarding actions from the actions
// service.
type ActionsClient struct {
	baseURL    string
	httpClient domain.HTTPClient
	logger     logger.Logger
}

func NewActionsClient(baseURL string, httpClient domain.HTTPClient, logger logger.Logger) *ActionsClient {
	return &ActionsClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetActions returns the actions registered for a person and programme.
func (c *ActionsClient) GetActions(ctx context.Context, personID, programmeID string) ([]domain.Action, error) {
	endpoint := fmt.Sprintf("%s/api/action/%s/%s",
		c.baseURL, url.PathEscape(personID), url.PathEscape(programmeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithField("personId", personID).
			Error(fmt.Sprintf("Failed to get actions: %v", err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error(fmt.Sprintf("Actions service returned status %d: %s", resp.StatusCode, string(body)))
		return nil, fmt.Errorf("actions service returned status %d", resp.StatusCode)
	}

	var actions []domain.Action
	if err := json.NewDecoder(resp.Body).Decode(&actions); err != nil {
		return nil, fmt.Errorf("failed to decode actions: %w", err)
	}
	return actions, nil
}
