package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/pkg/logger"
)

// AccountClient looks accounts up in the identity directory.
type AccountClient struct {
	baseURL    string
	httpClient domain.HTTPClient
	logger     logger.Logger
}

func NewAccountClient(baseURL string, httpClient domain.HTTPClient, logger logger.Logger) *AccountClient {
	return &AccountClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FindIDsByTraineeID returns the account ids registered for a trainee. Zero
// ids is a valid answer, not an error.
func (c *AccountClient) FindIDsByTraineeID(ctx context.Context, traineeID string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/user-account/trainee/%s", c.baseURL, url.PathEscape(traineeID))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("account service returned status %d", status)
	}

	var ids []string
	for _, id := range gjson.GetBytes(body, "ids").Array() {
		ids = append(ids, id.String())
	}
	return ids, nil
}

// FindIDByEmail returns the account id registered with the address.
func (c *AccountClient) FindIDByEmail(ctx context.Context, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/user-account/email/%s", c.baseURL, url.PathEscape(email))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", domain.ErrNoAccount
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("account service returned status %d", status)
	}

	id := gjson.GetBytes(body, "id").String()
	if id == "" {
		return "", domain.ErrNoAccount
	}
	return id, nil
}

// GetDetails returns the directory view of an account.
func (c *AccountClient) GetDetails(ctx context.Context, accountID string) (*domain.UserAccountDetails, error) {
	endpoint := fmt.Sprintf("%s/api/user-account/%s", c.baseURL, url.PathEscape(accountID))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrNoAccount
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("account service returned status %d", status)
	}

	var details domain.UserAccountDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode account details: %w", err)
	}
	return &details, nil
}

func (c *AccountClient) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Failed to call account service: %v", err))
		return nil, 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
