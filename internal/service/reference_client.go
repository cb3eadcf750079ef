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

// ReferenceClient reads deanery contact lists from the reference service.
type ReferenceClient struct {
	baseURL    string
	httpClient domain.HTTPClient
	logger     logger.Logger
}

func NewReferenceClient(baseURL string, httpClient domain.HTTPClient, logger logger.Logger) *ReferenceClient {
	return &ReferenceClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetLocalOfficeContacts fetches the contact list for a local office by its
// display name.
func (c *ReferenceClient) GetLocalOfficeContacts(ctx context.Context, localOfficeName string) ([]domain.DeaneryContact, error) {
	endpoint := fmt.Sprintf("%s/api/local-office-contact-by-lo-name/%s",
		c.baseURL, url.PathEscape(localOfficeName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Failed to get local office contacts: %v", err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error(fmt.Sprintf("Reference service returned status %d: %s", resp.StatusCode, string(body)))
		return nil, fmt.Errorf("reference service returned status %d", resp.StatusCode)
	}

	var contacts []domain.DeaneryContact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
