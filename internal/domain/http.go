package domain

import "net/http"

//go:generate mockgen -destination mocks/mock_http_client.go -package mocks github.com/TraineeHub/notify/internal/domain HTTPClient

// HTTPClient defines the interface for HTTP operations
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
