package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TraineeHub/notify/internal/domain"
	"github.com/TraineeHub/notify/internal/domain/mocks"
	"github.com/TraineeHub/notify/pkg/logger"
)

func newActionsClient(t *testing.T, ctrl *gomock.Controller) (*ActionsClient, *mocks.MockHTTPClient) {
	t.Helper()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := NewActionsClient("http://actions.example.com", httpClient, logger.NewTestLogger(t))
	return client, httpClient
}

func TestActionsClient_GetActions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newActionsClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "http://actions.example.com/api/action/trainee-1/pm-1", req.URL.String())
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			return jsonResponse(http.StatusOK, `[
				{"type": "SIGN_COJ", "dueBy": "2025-10-01", "completed": "2025-08-01T10:00:00Z"},
				{"type": "REGISTER_TSS", "dueBy": "2025-10-01"}
			]`), nil
		})

	actions, err := client.GetActions(context.Background(), "trainee-1", "pm-1")

	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, domain.ActionSignCoj, actions[0].Type)
	assert.True(t, actions[0].IsComplete())
	assert.Equal(t, domain.ActionRegisterTss, actions[1].Type)
	assert.False(t, actions[1].IsComplete())
}

func TestActionsClient_GetActionsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newActionsClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusNotFound, ``), nil)

	// No checklist means nothing outstanding, not a failure.
	actions, err := client.GetActions(context.Background(), "trainee-1", "pm-1")

	require.NoError(t, err)
	assert.Nil(t, actions)
}

func TestActionsClient_GetActionsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newActionsClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusServiceUnavailable, ``), nil)

	_, err := client.GetActions(context.Background(), "trainee-1", "pm-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "actions service returned status 503")
}

func TestActionsClient_GetActionsTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newActionsClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).Return(nil, assert.AnError)

	_, err := client.GetActions(context.Background(), "trainee-1", "pm-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestActionsClient_GetActionsMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newActionsClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"type": "SIGN_COJ"}`), nil)

	_, err := client.GetActions(context.Background(), "trainee-1", "pm-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode actions")
}
