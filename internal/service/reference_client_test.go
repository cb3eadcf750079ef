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

func newReferenceClient(t *testing.T, ctrl *gomock.Controller) (*ReferenceClient, *mocks.MockHTTPClient) {
	t.Helper()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := NewReferenceClient("http://reference.example.com", httpClient, logger.NewTestLogger(t))
	return client, httpClient
}

func TestReferenceClient_GetLocalOfficeContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newReferenceClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			// Office names contain spaces, so the path segment is escaped.
			assert.Equal(t, "http://reference.example.com/api/local-office-contact-by-lo-name/NHSE%20London", req.URL.String())
			return jsonResponse(http.StatusOK, `[
				{"contactTypeName": "LTFT", "contact": "ltft@nhse.example.com"},
				{"contactTypeName": "TSS_SUPPORT", "contact": "https://support.example.com/tss"}
			]`), nil
		})

	contacts, err := client.GetLocalOfficeContacts(context.Background(), "NHSE London")

	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, domain.DeaneryContact{ContactTypeName: "LTFT", Contact: "ltft@nhse.example.com"}, contacts[0])
}

func TestReferenceClient_GetLocalOfficeContactsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newReferenceClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusNotFound, ``), nil)

	contacts, err := client.GetLocalOfficeContacts(context.Background(), "Unknown Office")

	require.NoError(t, err)
	assert.Nil(t, contacts)
}

func TestReferenceClient_GetLocalOfficeContactsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newReferenceClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusInternalServerError, `boom`), nil)

	_, err := client.GetLocalOfficeContacts(context.Background(), "NHSE London")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference service returned status 500")
}

func TestReferenceClient_GetLocalOfficeContactsTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newReferenceClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).Return(nil, assert.AnError)

	_, err := client.GetLocalOfficeContacts(context.Background(), "NHSE London")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestReferenceClient_GetLocalOfficeContactsMalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, httpClient := newReferenceClient(t, ctrl)

	httpClient.EXPECT().Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"not": "a list"}`), nil)

	_, err := client.GetLocalOfficeContacts(context.Background(), "NHSE London")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode contacts")
}
