package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	s, mocks := newTestServer()
	mocks.users.On("List", mock.Anything, mock.Anything, 20, 0).
		Return([]models.User{{ID: 1}, {ID: 2}}, int64(42), nil)

	app := fiber.New()
	app.Get("/admin/users", withUserID(1), s.AdminListUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		TotalPages int64 `json:"total_pages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, int64(42), payload.Total)
	assert.Equal(t, 1, payload.Page)
	assert.Equal(t, int64(3), payload.TotalPages)
}

func TestAdminListUsers_BannedFilter(t *testing.T) {
	s, mocks := newTestServer()
	mocks.users.On("List", mock.Anything, mock.MatchedBy(func(banned *bool) bool {
		return banned != nil && *banned
	}), 20, 0).Return([]models.User{}, int64(0), nil)

	app := fiber.New()
	app.Get("/admin/users", withUserID(1), s.AdminListUsers)

	req := httptest.NewRequest(http.MethodGet, "/admin/users?banned=true", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mocks.users.AssertExpectations(t)
}

func TestAdminPromoteUser(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockSetup      func(m *testMocks)
		expectedStatus int
	}{
		{
			name:   "Success",
			target: "/admin/users/2/promote",
			mockSetup: func(m *testMocks) {
				m.users.On("GetByID", mock.Anything, uint(2)).
					Return(&models.User{ID: 2, Email: "t@e.com"}, nil)
				m.users.On("Update", mock.Anything, mock.Anything).Return(nil)
				m.adminLog.On("Append", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Already Admin",
			target: "/admin/users/2/promote",
			mockSetup: func(m *testMocks) {
				m.users.On("GetByID", mock.Anything, uint(2)).
					Return(&models.User{ID: 2, IsAdmin: true}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad ID",
			target:         "/admin/users/zero/promote",
			mockSetup:      func(m *testMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mocks := newTestServer()
			tt.mockSetup(mocks)

			app := fiber.New()
			app.Post("/admin/users/:id/promote", withUserID(1), s.AdminPromoteUser)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAdminSetBan(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(m *testMocks)
		expectedStatus int
	}{
		{
			name: "Ban",
			body: map[string]interface{}{"banned": true, "reason": "spam"},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByID", mock.Anything, uint(2)).
					Return(&models.User{ID: 2, Email: "t@e.com"}, nil)
				m.users.On("Update", mock.Anything, mock.Anything).Return(nil)
				m.adminLog.On("Append", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Unban Not Banned",
			body: map[string]interface{}{"banned": false},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByID", mock.Anything, uint(2)).
					Return(&models.User{ID: 2}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Ban An Admin",
			body: map[string]interface{}{"banned": true},
			mockSetup: func(m *testMocks) {
				m.users.On("GetByID", mock.Anything, uint(2)).
					Return(&models.User{ID: 2, IsAdmin: true}, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mocks := newTestServer()
			tt.mockSetup(mocks)

			app := fiber.New()
			app.Put("/admin/users/:id/ban", withUserID(1), s.AdminSetBan)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPut, "/admin/users/2/ban", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAdminDeleteSwap(t *testing.T) {
	s, mocks := newTestServer()
	mocks.swaps.On("DeleteWithRatings", mock.Anything, uint(7)).Return(nil)
	mocks.adminLog.On("Append", mock.Anything, mock.Anything).Return(nil)

	app := fiber.New()
	app.Delete("/admin/swaps/:id", withUserID(1), s.AdminDeleteSwap)

	req := httptest.NewRequest(http.MethodDelete, "/admin/swaps/7", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mocks.swaps.AssertExpectations(t)
	mocks.adminLog.AssertExpectations(t)
}

func TestAdminSendAlert(t *testing.T) {
	s, mocks := newTestServer()
	mocks.adminLog.On("Append", mock.Anything, mock.MatchedBy(func(entry *models.AdminLog) bool {
		return entry.Action == models.AdminActionSendAlert && entry.Details == "maintenance tonight"
	})).Return(nil)

	app := fiber.New()
	app.Post("/admin/alerts", withUserID(1), s.AdminSendAlert)

	body, _ := json.Marshal(map[string]string{"message": "maintenance tonight"})
	req := httptest.NewRequest(http.MethodPost, "/admin/alerts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mocks.adminLog.AssertExpectations(t)
}

func TestAdminLogs(t *testing.T) {
	s, mocks := newTestServer()
	mocks.adminLog.On("List", mock.Anything, 20, 0).
		Return([]models.AdminLog{{ID: 1, Action: models.AdminActionBanUser}}, int64(1), nil)

	app := fiber.New()
	app.Get("/admin/logs", withUserID(1), s.AdminLogs)

	req := httptest.NewRequest(http.MethodGet, "/admin/logs", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
