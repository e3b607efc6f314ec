package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-tracker/internal/common/logger"
	"candidate-tracker/internal/service"
	"candidate-tracker/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.NewNoOpLogger()
	candidateService := service.NewCandidateService(
		store.NewCandidateStore(db), store.NewHistoryStore(db), log)
	notificationService := service.NewNotificationService(store.NewNotificationStore(db), log)
	dashboardService := service.NewDashboardService(store.NewDashboardStore(db), nil, log)
	positionService := service.NewPositionService(store.NewPositionStore(db))

	router := NewRouter(Dependencies{
		Candidates:    NewCandidateHandler(candidateService),
		Notifications: NewNotificationHandler(notificationService),
		Dashboard:     NewDashboardHandler(dashboardService),
		Positions:     NewPositionHandler(positionService),
		Logger:        log,
	})
	return router, mock
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func candidateRow(id int64) *sqlmock.Rows {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "name", "email", "phone", "position", "resume", "cover_letter",
		"status", "applied_date", "created_at",
	}).AddRow(id, "Jane Doe", "jane@example.com", "+15550100", "Backend Engineer",
		nil, nil, "pending", created, created)
}

func TestRegisterEndpoint_Created(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO candidates (.+) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(`INSERT INTO notifications`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM candidates WHERE id = \$1`).
		WillReturnRows(candidateRow(7))

	w := doRequest(router, http.MethodPost, "/api/candidates",
		`{"name":"Jane Doe","email":"jane@example.com","phone":"+15550100","position":"Backend Engineer"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pending", body["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	router, mock := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/candidates",
		`{"name":"Jane Doe","email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterEndpoint_Conflict(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	w := doRequest(router, http.MethodPost, "/api/candidates",
		`{"name":"Jane Doe","email":"jane@example.com","phone":"1","position":"Backend Engineer"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCandidateEndpoint_NotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM candidates WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	w := doRequest(router, http.MethodGet, "/api/candidates/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		router, mock := newTestRouter(t)

		w := doRequest(router, http.MethodPatch, "/api/candidates/7/status", `{"status":"archived"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success", func(t *testing.T) {
		router, mock := newTestRouter(t)

		mock.ExpectQuery(`SELECT name, position FROM candidates WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"name", "position"}).
				AddRow("Jane Doe", "Backend Engineer"))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE candidates SET status`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO application_history`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(`INSERT INTO notifications`).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		w := doRequest(router, http.MethodPatch, "/api/candidates/7/status", `{"status":"approved"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "approved", body["status"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteEndpoint_NotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`DELETE FROM candidates WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doRequest(router, http.MethodDelete, "/api/candidates/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotificationReadEndpoint_UnknownIDStillSucceeds(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := doRequest(router, http.MethodPatch, "/api/notifications/9999/read", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStatsEndpoint(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "approved", "rejected"}).
			AddRow(10, 5, 3, 2))

	w := doRequest(router, http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]int{"total": 10, "pending": 5, "approved": 3, "rejected": 2}, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCandidatesEndpoint_StoreFailureIs500(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM candidates ORDER BY created_at DESC`).
		WillReturnError(sql.ErrConnDone)

	w := doRequest(router, http.MethodGet, "/api/candidates", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
