package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheGodAnnihilator/TheSchedulePlus/database"
	"github.com/TheGodAnnihilator/TheSchedulePlus/router"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupTestDB opens an in-memory SQLite database with foreign keys on, so the
// cascade and set-null rules behave as they do on MySQL.
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys = ON")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func do(t *testing.T, r *gin.Engine, method, url string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

// TestEndToEndIntegration walks the main flow:
// 1. Register a client, manager, project, billable task and employee
// 2. Log hours on two days
// 3. Pull the daily, project and billing reports
// 4. Delete the client and watch the reference chain collapse
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB()
	r := router.SetupRouter(db)

	w, _ := do(t, r, http.MethodPost, "/api/clients", map[string]string{
		"client_id":   "ACME",
		"client_name": "Acme Engineering",
		"city":        "Portland",
		"zip_code":    "97201",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/project-managers", map[string]string{
		"client_id":    "ACME",
		"manager_name": "Dana Cole",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/projects", map[string]string{
		"project_no":     "P-100",
		"client_id":      "ACME",
		"project_name":   "Bridge Retrofit",
		"project_type":   "Scheduling",
		"project_status": "In Progress",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, response := do(t, r, http.MethodPost, "/api/tasks", map[string]interface{}{
		"client_id":   "ACME",
		"project_no":  "P-100",
		"task_name":   "Modeling",
		"billable":    "Yes",
		"hourly_rate": 10.0,
		"lumpsum":     50.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	taskID := int(response["data"].(map[string]interface{})["task_id"].(float64))

	w, _ = do(t, r, http.MethodPost, "/api/employs", map[string]interface{}{
		"employ_id":             "E01",
		"employ_name":           "Alice Warren",
		"employ_contact_number": "555-0101",
		"employ_email_address":  "alice@example.com",
		"hourly_rate":           45.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	for _, entry := range []struct {
		date  string
		hours float64
	}{
		{"2025-03-01", 3},
		{"2025-03-02", 4},
	} {
		w, _ = do(t, r, http.MethodPost, "/api/time-logs", map[string]interface{}{
			"log_date":   entry.date,
			"client_id":  "ACME",
			"project_no": "P-100",
			"task_id":    taskID,
			"employ_id":  "E01",
			"hours":      entry.hours,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	// Daily report only counts the requested date.
	w, response = do(t, r, http.MethodGet, "/api/reports/daily?date=2025-03-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	daily := response["data"].(map[string]interface{})
	assert.Equal(t, 3.0, daily["total_hours"])

	// Project report carries one task row plus the total row.
	w, response = do(t, r, http.MethodGet, "/api/reports/projects/P-100", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	project := response["data"].(map[string]interface{})
	rows := project["rows"].([]interface{})
	assert.Len(t, rows, 2)
	assert.Equal(t, 7.0, project["total_hours"])

	// Billing: 7 hours at rate 10 would be 70, but the lumpsum of 50 wins.
	billingURL := "/api/reports/tasks/" + strconv.Itoa(taskID) +
		"?start_date=2025-03-01&end_date=2025-03-31"
	w, response = do(t, r, http.MethodGet, billingURL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	billing := response["data"].(map[string]interface{})
	assert.Equal(t, 50.0, billing["total_amount"])
	assert.Equal(t, 7.0, billing["total_hours"])

	// Removing the client cascades to the task, so billing now 404s while the
	// logs themselves survive with nulled references.
	w, _ = do(t, r, http.MethodDelete, "/api/clients/ACME", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, billingURL, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, response = do(t, r, http.MethodGet, "/api/reports/daily?date=2025-03-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	daily = response["data"].(map[string]interface{})
	assert.Equal(t, 3.0, daily["total_hours"])
	row := daily["rows"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "", row["client_name"])
	assert.Equal(t, "Alice Warren", row["employ_name"])
}
