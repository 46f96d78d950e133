package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheGodAnnihilator/TheSchedulePlus/controllers"
	"github.com/TheGodAnnihilator/TheSchedulePlus/database"
	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"github.com/TheGodAnnihilator/TheSchedulePlus/services"
)

// setupTestDBForReports seeds one project with a billable task (rate 10,
// lumpsum 50) and two logs of 3 and 4 hours, the smallest fixture that
// exercises the lumpsum override.
func setupTestDBForReports(t *testing.T) (*gorm.DB, uint) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys = ON")
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	assert.NoError(t, db.Create(&models.Client{ClientID: "ACME", ClientName: "Acme Engineering"}).Error)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-100", ClientID: "ACME", ProjectName: "Bridge Retrofit"}).Error)
	rate, lumpsum := 10.0, 50.0
	task := models.Task{
		ClientID: "ACME", ProjectNo: "P-100", TaskName: "Modeling",
		Billable: models.BillableYes, HourlyRate: &rate, Lumpsum: &lumpsum,
	}
	assert.NoError(t, db.Create(&task).Error)
	assert.NoError(t, db.Create(&models.Employ{
		EmployID: "E01", EmployName: "Alice Warren",
		EmployContactNumber: "555-0101", EmployEmailAddress: "alice@example.com", HourlyRate: 45,
	}).Error)

	clientID, projectNo, employID := "ACME", "P-100", "E01"
	assert.NoError(t, db.Create(&models.TimeLog{
		LogID: "L1", LogDate: "2025-03-01",
		ClientID: &clientID, ProjectNo: &projectNo, TaskID: &task.TaskID, EmployID: &employID,
		Hours: 3,
	}).Error)
	assert.NoError(t, db.Create(&models.TimeLog{
		LogID: "L2", LogDate: "2025-03-02",
		ClientID: &clientID, ProjectNo: &projectNo, TaskID: &task.TaskID, EmployID: &employID,
		Hours: 4,
	}).Error)
	return db, task.TaskID
}

func setupReportRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	reportCtrl := controllers.NewReportController(db)
	router.GET("/reports/daily", reportCtrl.GetDailyReport)
	router.GET("/reports/projects/:project_no", reportCtrl.GetProjectReport)
	router.GET("/reports/tasks/:task_id", reportCtrl.GetTaskBillingReport)
	return router
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func getJSON(t *testing.T, router *gin.Engine, url string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w, decodeResponse(t, w)
}

func TestDailyReport(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, response := getJSON(t, router, "/reports/daily?date=2025-03-01")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Displaying logs for 2025-03-01, total hours 3.00", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 3.0, data["total_hours"])
	rows := data["rows"].([]interface{})
	assert.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Alice Warren", row["employ_name"])
}

// A day without logs is an informational response, not an error.
func TestDailyReportEmpty(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, response := getJSON(t, router, "/reports/daily?date=2024-01-01")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No logs for 2024-01-01", response["message"])
}

func TestDailyReportRejectsBadDate(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, _ := getJSON(t, router, "/reports/daily?date=03-01-2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectReportTotalRow(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, response := getJSON(t, router, "/reports/projects/P-100")
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	rows := data["rows"].([]interface{})
	assert.Len(t, rows, 2)
	last := rows[len(rows)-1].(map[string]interface{})
	assert.Equal(t, services.ProjectTotalLabel, last["task_name"])
	assert.Equal(t, 7.0, last["total_hours"])
}

func TestProjectReportNoTasks(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-200", ClientID: "ACME", ProjectName: "Tower Survey"}).Error)
	router := setupReportRouter(db)

	w, response := getJSON(t, router, "/reports/projects/P-200")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No tasks or logs for this project", response["message"])
}

func TestBillingReportLumpsumTotal(t *testing.T) {
	db, taskID := setupTestDBForReports(t)
	router := setupReportRouter(db)

	url := "/reports/tasks/" + itoa(taskID) + "?start_date=2025-03-01&end_date=2025-03-31"
	w, response := getJSON(t, router, url)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Displaying 2 logs for task, total amount $50.00", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 50.0, data["total_amount"])
	assert.Equal(t, 7.0, data["total_hours"])
}

func TestBillingReportMissingTask(t *testing.T) {
	db, _ := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, _ := getJSON(t, router, "/reports/tasks/999?start_date=2025-03-01&end_date=2025-03-31")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillingReportRequiresRange(t *testing.T) {
	db, taskID := setupTestDBForReports(t)
	router := setupReportRouter(db)

	w, _ := getJSON(t, router, "/reports/tasks/"+itoa(taskID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
