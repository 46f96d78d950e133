package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TheGodAnnihilator/TheSchedulePlus/controllers"
	"github.com/TheGodAnnihilator/TheSchedulePlus/database"
	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
)

func setupTestDBForProjects(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys = ON")
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	assert.NoError(t, db.Create(&models.Client{ClientID: "ACME", ClientName: "Acme Engineering"}).Error)
	return db
}

func setupProjectRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	projectCtrl := controllers.NewProjectController(db)
	router.GET("/projects", projectCtrl.GetAllProjects)
	router.GET("/projects/options", projectCtrl.GetProjectOptions)
	router.POST("/projects", projectCtrl.CreateProject)
	router.DELETE("/projects/:project_no", projectCtrl.DeleteProject)
	return router
}

func TestCreateProject(t *testing.T) {
	db := setupTestDBForProjects(t)
	router := setupProjectRouter(db)

	w := postJSON(t, router, "/projects", map[string]string{
		"project_no":     "P-100",
		"client_id":      "ACME",
		"project_name":   "Bridge Retrofit",
		"project_type":   "Scheduling",
		"project_status": "In Progress",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateProjectDuplicateNo(t *testing.T) {
	db := setupTestDBForProjects(t)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-100", ClientID: "ACME", ProjectName: "Bridge Retrofit"}).Error)
	router := setupProjectRouter(db)

	w := postJSON(t, router, "/projects", map[string]string{
		"project_no":   "P-100",
		"client_id":    "ACME",
		"project_name": "Another",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, "Project No already exists", response["message"])
}

func TestCreateProjectInvalidType(t *testing.T) {
	db := setupTestDBForProjects(t)
	router := setupProjectRouter(db)

	w := postJSON(t, router, "/projects", map[string]string{
		"project_no":   "P-100",
		"client_id":    "ACME",
		"project_name": "Bridge Retrofit",
		"project_type": "Forensic",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProjectUnknownClient(t *testing.T) {
	db := setupTestDBForProjects(t)
	router := setupProjectRouter(db)

	w := postJSON(t, router, "/projects", map[string]string{
		"project_no":   "P-100",
		"client_id":    "NOPE",
		"project_name": "Bridge Retrofit",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, "Client ID 'NOPE' does not exist", response["message"])
}

// Deleting a project takes its tasks along through the cascade.
func TestDeleteProjectCascadesTasks(t *testing.T) {
	db := setupTestDBForProjects(t)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-100", ClientID: "ACME", ProjectName: "Bridge Retrofit"}).Error)
	assert.NoError(t, db.Create(&models.Task{ClientID: "ACME", ProjectNo: "P-100", TaskName: "Survey", Billable: models.BillableNo}).Error)

	router := setupProjectRouter(db)
	req := httptest.NewRequest(http.MethodDelete, "/projects/P-100", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var tasks int64
	db.Model(&models.Task{}).Count(&tasks)
	assert.Equal(t, int64(0), tasks)
}

func TestGetProjectOptionsScopedToClient(t *testing.T) {
	db := setupTestDBForProjects(t)
	assert.NoError(t, db.Create(&models.Client{ClientID: "ZED", ClientName: "Zed Consulting"}).Error)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-100", ClientID: "ACME", ProjectName: "Bridge Retrofit"}).Error)
	assert.NoError(t, db.Create(&models.Project{ProjectNo: "P-200", ClientID: "ZED", ProjectName: "Tower Survey"}).Error)

	router := setupProjectRouter(db)
	req := httptest.NewRequest(http.MethodGet, "/projects/options?client_id=ZED", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	option := data[0].(map[string]interface{})
	assert.Equal(t, "P-200", option["project_no"])
}
