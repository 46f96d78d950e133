package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

// GetAllProjects lists projects, optionally scoped with ?client_id=.
func (pc *ProjectController) GetAllProjects(c *gin.Context) {
	var projects []models.Project

	query := pc.DB.Order("project_no")
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if err := query.Find(&projects).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All projects", projects)
}

// GetProjectOptions returns id/name pairs for selection lists.
func (pc *ProjectController) GetProjectOptions(c *gin.Context) {
	type option struct {
		ProjectNo   string `json:"project_no"`
		ProjectName string `json:"project_name"`
	}
	var options []option

	query := pc.DB.Model(&models.Project{}).
		Select("project_no, project_name").
		Order("project_name")
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if err := query.Scan(&options).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project options", options)
}

// GetProjectByID
func (pc *ProjectController) GetProjectByID(c *gin.Context) {
	no := c.Param("project_no")

	var project models.Project
	if err := pc.DB.First(&project, "project_no = ?", no).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project detail", project)
}

type projectBody struct {
	ProjectNo            string `json:"project_no"`
	ClientID             string `json:"client_id"`
	ProjectName          string `json:"project_name"`
	ClientProjectManager string `json:"client_project_manager"`
	ProjectType          string `json:"project_type"`
	ProjectStatus        string `json:"project_status"`
	Notes                string `json:"notes"`
}

func (b *projectBody) trim() {
	b.ProjectNo = strings.TrimSpace(b.ProjectNo)
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ProjectName = strings.TrimSpace(b.ProjectName)
	b.ClientProjectManager = strings.TrimSpace(b.ClientProjectManager)
	b.ProjectType = strings.TrimSpace(b.ProjectType)
	b.ProjectStatus = strings.TrimSpace(b.ProjectStatus)
	b.Notes = strings.TrimSpace(b.Notes)
}

func (b *projectBody) validate() error {
	if b.ClientID == "" || b.ProjectNo == "" || b.ProjectName == "" {
		return errors.New("Client, Project No, and Name required")
	}
	if !models.ValidProjectType(b.ProjectType) {
		return fmt.Errorf("invalid project type '%s'", b.ProjectType)
	}
	if !models.ValidProjectStatus(b.ProjectStatus) {
		return fmt.Errorf("invalid project status '%s'", b.ProjectStatus)
	}
	return nil
}

// CreateProject
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var body projectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := pc.DB.First(&client, "client_id = ?", body.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Client ID '%s' does not exist", body.ClientID))
		return
	}

	var existing models.Project
	if err := pc.DB.First(&existing, "project_no = ?", body.ProjectNo).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("Project No already exists"))
		return
	}

	project := models.Project{
		ProjectNo:            body.ProjectNo,
		ClientID:             body.ClientID,
		ProjectName:          body.ProjectName,
		ClientProjectManager: body.ClientProjectManager,
		ProjectType:          body.ProjectType,
		ProjectStatus:        body.ProjectStatus,
		Notes:                body.Notes,
	}
	if err := pc.DB.Create(&project).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Project added", project)
}

// UpdateProject
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	no := c.Param("project_no")

	var body projectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.ProjectNo = no
	body.trim()
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var project models.Project
	if err := pc.DB.First(&project, "project_no = ?", no).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var client models.Client
	if err := pc.DB.First(&client, "client_id = ?", body.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Client ID '%s' does not exist", body.ClientID))
		return
	}

	project.ClientID = body.ClientID
	project.ProjectName = body.ProjectName
	project.ClientProjectManager = body.ClientProjectManager
	project.ProjectType = body.ProjectType
	project.ProjectStatus = body.ProjectStatus
	project.Notes = body.Notes

	if err := pc.DB.Save(&project).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project updated", project)
}

// DeleteProject removes the project; its tasks follow through the cascade.
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	no := c.Param("project_no")

	res := pc.DB.Delete(&models.Project{}, "project_no = ?", no)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Project No '%s' does not exist", no))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project deleted", nil)
}
