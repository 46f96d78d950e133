package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectManagerController struct {
	DB *gorm.DB
}

func NewProjectManagerController(db *gorm.DB) *ProjectManagerController {
	return &ProjectManagerController{DB: db}
}

// GetAllProjectManagers lists managers, optionally scoped to one client via
// ?client_id=. Scoped listings order by name, the full listing by client.
func (pmc *ProjectManagerController) GetAllProjectManagers(c *gin.Context) {
	var managers []models.ProjectManager

	query := pmc.DB
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID).Order("manager_name")
	} else {
		query = query.Order("client_id")
	}
	if err := query.Find(&managers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project managers", managers)
}

// GetProjectManagerByID
func (pmc *ProjectManagerController) GetProjectManagerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("pm_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("pm_id must be numeric"))
		return
	}

	var manager models.ProjectManager
	if err := pmc.DB.First(&manager, "pm_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project manager detail", manager)
}

type projectManagerBody struct {
	ClientID    string `json:"client_id"`
	ManagerName string `json:"manager_name"`
	Notes       string `json:"notes"`
}

func (b *projectManagerBody) trim() {
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ManagerName = strings.TrimSpace(b.ManagerName)
	b.Notes = strings.TrimSpace(b.Notes)
}

// CreateProjectManager
func (pmc *ProjectManagerController) CreateProjectManager(c *gin.Context) {
	var body projectManagerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	if body.ClientID == "" || body.ManagerName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Client and Manager name required"))
		return
	}

	var client models.Client
	if err := pmc.DB.First(&client, "client_id = ?", body.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Client ID '%s' does not exist", body.ClientID))
		return
	}

	manager := models.ProjectManager{
		ClientID:    body.ClientID,
		ManagerName: body.ManagerName,
		Notes:       body.Notes,
	}
	if err := pmc.DB.Create(&manager).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Project manager added", manager)
}

// UpdateProjectManager
func (pmc *ProjectManagerController) UpdateProjectManager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("pm_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("pm_id must be numeric"))
		return
	}

	var body projectManagerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	if body.ClientID == "" || body.ManagerName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Client and Manager name required"))
		return
	}

	var manager models.ProjectManager
	if err := pmc.DB.First(&manager, "pm_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var client models.Client
	if err := pmc.DB.First(&client, "client_id = ?", body.ClientID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("Client ID '%s' does not exist", body.ClientID))
		return
	}

	manager.ClientID = body.ClientID
	manager.ManagerName = body.ManagerName
	manager.Notes = body.Notes

	if err := pmc.DB.Save(&manager).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project manager updated", manager)
}

// DeleteProjectManager
func (pmc *ProjectManagerController) DeleteProjectManager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("pm_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("pm_id must be numeric"))
		return
	}

	res := pmc.DB.Delete(&models.ProjectManager{}, "pm_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("project manager %d does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Project manager deleted", nil)
}
