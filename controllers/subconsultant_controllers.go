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

// SubconsultantController mirrors EmployController against the independent
// subconsultant table.
type SubconsultantController struct {
	DB *gorm.DB
}

func NewSubconsultantController(db *gorm.DB) *SubconsultantController {
	return &SubconsultantController{DB: db}
}

// GetAllSubconsultants
func (sc *SubconsultantController) GetAllSubconsultants(c *gin.Context) {
	var subconsultants []models.Subconsultant
	if err := sc.DB.Order("subconsultant_name").Find(&subconsultants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All subconsultants", subconsultants)
}

// GetSubconsultantByID
func (sc *SubconsultantController) GetSubconsultantByID(c *gin.Context) {
	id := c.Param("subconsultant_id")

	var subconsultant models.Subconsultant
	if err := sc.DB.First(&subconsultant, "subconsultant_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Subconsultant detail", subconsultant)
}

type subconsultantBody struct {
	SubconsultantID            string  `json:"subconsultant_id"`
	SubconsultantName          string  `json:"subconsultant_name"`
	SubconsultantContactNumber string  `json:"subconsultant_contact_number"`
	SubconsultantEmailAddress  string  `json:"subconsultant_email_address"`
	HourlyRate                 float64 `json:"hourly_rate"`
}

func (b *subconsultantBody) validate() error {
	b.SubconsultantID = strings.TrimSpace(b.SubconsultantID)
	b.SubconsultantName = strings.TrimSpace(b.SubconsultantName)
	b.SubconsultantContactNumber = strings.TrimSpace(b.SubconsultantContactNumber)
	b.SubconsultantEmailAddress = strings.TrimSpace(b.SubconsultantEmailAddress)

	if b.SubconsultantID == "" || b.SubconsultantName == "" || b.SubconsultantContactNumber == "" || b.SubconsultantEmailAddress == "" {
		return errors.New("All fields are required")
	}
	if b.HourlyRate <= 0 {
		return errors.New("Hourly Rate must be positive number")
	}
	return nil
}

// CreateSubconsultant
func (sc *SubconsultantController) CreateSubconsultant(c *gin.Context) {
	var body subconsultantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Subconsultant
	if err := sc.DB.First(&existing, "subconsultant_id = ?", body.SubconsultantID).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("Subconsultant ID '%s' already exists", body.SubconsultantID))
		return
	}

	subconsultant := models.Subconsultant{
		SubconsultantID:            body.SubconsultantID,
		SubconsultantName:          body.SubconsultantName,
		SubconsultantContactNumber: body.SubconsultantContactNumber,
		SubconsultantEmailAddress:  body.SubconsultantEmailAddress,
		HourlyRate:                 body.HourlyRate,
	}
	if err := sc.DB.Create(&subconsultant).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("Subconsultant '%s' added", subconsultant.SubconsultantName), subconsultant)
}

// UpdateSubconsultant
func (sc *SubconsultantController) UpdateSubconsultant(c *gin.Context) {
	id := c.Param("subconsultant_id")

	var body subconsultantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.SubconsultantID = id
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var subconsultant models.Subconsultant
	if err := sc.DB.First(&subconsultant, "subconsultant_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	subconsultant.SubconsultantName = body.SubconsultantName
	subconsultant.SubconsultantContactNumber = body.SubconsultantContactNumber
	subconsultant.SubconsultantEmailAddress = body.SubconsultantEmailAddress
	subconsultant.HourlyRate = body.HourlyRate

	if err := sc.DB.Save(&subconsultant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Subconsultant '%s' updated", subconsultant.SubconsultantName), subconsultant)
}

// DeleteSubconsultant
func (sc *SubconsultantController) DeleteSubconsultant(c *gin.Context) {
	id := c.Param("subconsultant_id")

	res := sc.DB.Delete(&models.Subconsultant{}, "subconsultant_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Subconsultant ID '%s' does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Subconsultant deleted", nil)
}
