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

type EmployController struct {
	DB *gorm.DB
}

func NewEmployController(db *gorm.DB) *EmployController {
	return &EmployController{DB: db}
}

// GetAllEmploys
func (ec *EmployController) GetAllEmploys(c *gin.Context) {
	var employs []models.Employ
	if err := ec.DB.Order("employ_name").Find(&employs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All employs", employs)
}

// GetEmployOptions returns id/name pairs for the time-log entry form.
func (ec *EmployController) GetEmployOptions(c *gin.Context) {
	type option struct {
		EmployID   string `json:"employ_id"`
		EmployName string `json:"employ_name"`
	}
	var options []option
	err := ec.DB.Model(&models.Employ{}).
		Select("employ_id, employ_name").
		Order("employ_name").
		Scan(&options).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Employ options", options)
}

// GetEmployByID
func (ec *EmployController) GetEmployByID(c *gin.Context) {
	id := c.Param("employ_id")

	var employ models.Employ
	if err := ec.DB.First(&employ, "employ_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Employ detail", employ)
}

type employBody struct {
	EmployID            string  `json:"employ_id"`
	EmployName          string  `json:"employ_name"`
	EmployContactNumber string  `json:"employ_contact_number"`
	EmployEmailAddress  string  `json:"employ_email_address"`
	HourlyRate          float64 `json:"hourly_rate"`
}

func (b *employBody) validate() error {
	b.EmployID = strings.TrimSpace(b.EmployID)
	b.EmployName = strings.TrimSpace(b.EmployName)
	b.EmployContactNumber = strings.TrimSpace(b.EmployContactNumber)
	b.EmployEmailAddress = strings.TrimSpace(b.EmployEmailAddress)

	if b.EmployID == "" || b.EmployName == "" || b.EmployContactNumber == "" || b.EmployEmailAddress == "" {
		return errors.New("All fields are required")
	}
	if b.HourlyRate <= 0 {
		return errors.New("Hourly Rate must be positive number")
	}
	return nil
}

// CreateEmploy
func (ec *EmployController) CreateEmploy(c *gin.Context) {
	var body employBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Employ
	if err := ec.DB.First(&existing, "employ_id = ?", body.EmployID).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("Employ ID '%s' already exists", body.EmployID))
		return
	}

	employ := models.Employ{
		EmployID:            body.EmployID,
		EmployName:          body.EmployName,
		EmployContactNumber: body.EmployContactNumber,
		EmployEmailAddress:  body.EmployEmailAddress,
		HourlyRate:          body.HourlyRate,
	}
	if err := ec.DB.Create(&employ).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("Employ '%s' added", employ.EmployName), employ)
}

// UpdateEmploy
func (ec *EmployController) UpdateEmploy(c *gin.Context) {
	id := c.Param("employ_id")

	var body employBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.EmployID = id
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var employ models.Employ
	if err := ec.DB.First(&employ, "employ_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	employ.EmployName = body.EmployName
	employ.EmployContactNumber = body.EmployContactNumber
	employ.EmployEmailAddress = body.EmployEmailAddress
	employ.HourlyRate = body.HourlyRate

	if err := ec.DB.Save(&employ).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Employ '%s' updated", employ.EmployName), employ)
}

// DeleteEmploy removes the employ; time logs keep their rows with the
// employee reference nulled.
func (ec *EmployController) DeleteEmploy(c *gin.Context) {
	id := c.Param("employ_id")

	res := ec.DB.Delete(&models.Employ{}, "employ_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Employ ID '%s' does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Employ deleted", nil)
}
