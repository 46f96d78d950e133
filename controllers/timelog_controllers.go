package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TimeLogController struct {
	DB *gorm.DB
}

func NewTimeLogController(db *gorm.DB) *TimeLogController {
	return &TimeLogController{DB: db}
}

// GetAllTimeLogs lists logs newest first, optionally scoped with ?date=.
func (tlc *TimeLogController) GetAllTimeLogs(c *gin.Context) {
	var logs []models.TimeLog

	query := tlc.DB.
		Preload("Client").
		Preload("Project").
		Preload("Task").
		Preload("Employ")
	message := "All time logs"
	if date := c.Query("date"); date != "" {
		if !utils.IsValidDate(date) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
			return
		}
		query = query.Where("log_date = ?", date).Order("log_id DESC")
		message = fmt.Sprintf("Time logs for %s", date)
	} else {
		query = query.Order("log_date DESC, log_id DESC")
	}
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, message, logs)
}

// GetTimeLogByID
func (tlc *TimeLogController) GetTimeLogByID(c *gin.Context) {
	id := c.Param("log_id")

	var entry models.TimeLog
	err := tlc.DB.
		Preload("Client").
		Preload("Project").
		Preload("Task").
		Preload("Employ").
		First(&entry, "log_id = ?", id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Time log detail", entry)
}

type timeLogBody struct {
	LogDate   string  `json:"log_date"`
	ClientID  string  `json:"client_id"`
	ProjectNo string  `json:"project_no"`
	TaskID    uint    `json:"task_id"`
	EmployID  string  `json:"employ_id"`
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
}

func (b *timeLogBody) validate() error {
	b.LogDate = strings.TrimSpace(b.LogDate)
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ProjectNo = strings.TrimSpace(b.ProjectNo)
	b.EmployID = strings.TrimSpace(b.EmployID)
	b.Notes = strings.TrimSpace(b.Notes)

	if b.LogDate == "" || b.ClientID == "" || b.ProjectNo == "" || b.TaskID == 0 || b.EmployID == "" {
		return errors.New("All fields except notes are required")
	}
	if !utils.IsValidDate(b.LogDate) {
		return errors.New("log_date must be YYYY-MM-DD")
	}
	if b.Hours <= 0 {
		return errors.New("Hours must be a positive number")
	}
	// Hours are stored at two-decimal precision.
	b.Hours = math.Round(b.Hours*100) / 100
	return nil
}

// checkDimensions verifies every referenced row before the insert so missing
// parents surface as validation messages rather than raw constraint errors.
func (tlc *TimeLogController) checkDimensions(b *timeLogBody) error {
	var client models.Client
	if err := tlc.DB.First(&client, "client_id = ?", b.ClientID).Error; err != nil {
		return fmt.Errorf("Client ID '%s' does not exist", b.ClientID)
	}
	var project models.Project
	if err := tlc.DB.First(&project, "project_no = ?", b.ProjectNo).Error; err != nil {
		return fmt.Errorf("Project No '%s' does not exist", b.ProjectNo)
	}
	var task models.Task
	if err := tlc.DB.First(&task, "task_id = ?", b.TaskID).Error; err != nil {
		return fmt.Errorf("task %d does not exist", b.TaskID)
	}
	var employ models.Employ
	if err := tlc.DB.First(&employ, "employ_id = ?", b.EmployID).Error; err != nil {
		return fmt.Errorf("Employ ID '%s' does not exist", b.EmployID)
	}
	return nil
}

// CreateTimeLog
func (tlc *TimeLogController) CreateTimeLog(c *gin.Context) {
	var body timeLogBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := tlc.checkDimensions(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry := models.TimeLog{
		LogID:     models.NewLogID(body.LogDate, body.TaskID, body.EmployID, time.Now()),
		LogDate:   body.LogDate,
		ClientID:  &body.ClientID,
		ProjectNo: &body.ProjectNo,
		TaskID:    &body.TaskID,
		EmployID:  &body.EmployID,
		Hours:     body.Hours,
		Notes:     body.Notes,
	}
	if err := tlc.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Time log entry added successfully", entry)
}

// UpdateTimeLog rewrites the row under a freshly derived log id, since the id
// encodes date, task and employee.
func (tlc *TimeLogController) UpdateTimeLog(c *gin.Context) {
	oldID := c.Param("log_id")

	var body timeLogBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.TimeLog
	if err := tlc.DB.First(&existing, "log_id = ?", oldID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := tlc.checkDimensions(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	newID := models.NewLogID(body.LogDate, body.TaskID, body.EmployID, time.Now())
	updates := map[string]interface{}{
		"log_id":     newID,
		"log_date":   body.LogDate,
		"client_id":  body.ClientID,
		"project_no": body.ProjectNo,
		"task_id":    body.TaskID,
		"employ_id":  body.EmployID,
		"hours":      body.Hours,
		"notes":      body.Notes,
	}
	if err := tlc.DB.Model(&models.TimeLog{}).Where("log_id = ?", oldID).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var entry models.TimeLog
	if err := tlc.DB.First(&entry, "log_id = ?", newID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Time log updated successfully", entry)
}

// DeleteTimeLog
func (tlc *TimeLogController) DeleteTimeLog(c *gin.Context) {
	id := c.Param("log_id")

	res := tlc.DB.Delete(&models.TimeLog{}, "log_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("time log '%s' does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Time log deleted successfully", nil)
}
