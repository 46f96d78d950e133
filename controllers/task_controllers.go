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

type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// GetAllTasks lists tasks, optionally scoped with ?project_no=.
func (tc *TaskController) GetAllTasks(c *gin.Context) {
	var tasks []models.Task

	query := tc.DB.Order("task_id")
	if projectNo := c.Query("project_no"); projectNo != "" {
		query = query.Where("project_no = ?", projectNo)
	}
	if err := query.Find(&tasks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All tasks", tasks)
}

// GetTaskOptions returns id/name pairs for selection lists.
func (tc *TaskController) GetTaskOptions(c *gin.Context) {
	type option struct {
		TaskID   uint   `json:"task_id"`
		TaskName string `json:"task_name"`
	}
	var options []option

	query := tc.DB.Model(&models.Task{}).
		Select("task_id, task_name").
		Order("task_name")
	if projectNo := c.Query("project_no"); projectNo != "" {
		query = query.Where("project_no = ?", projectNo)
	}
	if err := query.Scan(&options).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task options", options)
}

// GetTaskByID
func (tc *TaskController) GetTaskByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("task_id must be numeric"))
		return
	}

	var task models.Task
	if err := tc.DB.First(&task, "task_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task detail", task)
}

type taskBody struct {
	ClientID   string   `json:"client_id"`
	ProjectNo  string   `json:"project_no"`
	TaskName   string   `json:"task_name"`
	Billable   string   `json:"billable"`
	HourlyRate *float64 `json:"hourly_rate"`
	Lumpsum    *float64 `json:"lumpsum"`
	TaskStatus string   `json:"task_status"`
	Notes      string   `json:"notes"`
}

func (b *taskBody) trim() {
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ProjectNo = strings.TrimSpace(b.ProjectNo)
	b.TaskName = strings.TrimSpace(b.TaskName)
	b.Billable = strings.TrimSpace(b.Billable)
	b.TaskStatus = strings.TrimSpace(b.TaskStatus)
	b.Notes = strings.TrimSpace(b.Notes)
}

// validate enforces the billing invariant before any store call: a billable
// task needs a positive hourly rate or lumpsum, and a non-billable task
// carries neither. Returns the values to persist (nil when absent or zero).
func (b *taskBody) validate() (rate, lumpsum *float64, err error) {
	if b.ClientID == "" || b.ProjectNo == "" || b.TaskName == "" || !models.ValidBillable(b.Billable) {
		return nil, nil, errors.New("Client, project, task name, and billable required")
	}
	if !models.ValidTaskStatus(b.TaskStatus) {
		return nil, nil, fmt.Errorf("invalid task status '%s'", b.TaskStatus)
	}

	if b.Billable != models.BillableYes {
		// Rate inputs are ignored and cleared for non-billable tasks.
		return nil, nil, nil
	}

	rateVal, lumpVal := 0.0, 0.0
	if b.HourlyRate != nil {
		rateVal = *b.HourlyRate
	}
	if b.Lumpsum != nil {
		lumpVal = *b.Lumpsum
	}
	if rateVal < 0 || lumpVal < 0 {
		return nil, nil, errors.New("Rates must not be negative")
	}
	if rateVal <= 0 && lumpVal <= 0 {
		return nil, nil, errors.New("Provide positive hourly rate or lumpsum")
	}

	if rateVal > 0 {
		rate = &rateVal
	}
	if lumpVal > 0 {
		lumpsum = &lumpVal
	}
	return rate, lumpsum, nil
}

func (tc *TaskController) checkTaskParents(clientID, projectNo string) error {
	var client models.Client
	if err := tc.DB.First(&client, "client_id = ?", clientID).Error; err != nil {
		return fmt.Errorf("Client ID '%s' does not exist", clientID)
	}
	var project models.Project
	if err := tc.DB.First(&project, "project_no = ?", projectNo).Error; err != nil {
		return fmt.Errorf("Project No '%s' does not exist", projectNo)
	}
	return nil
}

// CreateTask
func (tc *TaskController) CreateTask(c *gin.Context) {
	var body taskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	rate, lumpsum, err := body.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := tc.checkTaskParents(body.ClientID, body.ProjectNo); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task := models.Task{
		ClientID:   body.ClientID,
		ProjectNo:  body.ProjectNo,
		TaskName:   body.TaskName,
		Billable:   body.Billable,
		HourlyRate: rate,
		Lumpsum:    lumpsum,
		TaskStatus: body.TaskStatus,
		Notes:      body.Notes,
	}
	if err := tc.DB.Create(&task).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Task added", task)
}

// UpdateTask
func (tc *TaskController) UpdateTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("task_id must be numeric"))
		return
	}

	var body taskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	rate, lumpsum, err := body.validate()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var task models.Task
	if err := tc.DB.First(&task, "task_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := tc.checkTaskParents(body.ClientID, body.ProjectNo); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task.ClientID = body.ClientID
	task.ProjectNo = body.ProjectNo
	task.TaskName = body.TaskName
	task.Billable = body.Billable
	task.HourlyRate = rate
	task.Lumpsum = lumpsum
	task.TaskStatus = body.TaskStatus
	task.Notes = body.Notes

	if err := tc.DB.Save(&task).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task updated", task)
}

// DeleteTask
func (tc *TaskController) DeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("task_id must be numeric"))
		return
	}

	res := tc.DB.Delete(&models.Task{}, "task_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("task %d does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Task deleted", nil)
}
