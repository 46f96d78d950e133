package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TheGodAnnihilator/TheSchedulePlus/services"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"strconv"
)

// ReportController exposes the aggregator. Empty result sets are rendered as
// zeroed reports with an informational message, never as errors.
type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Reports: services.NewReportService(db)}
}

// GetDailyReport returns every log for ?date= with the summed hours.
func (rc *ReportController) GetDailyReport(c *gin.Context) {
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}

	report, err := rc.Reports.LogsByDate(date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := fmt.Sprintf("Displaying logs for %s, total hours %.2f", date, report.TotalHours)
	if len(report.Rows) == 0 {
		message = fmt.Sprintf("No logs for %s", date)
	}
	utils.RespondJSON(c, http.StatusOK, message, report)
}

// GetProjectReport summarizes every task under the project.
func (rc *ReportController) GetProjectReport(c *gin.Context) {
	projectNo := c.Param("project_no")

	report, err := rc.Reports.ProjectTaskReport(projectNo)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := fmt.Sprintf("Report generated for project %s", projectNo)
	if len(report.Rows) == 0 {
		message = "No tasks or logs for this project"
	}
	utils.RespondJSON(c, http.StatusOK, message, report)
}

// GetTaskBillingReport prices a task's logs inside ?start_date=..&end_date=..
func (rc *ReportController) GetTaskBillingReport(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("task_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("task_id must be numeric"))
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if !utils.IsValidDate(startDate) || !utils.IsValidDate(endDate) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("start_date and end_date must be YYYY-MM-DD"))
		return
	}

	report, err := rc.Reports.TaskBillingReport(uint(taskID), startDate, endDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("task %d does not exist", taskID))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	message := fmt.Sprintf("Displaying %d logs for task, total amount %s",
		len(report.Rows), utils.FormatMoney(report.TotalAmount))
	if len(report.Rows) == 0 {
		message = "No logs in selected range"
	}
	utils.RespondJSON(c, http.StatusOK, message, report)
}
