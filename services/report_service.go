package services

import (
	"sort"
	"strings"

	"github.com/TheGodAnnihilator/TheSchedulePlus/models"
	"gorm.io/gorm"
)

// Label of the synthetic total row appended to the project report.
const ProjectTotalLabel = "PROJECT TOTAL"

// ReportService derives reporting figures from time_log rows without
// mutating them. An empty result set is never an error; callers get zeroed
// totals and decide how to phrase the status.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		db: db,
	}
}

// DailyLogRow is one time_log row joined with its dimension names. A
// dimension deleted after logging leaves its id and name empty.
type DailyLogRow struct {
	LogID       string  `json:"log_id"`
	LogDate     string  `json:"log_date"`
	ClientID    string  `json:"client_id"`
	ClientName  string  `json:"client_name"`
	ProjectNo   string  `json:"project_no"`
	ProjectName string  `json:"project_name"`
	TaskID      uint    `json:"task_id"`
	TaskName    string  `json:"task_name"`
	EmployID    string  `json:"employ_id"`
	EmployName  string  `json:"employ_name"`
	Hours       float64 `json:"hours"`
	Notes       string  `json:"notes"`
}

type DailyReport struct {
	Date       string        `json:"date"`
	Rows       []DailyLogRow `json:"rows"`
	TotalHours float64       `json:"total_hours"`
}

// LogsByDate sums hours across every log recorded on the given date and
// returns the joined detail rows. A date with no logs yields an empty report
// with a 0.00 total.
func (s *ReportService) LogsByDate(date string) (*DailyReport, error) {
	rows := []DailyLogRow{}
	err := s.db.Table("time_log AS tl").
		Select(`tl.log_id, tl.log_date,
			COALESCE(tl.client_id, '') AS client_id, COALESCE(c.client_name, '') AS client_name,
			COALESCE(tl.project_no, '') AS project_no, COALESCE(p.project_name, '') AS project_name,
			COALESCE(tl.task_id, 0) AS task_id, COALESCE(t.task_name, '') AS task_name,
			COALESCE(tl.employ_id, '') AS employ_id, COALESCE(e.employ_name, '') AS employ_name,
			tl.hours, COALESCE(tl.notes, '') AS notes`).
		Joins("LEFT JOIN client c ON tl.client_id = c.client_id").
		Joins("LEFT JOIN project p ON tl.project_no = p.project_no").
		Joins("LEFT JOIN task t ON tl.task_id = t.task_id").
		Joins("LEFT JOIN employ e ON tl.employ_id = e.employ_id").
		Where("tl.log_date = ?", date).
		Order("tl.log_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := &DailyReport{Date: date, Rows: rows}
	for _, r := range rows {
		report.TotalHours += r.Hours
	}
	return report, nil
}

// TaskReportRow summarizes one task's logged activity. Tasks without logs
// report "N/A" dates and zero hours.
type TaskReportRow struct {
	TaskID     uint    `json:"task_id,omitempty"`
	TaskName   string  `json:"task_name"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalHours float64 `json:"total_hours"`
	Employees  string  `json:"employees"`
}

type ProjectReport struct {
	ProjectNo  string          `json:"project_no"`
	Rows       []TaskReportRow `json:"rows"`
	TotalHours float64         `json:"total_hours"`
}

// ProjectTaskReport builds one row per task under the project, ordered by
// task name, with the earliest and latest log date, summed hours and the
// distinct comma-joined employee names. A synthetic PROJECT TOTAL row is
// appended last. A project without tasks yields an empty report.
func (s *ReportService) ProjectTaskReport(projectNo string) (*ProjectReport, error) {
	var tasks []models.Task
	if err := s.db.Where("project_no = ?", projectNo).Order("task_name").Find(&tasks).Error; err != nil {
		return nil, err
	}

	report := &ProjectReport{ProjectNo: projectNo}
	if len(tasks) == 0 {
		return report, nil
	}

	taskIDs := make([]uint, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.TaskID)
	}

	type logRow struct {
		TaskID     uint
		LogDate    string
		EmployName string
		Hours      float64
	}
	var logs []logRow
	err := s.db.Table("time_log AS tl").
		Select("tl.task_id, tl.log_date, COALESCE(e.employ_name, '') AS employ_name, tl.hours").
		Joins("LEFT JOIN employ e ON tl.employ_id = e.employ_id").
		Where("tl.task_id IN ?", taskIDs).
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}

	byTask := make(map[uint][]logRow, len(tasks))
	for _, l := range logs {
		byTask[l.TaskID] = append(byTask[l.TaskID], l)
	}

	for _, t := range tasks {
		row := TaskReportRow{
			TaskID:    t.TaskID,
			TaskName:  t.TaskName,
			StartDate: "N/A",
			EndDate:   "N/A",
		}
		names := map[string]bool{}
		for _, l := range byTask[t.TaskID] {
			if row.StartDate == "N/A" || l.LogDate < row.StartDate {
				row.StartDate = l.LogDate
			}
			if row.EndDate == "N/A" || l.LogDate > row.EndDate {
				row.EndDate = l.LogDate
			}
			row.TotalHours += l.Hours
			if l.EmployName != "" {
				names[l.EmployName] = true
			}
		}
		row.Employees = joinSorted(names)
		report.TotalHours += row.TotalHours
		report.Rows = append(report.Rows, row)
	}

	report.Rows = append(report.Rows, TaskReportRow{
		TaskName:   ProjectTotalLabel,
		TotalHours: report.TotalHours,
	})
	return report, nil
}

// BillingRow is one log line priced at the task's hourly rate.
type BillingRow struct {
	LogID      string  `json:"log_id"`
	LogDate    string  `json:"log_date"`
	EmployName string  `json:"employ_name"`
	Hours      float64 `json:"hours"`
	LineAmount float64 `json:"line_amount"`
	Notes      string  `json:"notes"`
}

type TaskBillingReport struct {
	TaskID      uint         `json:"task_id"`
	TaskName    string       `json:"task_name"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	HourlyRate  float64      `json:"hourly_rate"`
	Lumpsum     float64      `json:"lumpsum"`
	Rows        []BillingRow `json:"rows"`
	TotalHours  float64      `json:"total_hours"`
	TotalAmount float64      `json:"total_amount"`
}

// TaskBillingReport prices every log for the task inside the inclusive date
// range, ordered by date ascending. Each line is hours * hourly_rate. The
// total amount is the lumpsum when one is set and positive, otherwise the sum
// of line amounts; a zero lumpsum counts as absent. Total hours are always
// the plain sum of row hours.
func (s *ReportService) TaskBillingReport(taskID uint, startDate, endDate string) (*TaskBillingReport, error) {
	var task models.Task
	if err := s.db.First(&task, "task_id = ?", taskID).Error; err != nil {
		return nil, err
	}

	report := &TaskBillingReport{
		TaskID:     task.TaskID,
		TaskName:   task.TaskName,
		StartDate:  startDate,
		EndDate:    endDate,
		HourlyRate: task.EffectiveHourlyRate(),
		Lumpsum:    task.EffectiveLumpsum(),
	}

	type logRow struct {
		LogID      string
		LogDate    string
		EmployName string
		Hours      float64
		Notes      string
	}
	var logs []logRow
	err := s.db.Table("time_log AS tl").
		Select("tl.log_id, tl.log_date, COALESCE(e.employ_name, '') AS employ_name, tl.hours, COALESCE(tl.notes, '') AS notes").
		Joins("LEFT JOIN employ e ON tl.employ_id = e.employ_id").
		Where("tl.task_id = ? AND tl.log_date BETWEEN ? AND ?", taskID, startDate, endDate).
		Order("tl.log_date").
		Scan(&logs).Error
	if err != nil {
		return nil, err
	}

	lineTotal := 0.0
	for _, l := range logs {
		line := l.Hours * report.HourlyRate
		report.Rows = append(report.Rows, BillingRow{
			LogID:      l.LogID,
			LogDate:    l.LogDate,
			EmployName: l.EmployName,
			Hours:      l.Hours,
			LineAmount: line,
			Notes:      l.Notes,
		})
		report.TotalHours += l.Hours
		lineTotal += line
	}

	// Lumpsum replaces the hourly computation; it never adds to it.
	if report.Lumpsum > 0 {
		report.TotalAmount = report.Lumpsum
	} else {
		report.TotalAmount = lineTotal
	}
	return report, nil
}

func joinSorted(set map[string]bool) string {
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
