package router

import (
	"github.com/TheGodAnnihilator/TheSchedulePlus/controllers"
	"github.com/TheGodAnnihilator/TheSchedulePlus/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	clientCtrl := controllers.NewClientController(db)
	pmCtrl := controllers.NewProjectManagerController(db)
	projectCtrl := controllers.NewProjectController(db)
	taskCtrl := controllers.NewTaskController(db)
	employCtrl := controllers.NewEmployController(db)
	subCtrl := controllers.NewSubconsultantController(db)
	timeLogCtrl := controllers.NewTimeLogController(db)
	reportCtrl := controllers.NewReportController(db)
	backupCtrl := controllers.NewBackupController()

	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", clientCtrl.GetAllClients)
			clients.POST("", clientCtrl.CreateClient)
			clients.GET("/options", clientCtrl.GetClientOptions)
			clients.GET("/:client_id", clientCtrl.GetClientByID)
			clients.PUT("/:client_id", clientCtrl.UpdateClient)
			clients.DELETE("/:client_id", clientCtrl.DeleteClient)
		}

		managers := api.Group("/project-managers")
		{
			managers.GET("", pmCtrl.GetAllProjectManagers)
			managers.POST("", pmCtrl.CreateProjectManager)
			managers.GET("/:pm_id", pmCtrl.GetProjectManagerByID)
			managers.PUT("/:pm_id", pmCtrl.UpdateProjectManager)
			managers.DELETE("/:pm_id", pmCtrl.DeleteProjectManager)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectCtrl.GetAllProjects)
			projects.POST("", projectCtrl.CreateProject)
			projects.GET("/options", projectCtrl.GetProjectOptions)
			projects.GET("/:project_no", projectCtrl.GetProjectByID)
			projects.PUT("/:project_no", projectCtrl.UpdateProject)
			projects.DELETE("/:project_no", projectCtrl.DeleteProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskCtrl.GetAllTasks)
			tasks.POST("", taskCtrl.CreateTask)
			tasks.GET("/options", taskCtrl.GetTaskOptions)
			tasks.GET("/:task_id", taskCtrl.GetTaskByID)
			tasks.PUT("/:task_id", taskCtrl.UpdateTask)
			tasks.DELETE("/:task_id", taskCtrl.DeleteTask)
		}

		employs := api.Group("/employs")
		{
			employs.GET("", employCtrl.GetAllEmploys)
			employs.POST("", employCtrl.CreateEmploy)
			employs.GET("/options", employCtrl.GetEmployOptions)
			employs.GET("/:employ_id", employCtrl.GetEmployByID)
			employs.PUT("/:employ_id", employCtrl.UpdateEmploy)
			employs.DELETE("/:employ_id", employCtrl.DeleteEmploy)
		}

		subconsultants := api.Group("/subconsultants")
		{
			subconsultants.GET("", subCtrl.GetAllSubconsultants)
			subconsultants.POST("", subCtrl.CreateSubconsultant)
			subconsultants.GET("/:subconsultant_id", subCtrl.GetSubconsultantByID)
			subconsultants.PUT("/:subconsultant_id", subCtrl.UpdateSubconsultant)
			subconsultants.DELETE("/:subconsultant_id", subCtrl.DeleteSubconsultant)
		}

		timeLogs := api.Group("/time-logs")
		{
			timeLogs.GET("", timeLogCtrl.GetAllTimeLogs)
			timeLogs.POST("", timeLogCtrl.CreateTimeLog)
			timeLogs.GET("/:log_id", timeLogCtrl.GetTimeLogByID)
			timeLogs.PUT("/:log_id", timeLogCtrl.UpdateTimeLog)
			timeLogs.DELETE("/:log_id", timeLogCtrl.DeleteTimeLog)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/daily", reportCtrl.GetDailyReport)
			reports.GET("/projects/:project_no", reportCtrl.GetProjectReport)
			reports.GET("/tasks/:task_id", reportCtrl.GetTaskBillingReport)
		}

		api.POST("/backup", backupCtrl.CreateBackup)
	}

	return r
}
