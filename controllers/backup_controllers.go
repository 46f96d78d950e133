package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/TheGodAnnihilator/TheSchedulePlus/services"
	"github.com/TheGodAnnihilator/TheSchedulePlus/utils"
	"github.com/gin-gonic/gin"
)

type BackupController struct {
	Backups *services.BackupService
}

func NewBackupController() *BackupController {
	return &BackupController{Backups: services.NewBackupService()}
}

// CreateBackup dumps the whole database to the requested file path.
func (bc *BackupController) CreateBackup(c *gin.Context) {
	type reqBody struct {
		Path string `json:"path" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.Path = strings.TrimSpace(body.Path)
	if body.Path == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("backup path cannot be empty"))
		return
	}

	size, err := bc.Backups.Dump(body.Path)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK,
		fmt.Sprintf("Database backup written to %s (%d bytes)", body.Path, size), nil)
}
