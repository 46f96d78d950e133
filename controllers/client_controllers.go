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

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// GetAllClients
func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Order("client_name").Find(&clients).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All clients", clients)
}

// GetClientOptions returns id/name pairs for selection lists. Ids are never
// parsed back out of display labels.
func (cc *ClientController) GetClientOptions(c *gin.Context) {
	type option struct {
		ClientID   string `json:"client_id"`
		ClientName string `json:"client_name"`
	}
	var options []option
	err := cc.DB.Model(&models.Client{}).
		Select("client_id, client_name").
		Order("client_name").
		Scan(&options).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client options", options)
}

// GetClientByID
func (cc *ClientController) GetClientByID(c *gin.Context) {
	id := c.Param("client_id")

	var client models.Client
	if err := cc.DB.First(&client, "client_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client detail", client)
}

type clientBody struct {
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	ClientAddress string `json:"client_address"`
	State         string `json:"state"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	Notes         string `json:"notes"`
}

func (b *clientBody) trim() {
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ClientName = strings.TrimSpace(b.ClientName)
	b.ClientAddress = strings.TrimSpace(b.ClientAddress)
	b.State = strings.TrimSpace(b.State)
	b.City = strings.TrimSpace(b.City)
	b.ZipCode = strings.TrimSpace(b.ZipCode)
	b.Notes = strings.TrimSpace(b.Notes)
}

func (b *clientBody) validate() error {
	if b.ClientID == "" {
		return errors.New("Client ID cannot be empty")
	}
	if b.ClientName == "" {
		return errors.New("Client Name cannot be empty")
	}
	if b.ZipCode != "" && !utils.IsAllDigits(b.ZipCode) {
		return errors.New("Zip Code must be numeric")
	}
	return nil
}

// CreateClient
func (cc *ClientController) CreateClient(c *gin.Context) {
	var body clientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.trim()
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Client
	if err := cc.DB.First(&existing, "client_id = ?", body.ClientID).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, fmt.Errorf("Client ID '%s' already exists", body.ClientID))
		return
	}

	client := models.Client{
		ClientID:      body.ClientID,
		ClientName:    body.ClientName,
		ClientAddress: body.ClientAddress,
		State:         body.State,
		City:          body.City,
		ZipCode:       body.ZipCode,
		Notes:         body.Notes,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, fmt.Sprintf("Client '%s' added", client.ClientName), client)
}

// UpdateClient
func (cc *ClientController) UpdateClient(c *gin.Context) {
	id := c.Param("client_id")

	var body clientBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	body.ClientID = id
	body.trim()
	if err := body.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, "client_id = ?", id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Client ID '%s' does not exist", id))
		return
	}

	client.ClientName = body.ClientName
	client.ClientAddress = body.ClientAddress
	client.State = body.State
	client.City = body.City
	client.ZipCode = body.ZipCode
	client.Notes = body.Notes

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Client '%s' updated", client.ClientName), client)
}

// DeleteClient removes the client row only; projects, project managers and
// tasks go with it through the database cascade, and time logs keep their
// rows with the client reference nulled.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	id := c.Param("client_id")

	res := cc.DB.Delete(&models.Client{}, "client_id = ?", id)
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("Client ID '%s' does not exist", id))
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Client '%s' deleted", id), nil)
}
