package handlers

import (
	"net/http"

	"github.com/lasoundguy/household-tracker/internal/models"
	"github.com/lasoundguy/household-tracker/internal/services"
	"github.com/lasoundguy/household-tracker/internal/utils"
	pkgvalidator "github.com/lasoundguy/household-tracker/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type LocationHandler struct {
	locationService *services.LocationService
	validator       *validator.Validate
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		validator:       pkgvalidator.GetValidator(),
	}
}

func (h *LocationHandler) GetLocations(c *gin.Context) {
	locations, err := h.locationService.GetLocations()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"locations": locations})
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	location, objects, err := h.locationService.GetLocation(locationID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"location": location,
		"objects":  objects,
	})
}

func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req models.LocationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	location, err := h.locationService.CreateLocation(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{"location": location})
}

func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.LocationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	location, err := h.locationService.UpdateLocation(locationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "更新成功", gin.H{"location": location})
}

func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	locationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.locationService.DeleteLocation(locationID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
