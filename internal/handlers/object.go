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

type ObjectHandler struct {
	objectService *services.ObjectService
	validator     *validator.Validate
}

func NewObjectHandler(objectService *services.ObjectService) *ObjectHandler {
	return &ObjectHandler{
		objectService: objectService,
		validator:     pkgvalidator.GetValidator(),
	}
}

func (h *ObjectHandler) GetObjects(c *gin.Context) {
	var req models.ObjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "无效的查询参数")
		return
	}

	objects, err := h.objectService.GetObjects(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{"objects": objects})
}

func (h *ObjectHandler) GetObject(c *gin.Context) {
	objectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	object, history, err := h.objectService.GetObject(objectID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"object":  object,
		"history": history,
	})
}

func (h *ObjectHandler) CreateObject(c *gin.Context) {
	var req models.ObjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	object, err := h.objectService.CreateObject(currentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, gin.H{"object": object})
}

func (h *ObjectHandler) UpdateObject(c *gin.Context) {
	objectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ObjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	object, err := h.objectService.UpdateObject(objectID, currentUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "更新成功", gin.H{"object": object})
}

func (h *ObjectHandler) DeleteObject(c *gin.Context) {
	objectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.objectService.DeleteObject(objectID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
