package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/lasoundguy/household-tracker/internal/config"
	"github.com/lasoundguy/household-tracker/internal/services"
	"github.com/lasoundguy/household-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService *services.UploadService
	config        *config.Config
}

func NewUploadHandler(uploadService *services.UploadService, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		config:        cfg,
	}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(h.config.Upload.MaxImageSize); err != nil {
		utils.Error(c, http.StatusBadRequest, "文件过大或格式错误")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "未找到上传文件")
		return
	}
	defer file.Close()

	if err := h.validateImage(header.Filename, header.Size); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.uploadService.UploadImage(file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "文件上传成功", result)
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req struct {
		PublicID string `json:"public_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "请求参数错误")
		return
	}

	if err := h.uploadService.DeleteImage(req.PublicID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}

func (h *UploadHandler) validateImage(filename string, size int64) error {
	if size > h.config.Upload.MaxImageSize {
		return fmt.Errorf("文件大小超过限制 (%d MB)", h.config.Upload.MaxImageSize/1024/1024)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range h.config.Upload.AllowedTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("不支持的图片格式: %s", ext)
}
