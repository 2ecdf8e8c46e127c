// internal/services/upload_service.go
package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadService 把图片字节存入本地磁盘并返回可访问的 URL。
// 物品服务只消费返回的 URL，从不接触图片内容。
type UploadService struct {
	uploadPath string
	baseURL    string
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func NewUploadService(uploadPath, baseURL string) *UploadService {
	return &UploadService{
		uploadPath: uploadPath,
		baseURL:    baseURL,
	}
}

func (s *UploadService) UploadImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	fileName := uuid.New().String() + ext

	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}

	filePath := filepath.Join(s.uploadPath, fileName)
	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("创建文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("保存文件失败: %w", err)
	}

	return &UploadResult{
		URL:      s.baseURL + "/" + fileName,
		PublicID: fileName,
	}, nil
}

func (s *UploadService) DeleteImage(publicID string) error {
	if publicID == "" {
		return invalidInput("缺少文件标识")
	}
	// 文件标识即存储文件名，不允许携带路径
	if publicID != filepath.Base(publicID) {
		return invalidInput("无效的文件标识")
	}

	filePath := filepath.Join(s.uploadPath, publicID)
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return notFound("文件不存在")
		}
		return err
	}

	return nil
}
