// internal/services/auth_service.go
package services

import (
	"errors"

	"github.com/lasoundguy/household-tracker/internal/models"
	"github.com/lasoundguy/household-tracker/internal/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(req *models.UserRegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, invalidInput("姓名、邮箱和密码均为必填")
	}
	if len(req.Password) < 6 {
		return nil, invalidInput("密码长度不能少于 6 位")
	}

	// 加密密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var user models.User
	// 首个注册用户为管理员，计数和插入放在同一事务内避免并发竞争
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("该邮箱已被注册")
		}

		var userCount int64
		if err := tx.Model(&models.User{}).Count(&userCount).Error; err != nil {
			return err
		}
		role := models.RoleMember
		if userCount == 0 {
			role = models.RoleAdmin
		}

		user = models.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hashedPassword,
			Role:         role,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) Login(req *models.UserLoginRequest) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 用户不存在和密码错误返回同一提示，避免暴露账号是否注册
		return nil, unauthorized("邮箱或密码错误")
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, unauthorized("邮箱或密码错误")
	}

	return &user, nil
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("用户不存在")
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
