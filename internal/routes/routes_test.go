package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lasoundguy/household-tracker/internal/config"
	"github.com/lasoundguy/household-tracker/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireHours = 168
	cfg.Upload.Path = t.TempDir()
	cfg.Upload.BaseURL = "/uploads"
	cfg.Upload.MaxImageSize = 1 << 20
	cfg.Upload.AllowedTypes = []string{"jpg", "jpeg", "png"}
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000"}

	return Setup(db, cfg)
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func registerUser(t *testing.T, router *gin.Engine, name, email string) (token, role string) {
	t.Helper()

	w := do(t, router, "POST", "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.Token)
	return data.Token, data.User.Role
}

func TestHealthEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	router := setupRouter(t)

	// 未认证访问被拒绝
	w := do(t, router, "GET", "/api/objects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 首个用户为管理员，后续为普通成员
	aliceToken, aliceRole := registerUser(t, router, "Alice", "alice@example.com")
	assert.Equal(t, "admin", aliceRole)

	_, bobRole := registerUser(t, router, "Bob", "bob@example.com")
	assert.Equal(t, "member", bobRole)

	// 重复邮箱
	w = do(t, router, "POST", "/api/auth/register", "", gin.H{
		"name": "Alice Again", "email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// 错误密码
	w = do(t, router, "POST", "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 正确登录
	w = do(t, router, "POST", "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// 伪造令牌
	w = do(t, router, "GET", "/api/objects", "forged-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// /auth/me
	w = do(t, router, "GET", "/api/auth/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Email string `json:"email"`
	}
	decodeData(t, w, &me)
	assert.Equal(t, "alice@example.com", me.Email)
}

func TestObjectLifecycleFlow(t *testing.T) {
	router := setupRouter(t)

	aliceToken, _ := registerUser(t, router, "Alice", "alice@example.com")
	bobToken, _ := registerUser(t, router, "Bob", "bob@example.com")

	createNamed := func(path, name string, extra gin.H) uint {
		payload := gin.H{"name": name}
		for k, v := range extra {
			payload[k] = v
		}
		w := do(t, router, "POST", path, aliceToken, payload)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var data map[string]struct {
			ID uint `json:"id"`
		}
		decodeData(t, w, &data)
		for _, v := range data {
			return v.ID
		}
		t.Fatalf("no entity in response: %s", w.Body.String())
		return 0
	}

	garageID := createNamed("/api/locations", "Garage", nil)
	atticID := createNamed("/api/locations", "Attic", nil)
	toolsID := createNamed("/api/categories", "Tools", gin.H{"color": "#EF4444"})

	// 分类名称冲突
	w := do(t, router, "POST", "/api/categories", aliceToken, gin.H{"name": "Tools"})
	assert.Equal(t, http.StatusConflict, w.Code)

	objectID := createNamed("/api/objects", "Drill", gin.H{
		"category_id": toolsID,
		"location_id": garageID,
	})

	// Bob 将物品从 Garage 移到 Attic
	w = do(t, router, "PUT", fmt.Sprintf("/api/objects/%d", objectID), bobToken, gin.H{
		"name":        "Drill",
		"category_id": toolsID,
		"location_id": atticID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 历史记录应包含这次移动
	w = do(t, router, "GET", fmt.Sprintf("/api/objects/%d", objectID), aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Object struct {
			Name         string  `json:"name"`
			LocationName *string `json:"location_name"`
			AddedByName  *string `json:"added_by_name"`
		} `json:"object"`
		History []struct {
			FromLocationName *string `json:"from_location_name"`
			ToLocationName   *string `json:"to_location_name"`
			MovedByName      *string `json:"moved_by_name"`
		} `json:"history"`
	}
	decodeData(t, w, &detail)
	require.NotNil(t, detail.Object.LocationName)
	assert.Equal(t, "Attic", *detail.Object.LocationName)
	require.NotNil(t, detail.Object.AddedByName)
	assert.Equal(t, "Alice", *detail.Object.AddedByName)
	require.Len(t, detail.History, 1)
	require.NotNil(t, detail.History[0].FromLocationName)
	assert.Equal(t, "Garage", *detail.History[0].FromLocationName)
	require.NotNil(t, detail.History[0].ToLocationName)
	assert.Equal(t, "Attic", *detail.History[0].ToLocationName)
	require.NotNil(t, detail.History[0].MovedByName)
	assert.Equal(t, "Bob", *detail.History[0].MovedByName)

	// Garage 已无物品，可以删除
	w = do(t, router, "DELETE", fmt.Sprintf("/api/locations/%d", garageID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Attic 仍有物品，删除被拒绝
	w = do(t, router, "DELETE", fmt.Sprintf("/api/locations/%d", atticID), aliceToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 过滤查询
	w = do(t, router, "GET", "/api/objects?search=dri", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Objects []struct {
			Name string `json:"name"`
		} `json:"objects"`
	}
	decodeData(t, w, &list)
	require.Len(t, list.Objects, 1)
	assert.Equal(t, "Drill", list.Objects[0].Name)

	// 删除物品
	w = do(t, router, "DELETE", fmt.Sprintf("/api/objects/%d", objectID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "GET", fmt.Sprintf("/api/objects/%d", objectID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadFlow(t *testing.T) {
	router := setupRouter(t)

	token, _ := registerUser(t, router, "Alice", "alice@example.com")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	}
	decodeData(t, w, &result)
	require.NotEmpty(t, result.URL)
	require.NotEmpty(t, result.PublicID)

	// 上传后的文件可以通过静态路由访问
	fetch := do(t, router, "GET", result.URL, "", nil)
	assert.Equal(t, http.StatusOK, fetch.Code)
	assert.Equal(t, "fake-png-bytes", fetch.Body.String())

	// 删除后不再存在
	w = do(t, router, "DELETE", "/api/upload", token, gin.H{"public_id": result.PublicID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, "DELETE", "/api/upload", token, gin.H{"public_id": result.PublicID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
