package api

import (
	"testing"
	"time"

	"burnout/config"
	"burnout/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthConfig(t *testing.T, enabled bool) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		Auth:   config.AuthConfig{Enabled: enabled, Username: "admin", PasswordHash: string(hash)},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	t.Cleanup(func() { config.GlobalConfig = nil })
	return cfg
}

func TestAuthHandler_Login(t *testing.T) {
	cfg := setupAuthConfig(t, true)

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/login", `{"username":"admin","password":"password123"}`)
	assert.Equal(t, 200, w.Code)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, uint(dashboardUserID), claims.UserID)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	cfg := setupAuthConfig(t, true)

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/login", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, "用户名或密码错误", decodeResponse(t, w)["message"])

	w = postJSON(router, "/login", `{"username":"root","password":"password123"}`)
	assert.Equal(t, 401, w.Code)

	w = postJSON(router, "/login", `{"username":"admin"}`)
	assert.Equal(t, 400, w.Code)
}

func TestAuthHandler_Login_Disabled(t *testing.T) {
	cfg := setupAuthConfig(t, false)

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/login", `{"username":"admin","password":"password123"}`)
	assert.Equal(t, 404, w.Code)
}

func TestSafeErrorMessage_Release(t *testing.T) {
	cfg := setupAuthConfig(t, false)
	cfg.Server.Mode = "release"

	assert.Equal(t, "评估失败", SafeErrorMessage(assert.AnError, "评估失败"))
}
