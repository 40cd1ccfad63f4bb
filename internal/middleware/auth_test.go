package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/gigster_garage_backend/internal/middleware"
	"github.com/SscSPs/gigster_garage_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()

	api := suite.router.Group("/api", middleware.AuthMiddleware(suite.jwtSecret))
	api.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": middleware.GetUserRoleFromContext(c)})
	})
	api.GET("/admin", middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (suite *AuthMiddlewareTestSuite) token(userID, role string, ttl time.Duration) string {
	tok, _, err := utils.GenerateJWT(userID, role, suite.jwtSecret, ttl, "gg-test")
	suite.Require().NoError(err)
	return tok
}

func (suite *AuthMiddlewareTestSuite) do(path, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestValidToken() {
	w := suite.do("/api/whoami", "Bearer "+suite.token("user-42", "member", time.Hour))

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"userID":"user-42","role":"member"}`, w.Body.String())
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := suite.do("/api/whoami", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	w := suite.do("/api/whoami", "Token abc")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	w := suite.do("/api/whoami", "Bearer "+suite.token("user-42", "member", -time.Minute))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

func (suite *AuthMiddlewareTestSuite) TestRequireRole() {
	w := suite.do("/api/admin", "Bearer "+suite.token("user-1", "member", time.Hour))
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("/api/admin", "Bearer "+suite.token("user-2", "admin", time.Hour))
	suite.Equal(http.StatusNoContent, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
