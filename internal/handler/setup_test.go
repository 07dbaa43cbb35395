package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mondaymagic/backend/internal/config"
	"mondaymagic/backend/internal/database"
	"mondaymagic/backend/internal/models"
	"mondaymagic/backend/internal/router"
	"mondaymagic/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupEnv wires the production router to an in-memory sqlite database.
func setupEnv(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One connection, or every pooled conn would get its own empty :memory: db.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedCommanders(db); err != nil {
		t.Fatalf("seed commanders: %v", err)
	}

	database.DB = db
	return router.New()
}

func createUser(t *testing.T, userName string) models.User {
	t.Helper()
	user := models.User{
		UserName:     userName,
		Email:        userName + "@example.com",
		PasswordHash: "x",
		DisplayName:  "The " + userName,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", userName, err)
	}
	return user
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := jwt.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON performs a request against the router; token and body may be empty.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
