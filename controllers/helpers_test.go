package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"picstash/config"
	"picstash/database"
	"picstash/models"
	"picstash/services"
)

func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	props := &config.Properties{
		SessionSecret: "test-secret",
		MaxUploadSize: 8 << 20,
		TemplateGlob:  "../templates/*.html",
	}
	return SetupRouter(props, db), db
}

func createUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Username: username, Password: string(hashed)}
	require.NoError(t, db.Create(user).Error)
	return user
}

// logIn posts the login form and returns the session cookie to replay on
// later requests.
func logIn(t *testing.T, app http.Handler, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	require.NotEmpty(t, cookie)
	return cookie
}

func seedImage(t *testing.T, db *gorm.DB, owner *models.User, title, payload string, tagCSV string) *models.Image {
	t.Helper()
	tags, err := services.NewTagService(db).Resolve(tagCSV)
	require.NoError(t, err)
	img := &models.Image{
		Title:     title,
		ImageFile: payload,
		Date:      time.Now(),
		UserID:    owner.ID,
		Tags:      tags,
	}
	require.NoError(t, services.NewImageService(db).UploadImage(img))
	return img
}

// multipartForm builds a multipart body with the given fields and, when
// fileBytes is non-nil, a file part named "file".
func multipartForm(t *testing.T, fields map[string]string, fileBytes []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileBytes != nil {
		part, err := writer.CreateFormFile("file", "upload.png")
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
