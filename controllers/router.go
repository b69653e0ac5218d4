package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"picstash/config"
	"picstash/middleware"
	"picstash/services"
)

// SetupRouter wires the controllers onto a gin engine and wraps it with the
// method override so HTML forms can issue PUT and DELETE.
func SetupRouter(props *config.Properties, db *gorm.DB) http.Handler {
	router := gin.Default()
	router.MaxMultipartMemory = props.MaxUploadSize
	router.LoadHTMLGlob(props.TemplateGlob)

	store := cookie.NewStore([]byte(props.SessionSecret))
	router.Use(sessions.Sessions("picstash_session", store))
	router.Use(middleware.CurrentUser(db))

	images := NewImageController(services.NewImageService(db), services.NewTagService(db))
	auth := NewAuthController(db)

	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/images") })
	router.GET("/images", images.ListImages)
	router.GET("/images/upload", images.NewImage)
	router.POST("/images/upload", images.CreateImage)
	router.GET("/images/:id/:title", images.ShowImage)
	router.GET("/editImage", images.EditImage)
	router.PUT("/editImage", images.EditImageSubmit)
	router.DELETE("/deleteImage", images.DeleteImageSubmit)

	router.GET("/register", auth.ShowRegister)
	router.POST("/register", auth.Register)
	router.GET("/login", auth.ShowLogin)
	router.POST("/login", auth.Login)
	router.GET("/logout", auth.Logout)

	return middleware.MethodOverride(router)
}
