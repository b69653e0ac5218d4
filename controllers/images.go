package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"picstash/middleware"
	"picstash/models"
	"picstash/services"
)

const (
	editErrorMessage   = "Only the owner of the image can edit the image"
	deleteErrorMessage = "Only the owner of the image can delete the image"
)

// ImageController serves the image pages: listing, detail, upload, edit and
// delete. Ownership gates the mutating operations; failures are reported back
// on the image page through a flash message instead of an error status.
type ImageController struct {
	images *services.ImageService
	tags   *services.TagService
}

func NewImageController(images *services.ImageService, tags *services.TagService) *ImageController {
	return &ImageController{images: images, tags: tags}
}

// ListImages renders the home page with every uploaded image.
func (ic *ImageController) ListImages(c *gin.Context) {
	images, err := ic.images.GetAllImages()
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}
	c.HTML(http.StatusOK, "images.html", gin.H{
		"images": images,
		"user":   middleware.UserFrom(c),
	})
}

// ShowImage renders a single image with its tags and comments. The title
// path segment is only there for readable URLs and is not checked against
// the stored title.
func (ic *ImageController) ShowImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image id")
		return
	}
	img, err := ic.images.GetImage(id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	// Owner errors arrive either as a one-shot flash or as a query
	// parameter on the redirect; the flash wins when both are present.
	session := sessions.Default(c)
	editError := flashMessage(session.Flashes("editError"), c.Query("editError"))
	deleteError := flashMessage(session.Flashes("deleteError"), c.Query("deleteError"))
	session.Save()

	c.HTML(http.StatusOK, "image.html", gin.H{
		"image":       img,
		"tags":        img.Tags,
		"comments":    img.Comments,
		"editError":   editError,
		"deleteError": deleteError,
		"user":        middleware.UserFrom(c),
	})
}

// NewImage renders the upload form.
func (ic *ImageController) NewImage(c *gin.Context) {
	if middleware.UserFrom(c) == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "upload.html", gin.H{"user": middleware.UserFrom(c)})
}

// CreateImage stores a new image owned by the logged in user. The uploaded
// bytes are kept as a base64 string on the image record and the tag string is
// resolved to persisted tags.
func (ic *ImageController) CreateImage(c *gin.Context) {
	user := middleware.UserFrom(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	file, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.String(http.StatusBadRequest, "Invalid upload")
		return
	}
	imageData, err := encodeImageFile(file)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}

	tags, err := ic.tags.Resolve(c.PostForm("tags"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	img := models.Image{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		ImageFile:   imageData,
		Date:        time.Now(),
		UserID:      user.ID,
		Tags:        tags,
	}
	if err := ic.images.UploadImage(&img); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save image")
		return
	}
	c.Redirect(http.StatusFound, "/images")
}

// EditImage renders the edit form for the image's owner. Anyone else is sent
// back to the image page with the owner error attached.
func (ic *ImageController) EditImage(c *gin.Context) {
	id, err := parseID(c.Query("imageId"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image id")
		return
	}
	img, err := ic.images.GetImage(id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	user := middleware.UserFrom(c)
	if !ownsImage(img, user) {
		redirectWithError(c, img, "editError", editErrorMessage)
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"image": img,
		"tags":  ic.tags.Render(img.Tags),
		"user":  user,
	})
}

// EditImageSubmit applies the submitted edit. An empty file part means the
// payload is unchanged, so the previous base64 string is carried over; the
// owner, tags and date are always overwritten.
func (ic *ImageController) EditImageSubmit(c *gin.Context) {
	id, err := parseID(formOrQuery(c, "imageId"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image id")
		return
	}
	prev, err := ic.images.GetImage(id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	user := middleware.UserFrom(c)
	if user == nil {
		redirectWithError(c, prev, "editError", editErrorMessage)
		return
	}

	file, err := c.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		c.String(http.StatusBadRequest, "Invalid upload")
		return
	}
	updatedImageData, err := encodeImageFile(file)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to read file")
		return
	}

	imageTags, err := ic.tags.Resolve(c.PostForm("tags"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	updated := models.Image{
		ID:          prev.ID,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Date:        time.Now(),
		UserID:      user.ID,
		Tags:        imageTags,
	}
	if updatedImageData == "" {
		updated.ImageFile = prev.ImageFile
	} else {
		updated.ImageFile = updatedImageData
	}

	if err := ic.images.UpdateImage(&updated); err != nil {
		c.String(http.StatusInternalServerError, "Failed to update image")
		return
	}
	c.Redirect(http.StatusFound, imagePath(updated.ID, updated.Title))
}

// DeleteImageSubmit removes the image when the logged in user owns it, and
// otherwise bounces back to the image page with the owner error.
func (ic *ImageController) DeleteImageSubmit(c *gin.Context) {
	id, err := parseID(formOrQuery(c, "imageId"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image id")
		return
	}
	img, err := ic.images.GetImage(id)
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	if !ownsImage(img, middleware.UserFrom(c)) {
		redirectWithError(c, img, "deleteError", deleteErrorMessage)
		return
	}

	if err := ic.images.DeleteImage(img.ID); err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete image")
		return
	}
	c.Redirect(http.StatusFound, "/images")
}

// ownsImage reports whether user owns the image. A missing user never owns
// anything.
func ownsImage(img *models.Image, user *models.User) bool {
	return user != nil && img.UserID == user.ID
}

// redirectWithError sends the browser back to the image page with the owner
// error attached both as a flash attribute and as a query parameter, so the
// message survives the redirect either way the page reads it.
func redirectWithError(c *gin.Context, img *models.Image, key, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, key)
	session.Save()
	c.Redirect(http.StatusFound, fmt.Sprintf("%s?%s=%s",
		imagePath(img.ID, img.Title), key, url.QueryEscape(message)))
}

func imagePath(id uint, title string) string {
	return fmt.Sprintf("/images/%d/%s", id, url.PathEscape(title))
}

func flashMessage(flashes []interface{}, fallback string) string {
	if len(flashes) > 0 {
		if msg, ok := flashes[0].(string); ok {
			return msg
		}
	}
	return fallback
}

func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
