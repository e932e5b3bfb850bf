package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/storage"
	"github.com/rs/zerolog/log"
)

// multipartOverhead is the room the request body has above the file size
// limit for the multipart framing and other form fields.
const multipartOverhead = 1 << 20

func (co Controller) RegisterAdminStorageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetStorageObjects)
	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.DeleteStorageObject)
}

type UploadResponse struct {
	URL         string `json:"url" example:"https://uploads.s3.us-east-1.amazonaws.com/uploads/user_2a8f3kLq9/1714000000000-receipt.pdf"`
	Pathname    string `json:"pathname" example:"uploads/user_2a8f3kLq9/1714000000000-receipt.pdf"`
	ContentType string `json:"contentType" example:"application/pdf"`
	Size        int64  `json:"size" example:"48213"`
	Name        string `json:"name" example:"receipt.pdf"`
}

type StorageObjectListResponse struct {
	Data []models.StorageObject `json:"data"`
}

func (co Controller) tooLarge() error {
	return fmt.Errorf("%w (max %d MB)", errFileTooLarge, co.MaxUploadBytes/(1024*1024))
}

// @Summary		Upload file
// @Description	Stores a file with public access. The file is sent in the multipart form field "file".
// @Tags			Storage
// @Accept			mpfd
// @Produce		json
// @Success		200		{object}	UploadResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		413		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			file	formData	file	true	"File"
// @Router			/api/upload [post]
func (co Controller) Upload(c *gin.Context) {
	user := auth.User(c)

	if c.Request.ContentLength > co.MaxUploadBytes+multipartOverhead {
		writeError(c, co.tooLarge())
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, co.MaxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var maxBytes *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytes):
			writeError(c, co.tooLarge())
		default:
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("no file in upload")
			writeError(c, errFileMissing)
		}
		return
	}

	if header.Size > co.MaxUploadBytes {
		writeError(c, co.tooLarge())
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, errors.Join(errFileMissing, err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.UploadKey(user.ExternalID, time.Now(), header.Filename)
	blob, err := co.Storage.Upload(c.Request.Context(), key, file, contentType, storage.AccessPublic)
	if err != nil {
		writeError(c, fmt.Errorf("%w: %w", errUpstream, err))
		return
	}

	object := models.StorageObject{
		UserID:         user.ID,
		ExternalUserID: user.ExternalID,
		Provider:       co.Storage.Name(),
		URL:            blob.URL,
		Pathname:       blob.Pathname,
		Name:           header.Filename,
		ContentType:    contentType,
		Size:           header.Size,
	}
	if err := co.db(c).Create(&object).Error; err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("url", blob.URL).Err(err).Msg("uploaded file not recorded")
	}

	co.publish(c, events.BlobUploaded, blob.Pathname, object)
	c.JSON(http.StatusOK, UploadResponse{
		URL:         blob.URL,
		Pathname:    blob.Pathname,
		ContentType: contentType,
		Size:        header.Size,
		Name:        header.Filename,
	})
}

// @Summary		List stored files
// @Description	Returns all stored files that have not been deleted, newest first
// @Tags			Storage
// @Produce		json
// @Success		200	{object}	StorageObjectListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/storage [get]
func (co Controller) GetStorageObjects(c *gin.Context) {
	var objects []models.StorageObject
	if err := co.db(c).Order("created_at DESC").Find(&objects).Error; err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StorageObjectListResponse{Data: objects})
}

// @Summary		Delete stored file
// @Description	Deletes the file from the blob store and marks the record as deleted
// @Tags			Storage
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/admin/storage/{id} [delete]
func (co Controller) DeleteStorageObject(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, httputil.ErrInvalidUUID)
		return
	}

	var object models.StorageObject
	if err := co.db(c).Where("id = ?", uri.ID.UUID).First(&object).Error; err != nil {
		writeError(c, err)
		return
	}

	if err := co.Storage.Delete(c.Request.Context(), object.URL); err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Str("url", object.URL).Err(err).Msg("blob not deleted")
	}

	if err := co.db(c).Delete(&object).Error; err != nil {
		writeError(c, err)
		return
	}

	co.publish(c, events.BlobDeleted, object.Pathname, nil)
	c.Status(http.StatusNoContent)
}
