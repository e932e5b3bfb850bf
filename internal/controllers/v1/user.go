package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
)

// RegisterUserRoutes attaches the routes for the caller's own account.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", co.GetMe)
	r.OPTIONS("/me/settings", httputil.OptionsPatch)
	r.PATCH("/me/settings", co.UpdateSettings)
	r.OPTIONS("/feedback", httputil.OptionsPost)
	r.POST("/feedback", co.CreateFeedback)
	r.OPTIONS("/upload", httputil.OptionsPost)
	r.POST("/upload", co.Upload)
}

// Me is the caller's profile.
type Me struct {
	models.User
	IsAdmin bool `json:"isAdmin" example:"false"` // The caller has administrative access
}

type MeResponse struct {
	Data Me `json:"data"`
}

type FeedbackRequest struct {
	Type    models.FeedbackType `json:"type" example:"SUGGESTION"`
	Message string              `json:"message" binding:"required" example:"Please add a yearly overview"`
}

type FeedbackResponse struct {
	Data models.Feedback `json:"data"`
}

// @Summary		Get current user
// @Description	Returns the profile of the caller and whether the caller is an administrator
// @Tags			Users
// @Produce		json
// @Success		200	{object}	MeResponse
// @Failure		401	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Router			/api/me [get]
func (co Controller) GetMe(c *gin.Context) {
	user := auth.User(c)
	admin, _ := co.Policy.Allows(user)

	c.JSON(http.StatusOK, MeResponse{Data: Me{User: user, IsAdmin: admin}})
}

// @Summary		Update settings
// @Description	Updates the settings of the caller that are set in the request body
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200			{object}	MeResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			settings	body		models.UserSettings	true	"Settings"
// @Router			/api/me/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	user := auth.User(c)

	fields, err := httputil.GetBodyFields(c, models.UserSettings{})
	if err != nil {
		writeError(c, err)
		return
	}

	var data models.UserSettings
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if len(fields) == 0 {
		writeError(c, httputil.ErrRequestBodyEmpty)
		return
	}

	err = co.db(c).Model(&user).Select("", fields...).Updates(models.User{UserSettings: data}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	admin, _ := co.Policy.Allows(user)
	c.JSON(http.StatusOK, MeResponse{Data: Me{User: user, IsAdmin: admin}})
}

// @Summary		Send feedback
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201			{object}	FeedbackResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			feedback	body		FeedbackRequest	true	"Feedback"
// @Router			/api/feedback [post]
func (co Controller) CreateFeedback(c *gin.Context) {
	var data FeedbackRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	feedback := models.Feedback{
		UserID:  auth.User(c).ID,
		Type:    data.Type,
		Message: data.Message,
	}

	if err := co.db(c).Omit("User").Create(&feedback).Error; err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, FeedbackResponse{Data: feedback})
}
