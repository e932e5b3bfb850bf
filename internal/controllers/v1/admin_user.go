package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/invitations"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterAdminUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetUsers)
		r.POST("/sync-roles", co.SyncRoles)
	}
	{
		r.GET("/invitations", co.GetInvitations)
		r.POST("/invite", co.CreateInvitation)
		r.POST("/invitations/:id/resend", co.ResendInvitation)
		r.POST("/invitations/:id/revoke", co.RevokeInvitation)
	}
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.PATCH("/:id", co.UpdateUser)
		r.PUT("/:id", co.UpdateUser)
		r.DELETE("/:id", co.DeactivateUser)
		r.POST("/:id/activate", co.ActivateUser)
	}
}

// UserEditable are the fields of a user an administrator can change.
type UserEditable struct {
	Name     string `json:"name" example:"Maria Silva"`
	Email    string `json:"email" binding:"omitempty,email" example:"maria@example.com"`
	IsActive bool   `json:"isActive" example:"true"`
}

type UserResponse struct {
	Data models.User `json:"data"`
}

type UserListResponse struct {
	Data []models.UserWithMonths `json:"data"`
}

type RoleGrantListResponse struct {
	Data []models.RoleGrant `json:"data"`
}

type InvitationListResponse struct {
	Invitations []invitations.Invitation `json:"invitations"`
}

type InvitationRequest struct {
	Email string `json:"email" example:"maria@example.com"`
}

type InvitationResponse struct {
	Success    bool                   `json:"success" example:"true"`
	Invitation invitations.Invitation `json:"invitation"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Admin
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/api/admin/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

func (co Controller) findUser(c *gin.Context) (models.User, bool) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, httputil.ErrInvalidUUID)
		return models.User{}, false
	}

	var user models.User
	if err := co.db(c).Where("id = ?", uri.ID.UUID).First(&user).Error; err != nil {
		writeError(c, err)
		return models.User{}, false
	}

	return user, true
}

// @Summary		List users
// @Description	Returns all users with the number of months they own, newest first
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/users [get]
func (co Controller) GetUsers(c *gin.Context) {
	users, err := models.ListUsersWithMonths(co.db(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserListResponse{Data: users})
}

// @Summary		Update user
// @Description	Updates name, email and active status of a user
// @Tags			Admin
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		403		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		string			true	"ID formatted as string"
// @Param			user	body		UserEditable	true	"User"
// @Router			/api/admin/users/{id} [patch]
// @Router			/api/admin/users/{id} [put]
func (co Controller) UpdateUser(c *gin.Context) {
	user, ok := co.findUser(c)
	if !ok {
		return
	}

	fields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		writeError(c, err)
		return
	}

	var data UserEditable
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	if len(fields) == 0 {
		writeError(c, httputil.ErrRequestBodyEmpty)
		return
	}

	if slices.Contains(fields, any("IsActive")) && !data.IsActive && user.ID == auth.User(c).ID {
		writeError(c, errSelfDeactivation)
		return
	}

	wasActive := user.IsActive
	err = co.db(c).Model(&user).Select("", fields...).Updates(models.User{
		Name:     data.Name,
		Email:    data.Email,
		IsActive: data.IsActive,
	}).Error
	if err != nil {
		writeError(c, err)
		return
	}

	if wasActive != user.IsActive {
		co.publishActivation(c, user)
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

func (co Controller) publishActivation(c *gin.Context, user models.User) {
	kind := events.UserDeactivated
	if user.IsActive {
		kind = events.UserActivated
	}
	co.publish(c, kind, user.ExternalID, nil)
}

func (co Controller) setUserActive(c *gin.Context, active bool) {
	user, ok := co.findUser(c)
	if !ok {
		return
	}

	if !active && user.ID == auth.User(c).ID {
		writeError(c, errSelfDeactivation)
		return
	}

	user, err := models.SetUserActive(co.db(c), user.ID, active)
	if err != nil {
		writeError(c, err)
		return
	}

	co.publishActivation(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// @Summary		Deactivate user
// @Description	Deactivates a user. The user's data is kept.
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		403	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/admin/users/{id} [delete]
func (co Controller) DeactivateUser(c *gin.Context) {
	co.setUserActive(c, false)
}

// @Summary		Activate user
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/admin/users/{id}/activate [post]
func (co Controller) ActivateUser(c *gin.Context) {
	co.setUserActive(c, true)
}

// @Summary		Synchronize admin roles
// @Description	Persists the admin role for every user matched by the admin allow-lists. Every grant is recorded.
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	RoleGrantListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/users/sync-roles [post]
func (co Controller) SyncRoles(c *gin.Context) {
	grants, err := co.AllowList.Sync(co.db(c), auth.User(c).ExternalID)
	for _, g := range grants {
		co.publish(c, events.RoleGranted, g.UserID.String(), g)
	}

	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoleGrantListResponse{Data: grants})
}

// @Summary		List pending invitations
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	InvitationListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/admin/users/invitations [get]
func (co Controller) GetInvitations(c *gin.Context) {
	list, err := co.Invitations.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, InvitationListResponse{Invitations: list})
}

func (co Controller) signUpURL() string {
	return co.AppURL + "/sign-up"
}

// @Summary		Invite user
// @Description	Sends an invitation to sign up to the email address
// @Tags			Admin
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvitationResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			invitation	body		InvitationRequest	true	"Invitation"
// @Router			/api/admin/users/invite [post]
func (co Controller) CreateInvitation(c *gin.Context) {
	var data InvitationRequest
	if err := httputil.BindData(c, &data); err != nil {
		writeError(c, err)
		return
	}

	email := strings.TrimSpace(data.Email)
	if email == "" {
		writeError(c, invitations.ErrEmailRequired)
		return
	}

	invitation, err := co.Invitations.Create(c.Request.Context(), email, co.signUpURL())
	if err != nil {
		writeError(c, err)
		return
	}

	co.publish(c, events.InvitationSent, invitation.ID, invitation)
	c.JSON(http.StatusOK, InvitationResponse{Success: true, Invitation: invitation})
}

// @Summary		Resend invitation
// @Description	Revokes the pending invitation and sends a new one to the same address
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	InvitationResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the invitation"
// @Router			/api/admin/users/invitations/{id}/resend [post]
func (co Controller) ResendInvitation(c *gin.Context) {
	var uri URIExternalID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invitations.ErrNotFound)
		return
	}

	invitation, err := invitations.Resend(c.Request.Context(), co.Invitations, uri.ID, co.signUpURL())
	if err != nil {
		writeError(c, err)
		return
	}

	co.publish(c, events.InvitationSent, invitation.ID, invitation)
	c.JSON(http.StatusOK, InvitationResponse{Success: true, Invitation: invitation})
}

// @Summary		Revoke invitation
// @Tags			Admin
// @Produce		json
// @Success		200	{object}	SuccessResponse
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		string	true	"ID of the invitation"
// @Router			/api/admin/users/invitations/{id}/revoke [post]
func (co Controller) RevokeInvitation(c *gin.Context) {
	var uri URIExternalID
	if err := c.ShouldBindUri(&uri); err != nil {
		writeError(c, invitations.ErrNotFound)
		return
	}

	if err := co.Invitations.Revoke(c.Request.Context(), uri.ID); err != nil {
		writeError(c, err)
		return
	}

	co.publish(c, events.InvitationRevoked, uri.ID, nil)
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
