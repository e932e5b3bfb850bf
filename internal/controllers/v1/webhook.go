package v1

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	SignatureHeader = "x-webhook-signature"
	TimestampHeader = "x-webhook-timestamp"

	webhookTolerance = 5 * time.Minute
)

var webhookEventTypes = []string{"user.created", "user.updated", "user.deleted"}

func (co Controller) RegisterWebhookRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/users", httputil.OptionsPost)
	r.POST("/users", co.UserWebhook)
}

type webhookUser struct {
	ID        string  `json:"id"`
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	IsActive  *bool   `json:"isActive"`
}

type webhookEvent struct {
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Data *webhookUser `json:"data"`
}

// webhookPayload is either a single event or a batch in Events.
type webhookPayload struct {
	webhookEvent
	Events []webhookEvent `json:"events"`
}

type WebhookResponse struct {
	Received int `json:"received" example:"1"`
}

// Sign returns the signature for a webhook body sent at timestamp ts.
func Sign(secret, ts string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// verifySignature checks the signature of a webhook body and that its
// timestamp is within the tolerance of now. Timestamps below 1e10 are
// seconds, all others milliseconds.
func verifySignature(secret, signature, ts string, body []byte, now time.Time) error {
	if secret == "" {
		return errWebhookNotConfigured
	}

	if signature == "" || ts == "" {
		return errWebhookSignature
	}

	value, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return errWebhookTimestamp
	}

	if value < 1e10 {
		value *= 1000
	}

	diff := now.Sub(time.UnixMilli(value))
	if diff > webhookTolerance || diff < -webhookTolerance {
		return errWebhookTimestamp
	}

	expected := Sign(secret, ts, body)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return errWebhookSignature
	}

	return nil
}

func parseWebhookEvents(body []byte) ([]webhookEvent, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Join(httputil.ErrInvalidBody, err)
	}

	list := payload.Events
	if list == nil {
		list = []webhookEvent{payload.webhookEvent}
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: the batch has no events", errWebhookPayload)
	}

	for i, e := range list {
		if !slices.Contains(webhookEventTypes, e.Type) {
			return nil, fmt.Errorf("%w: event %d has unknown type %q", errWebhookPayload, i, e.Type)
		}

		if e.Data == nil || e.Data.ID == "" {
			return nil, fmt.Errorf("%w: event %d has no user id", errWebhookPayload, i)
		}
	}

	return list, nil
}

// name returns the display name of the user, nil if the event does not set it.
func (u webhookUser) name() *string {
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return u.Name
	}

	if u.FirstName == nil && u.LastName == nil {
		return u.Name
	}

	var parts []string
	for _, p := range []*string{u.FirstName, u.LastName} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}

	name := strings.Join(parts, " ")
	return &name
}

// @Summary		Identity provider webhook
// @Description	Receives user.created, user.updated and user.deleted events. The body is signed with the webhook secret.
// @Tags			Webhooks
// @Accept			json
// @Produce		json
// @Success		200					{object}	WebhookResponse
// @Failure		400					{object}	httperror.Error
// @Failure		401					{object}	httperror.Error
// @Failure		422					{object}	httperror.Error
// @Failure		500					{object}	httperror.Error
// @Param			x-webhook-signature	header		string	true	"Hex encoded HMAC-SHA256 of timestamp.body"
// @Param			x-webhook-timestamp	header		string	true	"Unix timestamp in seconds or milliseconds"
// @Router			/api/webhooks/users [post]
func (co Controller) UserWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, httputil.ErrInvalidBody)
		return
	}

	err = verifySignature(co.WebhookSecret, c.GetHeader(SignatureHeader), c.GetHeader(TimestampHeader), body, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}

	list, err := parseWebhookEvents(body)
	if err != nil {
		writeError(c, err)
		return
	}

	// Events are published once the whole batch is stored
	type published struct {
		kind    events.Kind
		subject string
		data    any
	}
	var pending []published

	err = co.db(c).Transaction(func(tx *gorm.DB) error {
		for _, e := range list {
			if e.Type == "user.deleted" {
				found, err := models.DeactivateExternalUser(tx, e.Data.ID)
				if err != nil {
					return err
				}

				if found {
					pending = append(pending, published{events.UserDeactivated, e.Data.ID, nil})
				}
				continue
			}

			user, err := models.SyncUser(tx, models.UserSync{
				ExternalID: e.Data.ID,
				Email:      e.Data.Email,
				Name:       e.Data.name(),
				IsActive:   e.Data.IsActive,
			})
			if err != nil {
				return err
			}

			pending = append(pending, published{events.UserSynced, user.ExternalID, user})
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}

	for _, p := range pending {
		co.publish(c, p.kind, p.subject, p.data)
	}

	c.JSON(http.StatusOK, WebhookResponse{Received: len(list)})
}
