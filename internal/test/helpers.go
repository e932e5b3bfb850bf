// Package test contains helpers for tests that run requests against the API.
package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/config"
	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/invitations"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/router"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	// JWTSecret signs the session tokens of test requests.
	JWTSecret = "test-session-secret"

	// WebhookSecret signs the webhook bodies of test requests.
	WebhookSecret = "test-webhook-secret"

	BaseURL = "http://example.com"
)

// TmpFile returns the path to a file in a temporary directory that is
// removed when the test finishes.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "test.db")
}

// Env holds the collaborators test requests run against.
type Env struct {
	DB          *gorm.DB
	Storage     *storage.Memory
	Invitations *invitations.Memory
	Events      *events.Recorder
	AllowList   auth.AllowListPolicy

	// InvitationProvider replaces Invitations in the controller when set
	InvitationProvider invitations.Provider

	// MaxUploadBytes defaults to 1 MB
	MaxUploadBytes int64
}

// NewEnv returns an environment with in-memory collaborators for the database.
func NewEnv(db *gorm.DB) *Env {
	return &Env{
		DB:             db,
		Storage:        storage.NewMemory("https://blobs.example.com"),
		Invitations:    invitations.NewMemory(),
		Events:         &events.Recorder{},
		MaxUploadBytes: 1 << 20,
	}
}

// Controller returns the controller wired to the environment.
func (e *Env) Controller() v1.Controller {
	var provider invitations.Provider = e.Invitations
	if e.InvitationProvider != nil {
		provider = e.InvitationProvider
	}

	return v1.Controller{
		DB:             e.DB,
		Identity:       auth.NewJWTIdentity(JWTSecret, ""),
		Policy:         auth.Any(auth.RolePolicy{}, e.AllowList),
		AllowList:      e.AllowList,
		Storage:        e.Storage,
		Invitations:    provider,
		Events:         e.Events,
		AppURL:         "http://app.example.com",
		MaxUploadBytes: e.MaxUploadBytes,
		WebhookSecret:  WebhookSecret,
	}
}

// Request makes a request against a router wired to the environment.
// String and byte slice bodies are sent as they are, all other bodies
// are encoded as JSON.
func (e *Env) Request(t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = bytes.NewBufferString(b)
	case []byte:
		reader = bytes.NewBuffer(b)
	case io.Reader:
		reader = b
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from object input", err)
		}
		reader = bytes.NewBuffer(encoded)
	}

	os.Setenv("LOG_FORMAT", "human")

	r, teardown, err := router.Config(Config())
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	defer teardown()

	router.AttachRoutes(e.Controller(), r.Group("/"), false)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, reader)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// Config returns the configuration test routers use.
func Config() config.Config {
	u, _ := url.Parse(BaseURL)

	return config.Config{
		APIURL:  u,
		AppURL:  "http://app.example.com",
		Timeout: 10 * time.Second,
		Storage: config.Storage{Provider: config.StorageMemory, MaxSizeMB: 1},
		Auth:    config.Auth{JWTSecret: JWTSecret},
	}
}

// Token returns the authorization header for a session of the caller.
func Token(t *testing.T, caller auth.Caller) map[string]string {
	token, err := auth.NewJWTIdentity(JWTSecret, "").Sign(caller, time.Hour)
	require.Nil(t, err, "session token could not be signed")

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the message of an error response.
func DecodeError(t *testing.T, r *httptest.ResponseRecorder) string {
	var body struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(r.Body.Bytes(), &body); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", r.Body.String())
	}

	return body.Error
}
