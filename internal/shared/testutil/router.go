package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/nkulisa-npc/membership-site/internal/shared/validator"
)

// SetupTestRouter creates a test Gin router with the session middleware the
// form handlers depend on for flash statuses.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	// Register custom validators for testing
	_ = validator.RegisterAll()

	engine := gin.New()

	store := cookie.NewStore([]byte("test_secret_key"))
	engine.Use(sessions.Sessions("nkulisa_session", store))

	return engine
}

// TestRequest describes an HTTP request to execute in tests. Form takes
// precedence over Body when both are set.
type TestRequest struct {
	Method  string
	URL     string
	Body    interface{}
	Form    url.Values
	Cookies []string
}

// ExecuteRequest executes a test HTTP request and returns the response
func ExecuteRequest(t *testing.T, router *gin.Engine, req TestRequest) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	contentType := ""

	switch {
	case req.Form != nil:
		bodyReader = strings.NewReader(req.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case req.Body != nil:
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
		contentType = "application/json"
	}

	httpReq := httptest.NewRequest(req.Method, req.URL, bodyReader)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for _, c := range req.Cookies {
		httpReq.Header.Add("Cookie", c)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	return recorder
}

// ParseResponse parses the JSON response body into the given struct
func ParseResponse(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(recorder.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response body: %v", err)
	}
}
