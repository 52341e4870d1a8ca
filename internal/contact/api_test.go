package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkulisa-npc/membership-site/internal/contact"
	"github.com/nkulisa-npc/membership-site/internal/mailer"
	"github.com/nkulisa-npc/membership-site/internal/shared/testutil"
)

const testOperator = "operator@example.com"

func setupTestEnvironment(t *testing.T) (*contact.ContactHandler, *testutil.MockMailer) {
	t.Helper()

	mockMailer := testutil.NewMockMailer()
	contactService := contact.NewContactService(mockMailer, testOperator)
	contactHandler := contact.NewContactHandler(contactService)

	return contactHandler, mockMailer
}

func contactForm(name, email, message string) url.Values {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("message", message)
	return form
}

func TestContact_Success(t *testing.T) {
	// Given: Setup test environment
	contactHandler, mockMailer := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/contact", contactHandler.Submit)

	// When: A valid message is submitted
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/contact",
		Form:   contactForm("Test Sender", "sender@example.com", "Hello there"),
	})

	// Then: Redirected back with exactly one attempt to the operator mailbox
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/contact", recorder.Header().Get("Location"))

	sent := mockMailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{testOperator}, sent[0].To)
	assert.Equal(t, "New Contact Message - Nkulisa Burials NPC", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "Name: Test Sender")
	assert.Contains(t, sent[0].Body, "Email: sender@example.com")
	assert.Contains(t, sent[0].Body, "Hello there")
}

func TestContact_RelayFailure(t *testing.T) {
	// Given: A relay that rejects the message
	contactHandler, mockMailer := setupTestEnvironment(t)
	mockMailer.SendFunc = func(ctx context.Context, msg *mailer.Message) error {
		return errors.New("smtp: 535 authentication failed")
	}

	router := testutil.SetupTestRouter()
	router.LoadHTMLGlob("../../web/templates/*.html")
	router.GET("/contact", contactHandler.ShowForm)
	router.POST("/contact", contactHandler.Submit)

	// When: A valid message is submitted
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/contact",
		Form:   contactForm("Test Sender", "sender@example.com", "Hello there"),
	})

	// Then: Non-fatal — redirected back, exactly one attempt, no retry
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/contact", recorder.Header().Get("Location"))
	assert.Len(t, mockMailer.Sent(), 1)

	// And: The relay's reason is surfaced in the flash
	followUp := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/contact",
		Cookies: recorder.Header().Values("Set-Cookie"),
	})
	assert.Equal(t, http.StatusOK, followUp.Code)
	assert.Contains(t, followUp.Body.String(), "Failed to send message:")
	assert.Contains(t, followUp.Body.String(), "535 authentication failed")
}

func TestContact_NotConfigured(t *testing.T) {
	// Given: A mailer without credentials
	mockMailer := testutil.NewMockMailer()
	mockMailer.SendFunc = func(ctx context.Context, msg *mailer.Message) error {
		return mailer.ErrNotConfigured
	}
	contactService := contact.NewContactService(mockMailer, testOperator)
	contactHandler := contact.NewContactHandler(contactService)

	router := testutil.SetupTestRouter()
	router.POST("/contact", contactHandler.Submit)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/contact",
		Form:   contactForm("Test Sender", "sender@example.com", "Hello there"),
	})

	// Then: Surfaced like any other relay failure
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/contact", recorder.Header().Get("Location"))
}

func TestContact_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	contactHandler, mockMailer := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/contact", contactHandler.Submit)

	testCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "Missing name",
			form: contactForm("", "sender@example.com", "Hello"),
		},
		{
			name: "Missing email",
			form: contactForm("Test Sender", "", "Hello"),
		},
		{
			name: "Missing message",
			form: contactForm("Test Sender", "sender@example.com", ""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/contact",
				Form:   tc.form,
			})

			// Then: Re-prompted, no send attempted
			assert.Equal(t, http.StatusSeeOther, recorder.Code)
			assert.Equal(t, "/contact", recorder.Header().Get("Location"))
		})
	}

	assert.Empty(t, mockMailer.Sent())
}
