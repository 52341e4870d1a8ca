package member_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nkulisa-npc/membership-site/internal/member"
	"github.com/nkulisa-npc/membership-site/internal/model"
	"github.com/nkulisa-npc/membership-site/internal/shared/testutil"
)

// setupTestEnvironment creates all dependencies needed for member handler tests
func setupTestEnvironment(t *testing.T) (*member.MemberHandler, *gorm.DB, *testutil.MockMirrorStore) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	memberRepo := member.NewMemberRepository()
	mockMirror := testutil.NewMockMirrorStore()
	memberService := member.NewMemberService(db, memberRepo, mockMirror)
	memberHandler := member.NewMemberHandler(memberService)

	return memberHandler, db, mockMirror
}

func registrationForm(name, phone, email, pkg string) url.Values {
	form := url.Values{}
	form.Set("name", name)
	form.Set("phone", phone)
	form.Set("email", email)
	form.Set("package", pkg)
	return form
}

func TestRegister_Success(t *testing.T) {
	// Given: Setup test environment
	memberHandler, db, mockMirror := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	// When: Execute a valid registration
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Test Member", "0712345678", "test@example.com", "Gold"),
	})

	// Then: Redirected home with the member persisted
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	var stored model.Member
	require.NoError(t, db.Where("email = ?", "test@example.com").First(&stored).Error)
	assert.Equal(t, "Test Member", stored.FullName)
	assert.Equal(t, "0712345678", stored.Phone)
	assert.Equal(t, "Gold", stored.Package)
	assert.NotZero(t, stored.ID)

	// And: A denormalized copy was pushed to the mirror store
	pushed := mockMirror.Pushed()
	require.Len(t, pushed, 1)
	assert.Equal(t, "test@example.com", pushed[0].Email)
	assert.Equal(t, "Gold", pushed[0].Package)
}

func TestRegister_NormalizesFields(t *testing.T) {
	// Given: Setup test environment
	memberHandler, db, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	// When: Fields arrive with surrounding whitespace and mixed-case email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm(" Jane Doe ", "0712345678", " Jane@Example.com ", "Gold"),
	})

	// Then: The stored record is trimmed; email lower-cased, name case kept
	assert.Equal(t, http.StatusSeeOther, recorder.Code)

	var stored model.Member
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&stored).Error)
	assert.Equal(t, "Jane Doe", stored.FullName)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "0712345678", stored.Phone)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Given: A registered member
	memberHandler, db, mockMirror := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("First Member", "0712345678", "duplicate@example.com", "Silver"),
	})
	require.Equal(t, http.StatusSeeOther, first.Code)

	// When: A second registration reuses the email, case and padding varied
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Second Member", "0798765432", "  DUPLICATE@Example.com ", "Gold"),
	})

	// Then: Re-prompted at the form with no second row created
	assert.Equal(t, http.StatusSeeOther, second.Code)
	assert.Equal(t, "/register", second.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Where("email = ?", "duplicate@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// And: Only the successful registration reached the mirror store
	assert.Len(t, mockMirror.Pushed(), 1)
}

func TestRegister_DuplicateFlashShownOnForm(t *testing.T) {
	// Given: A registered member and the rendered form
	memberHandler, _, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.LoadHTMLGlob("../../web/templates/*.html")
	router.GET("/register", memberHandler.ShowForm)
	router.POST("/register", memberHandler.Register)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("First Member", "0712345678", "taken@example.com", "Bronze"),
	})
	require.Equal(t, http.StatusSeeOther, first.Code)

	duplicate := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Second Member", "0712345678", "taken@example.com", "Bronze"),
	})
	require.Equal(t, http.StatusSeeOther, duplicate.Code)

	// When: Following the redirect with the session cookie
	followUp := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method:  http.MethodGet,
		URL:     "/register",
		Cookies: duplicate.Header().Values("Set-Cookie"),
	})

	// Then: The duplicate flash is rendered once
	assert.Equal(t, http.StatusOK, followUp.Code)
	assert.Contains(t, followUp.Body.String(), "Email already registered.")
}

func TestRegister_MirrorFailureDoesNotAffectOutcome(t *testing.T) {
	// Given: A mirror store that always fails
	memberHandler, db, mockMirror := setupTestEnvironment(t)
	mockMirror.PushMemberFunc = func(ctx context.Context, m *model.Member) error {
		return errors.New("mirror store unavailable")
	}

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	// When: A valid registration is submitted
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Test Member", "0712345678", "isolated@example.com", "Platinum"),
	})

	// Then: Registration still succeeds and the row is persisted
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Where("email = ?", "isolated@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	memberHandler, db, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	testCases := []struct {
		name string
		form url.Values
	}{
		{
			name: "Missing name",
			form: registrationForm("", "0712345678", "test@example.com", "Gold"),
		},
		{
			name: "Missing phone",
			form: registrationForm("Test Member", "", "test@example.com", "Gold"),
		},
		{
			name: "Missing email",
			form: registrationForm("Test Member", "0712345678", "", "Gold"),
		},
		{
			name: "Missing package",
			form: registrationForm("Test Member", "0712345678", "test@example.com", ""),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/register",
				Form:   tc.form,
			})

			// Then: Re-prompted at the form, nothing persisted
			assert.Equal(t, http.StatusSeeOther, recorder.Code)
			assert.Equal(t, "/register", recorder.Header().Get("Location"))
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegister_ValidationError_InvalidEmail(t *testing.T) {
	// Given: Setup test environment
	memberHandler, db, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	// When: The email has no valid shape
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Test Member", "0712345678", "not-an-email", "Gold"),
	})

	// Then: Re-prompted, nothing persisted
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/register", recorder.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRegister_ValidationError_UnknownPackage(t *testing.T) {
	// Given: Setup test environment
	memberHandler, db, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/register", memberHandler.Register)

	// When: The package is not one of the offered tiers
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/register",
		Form:   registrationForm("Test Member", "0712345678", "test@example.com", "Diamond"),
	})

	// Then: Re-prompted, nothing persisted
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/register", recorder.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
