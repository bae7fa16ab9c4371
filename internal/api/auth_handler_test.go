package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskify/taskify-api/internal/api/shared"
	"github.com/taskify/taskify-api/internal/domain"
	"github.com/taskify/taskify-api/internal/mocks"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"name":     "Test User",
				"password": "password1234567",
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"email":    "invalid-email",
				"name":     "Test User",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"email":    "test2@example.com",
				"name":     "Test User",
				"password": "short",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"email":    "test3@example.com",
				"password": "password1234567",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test4@example.com",
				"name":  "Test User",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			userStore := mocks.NewMockUserStore()
			jwtService := &mocks.MockJWTService{Token: "test-token"}
			handler := NewAuthHandler(userStore, jwtService, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{})

			req := httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, tt.payload))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			handler.Register(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var authResp AuthResponse
				decodeResponse(t, recorder, &authResp)
				assert.Equal(t, "test-token", authResp.AccessToken)
				assert.Equal(t, "bearer", authResp.TokenType)
				assert.NotEqual(t, uuid.Nil, authResp.User.ID)
				assert.Equal(t, tt.payload["email"], authResp.User.Email)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(userStore, &mocks.MockJWTService{Token: "t"}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{})

	payload := map[string]interface{}{
		"email":    "dupe@example.com",
		"name":     "First",
		"password": "password1234567",
	}

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, payload)))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, payload)))

	// Duplicate email reports 400, not 409
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	var errResp shared.ErrorResponse
	decodeResponse(t, recorder, &errResp)
	assert.Equal(t, "Email already registered", errResp.Error)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(userStore, &mocks.MockJWTService{Token: "t"}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{})

	recorder := httptest.NewRecorder()
	handler.Register(recorder, httptest.NewRequest("POST", "/api/auth/register", jsonBody(t, map[string]interface{}{
		"email":    "hash@example.com",
		"name":     "Hash Me",
		"password": "password1234567",
	})))
	require.Equal(t, http.StatusOK, recorder.Code)

	stored := userStore.Users["hash@example.com"]
	require.NotNil(t, stored)
	assert.Empty(t, stored.Password)
	assert.Equal(t, "hashed:password1234567", stored.HashedPassword)

	// The response body must not leak either form of the password
	assert.NotContains(t, recorder.Body.String(), "password1234567")
	assert.NotContains(t, recorder.Body.String(), "hashed:")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	testEmail := "login@example.com"

	newHandler := func(verifier *mocks.MockPasswordVerifier) *AuthHandler {
		userStore := mocks.NewMockUserStore()
		userStore.Users[testEmail] = &domain.User{
			ID:             userID,
			Email:          testEmail,
			Name:           "Login User",
			HashedPassword: "stored-hash",
		}
		return NewAuthHandler(userStore, &mocks.MockJWTService{Token: "test-token"}, &mocks.MockPasswordHasher{}, verifier)
	}

	tests := []struct {
		name       string
		payload    map[string]interface{}
		verifier   *mocks.MockPasswordVerifier
		wantStatus int
		wantToken  bool
	}{
		{
			name: "valid credentials",
			payload: map[string]interface{}{
				"email":    testEmail,
				"password": "password1234567",
			},
			verifier:   &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "wrong password",
			payload: map[string]interface{}{
				"email":    testEmail,
				"password": "wrongpassword",
			},
			verifier:   &mocks.MockPasswordVerifier{ShouldSucceed: false},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			payload: map[string]interface{}{
				"email":    "nobody@example.com",
				"password": "password1234567",
			},
			verifier:   &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": testEmail,
			},
			verifier:   &mocks.MockPasswordVerifier{ShouldSucceed: true},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := newHandler(tt.verifier)

			recorder := httptest.NewRecorder()
			handler.Login(recorder, httptest.NewRequest("POST", "/api/auth/login", jsonBody(t, tt.payload)))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantToken {
				var authResp AuthResponse
				decodeResponse(t, recorder, &authResp)
				assert.Equal(t, "test-token", authResp.AccessToken)
				assert.Equal(t, userID, authResp.User.ID)
			} else if tt.wantStatus == http.StatusUnauthorized {
				// Unknown email and wrong password must be indistinguishable
				var errResp shared.ErrorResponse
				decodeResponse(t, recorder, &errResp)
				assert.Equal(t, "Invalid credentials", errResp.Error)
			}
		})
	}
}

func TestMe(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	userStore := mocks.NewMockUserStore()
	userStore.Users["me@example.com"] = &domain.User{
		ID:             userID,
		Email:          "me@example.com",
		Name:           "Me",
		HashedPassword: "hash",
	}
	handler := NewAuthHandler(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordHasher{}, &mocks.MockPasswordVerifier{})

	t.Run("returns current user", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		handler.Me(recorder, newAuthedRequest("GET", "/api/auth/me", nil, userID))

		require.Equal(t, http.StatusOK, recorder.Code)
		var user UserResponse
		decodeResponse(t, recorder, &user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "me@example.com", user.Email)
		assert.NotContains(t, recorder.Body.String(), "hash")
	})

	t.Run("missing user context", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		handler.Me(recorder, httptest.NewRequest("GET", "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("user vanished after token issued", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		handler.Me(recorder, newAuthedRequest("GET", "/api/auth/me", nil, uuid.New()))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
