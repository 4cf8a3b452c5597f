package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms-backend/internal/delivery/dto"
	"hms-backend/internal/usecase"
	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	loginPortal string
	loginErr    error
}

func (s *stubAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{Email: req.Email}, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest, portalRole string) (*dto.TokenResponse, error) {
	s.loginPortal = portalRole
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrTokenRevoked
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, usecase.ErrUserNotFound
}

type stubOtpUsecase struct {
	verifyErr error
}

func (s *stubOtpUsecase) Issue(ctx context.Context, req *dto.RequestOtpRequest) (*dto.OtpIssuedResponse, error) {
	return &dto.OtpIssuedResponse{Identifier: req.Identifier, ExpiresIn: 300}, nil
}

func (s *stubOtpUsecase) Verify(ctx context.Context, req *dto.VerifyOtpRequest) error {
	return s.verifyErr
}

func (s *stubOtpUsecase) ConsumeVerified(ctx context.Context, identifier string) (bool, error) {
	return true, nil
}

func newAuthTestRouter(auth usecase.AuthUsecase, otp usecase.OtpUsecase) *mux.Router {
	h := NewAuthHandler(auth, otp, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/auth/login/{portal}", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/otp/verify", h.VerifyOtp).Methods(http.MethodPost)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLoginPassesPortalFromPath(t *testing.T) {
	auth := &stubAuthUsecase{}
	router := newAuthTestRouter(auth, &stubOtpUsecase{})

	body, _ := json.Marshal(dto.LoginRequest{Email: "doc@hospital.local", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login/doctor", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "doctor", auth.loginPortal)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestLoginWrongPortalReturnsForbidden(t *testing.T) {
	auth := &stubAuthUsecase{loginErr: usecase.ErrWrongPortal}
	router := newAuthTestRouter(auth, &stubOtpUsecase{})

	body, _ := json.Marshal(dto.LoginRequest{Email: "doc@hospital.local", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login/admin", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestLoginValidationFailure(t *testing.T) {
	router := newAuthTestRouter(&stubAuthUsecase{}, &stubOtpUsecase{})

	body, _ := json.Marshal(dto.LoginRequest{Email: "not-an-email", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login/doctor", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOtpMapsDomainErrors(t *testing.T) {
	router := newAuthTestRouter(&stubAuthUsecase{}, &stubOtpUsecase{verifyErr: usecase.ErrOtpExpired})

	body, _ := json.Marshal(dto.VerifyOtpRequest{Identifier: "+911234567890", Code: "482913"})
	req := httptest.NewRequest(http.MethodPost, "/auth/otp/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "verification code has expired", resp.Message)
}
