package personnel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clinicore/staff-registry/internal/auth"
	"github.com/clinicore/staff-registry/pkg/logger"
	"github.com/clinicore/staff-registry/pkg/types"
)

// MockPersonnelService is a mock implementation of PersonnelService
type MockPersonnelService struct {
	mock.Mock
}

func (m *MockPersonnelService) SignIn(ctx context.Context, kind types.StaffKind, credentials *types.Credentials) (*types.SignedToken, error) {
	args := m.Called(kind, credentials)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SignedToken), args.Error(1)
}

func (m *MockPersonnelService) CreateStaff(ctx context.Context, kind types.StaffKind, req *types.StaffCreate) (*types.ClinicalStaff, error) {
	args := m.Called(kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockPersonnelService) GetStaff(ctx context.Context, kind types.StaffKind, id string) (*types.ClinicalStaff, error) {
	args := m.Called(kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockPersonnelService) ListStaff(ctx context.Context, kind types.StaffKind) ([]*types.ClinicalStaff, error) {
	args := m.Called(kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.ClinicalStaff), args.Error(1)
}

func (m *MockPersonnelService) UpdateStaff(ctx context.Context, kind types.StaffKind, id string, upd *types.StaffUpdate) (*types.ClinicalStaff, error) {
	args := m.Called(kind, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ClinicalStaff), args.Error(1)
}

func (m *MockPersonnelService) DeleteStaff(ctx context.Context, kind types.StaffKind, id string) error {
	args := m.Called(kind, id)
	return args.Error(0)
}

func (m *MockPersonnelService) CreatePatient(ctx context.Context, req *types.PatientCreate) (*types.Patient, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Patient), args.Error(1)
}

func (m *MockPersonnelService) GetPatient(ctx context.Context, id string) (*types.Patient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Patient), args.Error(1)
}

func (m *MockPersonnelService) ListPatients(ctx context.Context) ([]*types.Patient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Patient), args.Error(1)
}

func (m *MockPersonnelService) UpdatePatient(ctx context.Context, id string, upd *types.PatientUpdate) (*types.Patient, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Patient), args.Error(1)
}

func (m *MockPersonnelService) DeletePatient(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPersonnelService) EnsureAdmin(ctx context.Context, email, password string) error {
	args := m.Called(email, password)
	return args.Error(0)
}

// stubResolver resolves every subject to a fixed role
type stubResolver struct {
	role string
	err  error
}

func (s stubResolver) ResolveRole(ctx context.Context, subjectID string, roles []string) (string, error) {
	return s.role, s.err
}

func setupPersonnelRouter(role string) (*gin.Engine, *MockPersonnelService, *MockTokenIssuer) {
	gin.SetMode(gin.TestMode)

	service := &MockPersonnelService{}
	issuer := &MockTokenIssuer{}
	guard := auth.NewGuard(issuer, stubResolver{role: role}, logger.New("error"))

	router := gin.New()
	api := router.Group("/api/clinical")
	NewHandler(service, logger.New("error")).RegisterRoutes(api, guard)

	return router, service, issuer
}

func TestSignInEndpoint_ReturnsTokenEnvelope(t *testing.T) {
	router, service, _ := setupPersonnelRouter(types.RoleAdmin)

	service.On("SignIn", types.KindDoctor, mock.AnythingOfType("*types.Credentials")).
		Return(&types.SignedToken{Value: "signed-token"}, nil)

	body, _ := json.Marshal(types.Credentials{Email: "maria@example.com", Password: "pw"})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/clinical/personal/doctors/signin", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, float64(http.StatusOK), envelope["code"])
	assert.Equal(t, "signed-token", envelope["token"])
}

func TestSignInEndpoint_UnknownEmail(t *testing.T) {
	router, service, _ := setupPersonnelRouter(types.RoleAdmin)

	service.On("SignIn", types.KindNurse, mock.AnythingOfType("*types.Credentials")).
		Return(nil, types.NewValidationError(types.ErrCodeBadCredentials,
			"The nurse does not exist in the database"))

	body, _ := json.Marshal(types.Credentials{Email: "ghost@example.com", Password: "pw"})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/clinical/personal/nurses/signin", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateDoctor_RequiresToken(t *testing.T) {
	router, service, _ := setupPersonnelRouter(types.RoleAdmin)

	body, _ := json.Marshal(validStaffCreate())
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/clinical/personal/doctors", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No token provided")
	service.AssertNotCalled(t, "CreateStaff")
}

func TestCreateDoctor_AdminAdmitted(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleAdmin)

	issuer.On("Verify", "admin-token").Return("admin-1", nil)
	service.On("CreateStaff", types.KindDoctor, mock.AnythingOfType("*types.StaffCreate")).
		Return(&types.ClinicalStaff{ID: testRecordID, Email: "maria@example.com"}, nil)

	body, _ := json.Marshal(validStaffCreate())
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/clinical/personal/doctors", bytes.NewReader(body))
	request.Header.Set(auth.TokenHeader, "admin-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Contains(t, envelope, "doctor")
}

func TestDoctorCRUD_RejectsNonAdminRole(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleNurse)

	issuer.On("Verify", "nurse-token").Return("nurse-1", nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/clinical/personal/doctors", nil)
	request.Header.Set(auth.TokenHeader, "nurse-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	service.AssertNotCalled(t, "ListStaff")
}

func TestPatientRoutes_AdmitAnyStaffRole(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleNurse)

	issuer.On("Verify", "nurse-token").Return("nurse-1", nil)
	service.On("ListPatients").Return([]*types.Patient{}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/clinical/patients", nil)
	request.Header.Set(auth.TokenHeader, "nurse-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "patients")
}

func TestUpdateDoctor_EmptyPayload(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleAdmin)

	issuer.On("Verify", "admin-token").Return("admin-1", nil)
	service.On("UpdateStaff", types.KindDoctor, testRecordID, mock.AnythingOfType("*types.StaffUpdate")).
		Return(nil, types.NewValidationError(types.ErrCodeEmptyPayload, "The payload is empty"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/api/clinical/personal/doctors/"+testRecordID,
		bytes.NewReader([]byte(`{}`)))
	request.Header.Set(auth.TokenHeader, "admin-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "The payload is empty")
}

func TestDeleteNurse_NotFound(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleAdmin)

	issuer.On("Verify", "admin-token").Return("admin-1", nil)
	service.On("DeleteStaff", types.KindNurse, "missing-id").
		Return(types.NewNotFoundError(types.ErrCodeNotFound, "The nurse does not exist in the database"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/clinical/personal/nurses/missing-id", nil)
	request.Header.Set(auth.TokenHeader, "admin-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleError_InternalDetailStaysOut(t *testing.T) {
	router, service, issuer := setupPersonnelRouter(types.RoleAdmin)

	issuer.On("Verify", "admin-token").Return("admin-1", nil)
	service.On("GetStaff", types.KindDoctor, testRecordID).
		Return(nil, errors.New("pq: connection refused"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/clinical/personal/doctors/"+testRecordID, nil)
	request.Header.Set(auth.TokenHeader, "admin-token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}
