package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chybatronik/goUserSearch/internal/logging"
	"github.com/chybatronik/goUserSearch/internal/models"
	"github.com/chybatronik/goUserSearch/internal/types"
	pkgerrors "github.com/chybatronik/goUserSearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockUserStore represents a mock store for handler tests
type MockUserStore struct {
	shouldFail  bool
	users       []models.User
	lastParams  types.SearchParams
	searchCalls int
	listCalls   int
}

func (m *MockUserStore) SearchUsers(ctx context.Context, params types.SearchParams) ([]models.User, error) {
	m.searchCalls++
	m.lastParams = params
	if m.shouldFail {
		return nil, pkgerrors.NewDatabaseError()
	}
	return m.users, nil
}

func (m *MockUserStore) ListRecentUsers(ctx context.Context) ([]models.User, error) {
	m.listCalls++
	if m.shouldFail {
		return nil, pkgerrors.NewDatabaseError()
	}
	return m.users, nil
}

func testUsers() []models.User {
	age := int64(34)
	return []models.User{
		{ID: 2, RegistrationDate: "2024-02-01", Nickname: "beta", BirthDate: "1990-05-05", Token: "tok-b", Age: &age},
		{ID: 1, RegistrationDate: "2024-01-01", Nickname: "alpha", BirthDate: "bad-date", Token: "tok-a", Age: nil},
	}
}

func TestListUsersSuccess(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{users: testUsers()}
	handler := NewUserHandler(logger, mockStore)

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()

	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, 1, mockStore.listCalls)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, float64(2), rows[0]["id"])
	assert.Equal(t, "beta", rows[0]["nickname"])
	assert.Equal(t, float64(34), rows[0]["age"])
	// Unparseable birth date serializes as null, not a crash or omission
	assert.Nil(t, rows[1]["age"])
}

func TestListUsersStoreFailure(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{shouldFail: true}
	handler := NewUserHandler(logger, mockStore)

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()

	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Database error", response["error"])
	// Error payload carries no row array
	_, hasRows := response["users"]
	assert.False(t, hasRows)
}

func TestListUsersMethodNotAllowed(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	handler := NewUserHandler(logger, &MockUserStore{})

	req := httptest.NewRequest("POST", "/api/users", nil)
	w := httptest.NewRecorder()

	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSearchUsersPassesTypedParams(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{users: testUsers()}
	handler := NewUserHandler(logger, mockStore)

	req := httptest.NewRequest("GET",
		"/api/users/search?registrationFrom=2023-01-01&token=abc&minAge=18&sortBy=age&sortDir=asc", nil)
	w := httptest.NewRecorder()

	handler.SearchUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, mockStore.searchCalls)

	params := mockStore.lastParams
	require.NotNil(t, params.RegistrationFrom)
	assert.Equal(t, "2023-01-01", *params.RegistrationFrom)
	assert.Nil(t, params.RegistrationTo)
	require.NotNil(t, params.Token)
	assert.Equal(t, "abc", *params.Token)
	require.NotNil(t, params.MinAge)
	assert.Equal(t, 18.0, *params.MinAge)
	assert.Nil(t, params.MaxAge)
	assert.Equal(t, types.SortKeyAge, params.SortBy)
	assert.Equal(t, types.SortAscending, params.SortDir)
}

func TestSearchUsersPermissiveInput(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{users: []models.User{}}
	handler := NewUserHandler(logger, mockStore)

	// Malformed numeric and unknown sort input must not produce a 400
	req := httptest.NewRequest("GET", "/api/users/search?minAge=abc&sortBy=bogus&sortDir=sideways", nil)
	w := httptest.NewRecorder()

	handler.SearchUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockStore.lastParams.MinAge)
	assert.True(t, math.IsNaN(*mockStore.lastParams.MinAge))
	assert.Equal(t, types.SortKeyDefault, mockStore.lastParams.SortBy)
	assert.Equal(t, types.SortDescending, mockStore.lastParams.SortDir)
}

func TestSearchUsersEmptyResultIsArray(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{users: nil}
	handler := NewUserHandler(logger, mockStore)

	req := httptest.NewRequest("GET", "/api/users/search?token=nomatch", nil)
	w := httptest.NewRecorder()

	handler.SearchUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestSearchUsersStoreFailure(t *testing.T) {
	logger := logging.NewStructuredLogger("error", "goUserSearch", "test")
	mockStore := &MockUserStore{shouldFail: true}
	handler := NewUserHandler(logger, mockStore)

	req := httptest.NewRequest("GET", "/api/users/search", nil)
	w := httptest.NewRecorder()

	handler.SearchUsers(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Database error", response["error"])
}
