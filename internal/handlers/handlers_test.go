package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dudhwalekaran/voltvault-sub000/internal/config"
	"github.com/dudhwalekaran/voltvault-sub000/internal/domain/catalog"
	"github.com/dudhwalekaran/voltvault-sub000/internal/models"
	"github.com/dudhwalekaran/voltvault-sub000/internal/routes"
)

type env struct {
	db     *gorm.DB
	router *gin.Engine
	cfg    *config.Config
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Record{},
		&models.PendingRequest{},
		&models.History{},
	))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		// Synchronous audit keeps assertions deterministic.
		AuditStrict: true,
	}

	types, err := catalog.New()
	require.NoError(t, err)

	router := gin.New()
	routes.RegisterRoutes(router, db, cfg, types)

	return &env{db: db, router: router, cfg: cfg}
}

func (e *env) token(t *testing.T, userID, email, name, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"name":   name,
		"status": role,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(e.cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func (e *env) adminToken(t *testing.T) string {
	return e.token(t, "admin-1", "admin@voltvault.io", "Grid Admin", "admin")
}

func (e *env) userToken(t *testing.T) string {
	return e.token(t, "user-7", "field@voltvault.io", "Field Engineer", "user")
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var generatorPayload = map[string]any{
	"location":  "Plant1",
	"mva":       100,
	"kvprimary": 230,
}

func TestCreateRequiresAuth(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", "", generatorPayload)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminCreateReturnsRecord(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.adminToken(t), generatorPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	require.Equal(t, true, body["success"])

	record := body["record"].(map[string]any)
	fields := record["fields"].(map[string]any)
	require.Equal(t, "Plant1", fields["location"])
	require.Equal(t, "admin-1", record["created_by"])

	var entry models.History
	require.NoError(t, e.db.First(&entry).Error)
	require.Equal(t, "create", entry.Action)
	require.Equal(t, "Generator", entry.DataType)
	require.Equal(t, record["id"], entry.RecordID)
}

func TestUserCreateQueuesRequest(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.userToken(t), generatorPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Nil(t, body["record"])

	request := body["request"].(map[string]any)
	require.Equal(t, "pending", request["status"])
	require.Equal(t, generatorPayload["location"], request["data"].(map[string]any)["location"])

	var count int64
	e.db.Model(&models.Record{}).Count(&count)
	require.Zero(t, count, "no record may exist before approval")
}

func TestApproveFlow(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.userToken(t), generatorPayload)
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := decode(t, w)["request"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodPatch, "/api/requests/"+requestID+"/approve", e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	record := body["record"].(map[string]any)
	require.Equal(t, "Plant1", record["fields"].(map[string]any)["location"])
	require.Equal(t, "approved", body["request"].(map[string]any)["status"])

	// Terminal: a second approval conflicts.
	w = e.do(t, http.MethodPatch, "/api/requests/"+requestID+"/approve", e.adminToken(t), nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectFlow(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.userToken(t), generatorPayload)
	requestID := decode(t, w)["request"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodPatch, "/api/requests/"+requestID+"/reject", e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "rejected", decode(t, w)["request"].(map[string]any)["status"])

	var count int64
	e.db.Model(&models.Record{}).Count(&count)
	require.Zero(t, count)
	e.db.Model(&models.History{}).Count(&count)
	require.Zero(t, count, "rejections are not audited")
}

func TestModerationDeniedForUser(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.userToken(t), generatorPayload)
	requestID := decode(t, w)["request"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodPatch, "/api/requests/"+requestID+"/approve", e.userToken(t), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var req models.PendingRequest
	require.NoError(t, e.db.First(&req, "id = ?", requestID).Error)
	require.Equal(t, "pending", req.Status)
}

func TestUnknownTypeRejected(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/flux-capacitor", e.adminToken(t), generatorPayload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_data_type", decode(t, w)["error"])
}

func TestIncompletePayloadRejected(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/generator", e.adminToken(t), map[string]any{
		"location": "",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "missing_required_fields", decode(t, w)["error"])
}

func TestUpdateAndHistoryDetails(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/bus", e.adminToken(t), map[string]any{
		"location": "A", "nominal_kv": 230,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recordID := decode(t, w)["record"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodPatch, "/api/records/bus/"+recordID, e.adminToken(t), map[string]any{
		"location": "B",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var entry models.History
	require.NoError(t, e.db.Where("action = ?", "update").First(&entry).Error)
	require.Equal(t, `Changed location from "A" to "B"`, entry.Details)
}

func TestDeleteRecord(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/api/records/bus", e.adminToken(t), map[string]any{"location": "A"})
	recordID := decode(t, w)["record"].(map[string]any)["id"].(string)

	w = e.do(t, http.MethodDelete, "/api/records/bus/"+recordID, e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/api/records/bus/"+recordID, e.adminToken(t), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodDelete, "/api/records/bus/"+recordID, e.userToken(t), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestListRequestsAdminOnly(t *testing.T) {
	e := setupEnv(t)

	e.do(t, http.MethodPost, "/api/records/generator", e.userToken(t), generatorPayload)

	w := e.do(t, http.MethodGet, "/api/requests", e.userToken(t), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(t, http.MethodGet, "/api/requests?status=pending", e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 1, body["total"])
	requests := body["requests"].([]any)
	require.Len(t, requests, 1)
}

func TestHistoryListAndPrune(t *testing.T) {
	e := setupEnv(t)

	e.do(t, http.MethodPost, "/api/records/bus", e.adminToken(t), map[string]any{"location": "A"})
	e.do(t, http.MethodPost, "/api/records/generator", e.adminToken(t), generatorPayload)

	w := e.do(t, http.MethodGet, "/api/history?data_type=Generator", e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 1, body["total"])

	entryID := body["history"].([]any)[0].(map[string]any)["id"].(string)
	w = e.do(t, http.MethodDelete, "/api/history/"+entryID, e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	e.db.Model(&models.History{}).Count(&count)
	require.EqualValues(t, 1, count, "pruning removes only the one row")
}

func TestMeEchoesPrincipal(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodGet, "/api/me", e.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := decode(t, w)["user"].(map[string]any)
	require.Equal(t, "admin-1", user["id"])
	require.Equal(t, "admin", user["role"])
}
