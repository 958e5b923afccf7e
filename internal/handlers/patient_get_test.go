package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/services"
	"github.com/strokesecure/stroke-records/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testPatientID = "64f1a2b3c4d5e6f7a8b9c0d1"

// withURLParam injects a chi route parameter into the request context,
// standing in for the router during handler tests.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPatientGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oid, _ := primitive.ObjectIDFromHex(testPatientID)
	stored := &models.PatientDB{
		ID:     oid,
		Name:   "Maria Santos",
		Age:    67,
		Gender: models.GenderFemale,
	}

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockPatientGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), testPatientID).Return(stored, nil)

		handler := NewPatientGetHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/patients/"+testPatientID, nil), "id", testPatientID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp models.PatientDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, testPatientID, resp.ID.Hex())
		assert.Equal(t, "Maria Santos", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := NewMockPatientGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), testPatientID).Return(nil, services.ErrPatientNotFound)

		handler := NewPatientGetHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/patients/"+testPatientID, nil), "id", testPatientID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 404, rr.Code)
		assert.JSONEq(t, `{"error":"Patient not found"}`, rr.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockPatientGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), "nope").
			Return(nil, &validation.FieldError{Field: "id", Rule: validation.RuleInvalidID})

		handler := NewPatientGetHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/patients/nope", nil), "id", "nope")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 400, rr.Code)
		assert.JSONEq(t, `{"error":"Invalid patient ID format"}`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockPatientGetter(ctrl)
		mockSvc.EXPECT().Get(gomock.Any(), testPatientID).Return(nil, errors.New("db down"))

		handler := NewPatientGetHandler(mockSvc)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/patients/"+testPatientID, nil), "id", testPatientID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}
