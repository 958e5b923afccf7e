package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/strokesecure/stroke-records/internal/models"
	"github.com/strokesecure/stroke-records/internal/validation"
)

func TestPatientCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validBody := PatientRequest{
		Name:            "Maria Santos",
		Age:             67,
		Gender:          models.GenderFemale,
		Hypertension:    true,
		EverMarried:     true,
		WorkType:        models.WorkPrivate,
		ResidenceType:   models.ResidenceUrban,
		AvgGlucoseLevel: 228.69,
		BMI:             36.6,
		SmokingStatus:   models.SmokingFormerly,
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockPatientCreator)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockPatientCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p *models.PatientDB) (string, error) {
						assert.Equal(t, validBody.Name, p.Name)
						assert.Equal(t, validBody.Age, p.Age)
						assert.Equal(t, validBody.SmokingStatus, p.SmokingStatus)
						return "64f1a2b3c4d5e6f7a8b9c0d1", nil
					})
			},
			expectedCode: 201,
			expectedBody: map[string]string{"id": "64f1a2b3c4d5e6f7a8b9c0d1", "message": "Patient added successfully"},
		},
		{
			name: "invalid field",
			mockSetup: func(m *MockPatientCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return("", &validation.FieldError{Field: "gender", Rule: validation.RuleInvalidCategory})
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid value for gender"},
		},
		{
			name: "glucose out of range",
			mockSetup: func(m *MockPatientCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return("", &validation.FieldError{Field: "avg_glucose_level", Rule: validation.RuleInvalidNumeric})
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "avg_glucose_level must be a valid non-negative number"},
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockPatientCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return("", errors.New("insert failed"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPatientCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPatientCreateHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(validBody)
				req = httptest.NewRequest(http.MethodPost, "/patients", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
