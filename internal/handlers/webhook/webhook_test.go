package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ardiansah/digistore/internal/dto"
	"github.com/ardiansah/digistore/internal/service/webhookservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestHandlePayment(t *testing.T) {
	handler, service := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.WebhookResponseDTO
	}{
		{
			name: "Completed deposit settles",
			body: `{"order_id":"DEP-1","status":"completed","amount":150075}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), webhookservice.Notification{
						OrderID: "DEP-1",
						Status:  "completed",
						Amount:  150075,
					}).
					Return(&webhookservice.Result{
						Type:    "deposit",
						Status:  "PAID",
						Message: "deposit credited",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WebhookResponseDTO{
				Success: true,
				Type:    "deposit",
				Status:  "PAID",
				Message: "deposit credited",
			},
		},
		{
			name: "Replay is acknowledged without a second mutation",
			body: `{"order_id":"DEP-1","status":"completed","amount":150075}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), gomock.Any()).
					Return(&webhookservice.Result{
						Type:             "deposit",
						Status:           "PAID",
						AlreadyProcessed: true,
						Message:          "already processed",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.WebhookResponseDTO{
				Success: true,
				Type:    "deposit",
				Status:  "PAID",
				Message: "already processed",
			},
		},
		{
			name:         "Invalid request body",
			body:         `{"order_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing order id",
			body:         `{"status":"completed","amount":100}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Verification failure",
			body: `{"order_id":"DEP-1","status":"completed","amount":150075}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), gomock.Any()).
					Return(nil, webhookservice.ErrVerificationFailed)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Amount mismatch",
			body: `{"order_id":"DEP-1","status":"completed","amount":1}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), gomock.Any()).
					Return(nil, webhookservice.ErrAmountMismatch)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown correlation id",
			body: `{"order_id":"NOPE-1","status":"completed","amount":100}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), gomock.Any()).
					Return(nil, webhookservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			body: `{"order_id":"DEP-1","status":"completed","amount":150075}`,
			prepareMock: func() {
				service.EXPECT().
					Process(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/webhook/payment", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.HandlePayment(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WebhookResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
