package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/events"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/middleware"
)

type orchestratorStub struct {
	resp         *Response
	runErr       *Error
	confirmation *ConfirmationResponse
	confirmErr   error
	lastRequest  Request
}

func (s *orchestratorStub) Run(ctx context.Context, req Request) (*Response, *Error) {
	s.lastRequest = req
	return s.resp, s.runErr
}

func (s *orchestratorStub) Confirmation(ctx context.Context, sessionID string) (*ConfirmationResponse, error) {
	return s.confirmation, s.confirmErr
}

func (s *orchestratorStub) SetEventProducer(producer events.Producer) {}

func checkoutEngine(stub *orchestratorStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.SessionID())
	api := engine.Group("/api/v1")
	SetupCheckoutRoutes(api, NewController(stub))
	return engine
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Run("passes identity from headers into the run", func(t *testing.T) {
		stub := &orchestratorStub{resp: &Response{State: StateRedirectingToGateway}}
		engine := checkoutEngine(stub)

		body := `{"unit_id":"bus-1","passenger_name":"Ram","email":"ram@example.com","contact":"9841234567"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tok-123")
		req.Header.Set("X-Session-ID", "spa-1")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tok-123", stub.lastRequest.Token)
		assert.Equal(t, "spa-1", stub.lastRequest.SessionID)
		assert.Equal(t, "bus-1", stub.lastRequest.UnitID)
	})

	t.Run("auth failure maps to 401", func(t *testing.T) {
		stub := &orchestratorStub{runErr: &Error{
			State:    StateAuthCheck,
			Message:  "Please log in to complete your booking.",
			Redirect: "/login",
		}}
		engine := checkoutEngine(stub)

		body := `{"unit_id":"bus-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var envelope struct {
			Errors Error `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "/login", envelope.Errors.Redirect)
	})

	t.Run("validation failure maps to 422", func(t *testing.T) {
		stub := &orchestratorStub{runErr: newFieldError("email", "A valid email address is required.")}
		engine := checkoutEngine(stub)

		body := `{"unit_id":"bus-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("reservation conflict maps to 409", func(t *testing.T) {
		stub := &orchestratorStub{runErr: &Error{
			State:      StateReservingSeats,
			SeatNumber: "A1",
			Message:    "Seat A1 has already been taken.",
		}}
		engine := checkoutEngine(stub)

		body := `{"unit_id":"bus-1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing unit id fails binding", func(t *testing.T) {
		engine := checkoutEngine(&orchestratorStub{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
