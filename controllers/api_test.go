package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"marusalon-backend/config"
	"marusalon-backend/controllers"
	"marusalon-backend/models"
	"marusalon-backend/routes"
	"marusalon-backend/services"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := config.DefaultCatalog()
	for day := range catalog.BusinessHours {
		catalog.BusinessHours[day] = models.DayHours{Open: 9 * 60, Close: 18 * 60}
	}

	store := services.NewMemoryBookingStore()
	cfg := &config.AppConfig{SlotStepMinutes: 30, BufferMinutes: 15, RetentionWindow: 24 * time.Hour, HistoryLimit: 20}
	engine := services.NewAvailabilityEngine(catalog, store, cfg)
	analytics := services.NewAnalyticsTracker()
	bookings := services.NewBookingService(catalog, store, services.NewSlotLockManager(), engine, services.LogCRMSync{}, analytics)
	conversations := services.NewConversationStore(cfg.HistoryLimit)
	dispatcher := services.NewDispatcher(catalog, bookings, engine, conversations, nil, analytics)

	return routes.SetupRouter(routes.Controllers{
		Availability: controllers.NewAvailabilityController(engine),
		Bookings:     controllers.NewBookingController(bookings),
		Catalog:      controllers.NewCatalogController(catalog),
		Webhook:      controllers.NewWebhookController(dispatcher, services.LogSender{}),
		Analytics:    controllers.NewAnalyticsController(analytics),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", w.Body.String(), err)
	}
	return w, env
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestAvailabilityEndpoint(t *testing.T) {
	r := newTestServer(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/availability?date="+futureDate()+"&serviceId=haircut", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, envelope = %+v", w.Code, env)
	}

	var slots []models.Slot
	if err := json.Unmarshal(env.Data, &slots); err != nil {
		t.Fatalf("decode slots: %v", err)
	}
	if len(slots) == 0 || slots[0].Time != "09:00" {
		t.Fatalf("unexpected slots: %+v", slots)
	}

	// Missing parameters are rejected with the envelope code.
	w, env = doJSON(t, r, http.MethodGet, "/api/availability?serviceId=haircut", nil)
	if w.Code != http.StatusBadRequest || env.Code != "INVALID_INPUT" {
		t.Fatalf("status = %d, code = %q", w.Code, env.Code)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/availability?date="+futureDate()+"&serviceId=nailart", nil)
	if w.Code != http.StatusNotFound || env.Code != "NOT_FOUND" {
		t.Fatalf("status = %d, code = %q", w.Code, env.Code)
	}
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	r := newTestServer(t)
	date := futureDate()

	body := models.BookingRequest{
		CustomerName:  "Thandi M",
		CustomerPhone: "+27821234567",
		ServiceID:     "haircut",
		Date:          date,
		Time:          "10:00",
		StylistID:     "sarah",
	}

	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", body)
	if w.Code != http.StatusCreated || !env.Success {
		t.Fatalf("create: status = %d, envelope = %+v", w.Code, env)
	}

	var created struct {
		Booking             models.Booking `json:"booking"`
		ConfirmationMessage string         `json:"confirmationMessage"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode create payload: %v", err)
	}
	if created.Booking.Price != 250 || created.ConfirmationMessage == "" {
		t.Fatalf("unexpected create payload: %+v", created)
	}
	id := created.Booking.ID

	// Double booking the same stylist slot conflicts.
	w, env = doJSON(t, r, http.MethodPost, "/api/bookings", body)
	if w.Code != http.StatusConflict || env.Code != "SLOT_UNAVAILABLE" {
		t.Fatalf("double booking: status = %d, code = %q", w.Code, env.Code)
	}

	// Reschedule to a free afternoon slot.
	w, env = doJSON(t, r, http.MethodPut, "/api/bookings/"+id+"/reschedule",
		controllers.RescheduleInput{Date: date, Time: "14:00"})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("reschedule: status = %d, envelope = %+v", w.Code, env)
	}

	// Customer listing shows the moved booking.
	w, env = doJSON(t, r, http.MethodGet, "/api/customers/+27821234567/bookings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d", w.Code)
	}
	var list []models.Booking
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Time != "14:00" {
		t.Fatalf("unexpected list: %+v", list)
	}

	// Cancel, then cancel again.
	w, env = doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, controllers.CancelInput{Reason: "sick"})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("cancel: status = %d, envelope = %+v", w.Code, env)
	}
	w, env = doJSON(t, r, http.MethodDelete, "/api/bookings/"+id, nil)
	if w.Code != http.StatusConflict || env.Code != "ALREADY_CANCELLED" {
		t.Fatalf("second cancel: status = %d, code = %q", w.Code, env.Code)
	}

	// Unknown booking id.
	w, env = doJSON(t, r, http.MethodDelete, "/api/bookings/BKNOPE", nil)
	if w.Code != http.StatusNotFound || env.Code != "NOT_FOUND" {
		t.Fatalf("unknown id: status = %d, code = %q", w.Code, env.Code)
	}
}

func TestCreateBookingPastDate(t *testing.T) {
	r := newTestServer(t)

	body := models.BookingRequest{
		CustomerName:  "Thandi M",
		CustomerPhone: "+27821234567",
		ServiceID:     "haircut",
		Date:          "2020-01-06",
		Time:          "10:00",
	}
	w, env := doJSON(t, r, http.MethodPost, "/api/bookings", body)
	if w.Code != http.StatusBadRequest || env.Code != "PAST_DATE" {
		t.Fatalf("status = %d, code = %q", w.Code, env.Code)
	}
}

func TestWebhookEndpoint(t *testing.T) {
	r := newTestServer(t)

	w, env := doJSON(t, r, http.MethodPost, "/webhook", controllers.InboundMessage{
		SenderID:    "+27821234567",
		Text:        "How much does a haircut cost?",
		ContactName: "Thandi",
	})
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("status = %d, envelope = %+v", w.Code, env)
	}

	var result services.DispatchResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode dispatch result: %v", err)
	}
	if result.Context != "sales" {
		t.Errorf("context = %q, want sales", result.Context)
	}
	if result.ResponseText == "" {
		t.Error("response text must not be empty")
	}

	// Payload without the required fields is rejected.
	w, env = doJSON(t, r, http.MethodPost, "/webhook", map[string]string{"senderId": "+27821234567"})
	if w.Code != http.StatusBadRequest || env.Code != "INVALID_INPUT" {
		t.Fatalf("status = %d, code = %q", w.Code, env.Code)
	}
}

func TestWebhookVerification(t *testing.T) {
	r := newTestServer(t)
	t.Setenv("WHATSAPP_WEBHOOK_VERIFY_TOKEN", "sekrit")

	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=sekrit&hub.challenge=challenge-123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "challenge-123" {
		t.Fatalf("verification failed: %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=challenge-123", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("bad token should be forbidden, got %d", w.Code)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestServer(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/services", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("services: status = %d", w.Code)
	}
	var svcList []models.Service
	if err := json.Unmarshal(env.Data, &svcList); err != nil {
		t.Fatalf("decode services: %v", err)
	}
	if len(svcList) != 7 {
		t.Fatalf("expected 7 services, got %d", len(svcList))
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/stylists", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stylists: status = %d", w.Code)
	}
	var stylists []models.Stylist
	if err := json.Unmarshal(env.Data, &stylists); err != nil {
		t.Fatalf("decode stylists: %v", err)
	}
	if len(stylists) != 4 {
		t.Fatalf("expected 4 stylists, got %d", len(stylists))
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	r := newTestServer(t)

	request := models.BookingRequest{
		CustomerName:  "Thandi M",
		CustomerPhone: "+27821234567",
		ServiceID:     "coloring",
		Date:          futureDate(),
		Time:          "10:00",
	}
	if w, _ := doJSON(t, r, http.MethodPost, "/api/bookings", request); w.Code != http.StatusCreated {
		t.Fatalf("setup booking failed: %d", w.Code)
	}
	if w, _ := doJSON(t, r, http.MethodPost, "/webhook", gin.H{
		"senderId": "+27821234567", "text": "what does a haircut cost?",
	}); w.Code != http.StatusOK {
		t.Fatalf("setup webhook failed: %d", w.Code)
	}

	w, env := doJSON(t, r, http.MethodGet, "/api/analytics/day", nil)
	if w.Code != http.StatusOK || !env.Success {
		t.Fatalf("analytics: status = %d, body %s", w.Code, w.Body.String())
	}
	var dashboard models.AnalyticsDashboard
	if err := json.Unmarshal(env.Data, &dashboard); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dashboard.TotalBookings != 1 || dashboard.TotalRevenue != 450 {
		t.Errorf("bookings/revenue = %d/%v, want 1/450", dashboard.TotalBookings, dashboard.TotalRevenue)
	}
	if dashboard.TotalConversations != 1 || dashboard.ByContext["sales"] != 1 {
		t.Errorf("conversations = %d (%v), want 1 sales", dashboard.TotalConversations, dashboard.ByContext)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/analytics/year", nil)
	if w.Code != http.StatusBadRequest || env.Code != "INVALID_INPUT" {
		t.Fatalf("bad period: status = %d, code = %q", w.Code, env.Code)
	}
}
