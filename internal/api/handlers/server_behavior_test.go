package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kolekta.io/kolekta/ent"
	"kolekta.io/kolekta/ent/schema"
	"kolekta.io/kolekta/internal/activity"
	"kolekta.io/kolekta/internal/api/middleware"
	"kolekta.io/kolekta/internal/feed"
	"kolekta.io/kolekta/internal/notification"
	"kolekta.io/kolekta/internal/pkg/logger"
	"kolekta.io/kolekta/internal/service"
	"kolekta.io/kolekta/internal/testutil"
	"kolekta.io/kolekta/internal/usecase"
)

var testJWTKey = []byte("behavior-test-signing-key-1234567890")

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newTestRouter(t *testing.T, prefix string) (*gin.Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)

	hub := feed.NewHub(16)
	activityLog := activity.NewLogger(client).WithFeed(hub)
	triggers := notification.NewTriggers(notification.NewInboxSender(client).WithFeed(hub))

	srv := NewServer(ServerDeps{
		EntClient:        client,
		JWTCfg:           middleware.JWTConfig{SigningKey: testJWTKey, Issuer: "kolekta", ExpiresIn: time.Hour},
		Hub:              hub,
		Schedules:        service.NewScheduleService(client),
		Reports:          service.NewReportService(client),
		Education:        service.NewEducationService(client),
		SMSHist:          service.NewSMSService(client),
		Activity:         activityLog,
		Inbox:            notification.NewInbox(client),
		CreateScheduleUC: usecase.NewCreateScheduleUseCase(client, activityLog).WithFeed(hub),
		TransitionUC:     usecase.NewTransitionScheduleUseCase(client, activityLog).WithFeed(hub),
		SubmitReportUC:   usecase.NewSubmitReportUseCase(client).WithFeed(hub),
		RespondReportUC:  usecase.NewRespondReportUseCase(client, triggers, activityLog).WithFeed(hub),
		FeedbackUC:       usecase.NewSubmitFeedbackUseCase(client).WithFeed(hub),
	})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	api := r.Group("/api/v1")
	authed := api.Group("", middleware.JWTAuth(testJWTKey))
	srv.RegisterRoutes(api, authed)
	return r, client
}

func bearerFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, _, err := middleware.GenerateToken(
		middleware.JWTConfig{SigningKey: testJWTKey, Issuer: "kolekta", ExpiresIn: time.Hour},
		userID, userID, role, "",
	)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScheduleEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, "handlers_schedules")
	official := bearerFor(t, "official-1", middleware.RoleOfficial)
	collector := bearerFor(t, "collector-1", middleware.RoleCollector)
	resident := bearerFor(t, "resident-1", middleware.RoleResident)

	createBody := `{"purok":"3","plan":"A","date":"2026-09-07","start_time":"08:00","end_time":"10:00","waste_type":"Recyclable"}`

	// Residents cannot create schedules.
	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules", resident, createBody)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/schedules", official, createBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Schedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "not-started", created.Status)
	require.Equal(t, "Monday", created.Day, "weekday label is derived from the date")

	// A schedule without a waste type is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/schedules", official,
		`{"purok":"3","plan":"A","date":"2026-09-07","start_time":"08:00","end_time":"10:00"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "waste_type")

	// Purok filter matches with and without the label prefix.
	for _, q := range []string{"purok=3", "purok=Purok+3"} {
		w = doJSON(t, r, http.MethodGet, "/api/v1/schedules?"+q, resident, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list struct {
			Items []Schedule `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list.Items, 1, "filter %q", q)
	}

	// Collector moves it to ongoing.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/schedules/"+created.ID+"/status", collector, `{"status":"ongoing"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Residents cannot.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/schedules/"+created.ID+"/status", resident, `{"status":"completed"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Unknown status is a 400.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/schedules/"+created.ID+"/status", collector, `{"status":"finished"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Missing schedule is a 404.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/schedules/nope/status", collector, `{"status":"ongoing"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The create and the transition both left activity entries.
	w = doJSON(t, r, http.MethodGet, "/api/v1/activities", official, "")
	require.Equal(t, http.StatusOK, w.Code)
	var activities struct {
		Items []Activity `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities.Items, 2)

	// Stats reflect the persisted ongoing row.
	w = doJSON(t, r, http.MethodGet, "/api/v1/schedules/stats", official, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats service.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.Ongoing)
	require.Equal(t, 1, stats.ActiveRoutes)
}

func TestScheduleRouteGeometryRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t, "handlers_routes")
	official := bearerFor(t, "official-1", middleware.RoleOfficial)

	points := []schema.RoutePoint{
		{Lat: 8.2280, Lng: 124.2452},
		{Lat: 8.2291, Lng: 124.2460},
		{Lat: 8.2305, Lng: 124.2458},
		{Lat: 8.2310, Lng: 124.2449},
	}
	body, err := json.Marshal(map[string]any{
		"purok":        "Purok 7",
		"plan":         "B",
		"date":         "2026-09-08",
		"start_time":   "06:00",
		"end_time":     "08:00",
		"waste_type":   "General",
		"route_points": points,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules", official, string(body))
	require.Equal(t, http.StatusCreated, w.Code)

	var created Schedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, points, created.RoutePoints)

	// Reading the schedule back yields the same ordered polyline.
	w = doJSON(t, r, http.MethodGet, "/api/v1/schedules/"+created.ID, official, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched Schedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, points, fetched.RoutePoints)
}

func TestReportLifecycleEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, "handlers_reports")
	official := bearerFor(t, "official-1", middleware.RoleOfficial)
	resident := bearerFor(t, "resident-1", middleware.RoleResident)

	w := doJSON(t, r, http.MethodPost, "/api/v1/reports", resident,
		`{"title":"Missed pickup","description":"Truck skipped our street","file_urls":["https://cdn.kolekta.local/r/overflow-1.jpg","https://cdn.kolekta.local/r/overflow-2.jpg"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var report Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Equal(t, "Pending", report.Status)
	require.Equal(t, "resident-1", report.UserID)
	require.Equal(t, []string{
		"https://cdn.kolekta.local/r/overflow-1.jpg",
		"https://cdn.kolekta.local/r/overflow-2.jpg",
	}, report.FileURLs, "attachments keep their upload order")

	// Feedback before resolution is rejected.
	w = doJSON(t, r, http.MethodPost, "/api/v1/reports/"+report.ID+"/feedback", resident, `{"rating":5}`)
	require.Equal(t, http.StatusConflict, w.Code)

	// Residents cannot respond.
	w = doJSON(t, r, http.MethodPost, "/api/v1/reports/"+report.ID+"/respond", resident,
		`{"response":"nice try"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/reports/"+report.ID+"/respond", official,
		`{"response":"Collected this morning","resolve":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Equal(t, "Resolved", report.Status)

	// The resident got exactly one unread notification.
	w = doJSON(t, r, http.MethodGet, "/api/v1/notifications/unread-count", resident, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count":1}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/notifications", resident, "")
	require.Equal(t, http.StatusOK, w.Code)
	var inbox struct {
		Items []Notification `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inbox))
	require.Len(t, inbox.Items, 1)
	require.Contains(t, inbox.Items[0].Message, "marked as resolved")
	require.Equal(t, "Resolved", inbox.Items[0].Status)

	// Feedback now succeeds and is idempotent per resident.
	w = doJSON(t, r, http.MethodPost, "/api/v1/reports/"+report.ID+"/feedback", resident,
		`{"rating":4,"comment":"quick"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/reports/"+report.ID+"/feedback", resident, `{"rating":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var fb Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fb))
	require.Equal(t, 5, fb.Rating)

	// Feedback history shows the single surviving row.
	w = doJSON(t, r, http.MethodGet, "/api/v1/feedback/mine", resident, "")
	require.Equal(t, http.StatusOK, w.Code)
	var myFeedback struct {
		Items []Feedback `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &myFeedback))
	require.Len(t, myFeedback.Items, 1)

	// Resolved filter on the resident's own reports.
	w = doJSON(t, r, http.MethodGet, "/api/v1/reports/mine?resolved=true", resident, "")
	require.Equal(t, http.StatusOK, w.Code)
	var mine struct {
		Items []Report `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	require.Len(t, mine.Items, 1)

	// Officials list everything; residents cannot.
	w = doJSON(t, r, http.MethodGet, "/api/v1/reports", resident, "")
	require.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/v1/reports", official, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessChecksDatabase(t *testing.T) {
	pool := testutil.OpenPGXPool(t, "handlers_ready")
	srv := NewServer(ServerDeps{Pool: pool})

	r := gin.New()
	api := r.Group("/api/v1")
	srv.RegisterRoutes(api, api.Group(""))

	w := doJSON(t, r, http.MethodGet, "/api/v1/health/ready", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"database":"ok"`)

	// A closed pool flips readiness to degraded.
	pool.Close()
	w = doJSON(t, r, http.MethodGet, "/api/v1/health/ready", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r, _ := newTestRouter(t, "handlers_auth")

	w := doJSON(t, r, http.MethodGet, "/api/v1/schedules", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Health endpoints stay public.
	w = doJSON(t, r, http.MethodGet, "/api/v1/health/live", "", "")
	require.Equal(t, http.StatusOK, w.Code)
}
