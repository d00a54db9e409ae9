package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-care-scheduler/internal/adapters/auth/jwtauth"
	"pet-care-scheduler/internal/router"

	jwt "github.com/golang-jwt/jwt/v5"
)

// clock permite mover "hoy" entre requests.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(s string) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	c.now = t.Add(9 * time.Hour)
	c.mu.Unlock()
}

func newServer(t *testing.T, today string) (*httptest.Server, *clock) {
	t.Helper()
	c := &clock{}
	c.Set(today)
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Now:          c.Now,
		StoreTimeout: time.Second,
	}))
	t.Cleanup(ts.Close)
	return ts, c
}

func TestHTTP_EndToEnd_CarePlanLifecycleAndReminders(t *testing.T) {
	ts, clk := newServer(t, "2025-01-01")
	ownerID := "owner-1"

	// 1) Owner crea mascota
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Milo", "species": "dog"})

	// 2) Plan weekly: next_due_date derivado en el servidor
	var weekly planResp
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans", ownerID, map[string]any{
			"title":              "Brushing",
			"category":           "grooming",
			"frequency":          "weekly",
			"start_date":         "2025-01-01",
			"reminder_lead_days": 2,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create plan, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &weekly)
		if weekly.NextDueDate != "2025-01-08" || weekly.Status != "upcoming" {
			t.Fatalf("unexpected plan: %+v", weekly)
		}
		if !weekly.RemindersEnabled {
			t.Fatalf("reminders_enabled should default to true")
		}
	}

	// 3) Plan once y registro de vacuna con seguimiento
	once := createPlan(t, ts.URL, ownerID, petID, map[string]any{
		"title":      "Vet visit",
		"category":   "wellness",
		"frequency":  "once",
		"start_date": "2025-01-05",
	})
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/health-records", ownerID, map[string]any{
			"record_type":   "vaccination",
			"title":         "Rabies booster",
			"date":          "2024-01-08",
			"next_due_date": "2025-01-08",
			"metrics":       map[string]any{"weight": 21.4},
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
		}
	}

	// 4) Feed: once (01-05), luego empate 01-08 => plan antes que registro
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/health-reminders?days=30", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
		}
		var feed []reminderResp
		mustDecode(t, body, &feed)
		if len(feed) != 3 {
			t.Fatalf("expected 3 reminders, got %d body=%s", len(feed), string(body))
		}
		want := []string{"care_plan", "care_plan", "health_record"}
		for i, it := range feed {
			if it.ReminderType != want[i] {
				t.Fatalf("reminder %d: expected %s, got %s", i, want[i], it.ReminderType)
			}
			if (it.Plan == nil) == (it.Record == nil) {
				t.Fatalf("reminder %d must carry exactly one of plan/record: %s", i, string(body))
			}
		}
		if feed[0].Plan.ID != once.ID || feed[1].Plan.ID != weekly.ID {
			t.Fatalf("unexpected order: %s", string(body))
		}
	}

	// 5) Pasa el tiempo: el weekly queda overdue en lecturas
	clk.Set("2025-01-10")
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/care-plans", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list plans, got %d body=%s", st, string(body))
		}
		var plans []planResp
		mustDecode(t, body, &plans)
		for _, p := range plans {
			if p.Status != "overdue" {
				t.Fatalf("expected overdue at 2025-01-10, got %+v", p)
			}
		}
	}

	// 6) Completar weekly: avanza desde hoy
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans/"+weekly.ID+"/complete", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}
		var p planResp
		mustDecode(t, body, &p)
		if p.NextDueDate != "2025-01-17" || p.Status != "upcoming" || p.LastCompletedAt == nil {
			t.Fatalf("unexpected completed plan: %+v", p)
		}
	}

	// 7) Completar once dos veces => 409 la segunda
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans/"+once.ID+"/complete", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete once, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans/"+once.ID+"/complete", ownerID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 second complete, got %d body=%s", st, string(body))
		}
		if kind := errorKind(t, body); kind != "conflict" {
			t.Fatalf("expected kind conflict, got %q", kind)
		}
	}

	// 8) Otro usuario: 404, sin filtrar existencia
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans/"+weekly.ID+"/complete", "intruder", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for non-owner, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID+"/health-records", "intruder", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 records for non-owner, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/pets/health-reminders", "intruder", nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty feed for intruder, got %d body=%s", st, string(body))
		}
	}

	// 9) Mascota inactiva sale del feed
	{
		st, body := doReq(t, ts.URL, "PATCH", "/pets/"+petID+"/active", ownerID, map[string]any{"is_active": false})
		if st != http.StatusOK {
			t.Fatalf("expected 200 deactivate, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/pets/health-reminders", ownerID, nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty feed for inactive pet, got %d body=%s", st, string(body))
		}
	}

	// 10) Delete
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID+"/care-plans/"+weekly.ID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID+"/care-plans/"+weekly.ID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 second delete, got %d", st)
		}
	}
}

func TestHTTP_CreatePlan_ValidationFields(t *testing.T) {
	ts, _ := newServer(t, "2025-01-01")
	ownerID := "owner-1"
	petID := createPet(t, ts.URL, ownerID, map[string]any{"name": "Luna", "species": "cat"})

	st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans", ownerID, map[string]any{
		"title":      "Deworming",
		"category":   "medication",
		"frequency":  "custom",
		"start_date": "2025-01-01",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 custom without interval, got %d body=%s", st, string(body))
	}
	var resp errorResp
	mustDecode(t, body, &resp)
	if resp.Error.Kind != "validation" {
		t.Fatalf("expected kind validation, got %q", resp.Error.Kind)
	}
	if _, ok := resp.Error.Fields["custom_interval_days"]; !ok {
		t.Fatalf("expected custom_interval_days field error, body=%s", string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/pets/"+petID+"/care-plans", ownerID, map[string]any{
		"title":      "Deworming",
		"category":   "medication",
		"frequency":  "monthly",
		"start_date": "31/01/2025",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d body=%s", st, string(body))
	}

	// Mascota ajena o inexistente => 404 antes de validar
	st, _ = doReq(t, ts.URL, "POST", "/pets/does-not-exist/care-plans", ownerID, map[string]any{"title": "x"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown pet, got %d", st)
	}
}

func TestHTTP_AuthAndOps(t *testing.T) {
	ts, _ := newServer(t, "2025-01-01")

	st, _ := doReq(t, ts.URL, "GET", "/pets/health-reminders", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/pets/health-reminders?days=366", "owner-1", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 days out of range, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "petcare_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}
}

func TestHTTP_BearerAuth(t *testing.T) {
	v, err := jwtauth.NewVerifier(jwtauth.Config{Secret: "s3cret", Issuer: "storefront"})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: v}))
	t.Cleanup(ts.Close)

	// Con verifier el header de debug no autentica.
	st, _ := doReq(t, ts.URL, "GET", "/pets", "owner-1", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header, got %d", st)
	}

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "owner-1",
		Issuer:    "storefront",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req, _ := http.NewRequest("GET", ts.URL+"/pets/health-reminders", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with bearer, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty feed, got %s", string(body))
	}
}

// -------------------------
// helpers
// -------------------------

type planResp struct {
	ID               string  `json:"id"`
	NextDueDate      string  `json:"next_due_date"`
	Status           string  `json:"status"`
	RemindersEnabled bool    `json:"reminders_enabled"`
	LastCompletedAt  *string `json:"last_completed_at"`
}

type reminderResp struct {
	ReminderType string          `json:"reminder_type"`
	DueDate      string          `json:"due_date"`
	Plan         *planResp       `json:"plan"`
	Record       json.RawMessage `json:"record"`
}

type errorResp struct {
	Error struct {
		Kind    string            `json:"kind"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func errorKind(t *testing.T, body []byte) string {
	t.Helper()
	var resp errorResp
	mustDecode(t, body, &resp)
	return resp.Error.Kind
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPlan(t *testing.T, baseURL, userID, petID string, payload map[string]any) planResp {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/care-plans", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create plan, got %d body=%s", st, string(body))
	}
	var p planResp
	mustDecode(t, body, &p)
	return p
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
