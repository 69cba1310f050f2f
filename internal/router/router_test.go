package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	memcache "cattery-breeding/internal/adapters/cache/memory"
	"cattery-breeding/internal/router"
)

type litterBody struct {
	ID             string  `json:"id"`
	Phase          string  `json:"phase"`
	MatingDate     *string `json:"mating_date"`
	MatingDateFrom *string `json:"mating_date_from"`
	ExpectedDate   *string `json:"expected_date"`
	Warnings       []struct {
		Code string `json:"code"`
	} `json:"warnings"`
}

type kittenBody struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color"`
	BirthWeight *int    `json:"birth_weight"`
}

type rosterBody struct {
	Kittens []kittenBody `json:"kittens"`
	Created []string     `json:"created"`
	Deleted []string     `json:"deleted"`
}

func TestHTTP_ExpectedDateGoesStaleAfterMatingEdit(t *testing.T) {
	cases := map[string]router.Options{
		"memory":        {},
		"memory+cached": {Cache: memcache.NewStore(), CacheTTL: time.Minute},
	}

	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			ts := httptest.NewServer(router.NewRouter(opts))
			defer ts.Close()

			owner := "breeder-1"
			litterID := createLitter(t, ts.URL, owner, "A-Wurf")

			l := patchLitter(t, ts.URL, owner, litterID, map[string]any{"mating_date_from": "2024-01-10"})
			if l.MatingDate == nil || *l.MatingDate != "2024-01-10" {
				t.Fatalf("expected legacy mating_date in sync, got %v", l.MatingDate)
			}

			st, body := doReq(t, ts.URL, "POST", "/litters/"+litterID+"/expected-date", owner, nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 calculating expected date, got %d body=%s", st, string(body))
			}
			l = decodeLitter(t, body)
			if l.ExpectedDate == nil || *l.ExpectedDate != "2024-03-15" {
				t.Fatalf("expected 2024-03-15, got %v", l.ExpectedDate)
			}

			l = patchLitter(t, ts.URL, owner, litterID, map[string]any{"mating_date_from": "2024-01-20"})
			if l.ExpectedDate == nil || *l.ExpectedDate != "2024-03-15" {
				t.Fatalf("expected date must not be recalculated, got %v", l.ExpectedDate)
			}
			if !hasWarning(l, "expected_date_stale") {
				t.Fatalf("expected stale warning, got %+v", l.Warnings)
			}

			// GET ve lo mismo (también a través del cache)
			st, body = doReq(t, ts.URL, "GET", "/litters/"+litterID, owner, nil)
			if st != http.StatusOK {
				t.Fatalf("expected 200 get litter, got %d", st)
			}
			if got := decodeLitter(t, body); got.MatingDateFrom == nil || *got.MatingDateFrom != "2024-01-20" {
				t.Fatalf("expected mating_date_from 2024-01-20, got %v", got.MatingDateFrom)
			}
		})
	}
}

func TestHTTP_LitterRequiresOwner(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	litterID := createLitter(t, ts.URL, "breeder-1", "B-Wurf")

	if st, _ := doReq(t, ts.URL, "GET", "/litters/"+litterID, "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without user, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/litters/"+litterID, "breeder-2", nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for another breeder, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/litters/"+litterID+"/kittens", "breeder-2", nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 listing kittens of another breeder, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PATCH", "/litters/"+litterID, "breeder-1", map[string]any{"bogus": 1}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 on unknown field, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/litters/missing", "breeder-1", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 on unknown litter, got %d", st)
	}
}

func TestHTTP_RosterSaveIsFullReplace(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	owner := "breeder-1"
	litterID := createLitter(t, ts.URL, owner, "C-Wurf")

	st, body := doReq(t, ts.URL, "PUT", "/litters/"+litterID+"/kittens", owner, []map[string]any{
		{"name": "Alba", "gender": "female", "color": "blue"},
		{"name": "Bruno", "gender": "male", "color": "red"},
		{"name": "Cleo", "color": "black"},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 saving roster, got %d body=%s", st, string(body))
	}
	var first rosterBody
	mustDecode(t, body, &first)
	if len(first.Kittens) != 3 || len(first.Created) != 3 {
		t.Fatalf("expected 3 created kittens, got %+v", first)
	}
	alba := first.Kittens[0]

	// se manda sólo id + birth_weight de Alba: Bruno y Cleo se borran, y el resto queda vacío
	st, body = doReq(t, ts.URL, "PUT", "/litters/"+litterID+"/kittens", owner, []map[string]any{
		{"id": alba.ID, "birth_weight": 95},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 replacing roster, got %d body=%s", st, string(body))
	}
	var second rosterBody
	mustDecode(t, body, &second)
	if len(second.Deleted) != 2 || len(second.Kittens) != 1 {
		t.Fatalf("expected 2 deleted and 1 kept, got %+v", second)
	}
	kept := second.Kittens[0]
	if kept.ID != alba.ID || kept.Name != "" || kept.Color != nil || kept.BirthWeight == nil || *kept.BirthWeight != 95 {
		t.Fatalf("unexpected kept kitten %+v", kept)
	}

	st, body = doReq(t, ts.URL, "PUT", "/litters/"+litterID+"/kittens", owner, []map[string]any{
		{"id": "not-in-litter", "name": "Ghost"},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on unknown kitten id, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "PUT", "/litters/"+litterID+"/kittens", owner, []map[string]any{
		{"birth_weight": 90},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 on new kitten without name, got %d body=%s", st, string(body))
	}
}

func TestHTTP_WeightChartPDF(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	owner := "breeder-1"
	litterID := createLitter(t, ts.URL, owner, "D-Wurf")

	if st, _ := doReq(t, ts.URL, "GET", "/litters/"+litterID+"/weight-chart.pdf", owner, nil); st != http.StatusConflict {
		t.Fatalf("expected 409 without birth date, got %d", st)
	}

	patchLitter(t, ts.URL, owner, litterID, map[string]any{"phase": "active", "birth_date": "2024-03-01"})
	if st, body := doReq(t, ts.URL, "PUT", "/litters/"+litterID+"/kittens", owner, []map[string]any{
		{"name": "Alba"}, {"name": "Bruno"},
	}); st != http.StatusOK {
		t.Fatalf("expected 200 saving roster, got %d body=%s", st, string(body))
	}

	req, _ := http.NewRequest("GET", ts.URL+"/litters/"+litterID+"/weight-chart.pdf", nil)
	req.Header.Set("X-Debug-User-ID", owner)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	doc, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", res.StatusCode, string(doc))
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected a pdf document")
	}
}

func TestHTTP_Cats(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/cats", "breeder-1", map[string]any{
		"name":       "Freya",
		"sex":        "female",
		"breed":      "Norwegian Forest Cat",
		"ems_code":   "NFO n 09",
		"birth_date": "2021-05-04",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating cat, got %d body=%s", st, string(body))
	}
	var cat struct {
		ID        string  `json:"id"`
		BirthDate *string `json:"birth_date"`
	}
	mustDecode(t, body, &cat)
	if cat.BirthDate == nil || *cat.BirthDate != "2021-05-04" {
		t.Fatalf("unexpected birth date %v", cat.BirthDate)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/cats/"+cat.ID, "breeder-2", nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for another breeder, got %d", st)
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "cattery_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

func TestHTTP_SwaggerDoc(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	mustDecode(t, body, &doc)
	if doc.Info.Title != "Cattery Breeding API" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	for path, method := range map[string]string{
		"/litters/{litterID}/kittens":           "put",
		"/litters/{litterID}/expected-date":     "post",
		"/litters/{litterID}/weight-chart.pdf":  "get",
		"/kittens/{kittenID}/weights/{entryID}": "delete",
		"/cats/{catID}":                         "patch",
	} {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Fatalf("expected %s %s in doc", method, path)
		}
	}
}

func createLitter(t *testing.T, baseURL, userID, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/litters", userID, map[string]any{"name": name})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating litter, got %d body=%s", st, string(body))
	}
	l := decodeLitter(t, body)
	if l.Phase != "planned" {
		t.Fatalf("expected planned by default, got %q", l.Phase)
	}
	return l.ID
}

func patchLitter(t *testing.T, baseURL, userID, litterID string, payload map[string]any) litterBody {
	t.Helper()

	st, body := doReq(t, baseURL, "PATCH", "/litters/"+litterID, userID, payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 patching litter, got %d body=%s", st, string(body))
	}
	return decodeLitter(t, body)
}

func decodeLitter(t *testing.T, body []byte) litterBody {
	t.Helper()
	var l litterBody
	mustDecode(t, body, &l)
	return l
}

func hasWarning(l litterBody, code string) bool {
	for _, w := range l.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode json: %v body=%s", err, string(body))
	}
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
