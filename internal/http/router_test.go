package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"polls-api/internal/domain/poll"
	"polls-api/internal/repository/memory"
	"polls-api/internal/worker"
)

func setupServer(t *testing.T) (*httptest.Server, *memory.PollRepo, chan worker.VoteEvent) {
	t.Helper()
	repo := memory.NewPollRepo()
	svc := poll.NewService(repo)
	voteCh := make(chan worker.VoteEvent, 100)

	server := httptest.NewServer(NewRouter(svc, voteCh, RouterConfig{
		AllowedOrigins: []string{"http://localhost:5173"},
	}))
	t.Cleanup(server.Close)
	return server, repo, voteCh
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(data)
	}

	req, _ := http.NewRequest(method, url, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode %s %s: %v", method, url, err)
	}
	return resp, payload
}

func createPollViaAPI(t *testing.T, serverURL string, req createPollRequest) string {
	t.Helper()
	resp, payload := doJSON(t, http.MethodPost, serverURL+"/api/polls/create", req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", resp.StatusCode, payload)
	}
	id, _ := payload["pollId"].(string)
	if id == "" {
		t.Fatalf("pollId missing: %v", payload)
	}
	return id
}

func votePoll(t *testing.T, serverURL, pollID string, body any) (*http.Response, map[string]any) {
	t.Helper()
	return doJSON(t, http.MethodPost, serverURL+"/api/polls/"+pollID+"/vote", body)
}

func expectError(t *testing.T, resp *http.Response, payload map[string]any, status int, code string) {
	t.Helper()
	if resp.StatusCode != status {
		t.Fatalf("expected %d, got %d: %v", status, resp.StatusCode, payload)
	}
	if payload["success"] != false {
		t.Fatalf("expected success=false: %v", payload)
	}
	if payload["error"] != code {
		t.Fatalf("expected error %q, got %v", code, payload["error"])
	}
	if msg, _ := payload["message"].(string); msg == "" {
		t.Fatalf("expected human-readable message: %v", payload)
	}
}

func TestCreateAndGetPoll(t *testing.T) {
	server, _, _ := setupServer(t)

	resp, payload := doJSON(t, http.MethodPost, server.URL+"/api/polls/create", createPollRequest{
		Question: "Best color?",
		Options:  []string{"Red", "Blue", "Blue", ""},
	})
	if resp.StatusCode != http.StatusCreated || payload["success"] != true {
		t.Fatalf("unexpected create response %d: %v", resp.StatusCode, payload)
	}
	p := payload["poll"].(map[string]any)
	if p["status"] != "active" || len(p["options"].([]any)) != 3 {
		t.Fatalf("unexpected poll %v", p)
	}
	if _, ok := p["votes"]; ok {
		t.Fatalf("create must not expose votes")
	}
	id := payload["pollId"].(string)

	resp, payload = doJSON(t, http.MethodGet, server.URL+"/api/polls/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status %d", resp.StatusCode)
	}
	got := payload["poll"].(map[string]any)
	if got["id"] != id || got["question"] != "Best color?" || got["createdAt"] == nil {
		t.Fatalf("unexpected poll %v", got)
	}
	if _, ok := got["voters"]; ok {
		t.Fatalf("get must not expose voters")
	}
}

func TestCreateValidationErrors(t *testing.T) {
	server, repo, _ := setupServer(t)

	cases := []struct {
		name string
		body any
		code string
	}{
		{"empty question", createPollRequest{Question: " ", Options: []string{"a", "b"}}, "invalid_question"},
		{"one option", createPollRequest{Question: "Q", Options: []string{"a"}}, "invalid_options"},
		{"blank options", createPollRequest{Question: "Q", Options: []string{"a", " ", ""}}, "invalid_options"},
		{"options not array", `{"question":"Q","options":"a,b"}`, "invalid_input"},
		{"malformed json", `{"question":`, "invalid_input"},
		{"trailing object", `{"question":"Q","options":["a","b"]}{"x":1}`, "invalid_input"},
		{"trailing garbage", `{"question":"Q","options":["a","b"]} trailing-garbage`, "invalid_input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, payload := doJSON(t, http.MethodPost, server.URL+"/api/polls/create", tc.body)
			expectError(t, resp, payload, http.StatusBadRequest, tc.code)
		})
	}
	if repo.Count() != 0 {
		t.Fatalf("failed creates must not store polls")
	}
}

func TestVoteAndResults(t *testing.T) {
	server, _, voteCh := setupServer(t)
	id := createPollViaAPI(t, server.URL, createPollRequest{Question: "Best color?", Options: []string{"Red", "Blue", "Green"}})

	resp, payload := votePoll(t, server.URL, id, map[string]any{"optionIndex": 1, "voterId": "voterA"})
	if resp.StatusCode != http.StatusOK || payload["option"] != "Blue" || payload["pollId"] != id {
		t.Fatalf("unexpected vote response %d: %v", resp.StatusCode, payload)
	}

	resp, payload = votePoll(t, server.URL, id, map[string]any{"optionIndex": 1, "voterId": "voterA"})
	expectError(t, resp, payload, http.StatusBadRequest, "already_voted")

	select {
	case ev := <-voteCh:
		if ev.PollID != id || ev.OptionIndex != 1 {
			t.Fatalf("unexpected vote event %+v", ev)
		}
	default:
		t.Fatalf("expected a vote event for the accepted vote")
	}
	if len(voteCh) != 0 {
		t.Fatalf("rejected votes must not emit events")
	}

	resp, payload = doJSON(t, http.MethodGet, server.URL+"/api/polls/"+id+"/results", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("results status %d", resp.StatusCode)
	}
	if payload["totalVotes"] != float64(1) || payload["question"] != "Best color?" || payload["status"] != "active" {
		t.Fatalf("unexpected results %v", payload)
	}
	results := payload["results"].([]any)
	wantVotes := []float64{0, 1, 0}
	wantPct := []float64{0, 100, 0}
	for i, r := range results {
		row := r.(map[string]any)
		if row["votes"] != wantVotes[i] || row["percentage"] != wantPct[i] {
			t.Fatalf("unexpected row %d: %v", i, row)
		}
	}
}

func TestVoteRequestValidation(t *testing.T) {
	server, _, _ := setupServer(t)
	id := createPollViaAPI(t, server.URL, createPollRequest{Question: "Q", Options: []string{"a", "b"}})

	cases := []struct {
		name string
		body any
		code string
	}{
		{"missing index", `{"voterId":"v"}`, "invalid_input"},
		{"fractional index", `{"optionIndex":1.5,"voterId":"v"}`, "invalid_input"},
		{"string index", `{"optionIndex":"1","voterId":"v"}`, "invalid_input"},
		{"out of range", `{"optionIndex":2,"voterId":"v"}`, "invalid_option"},
		{"negative", `{"optionIndex":-1,"voterId":"v"}`, "invalid_option"},
		{"trailing garbage", `{"optionIndex":0,"voterId":"v"} trailing-garbage`, "invalid_input"},
		{"trailing object", `{"optionIndex":0,"voterId":"v"}{"optionIndex":1}`, "invalid_input"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, payload := votePoll(t, server.URL, id, tc.body)
			expectError(t, resp, payload, http.StatusBadRequest, tc.code)
		})
	}

	_, payload := doJSON(t, http.MethodGet, server.URL+"/api/polls/"+id+"/results", nil)
	if payload["totalVotes"] != float64(0) {
		t.Fatalf("rejected bodies must not record votes, got %v", payload["totalVotes"])
	}

	resp, payload := votePoll(t, server.URL, "does-not-exist", `{"optionIndex":0}`)
	expectError(t, resp, payload, http.StatusNotFound, "poll_not_found")
}

func TestVoteFallsBackToClientAddress(t *testing.T) {
	server, _, _ := setupServer(t)
	id := createPollViaAPI(t, server.URL, createPollRequest{Question: "Q", Options: []string{"a", "b"}})

	resp, payload := votePoll(t, server.URL, id, `{"optionIndex":0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected first anonymous vote ok, got %d: %v", resp.StatusCode, payload)
	}
	resp, payload = votePoll(t, server.URL, id, `{"optionIndex":1,"voterId":"  "}`)
	expectError(t, resp, payload, http.StatusBadRequest, "already_voted")

	resp, _ = votePoll(t, server.URL, id, `{"optionIndex":1,"voterId":"someone-else"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected explicit voter id to be accepted, got %d", resp.StatusCode)
	}
}

func TestClosePoll(t *testing.T) {
	server, _, _ := setupServer(t)
	id := createPollViaAPI(t, server.URL, createPollRequest{Question: "Q", Options: []string{"a", "b"}})

	resp, payload := doJSON(t, http.MethodPut, server.URL+"/api/polls/"+id+"/close", nil)
	if resp.StatusCode != http.StatusOK || payload["status"] != "closed" || payload["pollId"] != id {
		t.Fatalf("unexpected close response %d: %v", resp.StatusCode, payload)
	}

	resp, payload = doJSON(t, http.MethodPut, server.URL+"/api/polls/"+id+"/close", nil)
	expectError(t, resp, payload, http.StatusBadRequest, "poll_already_closed")

	resp, payload = votePoll(t, server.URL, id, `{"optionIndex":0,"voterId":"late"}`)
	expectError(t, resp, payload, http.StatusBadRequest, "poll_closed")

	resp, payload = doJSON(t, http.MethodPut, server.URL+"/api/polls/missing/close", nil)
	expectError(t, resp, payload, http.StatusNotFound, "poll_not_found")
}

func TestListAndDelete(t *testing.T) {
	server, _, _ := setupServer(t)
	a := createPollViaAPI(t, server.URL, createPollRequest{Question: "A", Options: []string{"x", "y"}})
	b := createPollViaAPI(t, server.URL, createPollRequest{Question: "B", Options: []string{"x", "y"}})
	votePoll(t, server.URL, b, `{"optionIndex":0,"voterId":"v"}`)

	resp, payload := doJSON(t, http.MethodGet, server.URL+"/api/polls", nil)
	if resp.StatusCode != http.StatusOK || payload["count"] != float64(2) {
		t.Fatalf("unexpected list %d: %v", resp.StatusCode, payload)
	}
	for _, item := range payload["polls"].([]any) {
		s := item.(map[string]any)
		if _, ok := s["results"]; ok {
			t.Fatalf("list must not expose per-option votes")
		}
		if s["id"] == b && s["totalVotes"] != float64(1) {
			t.Fatalf("unexpected summary %v", s)
		}
	}

	resp, payload = doJSON(t, http.MethodDelete, server.URL+"/api/polls/"+a, nil)
	if resp.StatusCode != http.StatusOK || payload["pollId"] != a {
		t.Fatalf("unexpected delete %d: %v", resp.StatusCode, payload)
	}

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/polls/" + a},
		{http.MethodGet, "/api/polls/" + a + "/results"},
		{http.MethodPut, "/api/polls/" + a + "/close"},
		{http.MethodDelete, "/api/polls/" + a},
	} {
		resp, payload := doJSON(t, req.method, server.URL+req.path, nil)
		expectError(t, resp, payload, http.StatusNotFound, "poll_not_found")
	}

	_, payload = doJSON(t, http.MethodGet, server.URL+"/api/polls", nil)
	if payload["count"] != float64(1) {
		t.Fatalf("expected 1 poll after delete, got %v", payload["count"])
	}
}

func TestConcurrentVotesOverHTTP(t *testing.T) {
	server, repo, _ := setupServer(t)
	id := createPollViaAPI(t, server.URL, createPollRequest{Question: "Q", Options: []string{"a", "b"}})

	var wg sync.WaitGroup
	for i, voter := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(idx int, voter string) {
			defer wg.Done()
			body, _ := json.Marshal(map[string]any{"optionIndex": idx, "voterId": voter})
			resp, err := http.Post(server.URL+"/api/polls/"+id+"/vote", "application/json", bytes.NewReader(body))
			if err != nil {
				t.Errorf("vote %s: %v", voter, err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("vote %s: status %d", voter, resp.StatusCode)
			}
		}(i, voter)
	}
	wg.Wait()

	p, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Votes[0] != 1 || p.Votes[1] != 1 {
		t.Fatalf("expected [1 1], got %v", p.Votes)
	}
}

func TestUnknownRouteAndOperationalEndpoints(t *testing.T) {
	server, _, _ := setupServer(t)

	resp, payload := doJSON(t, http.MethodGet, server.URL+"/nope", nil)
	expectError(t, resp, payload, http.StatusNotFound, "route_not_found")

	resp, payload = doJSON(t, http.MethodGet, server.URL+"/health", nil)
	if resp.StatusCode != http.StatusOK || payload["status"] != "ok" {
		t.Fatalf("unexpected health %d: %v", resp.StatusCode, payload)
	}
	resp, payload = doJSON(t, http.MethodGet, server.URL+"/ready", nil)
	if resp.StatusCode != http.StatusOK || payload["status"] != "ready" {
		t.Fatalf("unexpected ready %d: %v", resp.StatusCode, payload)
	}
}

func TestCORSAllowlist(t *testing.T) {
	server, _, _ := setupServer(t)

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/api/polls", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req, _ = http.NewRequest(http.MethodGet, server.URL+"/api/polls", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for unlisted origin, got %q", got)
	}
}

func TestRecovererReturnsGenericError(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"success":false`) || strings.Contains(body, "boom") {
		t.Fatalf("unexpected body %s", body)
	}
}
