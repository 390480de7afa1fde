package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"reelscribe/internal/api"
	"reelscribe/internal/logging"
	"reelscribe/internal/pipeline"
	"reelscribe/internal/reelurl"
	"reelscribe/internal/services"
	"reelscribe/internal/testsupport"
	"reelscribe/internal/transcript"
)

type stubProcessor struct {
	calls    []string
	outcomes map[string]pipeline.Outcome
}

func (p *stubProcessor) Process(_ context.Context, rawURL string, _ pipeline.Options) pipeline.Outcome {
	p.calls = append(p.calls, rawURL)
	if outcome, ok := p.outcomes[rawURL]; ok {
		return outcome
	}
	canonical, err := reelurl.Canonicalize(rawURL)
	if err != nil {
		return pipeline.Outcome{
			Input: rawURL,
			Err:   services.Wrap(services.ErrInvalidURL, "normalize", rawURL, err),
		}
	}
	return pipeline.Outcome{
		Input:   rawURL,
		URL:     canonical,
		SRTPath: "/staging/reel.srt",
		Result: &transcript.Result{
			Language: "en",
			Text:     "Hi there",
			Segments: []transcript.Segment{{ID: 0, Start: 0, End: 1.5, Text: "Hi there"}},
		},
	}
}

func newTestServer(t *testing.T, processor Processor) *Server {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return New(cfg, processor, logging.NewNop())
}

func TestIndexServesForm(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if body := recorder.Body.String(); !strings.Contains(body, `action="/submit"`) {
		t.Errorf("index page missing form: %s", body)
	}
}

func TestSubmitRendersTranscript(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	form := url.Values{"url": {"https://instagram.com/reel/ABC123/"}}
	request := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Hi there") {
		t.Errorf("transcript not rendered: %s", body)
	}
	if !strings.Contains(body, "https://www.instagram.com/reel/ABC123") {
		t.Errorf("canonical url not rendered: %s", body)
	}
}

func TestSubmitInvalidURLIsBadRequest(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	form := url.Values{"url": {"https://example.com/watch?v=1"}}
	request := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Error:") {
		t.Errorf("error page missing message: %s", recorder.Body.String())
	}
}

func TestSubmitMissingURL(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	request := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(""))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
}

func TestTranscribeBatchSuccess(t *testing.T) {
	processor := &stubProcessor{}
	server := newTestServer(t, processor)

	payload := `{"urls":["https://www.instagram.com/reel/AAA111","https://www.instagram.com/reel/BBB222"]}`
	request := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(payload))
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
	var response api.BatchResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(response.Results))
	}
	if response.Results[0].Text != "Hi there" || response.Results[0].URL != "https://www.instagram.com/reel/AAA111" {
		t.Errorf("unexpected first result: %+v", response.Results[0])
	}
	if len(processor.calls) != 2 {
		t.Errorf("processor calls = %v, want both urls", processor.calls)
	}
}

func TestTranscribeBatchAbortsOnFirstFailure(t *testing.T) {
	processor := &stubProcessor{}
	server := newTestServer(t, processor)

	payload := `{"urls":["https://example.com/not-a-reel","https://www.instagram.com/reel/BBB222"]}`
	request := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(payload))
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	var response api.ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(response.Detail, "Failed for https://example.com/not-a-reel:") {
		t.Errorf("detail = %q, want failing url named", response.Detail)
	}
	if len(processor.calls) != 1 {
		t.Errorf("processor calls = %v, want abort after first failure", processor.calls)
	}
}

func TestTranscribeUnclassifiedErrorIsServerFault(t *testing.T) {
	target := "https://www.instagram.com/reel/CCC333"
	processor := &stubProcessor{outcomes: map[string]pipeline.Outcome{
		target: {Input: target, Err: errors.New("disk on fire")},
	}}
	server := newTestServer(t, processor)

	payload := `{"urls":["` + target + `"]}`
	request := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(payload))
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", recorder.Code)
	}
}

func TestTranscribeRejectsEmptyAndMalformedBodies(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	for name, body := range map[string]string{
		"empty urls":   `{"urls":[]}`,
		"invalid json": `{"urls":`,
	} {
		request := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(body))
		recorder := httptest.NewRecorder()
		server.Handler().ServeHTTP(recorder, request)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, recorder.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t, &stubProcessor{})

	request := httptest.NewRequest(http.MethodGet, "/transcribe", nil)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", recorder.Code)
	}
}
