package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"weighin/internal/domain"
)

func visionServer(t *testing.T, replyText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") == "" {
			t.Error("missing x-api-key header")
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("missing anthropic-version header")
		}

		var req messagesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("unexpected message shape: %+v", req.Messages)
		}

		resp := map[string]any{
			"content": []map[string]string{{"type": "text", "text": replyText}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestReadScale_Success(t *testing.T) {
	srv := visionServer(t, `{"weight": 165.2, "unit": "lb", "confidence": "high", "rawText": "165.2"}`)
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	result, err := c.ReadScale(context.Background(), []byte("fake-image"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Fatalf("Success = false: %+v", result)
	}
	if result.Weight == nil || *result.Weight != 165.2 {
		t.Errorf("Weight = %v, want 165.2", result.Weight)
	}
	if result.Unit != domain.UnitPounds {
		t.Errorf("Unit = %q, want lb", result.Unit)
	}
	if result.Confidence != "high" {
		t.Errorf("Confidence = %q, want high", result.Confidence)
	}
}

func TestReadScale_SurroundingProse(t *testing.T) {
	srv := visionServer(t, "Here is the reading:\n{\"weight\": 72, \"unit\": \"kg\", \"confidence\": \"medium\", \"rawText\": \"72.0\"}\nLet me know if you need more.")
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	result, err := c.ReadScale(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.Weight == nil || *result.Weight != 72 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestReadScale_UnreadableDisplay(t *testing.T) {
	srv := visionServer(t, `{"weight": null, "unit": null, "confidence": "low", "rawText": "blurry", "error": "display is out of focus"}`)
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	result, err := c.ReadScale(context.Background(), []byte("fake-image"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Fatalf("Success = true for unreadable display: %+v", result)
	}
	if result.Error != "display is out of focus" {
		t.Errorf("Error = %q", result.Error)
	}
	if result.RawText != "blurry" {
		t.Errorf("RawText = %q", result.RawText)
	}
}

func TestReadScale_NoJSONInReply(t *testing.T) {
	srv := visionServer(t, "I cannot see a scale in this image.")
	defer srv.Close()

	c := New("test-key", WithBaseURL(srv.URL))
	result, err := c.ReadScale(context.Background(), []byte("fake-image"), "image/jpeg")
	if err != nil {
		t.Fatal(err)
	}
	if result.Success || result.Error == "" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestReadScale_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid x-api-key"},
		})
	}))
	defer srv.Close()

	c := New("bad-key", WithBaseURL(srv.URL))
	if _, err := c.ReadScale(context.Background(), []byte("fake-image"), "image/jpeg"); err == nil {
		t.Fatal("expected error for unauthorized response")
	}
}

func TestParseReading_BadUnit(t *testing.T) {
	result, err := parseReading(`{"weight": 10, "unit": "st", "confidence": "high", "rawText": "10 st"}`)
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Errorf("Success = true for unknown unit: %+v", result)
	}
}
