package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(&http.Client{Transport: rt})
}

func jsonResponse(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchQuestionsUsesDefaultAmountWhenNonPositive(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
	if seenAmount != "10" {
		t.Fatalf("expected default amount 10, got %q", seenAmount)
	}
}

func TestFetchQuestionsCapsAmount(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 500); err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if seenAmount != "50" {
		t.Fatalf("expected amount capped at 50, got %q", seenAmount)
	}
}

func TestFetchQuestionsUsesBaseURL(t *testing.T) {
	var seenHost, seenCategory string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenHost = r.URL.Host
		seenCategory = r.URL.Query().Get("category")
		return jsonResponse(http.StatusOK, []byte(`{"response_code":0,"results":[]}`)), nil
	})).WithBaseURL("http://trivia.local/api.php?category=9")

	if _, err := client.FetchQuestions(context.Background(), 3); err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if seenHost != "trivia.local" {
		t.Fatalf("expected request to trivia.local, got %q", seenHost)
	}
	if seenCategory != "9" {
		t.Fatalf("expected existing query to be kept, got category=%q", seenCategory)
	}
}

func TestFetchQuestionsPropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, nil), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 5); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestFetchQuestionsJSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, []byte("not-json")), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 3); err == nil {
		t.Fatalf("expected JSON decode error")
	}
}

func TestFetchQuestionsNonZeroResponseCode(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		payload := apiResponse{
			ResponseCode: 1,
			Results: []RawQuestion{
				{Question: "ignored"},
			},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		return jsonResponse(http.StatusOK, encoded), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 3); err == nil {
		t.Fatalf("expected error for non-zero response_code")
	}
}
