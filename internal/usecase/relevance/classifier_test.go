package relevance

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
)

// stubChatModel returns a canned response and counts calls.
type stubChatModel struct {
	response string
	err      error
	calls    atomic.Int64
}

func (s *stubChatModel) Chat(_ context.Context, _, _ string) (string, error) {
	s.calls.Add(1)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestClassifier(t *testing.T, model ChatModel) *Classifier {
	t.Helper()
	lex, err := LoadLexicon("")
	if err != nil {
		t.Fatal(err)
	}
	return NewClassifier(lex, model, slog.Default())
}

func TestClassify_KeywordGateSkipsModel(t *testing.T) {
	model := &stubChatModel{response: "<think>irrelevant</think>\nYES"}
	c := newTestClassifier(t, model)

	relevant, err := c.Classify(context.Background(), "Local bakery wins award", "Sourdough was the crowd favorite")

	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if relevant {
		t.Error("Classify() = true, want false for entry with no keywords")
	}
	if got := model.calls.Load(); got != 0 {
		t.Errorf("model called %d times, want 0 when the gate rejects", got)
	}
}

func TestClassify_ModelApproves(t *testing.T) {
	model := &stubChatModel{response: "<think>genuine bitcoin news</think>\nYES"}
	c := newTestClassifier(t, model)

	relevant, err := c.Classify(context.Background(), "Bitcoin ETF inflows surge", "Spot funds added $500M")

	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if !relevant {
		t.Error("Classify() = false, want true")
	}
	if got := model.calls.Load(); got != 1 {
		t.Errorf("model called %d times, want 1", got)
	}
}

func TestClassify_ModelRejects(t *testing.T) {
	model := &stubChatModel{response: "<think>this is a sponsored exchange promo</think>\nNO"}
	c := newTestClassifier(t, model)

	relevant, err := c.Classify(context.Background(), "Trade bitcoin with zero fees!", "Sign up today")

	if err != nil {
		t.Fatalf("Classify() error = %v, want nil", err)
	}
	if relevant {
		t.Error("Classify() = true, want false")
	}
}

func TestClassify_ModelErrorFailsClosed(t *testing.T) {
	model := &stubChatModel{err: errors.New("connection refused")}
	c := newTestClassifier(t, model)

	relevant, err := c.Classify(context.Background(), "Ethereum upgrade ships", "The fork activated at epoch 1000")

	if err == nil {
		t.Fatal("Classify() error = nil, want error when model fails")
	}
	if relevant {
		t.Error("Classify() = true on model error, want false")
	}
}

func TestClassify_MalformedVerdictFailsClosed(t *testing.T) {
	model := &stubChatModel{response: "<think>looks promising</think>Maybe"}
	c := newTestClassifier(t, model)

	relevant, err := c.Classify(context.Background(), "Bitcoin rally continues", "Analysts weigh in")

	if err == nil {
		t.Fatal("Classify() error = nil, want error for malformed verdict")
	}
	if relevant {
		t.Error("Classify() = true for malformed verdict, want false")
	}
}
