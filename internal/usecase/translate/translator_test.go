package translate

import (
	"context"
	"errors"
	"testing"
)

type stubChatModel struct {
	response string
	err      error
	lastUser string
}

func (s *stubChatModel) Chat(_ context.Context, _, user string) (string, error) {
	s.lastUser = user
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestTranslate(t *testing.T) {
	model := &stubChatModel{response: "  Bitcoin hits record high in Seoul trading  "}
	tr := NewTranslator(model)

	got, err := tr.Translate(context.Background(), "비트코인, 서울 거래서 사상 최고가 경신")

	if err != nil {
		t.Fatalf("Translate() error = %v, want nil", err)
	}
	if got != "Bitcoin hits record high in Seoul trading" {
		t.Errorf("Translate() = %q, want trimmed translation", got)
	}
	if model.lastUser != "비트코인, 서울 거래서 사상 최고가 경신" {
		t.Errorf("model received %q, want original text", model.lastUser)
	}
}

func TestTranslate_EmptyInputSkipsModel(t *testing.T) {
	model := &stubChatModel{err: errors.New("should not be called")}
	tr := NewTranslator(model)

	got, err := tr.Translate(context.Background(), "   ")

	if err != nil {
		t.Fatalf("Translate() error = %v, want nil for blank input", err)
	}
	if got != "   " {
		t.Errorf("Translate() = %q, want input unchanged", got)
	}
}

func TestTranslate_ModelError(t *testing.T) {
	model := &stubChatModel{err: errors.New("model unavailable")}
	tr := NewTranslator(model)

	_, err := tr.Translate(context.Background(), "un texto en español")

	if err == nil {
		t.Fatal("Translate() error = nil, want error when model fails")
	}
}
