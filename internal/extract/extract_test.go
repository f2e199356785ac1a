package extract

import (
	"errors"
	"testing"
)

func TestFromUploadPlainText(t *testing.T) {
	text, err := FromUpload("resume.txt", TypeText, []byte("  Python developer\nwith AWS  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "Python developer\nwith AWS" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromUploadGuessesTypeFromExtension(t *testing.T) {
	text, err := FromUpload("resume.txt", "", []byte("plain content"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "plain content" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromUploadStripsTypeParameters(t *testing.T) {
	if _, err := FromUpload("resume.txt", "text/plain; charset=utf-8", []byte("content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromUploadUnsupportedType(t *testing.T) {
	_, err := FromUpload("resume.png", "image/png", []byte("binary"))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromUploadEmptyDocument(t *testing.T) {
	_, err := FromUpload("resume.txt", TypeText, []byte("   \n\t "))
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestFromUploadInvalidPDF(t *testing.T) {
	if _, err := FromUpload("resume.pdf", TypePDF, []byte("not a pdf")); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}

func TestWordCount(t *testing.T) {
	if got := WordCount("Python developer\nwith  AWS"); got != 4 {
		t.Fatalf("expected 4 words, got %d", got)
	}

	if got := WordCount("  "); got != 0 {
		t.Fatalf("expected 0 words, got %d", got)
	}
}
