package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "provider", Value: "  "},
		StringField{Key: FieldModel, Value: " gemini-2.5-flash "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != FieldModel {
		t.Fatalf("unexpected key: %s", fields[0].Key)
	}

	if fields[0].String != "gemini-2.5-flash" {
		t.Fatalf("expected trimmed value, got %q", fields[0].String)
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	logger := WithFields(nil)
	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestWithOracleFields(t *testing.T) {
	logger := WithOracleFields(zap.NewNop(), "gemini", "")
	if logger == nil {
		t.Fatal("expected a non-nil logger")
	}
}

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "hello", limit: 10, want: "hello"},
		{name: "exact", in: "hello", limit: 5, want: "hello"},
		{name: "truncated", in: "hello world", limit: 5, want: "hello..."},
		{name: "zero limit", in: "hello", limit: 0, want: ""},
		{name: "trims whitespace", in: "  hi  ", limit: 10, want: "hi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.in, tc.limit); got != tc.want {
				t.Fatalf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}
