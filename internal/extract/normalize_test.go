package extract

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n  ", ""},
		{"crlf", "line one\r\nline two\r\n", "line one\nline two"},
		{"form feed page break", "page one\ftext", "page one\ntext"},
		{"trailing spaces per line", "hello  \nworld\t", "hello\nworld"},
		{"collapse blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"outer newlines trimmed", "\n\ntext\n\n", "text"},
		{"inner structure kept", "header\n\nbody line\nbody line", "header\n\nbody line\nbody line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
