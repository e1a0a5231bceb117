package constants

import "testing"

func TestMapExtToFormat(t *testing.T) {
	cases := []struct {
		ext  string
		want string
	}{
		{".pdf", PDF},
		{"PDF", PDF},
		{".jpg", IMAGE},
		{"jpeg", IMAGE},
		{".PNG", IMAGE},
		{"tiff", IMAGE},
		{".docx", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MapExtToFormat(tc.ext); got != tc.want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestSniffFormat(t *testing.T) {
	if got := SniffFormat([]byte("%PDF-1.7\n...")); got != PDF {
		t.Errorf("expected PDF, got %s", got)
	}
	if got := SniffFormat([]byte{0xFF, 0xD8, 0xFF, 0xE0}); got != IMAGE {
		t.Errorf("expected IMAGE for JPEG bytes, got %s", got)
	}
	if got := SniffFormat([]byte("%PD")); got != IMAGE {
		t.Errorf("expected IMAGE for short input, got %s", got)
	}
}
