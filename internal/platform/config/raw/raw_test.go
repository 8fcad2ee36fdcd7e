package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("LOG_SERVICE", "langid-server")

	log := New().Prefix("LOG_")
	if got := log.Get("LEVEL", "debug"); got != "info" {
		t.Fatalf("Get(LEVEL) = %q, want %q", got, "info")
	}
	if got := log.Get("FORMAT", "console"); got != "console" {
		t.Fatalf("Get(FORMAT) default = %q", got)
	}
	if got := New().Get("LOG_SERVICE", ""); got != "langid-server" {
		t.Fatalf("root Get = %q", got)
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	for k, v := range map[string]string{"T1": "true", "T2": "1", "T3": "YES", "T4": " on ", "F1": "false", "F2": "0", "F3": "nah"} {
		t.Setenv("B_"+k, v)
	}
	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"F3", true, false},
		{"MISSING", true, true},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("N_")
	t.Setenv("N_OK", "42")
	t.Setenv("N_WS", "  7  ")
	t.Setenv("N_NONNUM", "12x")
	t.Setenv("N_NEG", "-5")

	tests := []struct {
		key  string
		def  int
		want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"NONNUM", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
