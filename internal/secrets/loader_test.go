package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file \n"), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}
	t.Setenv("LAND_ADVISOR_TEST_KEY", "from-env")

	cases := []struct {
		name string
		src  Source
		want string
	}{
		{"file wins", Source{File: path, Env: "LAND_ADVISOR_TEST_KEY", Value: "inline"}, "from-file"},
		{"env wins over value", Source{Env: "LAND_ADVISOR_TEST_KEY", Value: "inline"}, "from-env"},
		{"inline fallback", Source{Value: " inline "}, "inline"},
		{"unset env falls back", Source{Env: "LAND_ADVISOR_UNSET_KEY", Value: "inline"}, "inline"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "gemini api key"}); err == nil {
		t.Fatal("expected an error for an empty source")
	}
	if _, err := Load(Source{File: "/nonexistent/key"}); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if _, err := Load(Source{File: empty, Value: "inline"}); err == nil {
		t.Fatal("expected an empty secret file to be an error, not a fallback")
	}
}
