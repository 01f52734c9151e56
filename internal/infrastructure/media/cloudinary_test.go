package media

import (
	"errors"
	"testing"
)

func TestSanitizeFolder(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"galerias":         "galerias",
		" Galerias/Fotos ": "galerias/fotos",
		"../../etc":        "etc",
		"equipe//perfil/":  "equipe/perfil",
		"logo parceiros!":  "logoparceiros",
	}
	for in, want := range cases {
		if got := SanitizeFolder(in); got != want {
			t.Fatalf("SanitizeFolder(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewCloudinary_MissingCredentials(t *testing.T) {
	_, err := NewCloudinary(Config{CloudName: "demo"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
