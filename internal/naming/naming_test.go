package naming

import (
	"strings"
	"testing"
)

func TestShortHash(t *testing.T) {
	got := ShortHash("dab_demo", 6)
	if len(got) != 6 {
		t.Errorf("ShortHash length = %d, want 6", len(got))
	}
	if got != ShortHash("dab_demo", 6) {
		t.Error("ShortHash is not deterministic")
	}
	if full := ShortHash("dab_demo", 100); len(full) != 40 {
		t.Errorf("ShortHash clamped length = %d, want 40", len(full))
	}
}

func TestValidateBundleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "dab_demo", wantErr: false},
		{name: "hyphenated", input: "my-bundle-1", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase", input: "DabDemo", wantErr: true},
		{name: "leading hyphen", input: "-demo", wantErr: true},
		{name: "trailing underscore", input: "demo_", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 64), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBundleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBundleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultBundleName(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "plain", dir: "/home/user/dab_demo", want: "dab_demo"},
		{name: "uppercase folded", dir: "/home/user/DabDemo", want: "dabdemo"},
		{name: "dots replaced", dir: "/srv/my.project", want: "my_project"},
		{name: "trailing slash", dir: "/srv/demo/", want: "demo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultBundleName(tt.dir)
			if got != tt.want {
				t.Errorf("DefaultBundleName(%q) = %q, want %q", tt.dir, got, tt.want)
			}
			if err := ValidateBundleName(got); err != nil {
				t.Errorf("derived name %q is invalid: %v", got, err)
			}
		})
	}
}

func TestDefaultBundleNameFallback(t *testing.T) {
	got := DefaultBundleName("/tmp/日本語")
	if !strings.HasPrefix(got, "bundle-") {
		t.Errorf("DefaultBundleName fallback = %q, want bundle-<hash>", got)
	}
	if err := ValidateBundleName(got); err != nil {
		t.Errorf("fallback name %q is invalid: %v", got, err)
	}
}
