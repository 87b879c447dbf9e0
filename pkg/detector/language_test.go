package detector

import (
	"testing"
	"testing/fstest"

	"framescout/pkg/manifest"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		manifest manifest.Manifest
		files    []string
		want     string
	}{
		{
			name:     "typescript dependency",
			manifest: manifest.Manifest{DevDependencies: map[string]string{"typescript": "^4.9.0"}},
			want:     LanguageTS,
		},
		{
			name:  "tsconfig fallback",
			files: []string{"tsconfig.json"},
			want:  LanguageTS,
		},
		{
			name: "plain javascript",
			want: LanguageJS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for _, name := range tt.files {
				fsys[name] = &fstest.MapFile{Data: []byte("{}"), Mode: 0o644}
			}

			if got := detectLanguage(fsys, tt.manifest); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
