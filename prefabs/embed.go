package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Dir is the on-disk prefab directory. Files found there win over the
// embedded copies so edits show up without a rebuild.
var Dir = "prefabs"

// Load reads a prefab spec such as "player.yaml".
func Load(name string) ([]byte, error) {
	return read(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a tengo script; "dialogue.tengo", "scripts/dialogue.tengo"
// and "prefabs/scripts/dialogue.tengo" name the same file.
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, cleanScriptPath(name))
}

func read(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "prefabs/")
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	for _, prefix := range []string{"prefabs/", "scripts/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	return "scripts/" + s
}
