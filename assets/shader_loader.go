package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// ShaderPath resolves a shader name inside the repository's assets tree.
// Examples run from the repository root.
func ShaderPath(name string) string {
	return filepath.Join("assets", "shaders", name)
}

// LoadShader reads a GLSL source file from assets/shaders.
func LoadShader(name string) (string, error) {
	b, err := os.ReadFile(ShaderPath(name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}
