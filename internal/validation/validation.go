package validation

import (
	"fmt"
	"strings"
)

// invalidNameChars are rejected in actor, blueprint, and widget names
const invalidNameChars = `<>:"|?*/\`

// ValidateName checks an actor/blueprint/widget name for emptiness and
// characters the editor refuses
func ValidateName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s name cannot be empty", kind)
	}
	if i := strings.IndexAny(name, invalidNameChars); i >= 0 {
		return "", fmt.Errorf("%s name cannot contain %q", kind, name[i])
	}
	return name, nil
}

// ValidateAssetPath checks a content browser path such as /Game/Blueprints
func ValidateAssetPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("asset path cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("asset path must be absolute (start with /), got %q", path)
	}
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("asset path cannot contain traversal: %q", path)
	}
	return path, nil
}

// ValidateVector checks that a vector parameter has the required number of
// components. A nil slice is allowed and means "use the default".
func ValidateVector(name string, v []float64, want int) error {
	if v == nil {
		return nil
	}
	if len(v) != want {
		return fmt.Errorf("%s must have exactly %d elements, got %d", name, want, len(v))
	}
	return nil
}

// VectorOrDefault returns v when present, otherwise a vector of the given
// length filled with fill
func VectorOrDefault(v []float64, length int, fill float64) []float64 {
	if v != nil {
		return v
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = fill
	}
	return out
}
