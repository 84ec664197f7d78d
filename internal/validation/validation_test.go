package validation

import (
	"reflect"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple name", "Cube1", "Cube1", false},
		{"underscores and digits", "BP_Player_2", "BP_Player_2", false},
		{"surrounding whitespace trimmed", "  Cube1  ", "Cube1", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"forward slash", "a/b", "", true},
		{"backslash", `a\b`, "", true},
		{"angle bracket", "a<b", "", true},
		{"colon", "a:b", "", true},
		{"wildcard", "a*b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName("actor", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateAssetPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"game path", "/Game/Blueprints", false},
		{"engine path", "/Engine/BasicShapes/Cube.Cube", false},
		{"empty", "", true},
		{"relative", "Game/Blueprints", true},
		{"traversal", "/Game/../Secrets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAssetPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVector(t *testing.T) {
	if err := ValidateVector("location", nil, 3); err != nil {
		t.Errorf("nil vector should pass, got %v", err)
	}
	if err := ValidateVector("location", []float64{1, 2, 3}, 3); err != nil {
		t.Errorf("correct length should pass, got %v", err)
	}
	if err := ValidateVector("location", []float64{1, 2}, 3); err == nil {
		t.Error("short vector passed validation")
	}
	if err := ValidateVector("color", []float64{1, 2, 3, 4, 5}, 4); err == nil {
		t.Error("long vector passed validation")
	}
	if err := ValidateVector("location", []float64{}, 3); err == nil {
		t.Error("empty non-nil vector passed validation")
	}
}

func TestVectorOrDefault(t *testing.T) {
	got := VectorOrDefault([]float64{1, 2, 3}, 3, 0)
	if !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("supplied vector = %v, want passthrough", got)
	}

	got = VectorOrDefault(nil, 3, 0)
	if !reflect.DeepEqual(got, []float64{0, 0, 0}) {
		t.Errorf("default 3-vector = %v, want zeros", got)
	}

	got = VectorOrDefault(nil, 4, 1)
	if !reflect.DeepEqual(got, []float64{1, 1, 1, 1}) {
		t.Errorf("default 4-vector = %v, want ones", got)
	}
}
