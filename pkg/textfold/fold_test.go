package textfold

import "testing"

func TestFold(t *testing.T) {
	tests := map[string]string{
		"Bogotá":           "bogota",
		"MEDELLÍN":         "medellin",
		"¿Cómo estás?":     "¿como estas?",
		"señor":            "senor",
		"plain ascii 123":  "plain ascii 123",
		"":                 "",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Errorf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}
