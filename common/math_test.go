package common

import "testing"

func TestLerpClampsT(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"half", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"overshoot", 0, 10, 2.5, 10},
		{"negative_t", 4, 10, -1, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); got != c.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}


func TestClamp(t *testing.T) {
	cases := []struct {
		name         string
		v, lo, hi    float64
		want, want01 float64
	}{
		{"below", -2, -1, 1, -1, 0},
		{"inside", 0.25, -1, 1, 0.25, 0.25},
		{"above", 3, -1, 1, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp = %v, want %v", got, c.want)
			}
			if got := Clamp01(c.v); got != c.want01 {
				t.Fatalf("Clamp01 = %v, want %v", got, c.want01)
			}
		})
	}
}
