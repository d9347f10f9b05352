package pedersen

import "github.com/evernym/secret-sharing-schemes/pkg/curve"

// Generators deterministically derives the pair (g, h) used throughout this
// package's commitments from a public label. Identical labels always yield
// identical generators, so independent parties deriving from the same label
// agree on (g, h) without any communication. The two domain separators
// (" : g", " : h") must differ — that is what keeps log_g(h) unknown, which
// is what gives the Pedersen commitment its hiding property.
func Generators(label []byte) (g, h *curve.Point) {
	g = curve.HashToCurve(withSuffix(label, " : g"))
	h = curve.HashToCurve(withSuffix(label, " : h"))
	return g, h
}

func withSuffix(label []byte, suffix string) []byte {
	out := make([]byte, 0, len(label)+len(suffix))
	out = append(out, label...)
	out = append(out, suffix...)
	return out
}
