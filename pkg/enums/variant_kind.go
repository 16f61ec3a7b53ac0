package enums

import "fmt"

// VariantKind identifies which garment shape a variant record describes.
type VariantKind string

const (
	VariantKindBlouse         VariantKind = "blouse"
	VariantKindOnePcKurti     VariantKind = "one_pc_kurti"
	VariantKindTwoPcKurti     VariantKind = "two_pc_kurti"
	VariantKindThreePcKurti   VariantKind = "three_pc_kurti"
	VariantKindPetticoatKurti VariantKind = "petticoat_kurti"
	VariantKindThreePcLehenga VariantKind = "three_pc_lehenga"
)

var validVariantKinds = []VariantKind{
	VariantKindBlouse,
	VariantKindOnePcKurti,
	VariantKindTwoPcKurti,
	VariantKindThreePcKurti,
	VariantKindPetticoatKurti,
	VariantKindThreePcLehenga,
}

// VariantKinds returns every supported kind in declaration order.
func VariantKinds() []VariantKind {
	out := make([]VariantKind, len(validVariantKinds))
	copy(out, validVariantKinds)
	return out
}

// String implements fmt.Stringer.
func (k VariantKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known VariantKind.
func (k VariantKind) IsValid() bool {
	for _, candidate := range validVariantKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseVariantKind converts raw input into a VariantKind. Route segments use
// hyphenated forms, so both "one-pc-kurti" and "one_pc_kurti" parse.
func ParseVariantKind(value string) (VariantKind, error) {
	normalized := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '-' {
			normalized = append(normalized, '_')
			continue
		}
		normalized = append(normalized, value[i])
	}
	for _, candidate := range validVariantKinds {
		if string(candidate) == string(normalized) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid variant kind %q", value)
}
