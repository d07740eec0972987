package crop

import "strings"

// CropType identifies one of the crop categories tracked by the platform.
type CropType string

const (
	CropTypeWheat  CropType = "wheat"
	CropTypeCotton CropType = "cotton"
	CropTypePotato CropType = "potato"
	CropTypeRice   CropType = "rice"
	CropTypeCorn   CropType = "corn"
	CropTypeBarley CropType = "barley"

	// CropTypeOther is the catch-all bucket for unrecognized crop names.
	CropTypeOther CropType = "other"
)

var knownCropTypes = []CropType{
	CropTypeBarley,
	CropTypeCorn,
	CropTypeCotton,
	CropTypePotato,
	CropTypeRice,
	CropTypeWheat,
}

// ParseCropType normalizes a raw crop name (trimmed, case-insensitive) to a
// CropType. Unrecognized names map to CropTypeOther rather than failing, so a
// single unexpected report never breaks aggregation.
func ParseCropType(raw string) CropType {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, ct := range knownCropTypes {
		if normalized == string(ct) {
			return ct
		}
	}
	return CropTypeOther
}

// KnownCropTypes returns the closed set of recognized crop types in lexical
// order. The "other" bucket is excluded: it exists only as a grouping key for
// unrecognized report values.
func KnownCropTypes() []CropType {
	types := make([]CropType, len(knownCropTypes))
	copy(types, knownCropTypes)
	return types
}

// IsKnown reports whether the crop type is part of the recognized set.
func (c CropType) IsKnown() bool {
	for _, ct := range knownCropTypes {
		if c == ct {
			return true
		}
	}
	return false
}

func (c CropType) String() string {
	return string(c)
}
