package versioninfo

import "github.com/malwarology/versioninfo/internal/format"

// variant is the outcome of classifying a top-level FileInfo record.
type variant uint8

const (
	// first child has no value (a StringTable).
	variantStringFileInfo variant = iota
	// first child has a binary value (a Var).
	variantVarFileInfo
	// first child has a text value: String records sit directly under the
	// container. Seen in hand-built and malicious resources.
	variantStringShaped
	// no child header fits; the container is recognised from its own key.
	variantKeyOnly
	// no child header fits and the key is not a container name.
	variantUnknown
)

var variantNames = [...]string{
	variantStringFileInfo: "StringFileInfo",
	variantVarFileInfo:    "VarFileInfo",
	variantStringShaped:   "StringShaped",
	variantKeyOnly:        "KeyOnly",
	variantUnknown:        "Unknown",
}

func (v variant) String() string { return variantNames[v] }

// classify decides how to decode the children of the FileInfo record whose
// header is h by peeking at the numeric fields of its first child. The peek
// reads nothing past h.RecordEnd and never fails.
func (d *decoder) classify(h format.Header) variant {
	_, valueLength, typ, ok := format.PeekFields(d.data, h.Cursor, h.RecordEnd)
	if !ok {
		switch h.Key.Text {
		case format.KeyStringFileInfo, format.KeyVarFileInfo:
			return variantKeyOnly
		}
		return variantUnknown
	}

	switch {
	case valueLength == 0:
		return variantStringFileInfo
	case typ == 0:
		return variantVarFileInfo
	default:
		return variantStringShaped
	}
}
