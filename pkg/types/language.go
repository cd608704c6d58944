package types

import "fmt"

// LanguageCode is a language identifier and code page pair, from a
// Translation value or a StringTable key.
type LanguageCode struct {
	LangID   LangID   `json:"LangID"`
	CodePage CodePage `json:"CodePage"`
}

// LangID is a Windows LANGID.
type LangID struct {
	ID          uint16      `json:"-"`
	Hexadecimal string      `json:"Hexadecimal"`
	Parsed      LangIDParts `json:"Parsed"`
}

// LangIDParts splits a LANGID into its primary language (low 10 bits) and
// sublanguage (high 6 bits), rendered in binary.
type LangIDParts struct {
	MajorLanguage string `json:"MajorLanguage"`
	SubLanguage   string `json:"SubLanguage"`
}

// CodePage is a Windows code page number.
type CodePage struct {
	Decimal     uint16 `json:"Decimal"`
	Hexadecimal string `json:"Hexadecimal"`
	// Name is the encoding name, when known.
	Name string `json:"Name,omitempty"`
}

// NewLanguageCode renders a raw pair. name is the code page encoding name
// and may be empty.
func NewLanguageCode(langID, codePage uint16, name string) LanguageCode {
	return LanguageCode{
		LangID: LangID{
			ID:          langID,
			Hexadecimal: hex16(langID),
			Parsed: LangIDParts{
				MajorLanguage: fmt.Sprintf("0b%010b", langID&0x03FF),
				SubLanguage:   fmt.Sprintf("0b%06b", langID>>10),
			},
		},
		CodePage: CodePage{
			Decimal:     codePage,
			Hexadecimal: hex16(codePage),
			Name:        name,
		},
	}
}

// Key returns the pair as an 8-digit StringTable key, e.g. "040904B0".
func (c LanguageCode) Key() string {
	return fmt.Sprintf("%04X%04X", c.LangID.ID, c.CodePage.Decimal)
}

func hex16(v uint16) string { return fmt.Sprintf("0x%04x", v) }

func hex32(v uint32) string { return fmt.Sprintf("0x%08x", v) }
