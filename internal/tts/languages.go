// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     tts
// Description: Supported synthesis languages
// License:     MIT
// ============================================================================

package tts

// Language pairs a synthesis language code with its display name.
type Language struct {
	Code string
	Name string
}

// Languages lists the synthesis languages the service supports, in the
// order the front ends present them.
var Languages = []Language{
	{"en", "English"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"tr", "Turkish"},
	{"ar", "Arabic"},
	{"zh-CN", "Chinese (Simplified)"},
	{"ja", "Japanese"},
	{"hi", "Hindi"},
	{"ko", "Korean"},
	{"nl", "Dutch"},
	{"sv", "Swedish"},
	{"pl", "Polish"},
}

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}
