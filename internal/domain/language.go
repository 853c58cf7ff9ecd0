// File: internal/domain/language.go
package domain

// LanguageCode selects which canned response table to use.
type LanguageCode string

const (
	LangEnglish   LanguageCode = "en"
	LangHindi     LanguageCode = "hi"
	LangTelugu    LanguageCode = "te"
	LangTamil     LanguageCode = "ta"
	LangKannada   LanguageCode = "kn"
	LangMalayalam LanguageCode = "ml"
	LangBengali   LanguageCode = "bn"
	LangMarathi   LanguageCode = "mr"
)

// DefaultLanguage is the fallback table for unrecognized language codes.
const DefaultLanguage = LangEnglish

// SupportedLanguages lists every language with a response table.
var SupportedLanguages = []LanguageCode{
	LangEnglish, LangHindi, LangTelugu, LangTamil,
	LangKannada, LangMalayalam, LangBengali, LangMarathi,
}

// Valid reports whether l is one of the supported language codes.
func (l LanguageCode) Valid() bool {
	for _, code := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
