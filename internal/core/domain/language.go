package domain

// Language tags the source language of a query. Retrieval and generation
// always run in the working language (English); Arabic-tagged requests have
// their answer and documents translated back before return.
type Language string

// Recognised query languages.
const (
	// LanguageEnglish is the working language. Queries in any non-Arabic
	// script are treated as English.
	LanguageEnglish Language = "english"

	// LanguageArabic marks queries in Arabic script. Output is localised
	// back to Arabic.
	LanguageArabic Language = "arabic"
)

// NeedsLocalisation returns true if answers must be translated back to
// the query's source language.
func (l Language) NeedsLocalisation() bool {
	return l == LanguageArabic
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}
