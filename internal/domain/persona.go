package domain

// Persona selects the tutoring assistant's interaction style. Each persona
// is bound to a fixed system prompt per language.
type Persona string

const (
	// PersonaStandard is a direct, explanatory tutoring style.
	PersonaStandard Persona = "standard"

	// PersonaSocratic answers with guiding questions instead of solutions.
	PersonaSocratic Persona = "socratic"

	// PersonaExaminer responds in the register of an exam marker.
	PersonaExaminer Persona = "examiner"
)

// IsValid reports whether p is one of the declared personas.
func (p Persona) IsValid() bool {
	switch p {
	case PersonaStandard, PersonaSocratic, PersonaExaminer:
		return true
	}
	return false
}

// Language selects the language of the assistant's system prompt and output.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

// IsValid reports whether l is one of the declared languages.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageChinese:
		return true
	}
	return false
}
