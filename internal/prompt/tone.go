package prompt

// Tone describes one translation register selectable by key.
type Tone struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// DefaultTone is the tone key used when none is configured.
const DefaultTone = "literal"

// DefaultTones returns the built-in tone registry.
func DefaultTones() []Tone {
	return []Tone{
		{
			Key:         "literal",
			Label:       "Literal Word-for-Word",
			Description: "Preserves the original structure and phrasing for accuracy and scholarly analysis, even if it sacrifices readability.",
		},
		{
			Key:         "tone-preserving",
			Label:       "Tone-Preserving",
			Description: "Retains the original tone, style, and emotional nuance, essential for conveying the intent of the ancient author.",
		},
		{
			Key:         "historical",
			Label:       "Historical/Classic",
			Description: "Adopts language that reflects the era or context of the original text, keeping its authentic feel.",
		},
		{
			Key:         "simplified",
			Label:       "Simplified",
			Description: "Makes complex or archaic language accessible to modern readers without losing core meaning.",
		},
		{
			Key:         "annotated",
			Label:       "Annotated",
			Description: "Combines a direct translation with explanatory notes to provide context about historical, cultural, or linguistic elements.",
		},
	}
}
