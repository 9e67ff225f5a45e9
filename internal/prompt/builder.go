// Package prompt turns a text segment and a tone key into a translation request.
package prompt

import "fmt"

// DefaultLanguage is the target language used when none is configured.
const DefaultLanguage = "English"

const requestTemplate = `Translate the text below into %s. %s

%s`

// Builder formats translation requests from a fixed tone registry.
// It does no I/O and is safe for concurrent use once built.
type Builder struct {
	language string
	order    []string
	tones    map[string]Tone
}

// New creates a Builder over tones. Later duplicates of a key replace earlier ones.
func New(tones []Tone, targetLanguage string) *Builder {
	if targetLanguage == "" {
		targetLanguage = DefaultLanguage
	}

	b := &Builder{
		language: targetLanguage,
		tones:    make(map[string]Tone, len(tones)),
	}
	for _, t := range tones {
		if _, ok := b.tones[t.Key]; !ok {
			b.order = append(b.order, t.Key)
		}
		b.tones[t.Key] = t
	}
	return b
}

// Build returns the request for segment in the tone named by toneKey.
// An unknown key yields segment unchanged.
func (b *Builder) Build(segment, toneKey string) string {
	tone, ok := b.tones[toneKey]
	if !ok {
		return segment
	}
	return fmt.Sprintf(requestTemplate, b.language, tone.Description, segment)
}

// Lookup returns the tone registered under key.
func (b *Builder) Lookup(key string) (Tone, bool) {
	t, ok := b.tones[key]
	return t, ok
}

// Tones lists the registered tones in registration order.
func (b *Builder) Tones() []Tone {
	out := make([]Tone, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.tones[k])
	}
	return out
}

// Language reports the configured target language.
func (b *Builder) Language() string { return b.language }
