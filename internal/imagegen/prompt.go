package imagegen

import "strings"

// BasePrompt is the fixed editorial instruction every generation starts from.
// The upstream model is asked to dress a model in the exact uploaded garment,
// so the instruction pins the clothing details as immutable.
const BasePrompt = "High fashion editorial photography, professional supermodel wearing the exact clothing item provided. Keep the clothing details strictly unchanged. Professional studio lighting, 8k resolution, photorealistic."

// ComposePrompt builds the final prompt sent upstream. Age and gender, when
// present, form a "Model characteristics" clause (age first); the free-form
// user prompt is appended last. The function is pure: identical inputs yield
// a byte-identical prompt.
func ComposePrompt(age, gender, userPrompt string) string {
	var b strings.Builder
	b.WriteString(BasePrompt)

	if age != "" || gender != "" {
		b.WriteString(" Model characteristics: ")
		if age != "" {
			b.WriteString(age)
			b.WriteString(" ")
		}
		if gender != "" {
			b.WriteString(gender)
		}
		b.WriteString(".")
	}

	if userPrompt != "" {
		b.WriteString(" ")
		b.WriteString(userPrompt)
	}

	return b.String()
}
