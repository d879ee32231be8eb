package extract

import "fmt"

const promptTemplate = `Extract website details from the text below.

Text:
"""
%s
"""

Return ONLY a valid JSON object with exactly these four keys:
{
  "name": "business name",
  "type": "Hospital | School | Restaurant | Company | ...",
  "style": "Modern | Minimal | Professional | ...",
  "services": ["service1", "service2"]
}

Rules:
- Use only information that is explicitly or very clearly stated in the text.
- Do not invent names or services. Use "" for anything not stated and [] when no services are mentioned.
- Keep services in the order they are mentioned.
- Do not add markdown, comments or any text outside the JSON object.`

// BuildPrompt embeds text verbatim in the extraction instructions
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}
