package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"voice2site/internal/app/model"
)

// Sample model replies
const (
	ReplyAcme = `{"name":"Acme","type":"Company","style":"Modern","services":["Consulting"]}`

	ReplyAcmeInProse = "Sure, here it is:\n" + ReplyAcme + "\nLet me know if you need changes."

	ReplyClinicFenced = "```json\n{\n  \"name\": \"Sunrise Clinic\",\n  \"type\": \"Hospital\",\n  \"style\": \"Professional\",\n  \"services\": [\"Cardiology\", \"Pediatrics\"]\n}\n```"

	ReplyRefusal = "I cannot help with that."
)

// AcmeSpec is the record ReplyAcme decodes to
func AcmeSpec() model.WebsiteSpec {
	return model.WebsiteSpec{
		Name:     "Acme",
		Category: "Company",
		Style:    "Modern",
		Services: []string{"Consulting"},
	}
}

// WAVFixture returns a quarter second of 440Hz mono 16-bit PCM at 8kHz
func WAVFixture(t *testing.T) []byte {
	t.Helper()
	const sampleRate = 8000
	samples := make([]int16, sampleRate/4)
	for i := range samples {
		samples[i] = int16(8000 * math.Sin(2*math.Pi*440*float64(i)/sampleRate))
	}
	data, err := EncodeWAV(samples, sampleRate)
	require.NoError(t, err)
	return data
}
