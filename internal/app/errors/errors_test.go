package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrNoJSONObject, "decode reply")

	assert.True(t, stderrors.Is(err, ErrNoJSONObject))
	assert.False(t, stderrors.Is(err, ErrInvalidJSON))
	assert.Equal(t, "decode reply: no JSON object in reply", err.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
}

func TestWrapfThroughFmt(t *testing.T) {
	inner := Wrapf(ErrEmptyTranscript, "file %s", "a.wav")
	outer := fmt.Errorf("transcribe: %w", inner)

	assert.True(t, stderrors.Is(outer, ErrEmptyTranscript))
	assert.Contains(t, outer.Error(), "file a.wav: transcript is empty")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "text is required", RequiredField("text").Error())
	assert.Equal(t, "audio is invalid: bad header", InvalidField("audio", "bad header").Error())
	assert.Equal(t, "audio too large (maximum 10 bytes)", TooLarge("audio", 10).Error())
}
