package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString(t *testing.T) {
	l, err := NewLocalizer()
	require.NoError(t, err)

	en := l.GetString("en", "grievance_submitted")
	hi := l.GetString("hi", "grievance_submitted")
	assert.NotEmpty(t, en)
	assert.NotEmpty(t, hi)
	assert.NotEqual(t, en, hi)

	assert.Equal(t, en, l.GetString("ta", "grievance_submitted"), "unknown language falls back to English")
	assert.Equal(t, "no_such_key", l.GetString("en", "no_such_key"), "unknown key falls back to the key")
}
