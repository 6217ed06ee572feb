package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "General_Knowledge", SanitizeName("General Knowledge"))
	assert.Equal(t, "llama3_1-8b", SanitizeName("llama3.1-8b"))
	assert.Equal(t, "Mo_del_v2", SanitizeName("Mo/del:v2"))
	assert.Equal(t, "resume", SanitizeName("résumé"))
	assert.Equal(t, "already_clean-1", SanitizeName("already_clean-1"))
}
