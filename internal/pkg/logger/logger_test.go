package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelByEnv(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("development").logger.GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("production").logger.GetLevel())
}

func TestNewWithLevel_Override(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, NewWithLevel("production", "warn").logger.GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewWithLevel("production", "loud").logger.GetLevel())
}

func TestWithFields_DoesNotMutateParent(t *testing.T) {
	base := Nop()
	child := base.WithFields(map[string]any{"seed": "abc"})

	assert.NotSame(t, base, child)
	child.Info("ok")
}
