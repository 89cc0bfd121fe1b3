package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	assert.NotNil(t, L())

	Init("test")
	first := L()
	Init("development")
	assert.NotSame(t, first, L())

	Init("test")
	Sync()
}
