package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("scheduled"))
	assert.True(t, IsValidStatus("completed"))
	assert.True(t, IsValidStatus("cancelled"))

	assert.False(t, IsValidStatus("done"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("Completed"))
}

func TestDefaultStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, DefaultStatus())
}
