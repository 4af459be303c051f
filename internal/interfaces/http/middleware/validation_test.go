package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	assert.NoError(t, v.Var("add", "adjustmode"))
	assert.NoError(t, v.Var("remove", "adjustmode"))
	assert.NoError(t, v.Var("set", "adjustmode"))
	assert.Error(t, v.Var("multiply", "adjustmode"))
}
