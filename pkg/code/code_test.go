package code

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGlobalDefaultLang(t *testing.T) {
	t.Cleanup(func() { _ = SetGlobalDefaultLang(FALLBACK_LNG) })

	require.NoError(t, SetGlobalDefaultLang("pt_br"))
	assert.Equal(t, "pt_br", GetGlobalDefaultLang())
	assert.Equal(t, "CEP inválido", ErrorZipcodeInvalid.Msg())

	assert.Error(t, SetGlobalDefaultLang("fr"))
	assert.Equal(t, FALLBACK_LNG, GetGlobalDefaultLang())
	assert.Equal(t, "Invalid zip code", ErrorZipcodeInvalid.Msg())
}

func TestCode_CloneKeepsTemplate(t *testing.T) {
	c := ErrorZipcodeNotFound.Clone().WithArgs("18000000").WithDetails("lookup")

	assert.Equal(t, "Zip code not found: 18000000", c.MsgIn("en"))
	assert.Equal(t, "CEP não encontrado: 18000000!", c.MsgIn("pt_br"))
	assert.Equal(t, http.StatusNotFound, c.StatusCode())
	assert.Equal(t, []string{"lookup"}, c.Details())
	assert.False(t, ErrorZipcodeNotFound.HaveDetails())
}
