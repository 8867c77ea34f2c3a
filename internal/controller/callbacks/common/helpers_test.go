package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallbackParams(t *testing.T) {
	assert.Equal(t, []string{"relacionamento", "rel_slot_1"},
		CallbackParams("select_slot:relacionamento:rel_slot_1", SelectSlot))
	assert.Equal(t, []string{"saude"},
		CallbackParams("admin_event:saude", AdminEvent))
	assert.Nil(t, CallbackParams("admin_panel", "admin_panel"))
}

func TestIsMessageNotModifiedError(t *testing.T) {
	assert.True(t, IsMessageNotModifiedError(
		errors.New("telegram: Bad Request: message is not modified")))
	assert.False(t, IsMessageNotModifiedError(errors.New("other")))
	assert.False(t, IsMessageNotModifiedError(nil))
}
