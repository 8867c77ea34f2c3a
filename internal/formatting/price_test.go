package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 40.00", FormatPrice(4000))
	assert.Equal(t, "R$ 200.00", FormatPrice(20000))
	assert.Equal(t, "R$ 49.90", FormatPrice(4990))
	assert.Equal(t, "R$ 0.00", FormatPrice(0))
	assert.Equal(t, "R$ 0.05", FormatPrice(5))
}
