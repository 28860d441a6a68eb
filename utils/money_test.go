package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.01, Round2(10.005))
	assert.Equal(t, 10.0, Round2(10.004))
	assert.Equal(t, 0.1, Round2(0.1+0.2-0.2))
	assert.Equal(t, -2.35, Round2(-2.345))
}

func TestMulRound2(t *testing.T) {
	assert.Equal(t, 59.97, MulRound2(19.99, 3))
	assert.Equal(t, 20.01, MulRound2(10.005, 2))
	assert.Equal(t, 0.0, MulRound2(0, 100))
	// 0.1*3 would be 0.30000000000000004 in raw float math.
	assert.Equal(t, 0.3, MulRound2(0.1, 3))
}

func TestSubRound2(t *testing.T) {
	assert.Equal(t, 54.97, SubRound2(59.97, 5))
	assert.Equal(t, 0.0, SubRound2(13.65, 13.65))
	assert.Equal(t, -0.05, SubRound2(0, 0.05))
}

func TestRound2String(t *testing.T) {
	assert.Equal(t, "100.00", Round2String(100))
	assert.Equal(t, "25.50", Round2String(25.5))
	assert.Equal(t, "0.30", Round2String(0.1+0.2))
}

func TestFormatCedis(t *testing.T) {
	assert.Equal(t, "GH₵ 1250.00", FormatCedis(1250))
	assert.Equal(t, "GH₵ 0.05", FormatCedis(0.05))
}
