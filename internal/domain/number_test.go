package domain

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var numberPattern = regexp.MustCompile(`^\d{12}:[A-Z0-9]{7}$`)

func TestNumberGenerator_Generate(t *testing.T) {
	gen := NewNumberGenerator()

	number := gen.Generate()

	assert.Regexp(t, numberPattern, number.String())
}

func TestNumberGenerator_Generate_SameSecondDiffers(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)
	gen := NewNumberGeneratorWith(func() time.Time { return now }, rand.NewSource(1))

	first := gen.Generate()
	second := gen.Generate()

	assert.Equal(t, "260901102030", first.String()[:12])
	assert.Equal(t, "260901102030", second.String()[:12])
	assert.NotEqual(t, first, second)
}

func TestNumberGenerator_Generate_Deterministic(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)

	first := NewNumberGeneratorWith(func() time.Time { return now }, rand.NewSource(42)).Generate()
	second := NewNumberGeneratorWith(func() time.Time { return now }, rand.NewSource(42)).Generate()

	assert.Equal(t, first, second)
}
