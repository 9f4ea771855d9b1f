package domain

import (
	"math/rand"
	"strings"
	"time"
)

// ReservationNumber is the business key of a reservation, shaped as
// <UTC yymmddhhmmss>:<7 uppercase alphanumerics>.
type ReservationNumber string

func (n ReservationNumber) String() string { return string(n) }

const (
	numberTimeLayout   = "060102150405"
	numberSuffixLength = 7
	numberSuffixChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

type NumberGenerator interface {
	Generate() ReservationNumber
}

// ClockedNumberGenerator holds its own clock and entropy source so tests can
// pin both.
type ClockedNumberGenerator struct {
	now  func() time.Time
	rand *rand.Rand
}

func NewNumberGenerator() *ClockedNumberGenerator {
	return &ClockedNumberGenerator{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewNumberGeneratorWith(now func() time.Time, src rand.Source) *ClockedNumberGenerator {
	return &ClockedNumberGenerator{now: now, rand: rand.New(src)}
}

func (g *ClockedNumberGenerator) Generate() ReservationNumber {
	var b strings.Builder
	b.WriteString(g.now().UTC().Format(numberTimeLayout))
	b.WriteByte(':')
	for i := 0; i < numberSuffixLength; i++ {
		b.WriteByte(numberSuffixChars[g.rand.Intn(len(numberSuffixChars))])
	}
	return ReservationNumber(b.String())
}

var _ NumberGenerator = (*ClockedNumberGenerator)(nil)
