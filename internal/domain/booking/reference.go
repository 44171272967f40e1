package booking

import (
	"crypto/rand"
	"io"
	"regexp"
	"strings"

	"bookit/internal/pkg/errs"
)

const (
	ReferencePrefix = "HUF"
	referenceLength = 7
	referenceChars  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var referenceRegex = regexp.MustCompile(`^HUF[0-9A-Z]{7}$`)

var ErrInvalidReference = errs.New("invalid booking reference")

type Reference string

func ParseReference(s string) (Reference, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !referenceRegex.MatchString(s) {
		return "", ErrInvalidReference
	}
	return Reference(s), nil
}

func (r Reference) String() string {
	return string(r)
}

type ReferenceGenerator interface {
	Generate() (Reference, error)
}

// RandomReferenceGenerator draws characters from [0-9a-z] and uppercases the result.
type RandomReferenceGenerator struct {
	rnd io.Reader
}

func NewReferenceGenerator() *RandomReferenceGenerator {
	return &RandomReferenceGenerator{rnd: rand.Reader}
}

// NewReferenceGeneratorFrom is used by tests to make references deterministic.
func NewReferenceGeneratorFrom(r io.Reader) *RandomReferenceGenerator {
	return &RandomReferenceGenerator{rnd: r}
}

func (g *RandomReferenceGenerator) Generate() (Reference, error) {
	// 252 is the largest multiple of 36 below 256; higher bytes are rejected to keep the draw uniform.
	const limit = byte(len(referenceChars) * (256 / len(referenceChars)))

	var sb strings.Builder
	sb.Grow(len(ReferencePrefix) + referenceLength)
	sb.WriteString(ReferencePrefix)

	buf := make([]byte, 1)
	for sb.Len() < len(ReferencePrefix)+referenceLength {
		if _, err := io.ReadFull(g.rnd, buf); err != nil {
			return "", errs.Wrap(err, "read random bytes for booking reference")
		}
		if buf[0] >= limit {
			continue
		}
		sb.WriteByte(referenceChars[int(buf[0])%len(referenceChars)])
	}

	return Reference(strings.ToUpper(sb.String())), nil
}
