package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var ErrInvalidRequest = errors.New("invalid generation request")

// Policy selects which character classes may appear in a password.
type Policy int

const (
	Standard Policy = iota
	AlphabeticOnly
	NumericOnly
	Alphanumeric
)

// requiredSets lists the mandatory character sets of each policy in seeding order.
var requiredSets = map[Policy][]string{
	Standard:       {lowercaseChars, uppercaseChars, numberChars, symbolChars},
	AlphabeticOnly: {lowercaseChars, uppercaseChars},
	NumericOnly:    {numberChars},
	Alphanumeric:   {lowercaseChars, uppercaseChars, numberChars},
}

var policyNames = map[Policy]string{
	Standard:       "standard",
	AlphabeticOnly: "alphabets-only",
	NumericOnly:    "numbers-only",
	Alphanumeric:   "alphanumeric",
}

var policyAliases = map[string]Policy{
	"standard":        Standard,
	"alphabets-only":  AlphabeticOnly,
	"alphabetic-only": AlphabeticOnly,
	"alpha":           AlphabeticOnly,
	"numbers-only":    NumericOnly,
	"numeric-only":    NumericOnly,
	"numeric":         NumericOnly,
	"alphanumeric":    Alphanumeric,
}

// ParsePolicy resolves a policy from its name. Matching is case-insensitive.
func ParsePolicy(name string) (Policy, error) {
	p, ok := policyAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown password type %q", ErrInvalidRequest, name)
	}
	return p, nil
}

// PolicyNames returns the canonical policy names in declaration order.
func PolicyNames() []string {
	return []string{
		policyNames[Standard],
		policyNames[AlphabeticOnly],
		policyNames[NumericOnly],
		policyNames[Alphanumeric],
	}
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Alphabet returns the union of the policy's character sets.
func (p Policy) Alphabet() string {
	return strings.Join(requiredSets[p], "")
}

// MandatoryCount is the number of characters seeded when coverage is enforced.
func (p Policy) MandatoryCount() int {
	return len(requiredSets[p])
}

// GenerationRequest describes a single password to generate.
type GenerationRequest struct {
	Length          int
	Policy          Policy
	EnforceCoverage bool
}

// Generator produces passwords from an injected randomness source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator drawing from src. A nil src selects the
// crypto/rand backed source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password with the default crypto/rand source.
func Generate(req GenerationRequest) (string, error) {
	return defaultGenerator.Generate(req)
}

// Generate creates a password satisfying req.
//
// With coverage enforced the password is built in three steps: one character
// from every mandatory set, the remainder from the full alphabet, then a
// Fisher-Yates shuffle. A length below the mandatory count is rejected with
// ErrInvalidRequest rather than truncated.
func (g *Generator) Generate(req GenerationRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	alphabet := req.Policy.Alphabet()

	if !req.EnforceCoverage {
		buf, err := g.fill(make([]byte, 0, req.Length), alphabet, req.Length)
		if err != nil {
			return "", err
		}
		return string(buf), nil
	}

	buf, err := g.seed(req.Policy, req.Length)
	if err != nil {
		return "", err
	}

	buf, err = g.fill(buf, alphabet, req.Length-len(buf))
	if err != nil {
		return "", err
	}

	if err := g.shuffle(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

func validate(req GenerationRequest) error {
	if req.Length < 0 {
		return fmt.Errorf("%w: length %d is negative", ErrInvalidRequest, req.Length)
	}
	sets, ok := requiredSets[req.Policy]
	if !ok {
		return fmt.Errorf("%w: unknown policy %d", ErrInvalidRequest, int(req.Policy))
	}
	for _, set := range sets {
		if set == "" {
			return fmt.Errorf("%w: empty character set in %s", ErrInvalidRequest, req.Policy)
		}
	}
	if req.EnforceCoverage && req.Length < len(sets) {
		return fmt.Errorf("%w: length %d is less than the %d characters %s requires",
			ErrInvalidRequest, req.Length, len(sets), req.Policy)
	}
	return nil
}

// seed picks one character from each mandatory set of p, in order.
func (g *Generator) seed(p Policy, capacity int) ([]byte, error) {
	sets := requiredSets[p]
	buf := make([]byte, 0, max(capacity, len(sets)))
	for _, set := range sets {
		ch, err := g.randChar(set)
		if err != nil {
			return nil, err
		}
		buf = append(buf, ch)
	}
	return buf, nil
}

// fill appends n characters sampled with replacement from alphabet.
func (g *Generator) fill(buf []byte, alphabet string, n int) ([]byte, error) {
	for i := 0; i < n; i++ {
		ch, err := g.randChar(alphabet)
		if err != nil {
			return nil, err
		}
		buf = append(buf, ch)
	}
	return buf, nil
}

// shuffle performs a Fisher-Yates shuffle in place.
func (g *Generator) shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	i, err := g.intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func (g *Generator) intn(n int) (int, error) {
	i, err := g.src.Intn(n)
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("random source returned %d outside [0, %d)", i, n)
	}
	return i, nil
}
