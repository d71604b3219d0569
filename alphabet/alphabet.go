package alphabet

// Inclusion-set building blocks. Default() composes these; New accepts any
// inclusion string directly.
const (
	// Lowercase is the base inclusion set of the default English alphabet.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"

	// Uppercase extends the default alphabet for case-sensitive models.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Space separates words; it participates in transitions so that
	// word-boundary character pairs are modeled too.
	Space = " "
)

// Alphabet is an immutable ordered set of distinct runes with dense codes
// in [0, Size()). The zero value is an empty alphabet; build one with New
// or Default.
type Alphabet struct {
	runes []rune
	index map[rune]int
}

// Option adjusts the inclusion set assembled by Default.
type Option func(*defaultCfg)

type defaultCfg struct {
	upper bool
	extra string
}

// WithUppercase includes A–Z in addition to a–z.
// Use together with case-sensitive models.
func WithUppercase() Option {
	return func(c *defaultCfg) { c.upper = true }
}

// WithExtra appends caller-supplied runes (digits, punctuation, …) to the
// default inclusion set. Duplicates are ignored.
func WithExtra(chars string) Option {
	return func(c *defaultCfg) { c.extra += chars }
}

// Default returns the standard English alphabet: lowercase letters plus
// space, optionally extended via WithUppercase / WithExtra.
func Default(opts ...Option) Alphabet {
	var cfg defaultCfg
	for _, o := range opts {
		o(&cfg)
	}
	include := Lowercase
	if cfg.upper {
		include += Uppercase
	}
	include += Space + cfg.extra

	// The base set is never empty, so New cannot fail here.
	a, _ := New(include)

	return a
}

// New builds an Alphabet from include, assigning codes in first-occurrence
// order and dropping duplicate runes. Returns ErrEmptyAlphabet when include
// holds no runes.
func New(include string) (Alphabet, error) {
	runes := []rune(include)
	if len(runes) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	a := Alphabet{
		runes: make([]rune, 0, len(runes)),
		index: make(map[rune]int, len(runes)),
	}
	for _, r := range runes {
		if _, ok := a.index[r]; ok {
			continue
		}
		a.index[r] = len(a.runes)
		a.runes = append(a.runes, r)
	}

	return a, nil
}

// Size returns the number of distinct runes in the alphabet.
func (a Alphabet) Size() int { return len(a.runes) }

// Index returns the dense code of r, or -1 when r is not in the alphabet.
func (a Alphabet) Index(r rune) int {
	i, ok := a.index[r]
	if !ok {
		return -1
	}

	return i
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]

	return ok
}

// Runes returns a copy of the alphabet's runes in code order.
func (a Alphabet) Runes() []rune {
	out := make([]rune, len(a.runes))
	copy(out, a.runes)

	return out
}

// String returns the alphabet's runes in code order as a string.
// New(a.String()) reproduces an identical Alphabet.
func (a Alphabet) String() string { return string(a.runes) }

// Codes maps every rune of text to its dense code, emitting -1 for runes
// outside the alphabet. This is the single boundary where index validation
// happens; count-table lookups downstream may index without re-checking.
func (a Alphabet) Codes(text string) []int {
	out := make([]int, 0, len(text))
	for _, r := range text {
		out = append(out, a.Index(r))
	}

	return out
}
