package display

import (
	"strings"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ParseLocale turns a POSIX locale name such as "en_US.UTF-8" or
// "de_DE@euro" into a BCP 47 tag. "C" and "POSIX" map to the root locale.
func ParseLocale(locale string) (language.Tag, error) {
	name := strings.TrimSpace(locale)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "", "C", "POSIX":
		return language.Und, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, errors.WrapWithCode(err, errors.ErrConfig,
			"Unsupported LOCALE "+locale,
			"Use a POSIX locale name such as en_US.UTF-8")
	}
	return tag, nil
}

// Numbers formats counts with the locale's digit grouping.
type Numbers struct {
	p *message.Printer
}

// NewNumbers creates a formatter for the given POSIX locale name.
func NewNumbers(locale string) (*Numbers, error) {
	tag, err := ParseLocale(locale)
	if err != nil {
		return nil, err
	}
	return &Numbers{p: message.NewPrinter(tag)}, nil
}

// Int formats n with thousands separators.
func (n *Numbers) Int(v int64) string {
	return n.p.Sprintf("%d", v)
}
