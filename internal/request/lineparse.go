package request

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
)

// requestLine is one parsed free-text submission line before index
// resolution.
type requestLine struct {
	Name     string
	Quality  domain.Quality
	Quantity int
}

var qualityTagRe = regexp.MustCompile(`(?i)\((raw|enchanted|legendary)\)$`)

// parseRequestLine parses "<item name> [(Quality)] [qty]" where the
// quantity token may lead or trail the name. A bare positive integer is
// treated as quantity only when a non-empty name remains after removing
// it; otherwise it stays part of the name. ok is false for blank lines.
func parseRequestLine(line string) (requestLine, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return requestLine{}, false
	}

	parts := strings.Fields(trimmed)
	quantity := 1

	if len(parts) > 1 {
		if n, ok := parseQuantityToken(parts[len(parts)-1]); ok {
			quantity = n
			parts = parts[:len(parts)-1]
		} else if n, ok := parseQuantityToken(parts[0]); ok {
			quantity = n
			parts = parts[1:]
		}
	}

	name := strings.Join(parts, " ")
	quality := domain.QualityRaw
	if match := qualityTagRe.FindStringSubmatch(name); match != nil {
		if q, ok := domain.ParseQuality(strings.ToLower(match[1])); ok {
			quality = q
		}
		name = strings.TrimSpace(name[:len(name)-len(match[0])])
	}

	if name == "" {
		return requestLine{}, false
	}

	return requestLine{Name: name, Quality: quality, Quantity: quantity}, true
}

// parseQuantityToken accepts only a bare positive integer.
func parseQuantityToken(tok string) (int, bool) {
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || strconv.Itoa(n) != tok {
		return 0, false
	}
	return n, true
}
