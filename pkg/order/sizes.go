package order

import (
	"fmt"
	"strings"
)

// SizeColumn binds an order-sheet column header to its canonical size
// abbreviation. Columns are kept in header order so explosion is
// deterministic.
type SizeColumn struct {
	Header string
	Size   string
}

// NoSizeColumnsError means no order-sheet column matched the size vocabulary.
// This is fatal for the run: without size columns there is nothing to break
// out.
type NoSizeColumnsError struct {
	Headers []string
}

func (e *NoSizeColumnsError) Error() string {
	return fmt.Sprintf("could not detect any size-quantity columns among headers: %s", strings.Join(e.Headers, ", "))
}

// DetectSizeColumns identifies which headers are per-size quantity columns.
// An explicit alias table is consulted first (exact spelling, case-folded);
// otherwise the header is cleaned (upper-cased, QTY removed, slashes split)
// and its tokens are scanned left to right for a vocabulary hit, so a header
// like "S (SM)" resolves to S. OSFM is always part of the vocabulary.
func DetectSizeColumns(headers []string, vocab []string, aliases map[string]string) ([]SizeColumn, error) {
	vocabSet := make(map[string]bool, len(vocab)+1)
	for _, v := range vocab {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			vocabSet[v] = true
		}
	}
	vocabSet["OSFM"] = true

	aliasSet := make(map[string]string, len(aliases))
	for spelling, canonical := range aliases {
		aliasSet[strings.ToUpper(strings.TrimSpace(spelling))] = strings.ToUpper(strings.TrimSpace(canonical))
	}

	var cols []SizeColumn
	for _, h := range headers {
		clean := strings.ToUpper(strings.TrimSpace(h))
		if clean == "" {
			continue
		}
		if canonical, ok := aliasSet[clean]; ok {
			cols = append(cols, SizeColumn{Header: h, Size: canonical})
			continue
		}
		clean = strings.ReplaceAll(clean, "QTY", "")
		clean = strings.ReplaceAll(clean, "/", " ")
		for _, tok := range strings.Fields(clean) {
			tok = strings.Trim(tok, "()")
			if vocabSet[tok] {
				cols = append(cols, SizeColumn{Header: h, Size: tok})
				break
			}
		}
	}

	if len(cols) == 0 {
		return nil, &NoSizeColumnsError{Headers: headers}
	}
	return cols, nil
}
