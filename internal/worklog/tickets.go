package worklog

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// TicketID is a tracker story number referenced from a commit message,
// held as its decimal digits without leading zeros
type TicketID string

func (id TicketID) String() string { return string(id) }

// Compare orders IDs by numeric value
func (id TicketID) Compare(other TicketID) int {
	if c := cmp.Compare(len(id), len(other)); c != 0 {
		return c
	}
	return strings.Compare(string(id), string(other))
}

// MarshalJSON writes the ID as a JSON number of any length
func (id TicketID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return []byte(id), nil
}

// ticketPattern matches references like [#1234] or [Finishes #1234]
var ticketPattern = regexp.MustCompile(`\[[A-Za-z \t]{0,20}#([0-9]{1,35})[ \t]{0,5}\]`)

// ExtractTicketIDs returns the ticket IDs referenced in message, sorted and
// without duplicates. Zero is skipped.
func ExtractTicketIDs(message string) []TicketID {
	if message == "" {
		return nil
	}

	seen := make(map[string]bool)
	var ids []TicketID
	for _, m := range ticketPattern.FindAllStringSubmatch(message, -1) {
		if seen[m[0]] {
			continue
		}
		seen[m[0]] = true

		digits := strings.TrimLeft(m[1], "0")
		if digits == "" {
			continue
		}
		ids = append(ids, TicketID(digits))
	}

	slices.SortFunc(ids, TicketID.Compare)
	return slices.Compact(ids)
}
