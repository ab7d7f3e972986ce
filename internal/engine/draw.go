package engine

import (
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf16"

	"aurad/internal/models"
)

const (
	drawSalt    = "aura-spoon"
	partnerSalt = "partner"
	quoteSalt   = "aura-quote"
)

// hashString is the 32-bit rolling hash (h = h*31 + unit) the original
// records were produced with. It runs over UTF-16 code units and wraps to a
// signed 32-bit value on every step; changing it would reshuffle every
// user's historical draws.
func hashString(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// SelectPersona deterministically maps a calendar date and a trimmed name
// to a persona. Same (date, name) always yields the same persona.
func SelectPersona(date, name string) models.PersonaID {
	idx := hashString(date+strings.TrimSpace(name)+drawSalt) % int64(len(models.Catalog))
	return models.Catalog[idx].ID
}

// SelectPartner picks today's energy partner for a persona. The hash maps
// into a table one slot short and indices at or above the source persona
// shift up by one, so the partner can never equal the input.
func SelectPartner(id models.PersonaID, date string) models.PersonaID {
	idx := hashString(date+strconv.Itoa(int(id))+partnerSalt) % int64(len(models.Catalog)-1)
	if idx >= int64(id-1) {
		idx++
	}
	return models.Catalog[idx].ID
}

// SelectDailyQuote returns the shared quote of the day.
func SelectDailyQuote(date string) string {
	idx := hashString(date+quoteSalt) % int64(len(models.DailyQuotes))
	return models.DailyQuotes[idx]
}

// RerollPersona picks a uniformly random persona excluding one id. This is
// the only non-deterministic selection, backing the paid "try again" action.
func RerollPersona(exclude models.PersonaID) models.PersonaID {
	available := make([]models.PersonaID, 0, len(models.Catalog)-1)
	for _, p := range models.Catalog {
		if p.ID != exclude {
			available = append(available, p.ID)
		}
	}
	return available[rand.Intn(len(available))]
}
