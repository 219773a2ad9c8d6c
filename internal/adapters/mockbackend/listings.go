package mockbackend

import (
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func (b *Backend) handleStats(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, mockStats)
}

// handleListings применяет фильтры поиска к статическому набору объявлений.
// Параметр price принимается, но намеренно не применяется: семантика ценовых
// диапазонов определена только на стороне живого backend-а.
func (b *Backend) handleListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filtered := filterListings(listingQuery{
		Search:       q.Get("search"),
		ForSale:      q.Get("forSale") == "true",
		ForRent:      q.Get("forRent") == "true",
		TwoPlusRooms: q.Get("twoPlusRooms") == "true",
	})

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"listings": filtered,
		"total":    len(filtered),
	})
}

type listingQuery struct {
	Search       string
	ForSale      bool
	ForRent      bool
	TwoPlusRooms bool
}

func filterListings(q listingQuery) []listingRecord {
	filtered := make([]listingRecord, 0, len(mockListings))
	filtered = append(filtered, mockListings...)

	if q.Search != "" {
		needle := foldForSearch(q.Search)
		matched := filtered[:0]
		for _, listing := range filtered {
			if strings.Contains(foldForSearch(listing.Location), needle) ||
				strings.Contains(foldForSearch(listing.Description), needle) {
				matched = append(matched, listing)
			}
		}
		filtered = matched
	}

	// Тип сделки фильтруется только когда выбран ровно один из флагов
	if q.ForSale && !q.ForRent {
		filtered = keepType(filtered, "sale")
	} else if q.ForRent && !q.ForSale {
		filtered = keepType(filtered, "rent")
	}

	if q.TwoPlusRooms {
		matched := filtered[:0]
		for _, listing := range filtered {
			if listing.Rooms >= 2 {
				matched = append(matched, listing)
			}
		}
		filtered = matched
	}

	return filtered
}

func keepType(listings []listingRecord, dealType string) []listingRecord {
	matched := listings[:0]
	for _, listing := range listings {
		if listing.Type == dealType {
			matched = append(matched, listing)
		}
	}
	return matched
}

// removeDiacritics убирает комбинируемые знаки после NFD-декомпозиции,
// чтобы "brasov" находил "Brașov"
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldForSearch(s string) string {
	folded, _, err := transform.String(removeDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
