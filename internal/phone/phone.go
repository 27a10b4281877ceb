// Package phone formats and validates international phone numbers the way
// the storefront's phone field does: a dial-code registry plus example-based
// grouping, not a full numbering-plan library.
package phone

import "strings"

// Country is one entry of the dial-code registry. Example is a nationally
// formatted sample number whose spacing drives formatting.
type Country struct {
	Name        string `json:"name"`
	ISO         string `json:"iso"`
	CallingCode string `json:"callingCode"`
	Example     string `json:"example"`
}

var countries = []Country{
	{Name: "Pakistan", ISO: "PK", CallingCode: "+92", Example: "301 2345678"},
	{Name: "United States", ISO: "US", CallingCode: "+1", Example: "201 555 0123"},
	{Name: "United Kingdom", ISO: "GB", CallingCode: "+44", Example: "7400 123456"},
	{Name: "United Arab Emirates", ISO: "AE", CallingCode: "+971", Example: "50 123 4567"},
	{Name: "Saudi Arabia", ISO: "SA", CallingCode: "+966", Example: "51 234 5678"},
	{Name: "India", ISO: "IN", CallingCode: "+91", Example: "81234 56789"},
	{Name: "Germany", ISO: "DE", CallingCode: "+49", Example: "1512 3456789"},
	{Name: "France", ISO: "FR", CallingCode: "+33", Example: "6 12 34 56 78"},
	{Name: "Turkey", ISO: "TR", CallingCode: "+90", Example: "501 234 56 78"},
	{Name: "Canada", ISO: "CA", CallingCode: "+1", Example: "506 234 5678"},
	{Name: "Australia", ISO: "AU", CallingCode: "+61", Example: "412 345 678"},
	{Name: "China", ISO: "CN", CallingCode: "+86", Example: "131 2345 6789"},
	{Name: "Bangladesh", ISO: "BD", CallingCode: "+880", Example: "1812 345678"},
	{Name: "Malaysia", ISO: "MY", CallingCode: "+60", Example: "12 345 6789"},
	{Name: "Indonesia", ISO: "ID", CallingCode: "+62", Example: "812 345 678"},
}

// Countries returns the registry in display order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// ByISO looks a country up by its two-letter code.
func ByISO(iso string) (Country, bool) {
	iso = strings.ToUpper(iso)
	for _, c := range countries {
		if c.ISO == iso {
			return c, true
		}
	}
	return Country{}, false
}

// Match finds the registry entry whose calling code prefixes the normalized
// number, preferring the longest code (+880 beats +88 beats +8). Shared
// calling codes resolve to the first registry entry.
func Match(number string) (Country, bool) {
	number = Normalize(number)
	best := Country{}
	found := false
	for _, c := range countries {
		if strings.HasPrefix(number, c.CallingCode) {
			if !found || len(c.CallingCode) > len(best.CallingCode) {
				best = c
				found = true
			}
		}
	}
	return best, found
}

// Normalize strips everything but digits, keeping one leading plus.
func Normalize(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders a normalized number with the matched country's example
// grouping: digits are slotted into the example pattern, spaces copied
// through. Numbers with no matching country come back normalized.
func Format(raw string) string {
	number := Normalize(raw)
	country, ok := Match(number)
	if !ok {
		return number
	}

	national := strings.TrimPrefix(number, country.CallingCode)
	var b strings.Builder
	digit := 0
	for i := 0; i < len(country.Example) && digit < len(national); i++ {
		if country.Example[i] == ' ' {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(national[digit])
		digit++
	}
	// Overflow digits beyond the example pattern are appended as-is.
	b.WriteString(national[digit:])

	return country.CallingCode + " " + b.String()
}

// minLength mirrors the checkout validator: long enough to carry a dial code
// plus a full national number.
const minLength = 13

// Valid reports whether the number normalizes to an international form the
// checkout gate accepts.
func Valid(raw string) bool {
	number := Normalize(raw)
	return strings.HasPrefix(number, "+") && len(number) >= minLength
}
