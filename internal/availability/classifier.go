package availability

import (
    "regexp"
    "strconv"
    "strings"
)

// Classification is the tri-state outcome of inspecting one booking page:
// a known remaining count, a confirmed sell-out, or inconclusive (Spots nil,
// SoldOut false).  SoldOut true always comes with Spots pointing at zero.
type Classification struct {
    Spots   *int // nil = unknown; 0 = confirmed none left
    SoldOut bool
}

// rule is one heuristic in the classifier chain.  apply returns the
// classification and whether the rule matched; a match stops the chain.
type rule struct {
    name  string
    apply func(html string) (Classification, bool)
}

// The rules are evaluated strictly in this order with an early exit on the
// first match.  The order is a deliberate precision gradient: explicit
// sold-out language and explicit counts are trusted over structured-data
// tokens and form caps, and the final no-booking-button rule is a blunt
// fallback so a page always yields *some* signal when possible.
//
// Caveat: ruleNoCallToAction treats the absence of any booking affordance as
// a sell-out.  That is intentionally aggressive and produces false positives
// on pages that phrase their buttons unusually; it stays because an
// occasionally wrong signal beat "unknown" for every nonstandard page in
// practice.  Do not remove it or reorder the chain without revisiting the
// consumers of this data.
var rules = []rule{
    {name: "sold-out-phrase", apply: ruleSoldOutPhrase},
    {name: "spots-remaining", apply: ruleSpotsRemaining},
    {name: "structured-availability", apply: ruleStructuredAvailability},
    {name: "quantity-ceiling", apply: ruleQuantityCeiling},
    {name: "no-call-to-action", apply: ruleNoCallToAction},
}

// Classify derives an availability signal from raw booking-page markup.
// Pure function: same input, same output, no state.
func Classify(html string) Classification {
    for _, r := range rules {
        if c, ok := r.apply(html); ok {
            return c
        }
    }
    return Classification{} // inconclusive
}

var soldOutPatterns = []*regexp.Regexp{
    regexp.MustCompile(`(?i)sold\s*out`),
    regexp.MustCompile(`(?i)no\s*spots?\s*available`),
    regexp.MustCompile(`(?i)fully\s*booked`),
    regexp.MustCompile(`(?i)tickets?\s*unavailable`),
    regexp.MustCompile(`(?i)event\s*is\s*full`),
}

// ruleSoldOutPhrase matches explicit sold-out language anywhere in the page.
func ruleSoldOutPhrase(html string) (Classification, bool) {
    for _, p := range soldOutPatterns {
        if p.MatchString(html) {
            return soldOut(), true
        }
    }
    return Classification{}, false
}

var spotsRemainingRe = regexp.MustCompile(`(?i)(\d+)\s*(?:spots?|tickets?|places?)\s*(?:left|available|remaining)`)

// ruleSpotsRemaining parses "N spots left" style copy.  A parsed zero is a
// confirmed sell-out, not an unknown.
func ruleSpotsRemaining(html string) (Classification, bool) {
    m := spotsRemainingRe.FindStringSubmatch(html)
    if m == nil {
        return Classification{}, false
    }
    n, err := strconv.Atoi(m[1])
    if err != nil {
        return Classification{}, false
    }
    if n == 0 {
        return soldOut(), true
    }
    return Classification{Spots: &n}, true
}

var structuredAvailabilityRe = regexp.MustCompile(`(?i)"availability"\s*:\s*"(\w+)"`)

// ruleStructuredAvailability inspects schema.org-style availability tokens
// embedded in the page's JSON-LD or meta markup.  Only a recognised
// out-of-stock token counts as a match; any other token falls through to the
// weaker heuristics below rather than being read as "in stock".
func ruleStructuredAvailability(html string) (Classification, bool) {
    m := structuredAvailabilityRe.FindStringSubmatch(html)
    if m == nil {
        return Classification{}, false
    }
    switch strings.ToLower(m[1]) {
    case "soldout", "outofstock":
        return soldOut(), true
    }
    return Classification{}, false
}

var quantityCeilingRes = []*regexp.Regexp{
    regexp.MustCompile(`(?i)data-max-quantity="(\d+)"`),
    regexp.MustCompile(`(?i)max="(\d+)"[^>]*name="quantity"`),
}

// ruleQuantityCeiling reads the maximum purchasable quantity off the ticket
// form.  Weaker than the explicit heuristics above: a form cap reflects a UI
// limit, not necessarily true remaining inventory, so it never asserts
// sold-out on its own.
func ruleQuantityCeiling(html string) (Classification, bool) {
    for _, re := range quantityCeilingRes {
        if m := re.FindStringSubmatch(html); m != nil {
            if n, err := strconv.Atoi(m[1]); err == nil {
                return Classification{Spots: &n}, true
            }
        }
    }
    return Classification{}, false
}

var callToActionRe = regexp.MustCompile(`(?i)add\s*to\s*cart|book\s*now|get\s*ticket|register`)

// ruleNoCallToAction fires when the page shows no recognisable booking
// affordance at all, reading that as closed registration.  See the caveat on
// the rules table.
func ruleNoCallToAction(html string) (Classification, bool) {
    if callToActionRe.MatchString(html) {
        return Classification{}, false
    }
    return soldOut(), true
}

func soldOut() Classification {
    zero := 0
    return Classification{Spots: &zero, SoldOut: true}
}
