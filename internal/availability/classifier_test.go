package availability

import "testing"

// pages used across cases.  Every page that should classify as "unknown"
// needs a booking affordance, otherwise the no-call-to-action fallback fires.
const (
    pageWithCTA     = `<html><body><button>Book Now</button></body></html>`
    pageSoldOut     = `<html><body><div class="status">SOLD OUT</div></body></html>`
    pageSpotsLeft   = `<html><body><p>12 spots remaining</p><button>Book Now</button></body></html>`
    pageZeroSpots   = `<html><body><p>0 tickets left</p><button>Book Now</button></body></html>`
    pageEmptyFooter = `<html><body><footer>see you next year</footer></body></html>`
)

func TestClassifySoldOutPhrases(t *testing.T) {
    for _, html := range []string{
        pageSoldOut,
        `<p>No spots available for this event</p><button>Register</button>`,
        `<p>fully booked</p>`,
        `<p>Tickets unavailable</p>`,
        `<p>This event is full.</p>`,
    } {
        c := Classify(html)
        if !c.SoldOut {
            t.Errorf("Classify(%q): want sold out", html)
        }
        if c.Spots == nil || *c.Spots != 0 {
            t.Errorf("Classify(%q): sold out must report zero spots, got %v", html, c.Spots)
        }
    }
}

func TestClassifySpotsRemaining(t *testing.T) {
    c := Classify(pageSpotsLeft)
    if c.SoldOut {
        t.Fatal("12 spots remaining should not be sold out")
    }
    if c.Spots == nil || *c.Spots != 12 {
        t.Fatalf("want 12 spots, got %v", c.Spots)
    }

    // Phrasing variants.
    for _, html := range []string{
        `<p>3 tickets available</p><button>Book Now</button>`,
        `<p>Only 7 places left!</p><button>Book Now</button>`,
    } {
        if c := Classify(html); c.Spots == nil {
            t.Errorf("Classify(%q): expected a parsed count", html)
        }
    }
}

func TestClassifyZeroSpotsIsSoldOut(t *testing.T) {
    c := Classify(pageZeroSpots)
    if !c.SoldOut {
        t.Fatal("an explicit zero count is a confirmed sell-out")
    }
    if c.Spots == nil || *c.Spots != 0 {
        t.Fatalf("want 0 spots, got %v", c.Spots)
    }
}

// The chain is ordered: explicit sold-out language wins over a remaining
// count appearing on the same page.
func TestClassifyPriorityOrder(t *testing.T) {
    html := `<div>Sold Out</div><p>5 spots left</p><button>Book Now</button>`
    c := Classify(html)
    if !c.SoldOut {
        t.Fatal("sold-out phrase must win over the remaining-count phrase")
    }
    if c.Spots == nil || *c.Spots != 0 {
        t.Fatalf("want 0 spots, got %v", c.Spots)
    }
}

func TestClassifyStructuredAvailability(t *testing.T) {
    for _, token := range []string{"SoldOut", "OutOfStock"} {
        html := `<script>{"availability": "` + token + `"}</script><button>Book Now</button>`
        c := Classify(html)
        if !c.SoldOut || c.Spots == nil || *c.Spots != 0 {
            t.Errorf("token %q: want sold out with zero spots, got %+v", token, c)
        }
    }

    // A token that is not in the out-of-stock vocabulary does not
    // short-circuit; weaker heuristics still get their turn.
    html := `<script>{"availability": "InStock"}</script><input max="6" name="quantity">`
    c := Classify(html)
    if c.SoldOut {
        t.Fatal("InStock token must not classify as sold out")
    }
    if c.Spots == nil || *c.Spots != 6 {
        t.Fatalf("quantity ceiling should apply after a non-matching token, got %v", c.Spots)
    }
}

func TestClassifyQuantityCeiling(t *testing.T) {
    c := Classify(`<form data-max-quantity="8"><button>Add to Cart</button></form>`)
    if c.SoldOut {
        t.Fatal("a form cap never asserts sold-out on its own")
    }
    if c.Spots == nil || *c.Spots != 8 {
        t.Fatalf("want 8 spots from data-max-quantity, got %v", c.Spots)
    }

    c = Classify(`<input type="number" max="4" name="quantity"><button>Book Now</button>`)
    if c.Spots == nil || *c.Spots != 4 {
        t.Fatalf("want 4 spots from input max, got %v", c.Spots)
    }
}

// A page with no booking affordance at all is read as closed registration.
// Aggressive on purpose; see the caveat on the rules table.
func TestClassifyNoCallToAction(t *testing.T) {
    c := Classify(pageEmptyFooter)
    if !c.SoldOut {
        t.Fatal("page without any booking affordance should classify as sold out")
    }
    if c.Spots == nil || *c.Spots != 0 {
        t.Fatalf("want 0 spots, got %v", c.Spots)
    }
}

func TestClassifyInconclusive(t *testing.T) {
    c := Classify(pageWithCTA)
    if c.SoldOut {
        t.Fatal("plain booking page must not be sold out")
    }
    if c.Spots != nil {
        t.Fatalf("plain booking page must be unknown, got %v", *c.Spots)
    }
}

func TestClassifyIdempotent(t *testing.T) {
    for _, html := range []string{pageSoldOut, pageSpotsLeft, pageWithCTA, pageEmptyFooter} {
        a, b := Classify(html), Classify(html)
        if a.SoldOut != b.SoldOut {
            t.Errorf("Classify(%q) not stable on SoldOut", html)
        }
        switch {
        case a.Spots == nil && b.Spots == nil:
        case a.Spots != nil && b.Spots != nil && *a.Spots == *b.Spots:
        default:
            t.Errorf("Classify(%q) not stable on Spots", html)
        }
    }
}

// Blanket invariant over a grab bag of inputs: sold out implies zero spots.
func TestClassifySoldOutImpliesZero(t *testing.T) {
    inputs := []string{
        pageSoldOut, pageSpotsLeft, pageZeroSpots, pageWithCTA, pageEmptyFooter,
        `<div>Sold Out</div><form data-max-quantity="9"></form>`,
        `{"availability":"soldout"}<p>5 spots left</p>`,
        "",
    }
    for _, html := range inputs {
        c := Classify(html)
        if c.SoldOut && (c.Spots == nil || *c.Spots != 0) {
            t.Errorf("Classify(%q): sold out with spots=%v violates invariant", html, c.Spots)
        }
    }
}
