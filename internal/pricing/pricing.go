package pricing

import "strings"

// TierNone is the sentinel for "no subscription selected".
const TierNone = "none"

type Tier struct {
	ID    string
	Label string
	Price int // monthly, whole dollars
}

type AddOn struct {
	ID    string
	Label string
	Price int // one-time, whole dollars
}

// The catalog is fixed at build time and mirrors the provider-side products.
var Tiers = []Tier{
	{ID: "foundation", Label: "Foundation", Price: 99},
	{ID: "builder", Label: "Builder", Price: 975},
	{ID: "flagship", Label: "Flagship", Price: 1875},
}

var AddOns = []AddOn{
	{ID: "job-event", Label: "Boost a Job or Event", Price: 495},
	{ID: "virtual-hiring", Label: "Virtual Hiring Event", Price: 1500},
	{ID: "hiring-event", Label: "In-Person Hiring Event", Price: 5000},
	{ID: "network-sponsorship", Label: "Sponsor a Networking Event", Price: 2000},
}

var HearAboutUsOptions = []string{"google", "website", "referral", "other"}

func TierByID(id string) (Tier, bool) {
	for _, t := range Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

func AddOnByID(id string) (AddOn, bool) {
	for _, a := range AddOns {
		if a.ID == id {
			return a, true
		}
	}
	return AddOn{}, false
}

// ComputeTotal sums the selected tier's monthly price and the selected
// add-ons' one-time prices. Unknown ids contribute nothing; the checkout
// path rejects them instead.
func ComputeTotal(tierID string, addOnIDs []string) int {
	total := 0
	if tier, ok := TierByID(tierID); ok {
		total += tier.Price
	}
	for _, id := range addOnIDs {
		if addOn, ok := AddOnByID(id); ok {
			total += addOn.Price
		}
	}
	return total
}

// TierLabel returns the display label for a tier id, or "None" when no
// tier is selected or the id is unknown.
func TierLabel(tierID string) string {
	if tier, ok := TierByID(tierID); ok {
		return tier.Label
	}
	return "None"
}

// AddOnLabels resolves add-on ids to display labels, dropping unknown ids.
func AddOnLabels(ids []string) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if addOn, ok := AddOnByID(id); ok {
			labels = append(labels, addOn.Label)
		}
	}
	return labels
}

// FormatPhoneNumber strips non-digits and regroups as NNN-NNN-NNNN,
// truncating past ten digits. Partial input keeps whatever groups are
// complete, so it can run on every keystroke.
func FormatPhoneNumber(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 10 {
				break
			}
		}
	}
	d := digits.String()
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "-" + d[3:]
	default:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	}
}
