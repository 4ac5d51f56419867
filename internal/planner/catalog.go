package planner

type Category string

const (
	CategoryVendor   Category = "vendor"
	CategoryPlanning Category = "planning"
	CategoryFinal    Category = "final"
)

// TaskDefinition is an entry of the compiled-in planning catalog.
//
// DeadlineOffsetDays counts days before the event date: 180 means the task
// should be done 180 days before the event, -2 means two days after it.
type TaskDefinition struct {
	ID                 string   `json:"id" yaml:"id"`
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description" yaml:"description"`
	DeadlineOffsetDays int      `json:"deadline_offset_days" yaml:"deadline_offset_days"`
	Category           Category `json:"category" yaml:"category"`
	// Icon is a display key resolved by the presentation layer.
	Icon string `json:"icon" yaml:"icon"`
}

var catalog = [...]TaskDefinition{
	{
		ID:                 "book-venue",
		Title:              "Book your venue",
		Description:        "Secure the ceremony and reception venue and pay the deposit.",
		DeadlineOffsetDays: 365,
		Category:           CategoryVendor,
		Icon:               "building",
	},
	{
		ID:                 "book-dj",
		Title:              "Book your DJ",
		Description:        "Confirm the DJ for the evening reception and sign the booking form.",
		DeadlineOffsetDays: 270,
		Category:           CategoryVendor,
		Icon:               "music",
	},
	{
		ID:                 "book-musicians",
		Title:              "Book ceremony musicians",
		Description:        "Choose live musicians for the ceremony and drinks reception.",
		DeadlineOffsetDays: 240,
		Category:           CategoryVendor,
		Icon:               "guitar",
	},
	{
		ID:                 "book-photographer",
		Title:              "Book a photographer",
		Description:        "Shortlist photographers and lock in your date.",
		DeadlineOffsetDays: 240,
		Category:           CategoryVendor,
		Icon:               "camera",
	},
	{
		ID:                 "send-save-the-dates",
		Title:              "Send save the dates",
		Description:        "Let guests know the date so they can plan travel.",
		DeadlineOffsetDays: 180,
		Category:           CategoryPlanning,
		Icon:               "mail",
	},
	{
		ID:                 "venue-styling",
		Title:              "Plan venue styling",
		Description:        "Agree on backdrops, centrepieces and lighting with the styling team.",
		DeadlineOffsetDays: 180,
		Category:           CategoryVendor,
		Icon:               "sparkles",
	},
	{
		ID:                 "hire-equipment",
		Title:              "Reserve hire items",
		Description:        "Reserve furniture, LED letters and any extra equipment you need on the day.",
		DeadlineOffsetDays: 120,
		Category:           CategoryVendor,
		Icon:               "package",
	},
	{
		ID:                 "send-invitations",
		Title:              "Send invitations",
		Description:        "Post or email invitations with an RSVP date.",
		DeadlineOffsetDays: 90,
		Category:           CategoryPlanning,
		Icon:               "envelope",
	},
	{
		ID:                 "music-preferences",
		Title:              "Share music preferences",
		Description:        "Fill in must-play and do-not-play lists for your DJ.",
		DeadlineOffsetDays: 60,
		Category:           CategoryPlanning,
		Icon:               "headphones",
	},
	{
		ID:                 "first-dance",
		Title:              "Choose your first dance",
		Description:        "Pick the first dance song and send the exact version to your DJ.",
		DeadlineOffsetDays: 45,
		Category:           CategoryPlanning,
		Icon:               "heart",
	},
	{
		ID:                 "finalise-budget",
		Title:              "Review your budget",
		Description:        "Compare spend against budget and settle any open deposits.",
		DeadlineOffsetDays: 30,
		Category:           CategoryPlanning,
		Icon:               "wallet",
	},
	{
		ID:                 "final-guest-count",
		Title:              "Confirm final guest numbers",
		Description:        "Chase outstanding RSVPs and send final numbers to the venue.",
		DeadlineOffsetDays: 21,
		Category:           CategoryFinal,
		Icon:               "users",
	},
	{
		ID:                 "seating-plan",
		Title:              "Finish the seating plan",
		Description:        "Finalise table layout and send it to the venue and stylists.",
		DeadlineOffsetDays: 14,
		Category:           CategoryFinal,
		Icon:               "layout",
	},
	{
		ID:                 "confirm-timeline",
		Title:              "Confirm the day timeline",
		Description:        "Share the running order with your DJ, musicians and venue.",
		DeadlineOffsetDays: 7,
		Category:           CategoryFinal,
		Icon:               "clock",
	},
	{
		ID:                 "final-payments",
		Title:              "Make final payments",
		Description:        "Pay remaining balances to all suppliers.",
		DeadlineOffsetDays: 3,
		Category:           CategoryFinal,
		Icon:               "credit-card",
	},
	{
		ID:                 "return-hire-items",
		Title:              "Return hire items",
		Description:        "Arrange collection or return of all hired equipment.",
		DeadlineOffsetDays: -2,
		Category:           CategoryFinal,
		Icon:               "truck",
	},
}

var catalogIndex = func() map[string]int {
	index := make(map[string]int, len(catalog))
	for i, def := range catalog {
		index[def.ID] = i
	}
	return index
}()

// Catalog returns a copy of the planning catalog in its canonical order.
func Catalog() []TaskDefinition {
	out := make([]TaskDefinition, len(catalog))
	copy(out, catalog[:])
	return out
}

func LookupTask(id string) (TaskDefinition, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return TaskDefinition{}, false
	}
	return catalog[i], true
}
