package config

import "github.com/alexisbeaulieu97/showreel/internal/deck"

// DefaultSeenKey is the flag the welcome overlay records once it has been dismissed.
const DefaultSeenKey = "welcome_seen"

var palettes = map[deck.Name]Colors{
	deck.Ripple:  {Primary: "#0a192f", Accent: "#d4af37", Text: "#f8f6f1"},
	deck.Hearts:  {Primary: "#fff5f5", Accent: "#d4a5a5", Text: "#5a4a4a"},
	deck.Journey: {Primary: "#0a0a0a", Accent: "#00d9ff", Text: "#ffffff"},
	deck.Welcome: {Primary: "#0a192f", Accent: "#d4af37", Text: "#f8f6f1"},
}

var titles = map[deck.Name][2]string{
	deck.Ripple:  {"Luxury Redefined", "Experience unparalleled elegance"},
	deck.Hearts:  {"Emily & James", "June 15, 2025"},
	deck.Journey: {"Product Journey", "From concept to reality"},
	deck.Welcome: {"Welcome to Luxury", ""},
}

// Default returns the document a widget of the given variant starts from.
func Default(name deck.Name) *Document {
	v, err := deck.Lookup(name)
	if err != nil {
		v, _ = deck.Lookup(deck.Ripple)
	}

	doc := &Document{
		Variant:          string(v.Name),
		Title:            titles[v.Name][0],
		Subtitle:         titles[v.Name][1],
		SlideCount:       v.DefaultCount,
		AnimationSpeedMS: int(v.Speed.Milliseconds()),
		Gate:             v.Gate.String(),
		Colors:           palettes[v.Name],
	}
	if v.Name == deck.Welcome {
		doc.Welcome = defaultWelcome()
	}
	return doc
}

func defaultWelcome() *Welcome {
	showOnce := true
	return &Welcome{
		Title:       "Welcome to Luxury",
		Message:     "Experience the pinnacle of hospitality where timeless elegance meets modern sophistication. Your journey to extraordinary begins here.",
		BookingText: "Book Your Stay",
		BookingLink: "#booking",
		EnterText:   "Enter The Website",
		EnterLink:   "#home",
		ShowOnce:    &showOnce,
		SeenKey:     DefaultSeenKey,
	}
}

// fill copies defaults into every field the document left empty. Slices are taken as a
// whole, the way a shallow object merge would.
func fill(doc, def *Document) {
	if doc.Title == "" {
		doc.Title = def.Title
	}
	if doc.Subtitle == "" {
		doc.Subtitle = def.Subtitle
	}
	if doc.SlideCount == 0 {
		doc.SlideCount = def.SlideCount
	}
	if doc.AnimationSpeedMS == 0 {
		doc.AnimationSpeedMS = def.AnimationSpeedMS
	}
	if doc.Gate == "" {
		doc.Gate = def.Gate
	}
	if doc.Colors.Primary == "" {
		doc.Colors.Primary = def.Colors.Primary
	}
	if doc.Colors.Accent == "" {
		doc.Colors.Accent = def.Colors.Accent
	}
	if doc.Colors.Text == "" {
		doc.Colors.Text = def.Colors.Text
	}

	if def.Welcome == nil {
		return
	}
	if doc.Welcome == nil {
		doc.Welcome = &Welcome{}
	}
	w, dw := doc.Welcome, def.Welcome
	if w.Title == "" {
		w.Title = dw.Title
	}
	if w.Message == "" {
		w.Message = dw.Message
	}
	if w.BookingText == "" {
		w.BookingText = dw.BookingText
	}
	if w.BookingLink == "" {
		w.BookingLink = dw.BookingLink
	}
	if w.EnterText == "" {
		w.EnterText = dw.EnterText
	}
	if w.EnterLink == "" {
		w.EnterLink = dw.EnterLink
	}
	if w.ShowOnce == nil {
		w.ShowOnce = dw.ShowOnce
	}
	if w.SeenKey == "" {
		w.SeenKey = dw.SeenKey
	}
}
