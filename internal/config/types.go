package config

// Document is the deck description a widget is configured from. Every field is optional;
// absent fields take the variant's defaults.
type Document struct {
	Variant          string   `yaml:"variant" validate:"required,variant"`
	Title            string   `yaml:"title,omitempty" validate:"max=120"`
	Subtitle         string   `yaml:"subtitle,omitempty" validate:"max=200"`
	SlideCount       int      `yaml:"slide_count,omitempty"`
	AnimationSpeedMS int      `yaml:"animation_speed_ms,omitempty" validate:"min=0,max=60000"`
	AutoplayDelayMS  *int     `yaml:"autoplay_delay_ms,omitempty"`
	Gate             string   `yaml:"gate,omitempty" validate:"omitempty,gate"`
	Effects          *bool    `yaml:"effects,omitempty"`
	Colors           Colors   `yaml:"colors,omitempty"`
	Slides           []Slide  `yaml:"slides,omitempty" validate:"max=10,dive"`
	Welcome          *Welcome `yaml:"welcome,omitempty"`
}

// Colors holds the palette. Values are #rgb or #rrggbb.
type Colors struct {
	Primary string `yaml:"primary,omitempty" validate:"omitempty,hexcolor"`
	Accent  string `yaml:"accent,omitempty" validate:"omitempty,hexcolor"`
	Text    string `yaml:"text,omitempty" validate:"omitempty,hexcolor"`
}

// Slide is the content of one slide. Missing fields are filled with placeholders.
type Slide struct {
	Number      string `yaml:"number,omitempty" validate:"max=8"`
	Label       string `yaml:"label,omitempty" validate:"max=40"`
	Title       string `yaml:"title,omitempty" validate:"max=120"`
	Tagline     string `yaml:"tagline,omitempty" validate:"max=120"`
	Description string `yaml:"description,omitempty" validate:"max=1000"`
	Image       string `yaml:"image,omitempty"`
}

// Welcome configures the one-time welcome overlay.
type Welcome struct {
	Title       string `yaml:"title,omitempty" validate:"max=120"`
	Message     string `yaml:"message,omitempty" validate:"max=1000"`
	BookingText string `yaml:"booking_text,omitempty" validate:"max=60"`
	BookingLink string `yaml:"booking_link,omitempty"`
	EnterText   string `yaml:"enter_text,omitempty" validate:"max=60"`
	EnterLink   string `yaml:"enter_link,omitempty"`
	ShowOnce    *bool  `yaml:"show_once,omitempty"`
	SeenKey     string `yaml:"seen_key,omitempty" validate:"omitempty,seen_key"`
}
