package domain

import "time"

// FontSize holds responsive CSS length strings
type FontSize struct {
	Desktop string `json:"desktop"`
	Mobile  string `json:"mobile"`
}

// TextStyle is one named typography style
type TextStyle struct {
	FontSize   FontSize `json:"fontSize"`
	FontWeight string   `json:"fontWeight"`
	Color      string   `json:"color"` // hex string
	LineHeight string   `json:"lineHeight"`
}

// TypographySettings is the singleton style configuration applied by every
// rendering path. Falls back to DefaultTypography when unset.
type TypographySettings struct {
	Heading1  TextStyle `json:"heading1"`
	Heading2  TextStyle `json:"heading2"`
	Heading3  TextStyle `json:"heading3"`
	Body      TextStyle `json:"body"`
	Caption   TextStyle `json:"caption"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultTypography returns the hardcoded fallback style set
func DefaultTypography() *TypographySettings {
	return &TypographySettings{
		Heading1: TextStyle{
			FontSize:   FontSize{Desktop: "3rem", Mobile: "2rem"},
			FontWeight: "700",
			Color:      "#ffffff",
			LineHeight: "1.2",
		},
		Heading2: TextStyle{
			FontSize:   FontSize{Desktop: "2.25rem", Mobile: "1.75rem"},
			FontWeight: "600",
			Color:      "#ffffff",
			LineHeight: "1.3",
		},
		Heading3: TextStyle{
			FontSize:   FontSize{Desktop: "1.5rem", Mobile: "1.25rem"},
			FontWeight: "600",
			Color:      "#ffffff",
			LineHeight: "1.4",
		},
		Body: TextStyle{
			FontSize:   FontSize{Desktop: "1rem", Mobile: "0.875rem"},
			FontWeight: "400",
			Color:      "#e5e7eb",
			LineHeight: "1.6",
		},
		Caption: TextStyle{
			FontSize:   FontSize{Desktop: "0.875rem", Mobile: "0.75rem"},
			FontWeight: "400",
			Color:      "#9ca3af",
			LineHeight: "1.5",
		},
	}
}
