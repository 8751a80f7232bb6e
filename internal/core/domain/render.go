package domain

// RenderUnitKind identifies one displayable unit produced by the renderer
type RenderUnitKind string

const (
	// UnitHeading is the record title/heading, styled with heading1
	UnitHeading RenderUnitKind = "heading"
	// UnitDomainBadge is the resolved domain label for signal/observer records
	UnitDomainBadge RenderUnitKind = "domainBadge"
	// UnitTagBadge is one resolved tag label
	UnitTagBadge RenderUnitKind = "tagBadge"
	// UnitRichText is rich-text markup rendered verbatim
	UnitRichText RenderUnitKind = "richText"
	// UnitImage is a standalone image
	UnitImage RenderUnitKind = "image"
	// UnitImageText is an image and rich text side by side
	UnitImageText RenderUnitKind = "imageText"
	// UnitPlainText is unstyled plain text, the legacy fallback body
	UnitPlainText RenderUnitKind = "plainText"
)

// RenderUnit is one element of a rendered document, ready for a view layer
type RenderUnit struct {
	Kind     RenderUnitKind `json:"kind"`
	Text     string         `json:"text,omitempty"`
	ImageURL string         `json:"imageUrl,omitempty"`
	Align    Align          `json:"align,omitempty"`
	Color    string         `json:"color,omitempty"` // badge colour
	Style    *TextStyle     `json:"style,omitempty"`
}

// RenderedRecord is the renderer output for one content record
type RenderedRecord struct {
	RecordID string       `json:"record_id"`
	Kind     Kind         `json:"kind"`
	Template TemplateType `json:"template"`
	Units    []RenderUnit `json:"units"`
}
