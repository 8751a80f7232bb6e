package domain

import "time"

// Kind identifies the content record variant
type Kind string

const (
	KindResearch Kind = "research"
	KindSignal   Kind = "signal"
	KindObserver Kind = "observer"
)

// IsValid returns true if this is a known content kind
func (k Kind) IsValid() bool {
	switch k {
	case KindResearch, KindSignal, KindObserver:
		return true
	default:
		return false
	}
}

// Kinds lists all content kinds, used by pages that fetch every listing
func Kinds() []Kind {
	return []Kind{KindResearch, KindSignal, KindObserver}
}

// TemplateType identifies the layout/authoring mode of a record's body.
// Legacy is the explicit variant for records stored before templates
// existed, so renderer dispatch is exhaustive.
type TemplateType string

const (
	TemplateSingleImage TemplateType = "singleImage"
	TemplateDocument    TemplateType = "document"
	TemplateLegacy      TemplateType = ""
)

// IsValid returns true if the template can be chosen at authoring time.
// Legacy is never a valid choice; it only arises from old stored records.
func (t TemplateType) IsValid() bool {
	return t == TemplateSingleImage || t == TemplateDocument
}

// ContentRecord is a research, signal, or observer post. The kind-specific
// fields form a tagged union over Kind; the body payload is a tagged union
// over Template().
type ContentRecord struct {
	ID           string       `json:"id"`
	Kind         Kind         `json:"kind"`
	TemplateType TemplateType `json:"templateType,omitempty"`
	Tags         []string     `json:"tags"`
	Date         string       `json:"date"`

	// Research fields
	Title         string `json:"title,omitempty"`
	Author        string `json:"author,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	WhitepaperURL string `json:"whitepaperUrl,omitempty"`

	// Signal / Observer fields
	Heading string `json:"heading,omitempty"`
	Content string `json:"content,omitempty"` // plain-text summary for cards and search
	Domain  string `json:"domain,omitempty"`  // domain id, dangling tolerated

	// Template payload, mutually exclusive by Template().
	// RichContent is opaque pre-sanitised markup from the authoring editor;
	// it is stored and rendered verbatim.
	ImageURL    string    `json:"imageUrl,omitempty"`
	RichContent string    `json:"richContent,omitempty"`
	Blocks      BlockList `json:"blocks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Template returns the record's template variant, mapping absent template
// types on old records to TemplateLegacy.
func (r *ContentRecord) Template() TemplateType {
	switch r.TemplateType {
	case TemplateSingleImage, TemplateDocument:
		return r.TemplateType
	default:
		return TemplateLegacy
	}
}

// DisplayTitle returns the heading text for the record regardless of kind
func (r *ContentRecord) DisplayTitle() string {
	if r.Kind == KindResearch {
		return r.Title
	}
	return r.Heading
}

// AssetURLs returns every uploaded asset URL the record references,
// used for best-effort cleanup when the record is deleted.
func (r *ContentRecord) AssetURLs() []string {
	var urls []string
	if r.ImageURL != "" {
		urls = append(urls, r.ImageURL)
	}
	if r.WhitepaperURL != "" {
		urls = append(urls, r.WhitepaperURL)
	}
	for _, b := range r.Blocks {
		if b.ImageURL != "" {
			urls = append(urls, b.ImageURL)
		}
	}
	return urls
}

// Validate checks the required authoring fields for the record's kind.
// Template payload completeness is the authoring form's responsibility,
// not enforced here.
func (r *ContentRecord) Validate() error {
	if !r.Kind.IsValid() {
		return ErrInvalidKind
	}
	switch r.Kind {
	case KindResearch:
		if r.Title == "" || r.Author == "" || r.Date == "" {
			return ErrInvalidInput
		}
	case KindSignal, KindObserver:
		if r.Heading == "" || r.Domain == "" || r.Date == "" {
			return ErrInvalidInput
		}
	}
	return nil
}
