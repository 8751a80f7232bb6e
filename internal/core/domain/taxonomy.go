package domain

import "time"

// Tag categorises content records. Deleting a tag does not cascade;
// records keep dangling ids which renderers skip.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"` // hex string
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks required tag fields
func (t *Tag) Validate() error {
	if t.Name == "" || t.Color == "" {
		return ErrInvalidInput
	}
	return nil
}

// Domain groups signal and observer records into a topic area
type Domain struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	PostCount   int       `json:"post_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks required domain fields
func (d *Domain) Validate() error {
	if d.Name == "" {
		return ErrInvalidInput
	}
	return nil
}

// Taxonomy is the tag and domain reference data used when rendering.
// Lookups against it tolerate unknown ids.
type Taxonomy struct {
	Tags    []*Tag
	Domains []*Domain
}

// TagByID returns the tag with the given id, or nil
func (t *Taxonomy) TagByID(id string) *Tag {
	if t == nil {
		return nil
	}
	for _, tag := range t.Tags {
		if tag.ID == id {
			return tag
		}
	}
	return nil
}

// DomainByID returns the domain with the given id, or nil
func (t *Taxonomy) DomainByID(id string) *Domain {
	if t == nil {
		return nil
	}
	for _, d := range t.Domains {
		if d.ID == id {
			return d
		}
	}
	return nil
}
