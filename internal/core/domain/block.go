package domain

import (
	"fmt"
	"sort"
	"strings"
)

// BlockType identifies the layout of a content block
type BlockType string

const (
	// BlockText is a rich-text-only block
	BlockText BlockType = "text"
	// BlockImage is an image-only block
	BlockImage BlockType = "image"
	// BlockImageText renders an image and rich text side by side
	BlockImageText BlockType = "imageText"
)

// IsValid returns true if this is a known block type
func (t BlockType) IsValid() bool {
	switch t {
	case BlockText, BlockImage, BlockImageText:
		return true
	default:
		return false
	}
}

// Align positions the image of an imageText block
type Align string

const (
	AlignLeft  Align = "left"
	AlignRight Align = "right"
)

// MoveDirection is the direction of a block reorder step
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// ContentBlock is one unit of a document-template record.
// ID is assigned at creation and never reused; it is the stable key for
// reordering and removal, independent of Order.
type ContentBlock struct {
	ID       string    `json:"id"`
	Type     BlockType `json:"type"`
	Content  string    `json:"content,omitempty"`  // rich-text markup (text, imageText)
	ImageURL string    `json:"imageUrl,omitempty"` // image, imageText
	Align    Align     `json:"align,omitempty"`    // imageText only
	Order    int       `json:"order"`
}

// HasContent reports whether the block has anything to render.
func (b *ContentBlock) HasContent() bool {
	switch b.Type {
	case BlockText:
		return strings.TrimSpace(b.Content) != ""
	case BlockImage:
		return b.ImageURL != ""
	case BlockImageText:
		return strings.TrimSpace(b.Content) != "" || b.ImageURL != ""
	default:
		return false
	}
}

// BlockPatch carries partial field updates for a block.
// Order and ID are never patched.
type BlockPatch struct {
	Content  *string `json:"content,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Align    *Align  `json:"align,omitempty"`
}

// BlockList is the ordered list of blocks behind a document-template record.
// Order values are kept a dense permutation of 0..N-1 by construction.
type BlockList []ContentBlock

// Add appends a new block of the given type with order set to the current
// length and empty payload fields. It always succeeds.
func (l *BlockList) Add(t BlockType) ContentBlock {
	block := ContentBlock{
		ID:    GenerateID(),
		Type:  t,
		Order: len(*l),
	}
	if t == BlockImageText {
		block.Align = AlignLeft
	}
	*l = append(*l, block)
	return block
}

// Remove deletes the block with the given id and re-derives order for the
// remaining blocks, preserving their relative order. Unknown ids are a no-op.
func (l *BlockList) Remove(id string) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}
	*l = append((*l)[:idx], (*l)[idx+1:]...)
	l.reindex()
}

// Move swaps the block's order with its adjacent neighbour in sort order.
// Moving the first block up or the last block down is a no-op.
func (l *BlockList) Move(id string, dir MoveDirection) {
	l.sortInPlace()

	idx := l.indexOf(id)
	if idx < 0 {
		return
	}

	target := idx - 1
	if dir == MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(*l) {
		return
	}

	(*l)[idx], (*l)[target] = (*l)[target], (*l)[idx]
	l.reindex()
}

// Update merges patch fields into the block with the given id. Order and ID
// are left untouched. Unknown ids are a no-op.
func (l BlockList) Update(id string, patch BlockPatch) {
	idx := l.indexOf(id)
	if idx < 0 {
		return
	}

	b := &l[idx]
	if patch.Content != nil {
		b.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		b.ImageURL = *patch.ImageURL
	}
	if patch.Align != nil {
		b.Align = *patch.Align
	}
}

// Sorted returns the blocks in display order. The sort is stable, so lists
// with duplicate order values (possible from concurrent edits) fall back to
// original array position.
func (l BlockList) Sorted() []ContentBlock {
	out := make([]ContentBlock, len(l))
	copy(out, l)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Validate returns human-readable problems with the list. Validation is
// advisory only; empty blocks are allowed to be saved.
func (l BlockList) Validate() []string {
	var problems []string
	for i, b := range l.Sorted() {
		if !b.Type.IsValid() {
			problems = append(problems, fmt.Sprintf("block %d has unknown type %q", i+1, b.Type))
			continue
		}
		if !b.HasContent() {
			problems = append(problems, fmt.Sprintf("block %d is empty", i+1))
		}
	}
	return problems
}

func (l BlockList) indexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

func (l BlockList) reindex() {
	for i := range l {
		l[i].Order = i
	}
}

func (l *BlockList) sortInPlace() {
	sort.SliceStable(*l, func(i, j int) bool {
		return (*l)[i].Order < (*l)[j].Order
	})
}
