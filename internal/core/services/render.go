package services

import (
	"context"
	"strings"

	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
)

// Ensure renderService implements RenderService
var _ driving.RenderService = (*renderService)(nil)

// renderService implements the RenderService interface
type renderService struct {
	contentStore driven.ContentStore
	taxonomy     driving.TaxonomyService
	typography   driving.TypographyService
}

// NewRenderService creates a new RenderService
func NewRenderService(
	contentStore driven.ContentStore,
	taxonomy driving.TaxonomyService,
	typography driving.TypographyService,
) driving.RenderService {
	return &renderService{
		contentStore: contentStore,
		taxonomy:     taxonomy,
		typography:   typography,
	}
}

// Render produces the render tree for one stored record
func (s *renderService) Render(ctx context.Context, kind domain.Kind, id string) (*domain.RenderedRecord, error) {
	record, err := s.contentStore.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	taxonomy, err := s.taxonomy.Load(ctx)
	if err != nil {
		// Load degrades internally; a hard error still must not block the
		// record body, only the badges.
		taxonomy = &domain.Taxonomy{}
	}

	typography, err := s.typography.Get(ctx)
	if err != nil {
		typography = domain.DefaultTypography()
	}

	return s.RenderRecord(record, taxonomy, typography), nil
}

// RenderRecord maps a record to its ordered render units. Pure: no store
// access, no side effects. Dangling tag and domain references are omitted,
// never an error.
func (s *renderService) RenderRecord(record *domain.ContentRecord, taxonomy *domain.Taxonomy, typography *domain.TypographySettings) *domain.RenderedRecord {
	if typography == nil {
		typography = domain.DefaultTypography()
	}

	out := &domain.RenderedRecord{
		RecordID: record.ID,
		Kind:     record.Kind,
		Template: record.Template(),
	}

	// Heading always uses heading1 regardless of template
	if title := record.DisplayTitle(); title != "" {
		out.Units = append(out.Units, domain.RenderUnit{
			Kind:  domain.UnitHeading,
			Text:  title,
			Style: styleOf(typography.Heading1),
		})
	}

	if record.Domain != "" {
		if d := taxonomy.DomainByID(record.Domain); d != nil {
			out.Units = append(out.Units, domain.RenderUnit{
				Kind:  domain.UnitDomainBadge,
				Text:  d.Name,
				Color: d.Color,
				Style: styleOf(typography.Caption),
			})
		}
	}

	for _, tagID := range record.Tags {
		tag := taxonomy.TagByID(tagID)
		if tag == nil {
			continue
		}
		out.Units = append(out.Units, domain.RenderUnit{
			Kind:  domain.UnitTagBadge,
			Text:  tag.Name,
			Color: tag.Color,
			Style: styleOf(typography.Caption),
		})
	}

	switch record.Template() {
	case domain.TemplateSingleImage:
		out.Units = append(out.Units, s.renderSingleImage(record, typography)...)
	case domain.TemplateDocument:
		out.Units = append(out.Units, s.renderDocument(record, typography)...)
	case domain.TemplateLegacy:
		out.Units = append(out.Units, s.renderLegacy(record)...)
	}

	return out
}

func (s *renderService) renderSingleImage(record *domain.ContentRecord, typography *domain.TypographySettings) []domain.RenderUnit {
	var units []domain.RenderUnit
	if record.ImageURL != "" {
		units = append(units, domain.RenderUnit{
			Kind:     domain.UnitImage,
			ImageURL: record.ImageURL,
		})
	}
	if record.RichContent != "" {
		units = append(units, domain.RenderUnit{
			Kind:  domain.UnitRichText,
			Text:  record.RichContent,
			Style: styleOf(typography.Body),
		})
	}
	return units
}

func (s *renderService) renderDocument(record *domain.ContentRecord, typography *domain.TypographySettings) []domain.RenderUnit {
	var units []domain.RenderUnit
	for _, block := range record.Blocks.Sorted() {
		switch block.Type {
		case domain.BlockText:
			// Empty text renders nothing, not an error
			if strings.TrimSpace(block.Content) == "" {
				continue
			}
			units = append(units, domain.RenderUnit{
				Kind:  domain.UnitRichText,
				Text:  block.Content,
				Style: styleOf(typography.Body),
			})
		case domain.BlockImage:
			if block.ImageURL == "" {
				continue
			}
			units = append(units, domain.RenderUnit{
				Kind:     domain.UnitImage,
				ImageURL: block.ImageURL,
			})
		case domain.BlockImageText:
			// Either side may be absent; the remaining side still renders
			if strings.TrimSpace(block.Content) == "" && block.ImageURL == "" {
				continue
			}
			align := block.Align
			if align == "" {
				align = domain.AlignLeft
			}
			units = append(units, domain.RenderUnit{
				Kind:     domain.UnitImageText,
				Text:     block.Content,
				ImageURL: block.ImageURL,
				Align:    align,
				Style:    styleOf(typography.Body),
			})
		}
	}
	return units
}

// renderLegacy emits the plain-text fallback for records stored before
// templates existed. No typography styling on the body.
func (s *renderService) renderLegacy(record *domain.ContentRecord) []domain.RenderUnit {
	if record.Content == "" {
		return nil
	}
	return []domain.RenderUnit{{
		Kind: domain.UnitPlainText,
		Text: record.Content,
	}}
}

func styleOf(style domain.TextStyle) *domain.TextStyle {
	s := style
	return &s
}
