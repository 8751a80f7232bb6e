package domain

import "testing"

func TestGenerateID(t *testing.T) {
	id1 := GenerateID()
	id2 := GenerateID()

	if id1 == "" || id2 == "" {
		t.Error("expected non-empty ids")
	}
	if id1 == id2 {
		t.Error("expected unique ids")
	}
}

func TestContentRecord_Template(t *testing.T) {
	tests := []struct {
		name   string
		stored TemplateType
		want   TemplateType
	}{
		{"single image", TemplateSingleImage, TemplateSingleImage},
		{"document", TemplateDocument, TemplateDocument},
		{"absent maps to legacy", TemplateType(""), TemplateLegacy},
		{"unknown maps to legacy", TemplateType("grid"), TemplateLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ContentRecord{TemplateType: tt.stored}
			if got := r.Template(); got != tt.want {
				t.Errorf("Template() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentRecord_Validate(t *testing.T) {
	research := &ContentRecord{
		Kind:   KindResearch,
		Title:  "Scaling Laws Revisited",
		Author: "A. Turing",
		Date:   "2026-08-01",
	}
	if err := research.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	research.Author = ""
	if err := research.Validate(); err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	signal := &ContentRecord{
		Kind:    KindSignal,
		Heading: "New model release",
		Domain:  "dom-1",
		Date:    "2026-08-01",
	}
	if err := signal.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	signal.Domain = ""
	if err := signal.Validate(); err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	unknown := &ContentRecord{Kind: Kind("essay")}
	if err := unknown.Validate(); err != ErrInvalidKind {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestContentRecord_AssetURLs(t *testing.T) {
	r := &ContentRecord{
		Kind:          KindResearch,
		ImageURL:      "https://cdn/x.png",
		WhitepaperURL: "https://cdn/x.pdf",
		Blocks: BlockList{
			{ID: "a", Type: BlockImage, ImageURL: "https://cdn/b.png", Order: 0},
			{ID: "b", Type: BlockText, Content: "<p>x</p>", Order: 1},
		},
	}

	urls := r.AssetURLs()
	if len(urls) != 3 {
		t.Fatalf("expected 3 asset urls, got %d", len(urls))
	}
}

func TestContentRecord_DisplayTitle(t *testing.T) {
	research := &ContentRecord{Kind: KindResearch, Title: "Paper", Heading: "ignored"}
	if research.DisplayTitle() != "Paper" {
		t.Errorf("expected research title, got %q", research.DisplayTitle())
	}

	signal := &ContentRecord{Kind: KindSignal, Heading: "Heads up"}
	if signal.DisplayTitle() != "Heads up" {
		t.Errorf("expected signal heading, got %q", signal.DisplayTitle())
	}
}

func TestTaxonomy_DanglingLookups(t *testing.T) {
	tax := &Taxonomy{
		Tags:    []*Tag{{ID: "t1", Name: "LLMs", Color: "#0047ab"}},
		Domains: []*Domain{{ID: "d1", Name: "Robotics"}},
	}

	if tax.TagByID("t1") == nil {
		t.Error("expected known tag to resolve")
	}
	if tax.TagByID("missing") != nil {
		t.Error("expected unknown tag to return nil")
	}
	if tax.DomainByID("missing") != nil {
		t.Error("expected unknown domain to return nil")
	}

	var empty *Taxonomy
	if empty.TagByID("t1") != nil {
		t.Error("expected nil taxonomy lookups to return nil")
	}
}

func TestDefaultTypography(t *testing.T) {
	typ := DefaultTypography()

	if typ.Heading1.FontWeight != "700" {
		t.Errorf("expected heading1 weight 700, got %q", typ.Heading1.FontWeight)
	}
	if typ.Body.Color != "#e5e7eb" {
		t.Errorf("expected body color #e5e7eb, got %q", typ.Body.Color)
	}
	if typ.Caption.FontSize.Mobile != "0.75rem" {
		t.Errorf("expected caption mobile size 0.75rem, got %q", typ.Caption.FontSize.Mobile)
	}
}

func TestTask_Retry(t *testing.T) {
	task := NewAssetCleanupTask("https://cdn/x.png")

	if task.AssetURL() != "https://cdn/x.png" {
		t.Errorf("unexpected asset url %q", task.AssetURL())
	}

	for i := 0; i < task.MaxAttempts; i++ {
		task.MarkProcessing()
		task.MarkFailed("network error")
	}

	if task.Status != TaskStatusFailed {
		t.Errorf("expected task to fail permanently, got %q", task.Status)
	}
	if task.CanRetry() {
		t.Error("expected retries exhausted")
	}
}
