package acceptance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/freezing-point/fp-core/internal/adapters/driven/auth"
	"github.com/freezing-point/fp-core/internal/core/domain"
	"github.com/freezing-point/fp-core/internal/core/ports/driven/mocks"
	"github.com/freezing-point/fp-core/internal/core/ports/driving"
	"github.com/freezing-point/fp-core/internal/core/services"
	"github.com/freezing-point/fp-core/internal/runtime"
)

const adminPassword = "glacier-gate"

// fixture wires the real services over in-memory stores, one set per
// scenario. Only the HTTP layer is out of the loop here.
type fixture struct {
	contentStore  *mocks.MockContentStore
	taxonomyStore *mocks.MockTaxonomyStore
	settingsStore *mocks.MockSettingsStore
	sessionStore  *mocks.MockSessionStore
	assetStore    *mocks.MockAssetStore

	content    driving.ContentService
	taxonomy   driving.TaxonomyService
	typography driving.TypographyService
	render     driving.RenderService
	auth       driving.AuthService

	tagIDs    map[string]string
	domainIDs map[string]string

	record     *domain.ContentRecord
	deleteResp *driving.DeleteContentResponse
	loginResp  *domain.LoginResponse
	loginErr   error
}

func (f *fixture) reset() error {
	f.contentStore = mocks.NewMockContentStore()
	f.taxonomyStore = mocks.NewMockTaxonomyStore()
	f.settingsStore = mocks.NewMockSettingsStore()
	f.sessionStore = mocks.NewMockSessionStore()
	f.assetStore = mocks.NewMockAssetStore()

	authAdapter := auth.NewAdapterWithCost("acceptance-secret", 4)
	passwordHash, err := authAdapter.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	runtimeServices := runtime.NewServices()

	f.content = services.NewContentService(f.contentStore, f.assetStore, nil, nil)
	f.taxonomy = services.NewTaxonomyService(f.taxonomyStore, nil)
	f.typography = services.NewTypographyService(f.settingsStore, runtimeServices)
	f.render = services.NewRenderService(f.contentStore, f.taxonomy, f.typography)
	f.auth = services.NewAuthService(f.sessionStore, authAdapter, passwordHash)

	f.tagIDs = map[string]string{}
	f.domainIDs = map[string]string{}
	f.record = nil
	f.deleteResp = nil
	f.loginResp = nil
	f.loginErr = nil
	return nil
}

func (f *fixture) renderRecord() (*domain.RenderedRecord, error) {
	if f.record == nil {
		return nil, errors.New("no record published yet")
	}
	return f.render.Render(context.Background(), f.record.Kind, f.record.ID)
}

// Step definitions

func (f *fixture) aDomainNamedExists(name string) error {
	d, err := f.taxonomy.CreateDomain(context.Background(), driving.CreateDomainRequest{Name: name})
	if err != nil {
		return err
	}
	f.domainIDs[name] = d.ID
	return nil
}

func (f *fixture) aTagNamedExists(name string) error {
	tag, err := f.taxonomy.CreateTag(context.Background(), driving.CreateTagRequest{
		Name:  name,
		Color: "#38bdf8",
	})
	if err != nil {
		return err
	}
	f.tagIDs[name] = tag.ID
	return nil
}

func (f *fixture) editorPublishesSignalWithReversedBlocks(domainName, tagName, first, second string) error {
	record, err := f.content.Create(context.Background(), driving.CreateContentRequest{
		Kind:         domain.KindSignal,
		TemplateType: domain.TemplateDocument,
		Heading:      "Weights leaked",
		Domain:       f.domainIDs[domainName],
		Tags:         []string{f.tagIDs[tagName]},
		Date:         "2026-08-01",
		// Stored out of order on purpose; rendering must sort by Order
		Blocks: domain.BlockList{
			{ID: domain.GenerateID(), Type: domain.BlockText, Content: second, Order: 1},
			{ID: domain.GenerateID(), Type: domain.BlockText, Content: first, Order: 0},
		},
	})
	if err != nil {
		return err
	}
	f.record = record
	return nil
}

func (f *fixture) renderedBodyShowsBefore(first, second string) error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}

	firstIdx, secondIdx := -1, -1
	for i, unit := range rendered.Units {
		if unit.Kind != domain.UnitRichText {
			continue
		}
		switch unit.Text {
		case first:
			firstIdx = i
		case second:
			secondIdx = i
		}
	}
	if firstIdx == -1 || secondIdx == -1 {
		return fmt.Errorf("expected both rich text units, got %+v", rendered.Units)
	}
	if firstIdx > secondIdx {
		return fmt.Errorf("expected %q before %q", first, second)
	}
	return nil
}

func (f *fixture) renderedRecordCarriesDomainBadge(name string) error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}
	for _, unit := range rendered.Units {
		if unit.Kind == domain.UnitDomainBadge && unit.Text == name {
			return nil
		}
	}
	return fmt.Errorf("no domain badge %q in %+v", name, rendered.Units)
}

func (f *fixture) renderedRecordCarriesTagBadge(name string) error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}
	for _, unit := range rendered.Units {
		if unit.Kind == domain.UnitTagBadge && unit.Text == name {
			return nil
		}
	}
	return fmt.Errorf("no tag badge %q in %+v", name, rendered.Units)
}

func (f *fixture) publishedResearchPaperWithAssets() error {
	record, err := f.content.Create(context.Background(), driving.CreateContentRequest{
		Kind:          domain.KindResearch,
		TemplateType:  domain.TemplateSingleImage,
		Title:         "Scaling laws revisited",
		Author:        "R. Frost",
		Date:          "2026-07-15",
		ImageURL:      "https://cdn.test/posts/hero.png",
		WhitepaperURL: "https://cdn.test/papers/scaling.pdf",
		RichContent:   "<p>Abstract</p>",
	})
	if err != nil {
		return err
	}
	f.record = record
	return nil
}

func (f *fixture) assetServiceIsUnreachable() error {
	f.assetStore.DeleteErr = errors.New("cdn unreachable")
	return nil
}

func (f *fixture) editorDeletesRecord() error {
	if f.record == nil {
		return errors.New("no record published yet")
	}
	resp, err := f.content.Delete(context.Background(), f.record.Kind, f.record.ID)
	if err != nil {
		return err
	}
	f.deleteResp = resp
	return nil
}

func (f *fixture) recordNoLongerExists() error {
	_, err := f.content.Get(context.Background(), f.record.Kind, f.record.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("expected record gone, got %v", err)
	}
	return nil
}

func (f *fixture) bothUploadedFilesWereRemoved() error {
	if len(f.assetStore.Deleted) != 2 {
		return fmt.Errorf("expected 2 deleted assets, got %v", f.assetStore.Deleted)
	}
	return nil
}

func (f *fixture) deleteResponseReportsFailedCleanups(count int) error {
	if f.deleteResp == nil {
		return errors.New("no delete response")
	}
	if f.deleteResp.Cleanup.Failed != count {
		return fmt.Errorf("expected %d failed cleanups, got %d", count, f.deleteResp.Cleanup.Failed)
	}
	return nil
}

func (f *fixture) publishedSignalInDomain(domainName string) error {
	record, err := f.content.Create(context.Background(), driving.CreateContentRequest{
		Kind:         domain.KindSignal,
		TemplateType: domain.TemplateDocument,
		Heading:      "Lab announces new model",
		Domain:       f.domainIDs[domainName],
		Date:         "2026-08-10",
	})
	if err != nil {
		return err
	}
	f.record = record
	return nil
}

func (f *fixture) publishedSignalInDomainTagged(domainName, tagName string) error {
	record, err := f.content.Create(context.Background(), driving.CreateContentRequest{
		Kind:         domain.KindSignal,
		TemplateType: domain.TemplateDocument,
		Heading:      "Lab announces new model",
		Domain:       f.domainIDs[domainName],
		Tags:         []string{f.tagIDs[tagName]},
		Date:         "2026-08-10",
	})
	if err != nil {
		return err
	}
	f.record = record
	return nil
}

func (f *fixture) adminSetsHeadingFontWeight(weight string) error {
	current, err := f.typography.Get(context.Background())
	if err != nil {
		return err
	}
	heading := current.Heading1
	heading.FontWeight = weight
	_, err = f.typography.Update(context.Background(), driving.UpdateTypographyRequest{
		Heading1: &heading,
	})
	return err
}

func (f *fixture) renderingStylesHeadingWithWeight(weight string) error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}
	for _, unit := range rendered.Units {
		if unit.Kind == domain.UnitHeading {
			if unit.Style == nil || unit.Style.FontWeight != weight {
				return fmt.Errorf("expected heading weight %q, got %+v", weight, unit.Style)
			}
			return nil
		}
	}
	return errors.New("no heading unit rendered")
}

func (f *fixture) tagIsDeleted(name string) error {
	return f.taxonomy.DeleteTag(context.Background(), f.tagIDs[name])
}

func (f *fixture) renderedRecordCarriesNoTagBadge() error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}
	for _, unit := range rendered.Units {
		if unit.Kind == domain.UnitTagBadge {
			return fmt.Errorf("unexpected tag badge %q", unit.Text)
		}
	}
	return nil
}

func (f *fixture) renderedRecordStillHasHeading() error {
	rendered, err := f.renderRecord()
	if err != nil {
		return err
	}
	for _, unit := range rendered.Units {
		if unit.Kind == domain.UnitHeading {
			return nil
		}
	}
	return errors.New("no heading unit rendered")
}

func (f *fixture) adminLogsInWithPassword(password string) error {
	f.loginResp, f.loginErr = f.auth.Authenticate(context.Background(), domain.LoginRequest{
		Password: password,
	})
	return nil
}

func (f *fixture) sessionTokenIsAccepted() error {
	if f.loginErr != nil {
		return fmt.Errorf("login failed: %v", f.loginErr)
	}
	_, err := f.auth.ValidateToken(context.Background(), f.loginResp.Token)
	return err
}

func (f *fixture) adminLogsOut() error {
	if f.loginResp == nil {
		return errors.New("not logged in")
	}
	return f.auth.Logout(context.Background(), f.loginResp.Token)
}

func (f *fixture) sessionTokenIsRejected() error {
	_, err := f.auth.ValidateToken(context.Background(), f.loginResp.Token)
	if err == nil {
		return errors.New("expected token rejected after logout")
	}
	return nil
}

func (f *fixture) loginIsRejected() error {
	if !errors.Is(f.loginErr, domain.ErrInvalidCredentials) {
		return fmt.Errorf("expected ErrInvalidCredentials, got %v", f.loginErr)
	}
	return nil
}

func InitializeScenario(sc *godog.ScenarioContext) {
	f := &fixture{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, f.reset()
	})

	sc.Step(`^a domain named "([^"]*)" exists$`, f.aDomainNamedExists)
	sc.Step(`^a tag named "([^"]*)" exists$`, f.aTagNamedExists)
	sc.Step(`^the editor publishes a signal in domain "([^"]*)" tagged "([^"]*)" with reversed text blocks "([^"]*)" and "([^"]*)"$`, f.editorPublishesSignalWithReversedBlocks)
	sc.Step(`^the rendered body shows "([^"]*)" before "([^"]*)"$`, f.renderedBodyShowsBefore)
	sc.Step(`^the rendered record carries a domain badge "([^"]*)"$`, f.renderedRecordCarriesDomainBadge)
	sc.Step(`^the rendered record carries a tag badge "([^"]*)"$`, f.renderedRecordCarriesTagBadge)
	sc.Step(`^a published research paper with an uploaded image and whitepaper$`, f.publishedResearchPaperWithAssets)
	sc.Step(`^the asset service is unreachable$`, f.assetServiceIsUnreachable)
	sc.Step(`^the editor deletes the record$`, f.editorDeletesRecord)
	sc.Step(`^the record no longer exists$`, f.recordNoLongerExists)
	sc.Step(`^both uploaded files were removed$`, f.bothUploadedFilesWereRemoved)
	sc.Step(`^the delete response reports (\d+) failed cleanups$`, f.deleteResponseReportsFailedCleanups)
	sc.Step(`^a published signal in domain "([^"]*)"$`, f.publishedSignalInDomain)
	sc.Step(`^a published signal in domain "([^"]*)" tagged "([^"]*)"$`, f.publishedSignalInDomainTagged)
	sc.Step(`^the admin sets the heading font weight to "([^"]*)"$`, f.adminSetsHeadingFontWeight)
	sc.Step(`^rendering the record styles the heading with weight "([^"]*)"$`, f.renderingStylesHeadingWithWeight)
	sc.Step(`^the tag "([^"]*)" is deleted$`, f.tagIsDeleted)
	sc.Step(`^the rendered record carries no tag badge$`, f.renderedRecordCarriesNoTagBadge)
	sc.Step(`^the rendered record still has a heading$`, f.renderedRecordStillHasHeading)
	sc.Step(`^the admin logs in with password "([^"]*)"$`, f.adminLogsInWithPassword)
	sc.Step(`^the session token is accepted$`, f.sessionTokenIsAccepted)
	sc.Step(`^the admin logs out$`, f.adminLogsOut)
	sc.Step(`^the session token is rejected$`, f.sessionTokenIsRejected)
	sc.Step(`^the login is rejected$`, f.loginIsRejected)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("failed to run feature suite")
	}
}
