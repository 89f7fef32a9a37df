package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wolfman30/mgagency-site/internal/catalog"
)

func assertSubsetOfCatalog(t *testing.T, f *Form) {
	t.Helper()
	for _, tag := range f.Draft().Services {
		assert.True(t, f.Catalog().Contains(tag), "service %q escaped the catalog", tag)
	}
}

func TestNewFormIsEmptyAndIdle(t *testing.T) {
	f := NewForm(nil)
	assert.Equal(t, StatusIdle, f.Status())
	assert.Equal(t, LeadDraft{Services: []string{}}, f.Draft())
	assert.Equal(t, catalog.Default().Tags(), f.Catalog().Tags())
}

func TestSetFieldReplacesValue(t *testing.T) {
	f := NewForm(catalog.Default())
	f.SetField(FieldName, "Asha")
	f.SetField(FieldEmail, "asha@example.com")
	f.SetField(FieldPhone, "5551234")
	f.SetField(FieldName, "Asha K")

	d := f.Draft()
	assert.Equal(t, "Asha K", d.Name)
	assert.Equal(t, "asha@example.com", d.Email)
	assert.Equal(t, "5551234", d.Phone)
}

func TestSetFieldDoesNotValidate(t *testing.T) {
	f := NewForm(catalog.Default())
	f.SetField(FieldEmail, "not-an-email")
	f.SetField(FieldPhone, "")
	assert.Equal(t, "not-an-email", f.Draft().Email)
}

func TestSetFieldTrimsWhitespace(t *testing.T) {
	f := NewForm(catalog.Default())
	f.SetField(FieldName, " Asha ")
	f.SetField(FieldEmail, "  asha@example.com  ")
	f.SetField(FieldPhone, "\t5551234\n")

	assert.Equal(t, LeadDraft{Name: "Asha", Email: "asha@example.com", Phone: "5551234", Services: []string{}}, f.Draft())
}

func TestToggleServiceAddsAndRemoves(t *testing.T) {
	f := NewForm(catalog.Default())
	f.ToggleService(catalog.WebsiteDesigning)
	f.ToggleService(catalog.SEOOptimization)
	assert.Equal(t, []string{catalog.WebsiteDesigning, catalog.SEOOptimization}, f.Draft().Services)
	assert.True(t, f.HasService(catalog.SEOOptimization))

	f.ToggleService(catalog.WebsiteDesigning)
	assert.Equal(t, []string{catalog.SEOOptimization}, f.Draft().Services)
	assert.False(t, f.HasService(catalog.WebsiteDesigning))
}

func TestToggleServiceEvenRepeatsRestoreState(t *testing.T) {
	for _, tag := range catalog.Default().Tags() {
		for _, repeats := range []int{2, 4, 6} {
			f := NewForm(catalog.Default())
			f.ToggleService(catalog.MobileAppDevelopment)
			before := f.Draft().Services

			for i := 0; i < repeats; i++ {
				f.ToggleService(tag)
			}
			assert.ElementsMatch(t, before, f.Draft().Services, "tag %q toggled %d times", tag, repeats)
		}
	}
}

func TestToggleServiceIgnoresTagsOutsideCatalog(t *testing.T) {
	f := NewForm(catalog.Default())
	f.ToggleService(catalog.LegacySupport)
	for _, tag := range []string{"Crypto Mining", "", "website designing", " Website Designing"} {
		f.ToggleService(tag)
		assertSubsetOfCatalog(t, f)
	}
	assert.Equal(t, []string{catalog.LegacySupport}, f.Draft().Services)
}

func TestToggleServiceHonoursDeploymentCatalog(t *testing.T) {
	f := NewForm(catalog.New("Branding"))
	f.ToggleService(catalog.WebsiteDesigning)
	f.ToggleService("Branding")
	assert.Equal(t, []string{"Branding"}, f.Draft().Services)
}

func TestDraftReturnsCopy(t *testing.T) {
	f := NewForm(catalog.Default())
	f.ToggleService(catalog.WebsiteDesigning)
	d := f.Draft()
	d.Services[0] = "tampered"
	assert.Equal(t, []string{catalog.WebsiteDesigning}, f.Draft().Services)
}

func TestResetAfterFailure(t *testing.T) {
	f := NewForm(catalog.Default())
	f.SetField(FieldName, "Asha")
	f.SetField(FieldEmail, "asha@example.com")
	f.ToggleService(catalog.WebsiteDesigning)
	f.setStatus(StatusFailed)

	f.Reset()

	assert.Equal(t, StatusIdle, f.Status())
	d := f.Draft()
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Email)
	assert.Empty(t, d.Phone)
	assert.Empty(t, d.Services)
}

func TestRestoreFormDropsUnknownServices(t *testing.T) {
	snap := Snapshot{
		Draft: LeadDraft{
			Name:     "Asha",
			Services: []string{catalog.SEOOptimization, "Retired Service", catalog.SEOOptimization},
		},
		Status: StatusFailed,
	}
	f := RestoreForm(catalog.Default(), snap)
	assert.Equal(t, "Asha", f.Draft().Name)
	assert.Equal(t, []string{catalog.SEOOptimization}, f.Draft().Services)
	assert.Equal(t, StatusFailed, f.Status())
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{"name": FieldName, "Email": FieldEmail, " phone ": FieldPhone} {
		got, err := ParseField(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
	_, err := ParseField("services")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStatusText(t *testing.T) {
	for _, s := range []Status{StatusIdle, StatusSending, StatusSucceeded, StatusFailed} {
		text, err := s.MarshalText()
		assert.NoError(t, err)

		var back Status
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
	var s Status
	assert.ErrorIs(t, s.UnmarshalText([]byte("queued")), ErrUnknownStatus)
	_, err := Status(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.False(t, StatusSending.Settled())
	assert.True(t, StatusFailed.Settled())
}
