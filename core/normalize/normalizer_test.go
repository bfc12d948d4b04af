package normalize

import (
	"errors"
	"testing"

	"github.com/gaurav-prasanna/catalogpipe/core"
	"github.com/gaurav-prasanna/catalogpipe/core/extract"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextNormalizer() *ProductNormalizer {
	return New(extract.New(), BodyText, zerolog.Nop())
}

func TestParseBodyFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    BodyFormat
		wantErr bool
	}{
		{"", BodyText, false},
		{"text", BodyText, false},
		{"markdown", BodyMarkdown, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		got, err := ParseBodyFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalize_Description(t *testing.T) {
	n := newTextNormalizer()

	got, err := n.Normalize(core.Product{Description: "<p>Hello <b>World</b></p>"})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", got.ParsedDescription)

	got, err = n.Normalize(core.Product{})
	require.NoError(t, err)
	assert.Equal(t, "", got.ParsedDescription)
}

func TestNormalize_WithoutOriginalData(t *testing.T) {
	n := newTextNormalizer()

	got, err := n.Normalize(core.Product{Handle: "plain"})
	require.NoError(t, err)
	assert.Nil(t, got.OriginalData)

	got, err = n.Normalize(core.Product{Handle: "empty", OriginalData: &core.OriginalData{}})
	require.NoError(t, err)
	require.NotNil(t, got.OriginalData)
	assert.Nil(t, got.OriginalData.TechSpecsLinks)
	assert.Empty(t, got.OriginalData.FeaturesText)
}

func TestNormalize_OriginalData(t *testing.T) {
	n := newTextNormalizer()

	in := core.Product{
		Code: "W-100",
		OriginalData: &core.OriginalData{
			TechSpecs: `<div>Color: Red</div><div>Size: Large</div>` +
				`<ul><li>Rust proof</li><li> Dishwasher safe </li></ul>` +
				`<a href="/docs/w100.pdf">Datasheet</a><a>anchor</a>`,
			Features:     "<p> Sturdy <b>steel</b> frame </p>",
			ExtendedInfo: "<div>Ships in 2 days</div>",
			Keywords:     "widget, steel",
		},
	}

	got, err := n.Normalize(in)
	require.NoError(t, err)

	od := got.OriginalData
	require.NotNil(t, od)
	assert.Equal(t, []string{"/docs/w100.pdf"}, od.TechSpecsLinks)
	assert.Equal(t, []string{"Rust proof", "Dishwasher safe"}, od.TechSpecsList)
	assert.Equal(t, []string{"Color: Red", "Size: Large"}, od.TechSpecsDivs)
	assert.Equal(t, "Sturdysteelframe", od.FeaturesText)
	assert.Equal(t, "Ships in 2 days", od.ExtendedInfoText)
	assert.Equal(t, "widget, steel", od.Keywords)

	// The input record is left untouched.
	assert.Nil(t, in.OriginalData.TechSpecsLinks)
	assert.Empty(t, in.OriginalData.FeaturesText)
}

func TestNormalize_InlineMarkupJoinsTrimmedNodes(t *testing.T) {
	n := newTextNormalizer()

	got, err := n.Normalize(core.Product{OriginalData: &core.OriginalData{
		TechSpecs: `<ul><li>Two <b>bold</b></li></ul><div>Weight: 5 <b>lbs</b></div>`,
		Features:  "<p>Line one</p>\n<p>Line two</p>",
	}})
	require.NoError(t, err)

	od := got.OriginalData
	assert.Equal(t, []string{"Twobold"}, od.TechSpecsList)
	assert.Equal(t, []string{"Weight: 5lbs"}, od.TechSpecsDivs)
	assert.Equal(t, "Line oneLine two", od.FeaturesText)
}

func TestNormalize_OnlySomeFields(t *testing.T) {
	n := newTextNormalizer()

	got, err := n.Normalize(core.Product{OriginalData: &core.OriginalData{Features: "<b>Fast</b>"}})
	require.NoError(t, err)
	assert.Equal(t, "Fast", got.OriginalData.FeaturesText)
	assert.Nil(t, got.OriginalData.TechSpecsLinks)
	assert.Nil(t, got.OriginalData.TechSpecsDivs)
	assert.Empty(t, got.OriginalData.ExtendedInfoText)
}

func TestNormalize_TechSpecsWithoutMatches(t *testing.T) {
	n := newTextNormalizer()

	got, err := n.Normalize(core.Product{OriginalData: &core.OriginalData{TechSpecs: "<p>nothing structured</p>"}})
	require.NoError(t, err)
	assert.NotNil(t, got.OriginalData.TechSpecsLinks)
	assert.Empty(t, got.OriginalData.TechSpecsLinks)
	assert.Empty(t, got.OriginalData.TechSpecsList)
	assert.Empty(t, got.OriginalData.TechSpecsDivs)
}

func TestNormalize_Markdown(t *testing.T) {
	n := New(extract.New(), BodyMarkdown, zerolog.Nop())

	got, err := n.Normalize(core.Product{Description: "<p>Hello <b>World</b></p>"})
	require.NoError(t, err)
	assert.Contains(t, got.ParsedDescription, "**World**")

	got, err = n.Normalize(core.Product{})
	require.NoError(t, err)
	assert.Empty(t, got.ParsedDescription)
}

type failingExtractor struct{}

func (failingExtractor) Text(string) (string, error)        { return "", errors.New("boom") }
func (failingExtractor) TrimmedText(string) (string, error) { return "", errors.New("boom") }
func (failingExtractor) TechSpecs(string) (core.TechSpecs, error) {
	return core.TechSpecs{}, errors.New("boom")
}

func TestNormalize_ExtractorFailuresDoNotFailRecord(t *testing.T) {
	n := New(failingExtractor{}, BodyText, zerolog.Nop())

	got, err := n.Normalize(core.Product{
		Description: "<p>x</p>",
		OriginalData: &core.OriginalData{
			TechSpecs:    "<div>a: b</div>",
			Features:     "<p>f</p>",
			ExtendedInfo: "<p>e</p>",
		},
	})
	require.NoError(t, err)
	assert.Empty(t, got.ParsedDescription)
	assert.Nil(t, got.OriginalData.TechSpecsDivs)
	assert.Empty(t, got.OriginalData.FeaturesText)
	assert.Empty(t, got.OriginalData.ExtendedInfoText)
}

func TestNormalizeAll_PreservesOrderAndLength(t *testing.T) {
	n := newTextNormalizer()

	in := []core.Product{
		{Handle: "a", Description: "<i>first</i>"},
		{Handle: "b"},
		{Handle: "c", Description: "third", OptionIDs: []string{"1"}},
	}
	got, err := n.NormalizeAll(in)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Handle)
	assert.Equal(t, "first", got[0].ParsedDescription)
	assert.Equal(t, "b", got[1].Handle)
	assert.Equal(t, "c", got[2].Handle)
	assert.Equal(t, "third", got[2].ParsedDescription)
	assert.Equal(t, []string{"1"}, got[2].OptionIDs)

	got, err = n.NormalizeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
