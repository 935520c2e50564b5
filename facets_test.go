package textfmt_test

import (
	"testing"

	"github.com/bjaus/textfmt"
	"github.com/stretchr/testify/assert"
)

func TestFacetDefaults(t *testing.T) {
	t.Parallel()
	var fp textfmt.Facets
	assert.Equal(t, textfmt.UTF8, fp.OutputCharset())
	assert.Equal(t, textfmt.UTF8, fp.InputCharset(textfmt.TagString))
	assert.Equal(t, textfmt.FastWidth, fp.WidthCalculator(textfmt.TagString))
	assert.Equal(t, textfmt.SurrogateStrict, fp.SurrogatePolicy(textfmt.TagString))
	assert.Nil(t, fp.Notifier(textfmt.TagString))
	assert.Equal(t, ' ', fp.FillChar(textfmt.TagString))
	assert.Equal(t, textfmt.AlignRight, fp.DefaultAlign(textfmt.TagString))
}

func TestFacetsLaterWins(t *testing.T) {
	t.Parallel()
	fp := textfmt.Pack(textfmt.FillChar('a'), textfmt.FillChar('b'))
	assert.Equal(t, 'b', fp.FillChar(textfmt.TagNone))

	more := fp.With(textfmt.FillChar('c'))
	assert.Equal(t, 'c', more.FillChar(textfmt.TagNone))
	assert.Equal(t, 'b', fp.FillChar(textfmt.TagNone), "With must not change the receiver")
}

func TestFacetsNilValueIgnored(t *testing.T) {
	t.Parallel()
	fp := textfmt.Pack(textfmt.OutputCharset(textfmt.UTF16), textfmt.OutputCharset(nil))
	assert.Equal(t, textfmt.UTF16, fp.OutputCharset())
}

func TestConstrain(t *testing.T) {
	t.Parallel()
	fp := textfmt.Pack(
		textfmt.FillChar('.'),
		textfmt.Constrain(textfmt.ForTags(textfmt.TagInt, textfmt.TagBool),
			textfmt.FillChar('0'),
			textfmt.DefaultAlign(textfmt.AlignLeft),
		),
	)
	tests := map[string]struct {
		tag       textfmt.Tag
		wantFill  rune
		wantAlign textfmt.Alignment
	}{
		"int":    {tag: textfmt.TagInt, wantFill: '0', wantAlign: textfmt.AlignLeft},
		"bool":   {tag: textfmt.TagBool, wantFill: '0', wantAlign: textfmt.AlignLeft},
		"string": {tag: textfmt.TagString, wantFill: '.', wantAlign: textfmt.AlignRight},
		"none":   {tag: textfmt.TagNone, wantFill: '.', wantAlign: textfmt.AlignRight},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantFill, fp.FillChar(tt.tag))
			assert.Equal(t, tt.wantAlign, fp.DefaultAlign(tt.tag))
		})
	}
}

func TestConstrainNested(t *testing.T) {
	t.Parallel()
	fp := textfmt.Pack(
		textfmt.Constrain(textfmt.ForTags(textfmt.TagInt, textfmt.TagChar),
			textfmt.Constrain(textfmt.ForTags(textfmt.TagChar, textfmt.TagString),
				textfmt.FillChar('#'),
			),
		),
	)
	assert.Equal(t, '#', fp.FillChar(textfmt.TagChar))
	assert.Equal(t, ' ', fp.FillChar(textfmt.TagInt))
	assert.Equal(t, ' ', fp.FillChar(textfmt.TagString))
}

func TestConstrainedOverriddenByLater(t *testing.T) {
	t.Parallel()
	fp := textfmt.Pack(
		textfmt.Constrain(textfmt.ForTags(textfmt.TagInt), textfmt.FillChar('0')),
		textfmt.FillChar('-'),
	)
	assert.Equal(t, '-', fp.FillChar(textfmt.TagInt))
}

func TestGetUnknownCategory(t *testing.T) {
	t.Parallel()
	assert.Nil(t, textfmt.Facets{}.Get(textfmt.Category(99), textfmt.TagNone))
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "left", textfmt.AlignLeft.String())
	assert.Equal(t, "center", textfmt.AlignCenter.String())
	assert.Equal(t, "right", textfmt.AlignRight.String())
	assert.Equal(t, "Alignment(7)", textfmt.Alignment(7).String())
}
