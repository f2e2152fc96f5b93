package device_test

import (
	"testing"

	"github.com/npillmayer/docview/css"
	"github.com/npillmayer/docview/device"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestReferenceDevice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.device")
	defer teardown()
	//
	dev := device.NewReferenceDevice(0, 0)
	assert.Equal(t, 72.0, dev.DPI())
	assert.Equal(t, css.Pt(12), dev.NamedFontSize("medium"))
	assert.Equal(t, css.Pt(24), dev.NamedFontSize("xx-large"))
	assert.InDelta(t, 24.0, dev.DimensionToPt(css.Dimen(2, css.EM), 12), 0.001)
	hires := device.NewReferenceDevice(144, 12)
	assert.InDelta(t, 20.0, hires.DimensionToDevice(css.Pt(10), 12), 0.001)
}

func TestReferenceFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "docview.device")
	defer teardown()
	//
	dev := device.NewReferenceDevice(72, 12)
	f := dev.Font([]string{"serif"}, 10, "normal", "normal")
	assert.InDelta(t, 8.0, f.Ascent(), 0.001)
	assert.InDelta(t, 2.0, f.Descent(), 0.001)
	assert.InDelta(t, 17.5, f.TextWidth("ab c"), 0.001) // 3 glyphs × 5pt + space 2.5pt
	bold := dev.Font([]string{"serif"}, 10, "normal", "bold")
	assert.Greater(t, bold.TextWidth("abc"), f.TextWidth("abc"))
	mono := dev.Font([]string{"courier", "monospace"}, 10, "normal", "normal")
	assert.InDelta(t, 24.0, mono.TextWidth("ab c"), 0.001)
}
