package htmlview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/bellroy/infinite-gallery/gallery"
)

func testGallery(t *testing.T, n int, mutate func(*gallery.Config)) gallery.Gallery {
	t.Helper()
	cfg := gallery.Config{
		RootClassName:   "gallery",
		ID:              "gallery-under-test",
		TransitionSpeed: 300 * time.Millisecond,
		SwipeOffset:     100,
		EnableDrag:      true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	contents := make([]any, n)
	for i := range contents {
		contents[i] = string(rune('a' + i))
	}
	return gallery.New(gallery.Size{Width: "640px", Height: "480px"}, cfg, contents)
}

func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, cls string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == cls {
			return true
		}
	}
	return false
}

func slots(t *testing.T, g gallery.Gallery) []*html.Node {
	t.Helper()
	return findAll(View(g), func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "gallery-slide")
	})
}

// ---------------------------------------------------------------------------
// Structure
// ---------------------------------------------------------------------------

func TestViewRendersLenPlusTwoSlots(t *testing.T) {
	g := testGallery(t, 5, nil)
	got := slots(t, g)
	require.Len(t, got, 7)

	// leading clone mirrors the last slide, trailing clone the first
	assert.True(t, hasClass(got[0], "gallery-clone"))
	assert.Equal(t, "4", attrVal(got[0], "data-slide-index"))
	assert.True(t, hasClass(got[6], "gallery-clone"))
	assert.Equal(t, "0", attrVal(got[6], "data-slide-index"))

	for i := 1; i <= 5; i++ {
		assert.False(t, hasClass(got[i], "gallery-clone"), "real slot %d marked clone", i)
	}
}

func TestViewEmptyGalleryHasNoSlots(t *testing.T) {
	g := testGallery(t, 0, nil)
	assert.Empty(t, slots(t, g))
}

func TestActiveSlotFollowsCurrentIndex(t *testing.T) {
	g := testGallery(t, 5, func(c *gallery.Config) { c.InitialSlide = 2 })
	got := slots(t, g)
	require.Len(t, got, 7)
	for i, n := range got {
		want := i == 3 // slot offset 1 for the leading clone
		assert.Equal(t, want, hasClass(n, "gallery-active"), "slot %d", i)
	}
}

func TestCloneSlotsStandInForSentinelIndices(t *testing.T) {
	g := testGallery(t, 5, func(c *gallery.Config) { c.InitialSlide = 4 })
	g, _ = gallery.Update(gallery.NextMsg{}, g) // index now 5, the trailing clone
	got := slots(t, g)
	require.Len(t, got, 7)
	assert.True(t, hasClass(got[6], "gallery-active"), "trailing clone should be active at index len")

	g = testGallery(t, 5, nil)
	g, _ = gallery.Update(gallery.PreviousMsg{}, g) // index now -1, the leading clone
	got = slots(t, g)
	assert.True(t, hasClass(got[0], "gallery-active"), "leading clone should be active at index -1")
}

func TestNodeContentIsClonedIntoBothSlots(t *testing.T) {
	content := &html.Node{Type: html.ElementNode, Data: "p"}
	content.AppendChild(&html.Node{Type: html.TextNode, Data: "first"})

	cfg := gallery.Config{RootClassName: "gallery", ID: "g", EnableDrag: true}
	g := gallery.New(gallery.Size{}, cfg, []any{content, "second"})

	rendered, err := Render(g)
	require.NoError(t, err)
	// "first" appears in its real slot and again in the trailing clone
	assert.Equal(t, 2, strings.Count(rendered, "<p>first</p>"))
}

func TestStringContentIsEscaped(t *testing.T) {
	cfg := gallery.Config{RootClassName: "gallery", ID: "g"}
	g := gallery.New(gallery.Size{}, cfg, []any{"<script>alert(1)</script>"})
	rendered, err := Render(g)
	require.NoError(t, err)
	assert.NotContains(t, rendered, "<script>")
	assert.Contains(t, rendered, "&lt;script&gt;")
}

// ---------------------------------------------------------------------------
// Positioning
// ---------------------------------------------------------------------------

func TestStripOffsetAccountsForLeadingClone(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "left: -100%;"},
		{2, "left: -300%;"},
		{4, "left: -500%;"},
		{-1, "left: 0%;"},
	}
	for _, tc := range cases {
		g := testGallery(t, 5, func(c *gallery.Config) { c.InitialSlide = tc.index })
		strip := findAll(View(g), func(n *html.Node) bool { return hasClass(n, "gallery-slides") })
		require.Len(t, strip, 1, "index %d", tc.index)
		assert.Contains(t, attrVal(strip[0], "style"), tc.want, "index %d", tc.index)
	}
}

func TestDragAppliesPixelTransformAndModifierClass(t *testing.T) {
	g := testGallery(t, 5, nil)
	g, _ = gallery.Update(gallery.DragStartMsg{Pos: 300}, g)
	g, _ = gallery.Update(gallery.DragAtMsg{Pos: 260}, g)

	strip := findAll(View(g), func(n *html.Node) bool { return hasClass(n, "gallery-slides") })
	require.Len(t, strip, 1)
	assert.True(t, hasClass(strip[0], "gallery-dragging"))
	assert.Contains(t, attrVal(strip[0], "style"), "translateX(-40px)")
}

func TestRestingStripHasNoTransform(t *testing.T) {
	g := testGallery(t, 5, nil)
	strip := findAll(View(g), func(n *html.Node) bool { return hasClass(n, "gallery-slides") })
	require.Len(t, strip, 1)
	assert.NotContains(t, attrVal(strip[0], "style"), "translateX")
	assert.False(t, hasClass(strip[0], "gallery-dragging"))
}

// ---------------------------------------------------------------------------
// Gesture wiring
// ---------------------------------------------------------------------------

func TestGestureBindingsAttachedOnlyWhenDragEnabled(t *testing.T) {
	g := testGallery(t, 3, nil)
	strip := findAll(View(g), func(n *html.Node) bool { return hasClass(n, "gallery-slides") })[0]
	assert.Equal(t, EventDragStart, attrVal(strip, "data-on-pointerdown"))
	assert.Equal(t, EventDragAt, attrVal(strip, "data-on-pointermove"))
	assert.Equal(t, EventDragEnd, attrVal(strip, "data-on-pointerup"))
	assert.Equal(t, EventDragEnd, attrVal(strip, "data-on-pointerleave"))
	assert.Equal(t, EventDragEnd, attrVal(strip, "data-on-touchcancel"))

	g = testGallery(t, 3, func(c *gallery.Config) { c.EnableDrag = false })
	strip = findAll(View(g), func(n *html.Node) bool { return hasClass(n, "gallery-slides") })[0]
	for _, a := range strip.Attr {
		assert.False(t, strings.HasPrefix(a.Key, "data-on-"), "binding %s attached with drag disabled", a.Key)
	}
}

// ---------------------------------------------------------------------------
// Stylesheet
// ---------------------------------------------------------------------------

func TestStylesheetIsScopedAndSized(t *testing.T) {
	g := testGallery(t, 5, nil)
	css := Stylesheet(g)
	assert.Contains(t, css, "#gallery-under-test ")
	assert.Contains(t, css, "repeat(7, 100%)")
	assert.Contains(t, css, "transition: left 300ms ease")
	assert.Contains(t, css, ".gallery-slides.gallery-dragging { transition: none; }")
}

func TestStylesheetTracksActiveSpeed(t *testing.T) {
	g := testGallery(t, 5, nil)
	g, _ = gallery.Update(gallery.SetTransitionSpeedMsg{Speed: 0}, g)
	assert.Contains(t, Stylesheet(g), "transition: left 0ms ease")
}
