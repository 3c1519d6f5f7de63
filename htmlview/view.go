package htmlview

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bellroy/infinite-gallery/gallery"
)

// View derives the render tree for a gallery: a root container holding the
// slide strip with len+2 slots: a clone of the last slide, the real slides
// in order, and a clone of the first. The clones are what make the boundary
// transition animate smoothly before the unanimated correction snaps the
// logical index back in range.
//
// View is a pure function of the gallery value; the host maps the returned
// tree into its own rendering pipeline.
func View(g gallery.Gallery) *html.Node {
	cfg := g.Config()
	root := element("div",
		attribute("id", cfg.ID),
		attribute("class", cfg.RootClassName),
		attribute("style", fmt.Sprintf("width: %s; height: %s;", g.Size().Width, g.Size().Height)),
	)

	strip := element("div",
		attribute("class", stripClass(g)),
		attribute("style", stripStyle(g)),
	)
	if cfg.EnableDrag {
		strip.Attr = append(strip.Attr, gestureBindings()...)
	}

	slides := g.Slides()
	if n := len(slides); n > 0 {
		strip.AppendChild(slot(g, slides[n-1], true, g.CurrentIndex() == -1))
		for _, s := range slides {
			strip.AppendChild(slot(g, s, false, g.CurrentIndex() == s.Index))
		}
		strip.AppendChild(slot(g, slides[0], true, g.CurrentIndex() == n))
	}

	root.AppendChild(strip)
	return root
}

// Render serializes the render tree to HTML.
func Render(g gallery.Gallery) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, View(g)); err != nil {
		return "", fmt.Errorf("render gallery %q: %w", g.Config().ID, err)
	}
	return b.String(), nil
}

// stripClass returns the strip's class list, adding the dragging modifier
// while a gesture is active so the stylesheet can suspend the timed
// transition and keep drag tracking immediate.
func stripClass(g gallery.Gallery) string {
	cls := prefixed(g, "slides")
	if g.Drag().Dragging {
		cls += " " + prefixed(g, "dragging")
	}
	return cls
}

// stripStyle positions the strip: one full viewport width per logical step,
// offset by one extra step for the leading clone slot, plus the live pixel
// adjustment while a gesture is in flight.
func stripStyle(g gallery.Gallery) string {
	style := fmt.Sprintf("left: %d%%;", (g.CurrentIndex()+1)*-100)
	if d := g.Drag(); d.Dragging {
		style += fmt.Sprintf(" transform: translateX(%dpx);", d.CurrentX-d.StartX)
	}
	return style
}

func slot(g gallery.Gallery, s gallery.Slide, clone, active bool) *html.Node {
	cls := prefixed(g, "slide")
	if clone {
		cls += " " + prefixed(g, "clone")
	}
	if active {
		cls += " " + prefixed(g, "active")
	}
	node := element("div",
		attribute("class", cls),
		attribute("data-slide-index", fmt.Sprintf("%d", s.Index)),
	)
	node.AppendChild(contentNode(s.Content))
	return node
}

// contentNode embeds a caller-supplied content handle. Nodes are deep-cloned
// because the first and last slides each appear twice in the strip and an
// html.Node cannot have two parents. Anything that is not a node renders as
// escaped text.
func contentNode(content any) *html.Node {
	switch c := content.(type) {
	case *html.Node:
		return cloneNode(c)
	case string:
		return &html.Node{Type: html.TextNode, Data: c}
	case fmt.Stringer:
		return &html.Node{Type: html.TextNode, Data: c.String()}
	default:
		return &html.Node{Type: html.TextNode, Data: fmt.Sprint(c)}
	}
}

func cloneNode(n *html.Node) *html.Node {
	out := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out.AppendChild(cloneNode(c))
	}
	return out
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}
}

func attribute(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func prefixed(g gallery.Gallery, name string) string {
	return g.Config().RootClassName + "-" + name
}
