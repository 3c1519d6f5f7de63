package htmlview

import (
	"fmt"
	"strings"

	"github.com/bellroy/infinite-gallery/gallery"
)

// Stylesheet emits the scoped rules for one gallery instance. Every rule is
// scoped under the configured element ID, which is why the ID must be unique
// per page, and every class carries the configured root prefix. The
// transition timing is bound to the active speed, so the sheet must be
// re-derived alongside View; the dragging modifier suspends the transition
// entirely so the strip follows the pointer without easing lag.
func Stylesheet(g gallery.Gallery) string {
	cfg := g.Config()
	scope := "#" + cfg.ID
	var b strings.Builder

	fmt.Fprintf(&b, "%s { position: relative; overflow: hidden; width: %s; height: %s; }\n",
		scope, g.Size().Width, g.Size().Height)

	fmt.Fprintf(&b, "%s .%s { position: absolute; top: 0; height: 100%%; display: grid; grid-template-columns: repeat(%d, 100%%); transition: left %dms ease; }\n",
		scope, prefixed(g, "slides"), g.Len()+2, g.TransitionSpeed().Milliseconds())

	fmt.Fprintf(&b, "%s .%s { width: 100%%; height: 100%%; overflow: hidden; user-select: none; }\n",
		scope, prefixed(g, "slide"))

	fmt.Fprintf(&b, "%s .%s.%s { transition: none; }\n",
		scope, prefixed(g, "slides"), prefixed(g, "dragging"))

	return b.String()
}
