package htmlview

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/bellroy/infinite-gallery/gallery"
)

// Event kinds the strip binds when dragging is enabled. Pointer-up,
// pointer-leave, and touch-cancel all end the gesture identically.
const (
	EventDragStart = "dragstart"
	EventDragAt    = "dragat"
	EventDragEnd   = "dragend"
)

// ErrNoCoordinate reports a pointer payload with no extractable X
// coordinate. Hosts must ignore the event: no message, no state change.
var ErrNoCoordinate = errors.New("pointer event carries no x coordinate")

// gestureBindings maps browser events to the gallery gesture protocol. The
// host forwards each named browser event together with its payload to
// DecodePointerEvent.
func gestureBindings() []html.Attribute {
	return []html.Attribute{
		attribute("data-on-pointerdown", EventDragStart),
		attribute("data-on-touchstart", EventDragStart),
		attribute("data-on-pointermove", EventDragAt),
		attribute("data-on-touchmove", EventDragAt),
		attribute("data-on-pointerup", EventDragEnd),
		attribute("data-on-pointerleave", EventDragEnd),
		attribute("data-on-touchcancel", EventDragEnd),
	}
}

// pointerPayload is the subset of a browser pointer/touch event the gallery
// reads: the primary pointer's clientX, or the first active touch point's.
type pointerPayload struct {
	ClientX *float64 `json:"clientX"`
	Touches []struct {
		ClientX *float64 `json:"clientX"`
	} `json:"touches"`
}

// DecodePointerEvent translates one forwarded browser event into a gallery
// message. kind is one of the data-on-* binding values emitted by View.
// Drag-start and drag-move events require a decodable X coordinate;
// drag-end carries no position and its payload is ignored.
func DecodePointerEvent(kind string, payload []byte) (gallery.Msg, error) {
	switch kind {
	case EventDragStart:
		x, err := pointerX(payload)
		if err != nil {
			return nil, err
		}
		return gallery.DragStartMsg{Pos: x}, nil
	case EventDragAt:
		x, err := pointerX(payload)
		if err != nil {
			return nil, err
		}
		return gallery.DragAtMsg{Pos: x}, nil
	case EventDragEnd:
		return gallery.DragEndMsg{}, nil
	default:
		return nil, fmt.Errorf("unknown gallery event kind %q", kind)
	}
}

func pointerX(payload []byte) (int, error) {
	var p pointerPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0, fmt.Errorf("decode pointer event: %w", err)
	}
	if p.ClientX != nil {
		return int(*p.ClientX), nil
	}
	if len(p.Touches) > 0 && p.Touches[0].ClientX != nil {
		return int(*p.Touches[0].ClientX), nil
	}
	return 0, ErrNoCoordinate
}
