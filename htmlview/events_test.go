package htmlview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellroy/infinite-gallery/gallery"
)

func TestDecodeMousePointerEvents(t *testing.T) {
	msg, err := DecodePointerEvent(EventDragStart, []byte(`{"clientX": 312.7}`))
	require.NoError(t, err)
	assert.Equal(t, gallery.DragStartMsg{Pos: 312}, msg)

	msg, err = DecodePointerEvent(EventDragAt, []byte(`{"clientX": 120}`))
	require.NoError(t, err)
	assert.Equal(t, gallery.DragAtMsg{Pos: 120}, msg)
}

func TestDecodeTouchEventsUseFirstTouchPoint(t *testing.T) {
	payload := []byte(`{"touches": [{"clientX": 44}, {"clientX": 900}]}`)
	msg, err := DecodePointerEvent(EventDragStart, payload)
	require.NoError(t, err)
	assert.Equal(t, gallery.DragStartMsg{Pos: 44}, msg)
}

func TestDecodeDragEndIgnoresPayload(t *testing.T) {
	msg, err := DecodePointerEvent(EventDragEnd, nil)
	require.NoError(t, err)
	assert.Equal(t, gallery.DragEndMsg{}, msg)

	msg, err = DecodePointerEvent(EventDragEnd, []byte(`not even json`))
	require.NoError(t, err)
	assert.Equal(t, gallery.DragEndMsg{}, msg)
}

func TestDecodeMalformedPayloadsProduceNoMessage(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"empty object", []byte(`{}`)},
		{"touches without coordinates", []byte(`{"touches": [{}]}`)},
		{"empty touch list", []byte(`{"touches": []}`)},
		{"invalid json", []byte(`{"clientX":`)},
		{"nil payload", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := DecodePointerEvent(EventDragAt, tc.payload)
			assert.Error(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestDecodeUnknownKindFails(t *testing.T) {
	msg, err := DecodePointerEvent("wheel", []byte(`{"clientX": 1}`))
	assert.Error(t, err)
	assert.Nil(t, msg)
}
