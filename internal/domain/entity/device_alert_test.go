package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertView_Defaults(t *testing.T) {
	a := DeviceAlert{ID: "a1", Raw: map[string]any{}}

	view := a.View()
	assert.Equal(t, "a1", view.ID)
	assert.Equal(t, DefaultAlertDevice, view.Device)
	assert.Equal(t, DefaultAlertType, view.Type)
	assert.Equal(t, DefaultAlertMessage, view.Message)
	assert.Equal(t, StatusPending, view.Status)
	assert.Equal(t, DefaultAlertLocation, view.Location)
	assert.Equal(t, UnknownTime, view.Time)
	assert.False(t, view.Resolved)
}

func TestAlertView_DeviceFallbackChain(t *testing.T) {
	a := DeviceAlert{ID: "a1", Raw: map[string]any{"deviceId": "D1", "device": "legacy"}}
	assert.Equal(t, "D1", a.View().Device)

	a.Raw = map[string]any{"device": "legacy"}
	assert.Equal(t, "legacy", a.View().Device)
}

func TestAlertView_TypeFallbackChain(t *testing.T) {
	a := DeviceAlert{ID: "a1", Raw: map[string]any{"alertType": "fall"}}
	assert.Equal(t, "fall", a.View().Type)

	a.Raw = map[string]any{"type": "sos", "alertType": "fall"}
	assert.Equal(t, "sos", a.View().Type)
}

func TestAlertView_LocationComposition(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"free text wins", map[string]any{"location": "Sector 7", "latitude": 12.0}, "Sector 7"},
		{"both coordinates", map[string]any{"latitude": 12.5, "longitude": 77.25}, "12.5, 77.25"},
		{"latitude only", map[string]any{"latitude": 12.0}, "12, 0"},
		{"longitude only", map[string]any{"longitude": 77.0}, "0, 77"},
		{"neither", map[string]any{}, DefaultAlertLocation},
		{"zero pair is absent", map[string]any{"latitude": 0.0, "longitude": 0.0}, DefaultAlertLocation},
		{"zero latitude with longitude", map[string]any{"latitude": 0.0, "longitude": 77.0}, "0, 77"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DeviceAlert{ID: "a1", Raw: tt.raw}
			assert.Equal(t, tt.want, a.View().Location)
		})
	}
}

func TestAlertView_SecondsTimestampRenders(t *testing.T) {
	a := DeviceAlert{ID: "a1", Raw: map[string]any{
		"deviceId":  "D1",
		"timestamp": float64(1700000000),
		"status":    "pending",
	}}

	view := a.View()
	assert.NotEqual(t, UnknownTime, view.Time)
	assert.Equal(t, FormatTimestamp(float64(1700000000)), view.Time)
}

func TestAlertRawJSON_IncludesID(t *testing.T) {
	a := DeviceAlert{ID: "a1", Raw: map[string]any{"deviceId": "D1"}}

	dump := a.RawJSON()
	assert.Contains(t, dump, `"id": "a1"`)
	assert.Contains(t, dump, `"deviceId": "D1"`)
}
