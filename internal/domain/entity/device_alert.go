package entity

import (
	"encoding/json"
	"fmt"
)

// Display defaults for device-alert cards.
const (
	DefaultAlertType     = "Emergency"
	DefaultAlertDevice   = "Unknown Device"
	DefaultAlertMessage  = "No message provided"
	DefaultAlertLocation = "Unknown"
)

// DeviceAlert represents one child of the realtime "alerts" tree. ID is the
// child key; Raw is the child value as delivered.
type DeviceAlert struct {
	ID  string
	Raw map[string]any
}

// Resolved reports whether the alert has been marked resolved.
func (a DeviceAlert) Resolved() bool {
	return stringField(a.Raw, "status") == StatusResolved
}

// AlertView is the normalized display projection of a device-alert card.
type AlertView struct {
	ID       string `json:"id"`
	Device   string `json:"device"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Status   string `json:"status"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Resolved bool   `json:"resolved"`
}

// View derives the card projection, applying the documented fallback chains.
func (a DeviceAlert) View() AlertView {
	status := stringField(a.Raw, "status")
	if status == "" {
		status = StatusPending
	}

	return AlertView{
		ID:       a.ID,
		Device:   firstField(a.Raw, DefaultAlertDevice, "deviceId", "device"),
		Type:     firstField(a.Raw, DefaultAlertType, "type", "alertType"),
		Message:  firstField(a.Raw, DefaultAlertMessage, "message"),
		Status:   status,
		Location: a.location(),
		Time:     FormatTimestamp(rawField(a.Raw, "timestamp")),
		Resolved: status == StatusResolved,
	}
}

// location resolves the free-text location, then the coordinate pair with "0"
// standing in for a missing half, then "Unknown".
func (a DeviceAlert) location() string {
	if loc := stringField(a.Raw, "location"); loc != "" {
		return loc
	}

	lat := stringField(a.Raw, "latitude")
	lng := stringField(a.Raw, "longitude")
	// A zero coordinate counts as absent for the presence check, but fills
	// back in as "0" when the other half is set.
	if (lat == "" || lat == "0") && (lng == "" || lng == "0") {
		return DefaultAlertLocation
	}
	if lat == "" {
		lat = "0"
	}
	if lng == "" {
		lng = "0"
	}

	return fmt.Sprintf("%s, %s", lat, lng)
}

// RawJSON renders the alert record as an indented dump for the detail modal.
func (a DeviceAlert) RawJSON() string {
	dump := make(map[string]any, len(a.Raw)+1)
	for k, v := range a.Raw {
		dump[k] = v
	}
	dump["id"] = a.ID

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", dump)
	}

	return string(data)
}
