package view

import (
	"testing"

	"watchdesk/internal/domain/entity"
	"watchdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() usecase.Snapshot {
	return usecase.Snapshot{
		Cases: []entity.Case{
			{ID: "case-1", Raw: map[string]any{
				"userName":  "Asha Patil",
				"userPhone": "9876543210",
				"status":    "pending",
			}},
			{ID: "case-2", Raw: map[string]any{
				"userName":   "Ravi Kumar",
				"status":     "resolved",
				"resolvedBy": "ACP Rane",
			}},
		},
		Alerts: []entity.DeviceAlert{
			{ID: "alert-1", Raw: map[string]any{
				"deviceId": "tracker-7",
				"message":  "SOS pressed",
				"status":   "pending",
			}},
			{ID: "alert-2", Raw: map[string]any{
				"deviceId": "tracker-9",
				"status":   "resolved",
			}},
		},
	}
}

func TestRenderer_RenderTab_All(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderTab(usecase.TabAll, testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "Asha Patil")
	assert.Contains(t, html, "Ravi Kumar")
	assert.Contains(t, html, `data-case-id="case-1"`)
	assert.Contains(t, html, "Requires attention")
	assert.Contains(t, html, "Resolved by ACP Rane")
	// Device alerts never show on the case tabs.
	assert.NotContains(t, html, "tracker-7")
}

func TestRenderer_RenderTab_PendingFiltersResolved(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderTab(usecase.TabPending, testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "Asha Patil")
	assert.NotContains(t, html, "Ravi Kumar")
	assert.Contains(t, html, "Mark Handled")
}

func TestRenderer_RenderTab_SolvedIncludesResolvedAlerts(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderTab(usecase.TabSolved, testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "Ravi Kumar")
	assert.NotContains(t, html, "Asha Patil")

	// Resolved device alerts go through the case card projection, so the
	// card falls back to the case defaults.
	assert.Contains(t, html, `data-case-id="alert-2"`)
	assert.Contains(t, html, "Belapur")
	assert.Contains(t, html, "Device Alert")
}

func TestRenderer_RenderTab_DeviceAlertsFiltersResolved(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderTab(usecase.TabDeviceAlerts, testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "tracker-7")
	assert.Contains(t, html, "SOS pressed")
	assert.NotContains(t, html, "tracker-9")
}

func TestRenderer_RenderTab_EmptyStates(t *testing.T) {
	r := NewRenderer()
	empty := usecase.Snapshot{}

	tests := []struct {
		tab     string
		message string
	}{
		{usecase.TabAll, "No emergency requests received yet"},
		{usecase.TabPending, "No pending cases"},
		{usecase.TabSolved, "No solved cases"},
		{usecase.TabDeviceAlerts, "No device alerts received yet"},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			html, err := r.RenderTab(tt.tab, empty)
			require.NoError(t, err)
			assert.Contains(t, html, tt.message)
		})
	}
}

func TestRenderer_RenderTab_UnknownTab(t *testing.T) {
	r := NewRenderer()

	_, err := r.RenderTab("archive", testSnapshot())
	assert.Error(t, err)
}

func TestRenderer_RenderTab_EscapesUserContent(t *testing.T) {
	r := NewRenderer()
	snap := usecase.Snapshot{
		Cases: []entity.Case{
			{ID: "case-1", Raw: map[string]any{
				"userName": "<script>alert(1)</script>",
				"status":   "pending",
			}},
		},
	}

	html, err := r.RenderTab(usecase.TabAll, snap)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderer_RenderStats(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderStats(testSnapshot().Stats())
	require.NoError(t, err)

	// 2 cases + 2 alerts total; 1 pending case + both alerts pending by the
	// combined-view counting; 1 solved case.
	assert.Contains(t, html, `id="totalCases">4<`)
	assert.Contains(t, html, `id="pendingCases">3<`)
	assert.Contains(t, html, `id="solvedCases">1<`)
}

func TestRenderer_RenderCaseModal(t *testing.T) {
	r := NewRenderer()

	record := entity.Case{ID: "case-1", Raw: map[string]any{
		"userName": "Asha Patil",
		"status":   "pending",
	}}

	html, err := r.RenderCaseModal(record)
	require.NoError(t, err)

	assert.Contains(t, html, "Asha Patil")
	assert.Contains(t, html, "APPROVE")
	// Absent detail fields render as Unknown.
	assert.Contains(t, html, "Unknown")
}

func TestRenderer_RenderCaseModal_Resolved(t *testing.T) {
	r := NewRenderer()

	record := entity.Case{ID: "case-2", Raw: map[string]any{
		"status":     "resolved",
		"resolvedBy": "ACP Rane",
	}}

	html, err := r.RenderCaseModal(record)
	require.NoError(t, err)

	assert.Contains(t, html, "Resolved by ACP Rane")
	assert.NotContains(t, html, "APPROVE")
}

func TestRenderer_RenderAlertModal(t *testing.T) {
	r := NewRenderer()

	alert := entity.DeviceAlert{ID: "alert-1", Raw: map[string]any{
		"deviceId": "tracker-7",
		"message":  "SOS pressed",
		"status":   "pending",
	}}

	html, err := r.RenderAlertModal(alert)
	require.NoError(t, err)

	assert.Contains(t, html, "tracker-7")
	assert.Contains(t, html, "SOS pressed")
	assert.Contains(t, html, "MARK AS HANDLED")
	// Raw dump carries the record id.
	assert.Contains(t, html, `&#34;id&#34;: &#34;alert-1&#34;`)
}

func TestRenderer_RenderPage(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderPage("Belapur HQ", testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, html, "Belapur HQ")
	assert.Contains(t, html, "Asha Patil")
	assert.Contains(t, html, `id="allCount">2<`)
	assert.Contains(t, html, `id="deviceAlertsCount">2<`)
	assert.NotContains(t, html, "degradedBanner")
}

func TestRenderer_RenderPage_Degraded(t *testing.T) {
	r := NewRenderer()

	snap := testSnapshot()
	snap.Degraded = true

	html, err := r.RenderPage("Belapur HQ", snap)
	require.NoError(t, err)

	assert.Contains(t, html, "Live feed unavailable")
}

func TestRenderer_RenderingIsDeterministic(t *testing.T) {
	r := NewRenderer()
	snap := testSnapshot()

	for _, tab := range []string{usecase.TabAll, usecase.TabPending, usecase.TabSolved, usecase.TabDeviceAlerts} {
		first, err := r.RenderTab(tab, snap)
		require.NoError(t, err)
		second, err := r.RenderTab(tab, snap)
		require.NoError(t, err)
		assert.Equal(t, first, second, "tab %s", tab)
	}

	first, err := r.RenderStats(snap.Stats())
	require.NoError(t, err)
	second, err := r.RenderStats(snap.Stats())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderer_RenderLogin(t *testing.T) {
	r := NewRenderer()

	html, err := r.RenderLogin("")
	require.NoError(t, err)
	assert.Contains(t, html, "Station Login")
	assert.NotContains(t, html, `<p class="login-error">`)

	html, err = r.RenderLogin("Invalid station or password")
	require.NoError(t, err)
	assert.Contains(t, html, `<p class="login-error">Invalid station or password</p>`)
}
