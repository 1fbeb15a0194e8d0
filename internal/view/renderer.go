// Package view renders the dashboard HTML fragments and pages.
package view

import (
	"html/template"
	"strings"

	"watchdesk/internal/domain/entity"
	"watchdesk/internal/usecase"

	"github.com/pkg/errors"
)

// Empty-state messages per tab.
const (
	emptyAll          = "No emergency requests received yet"
	emptyPending      = "No pending cases"
	emptySolved       = "No solved cases"
	emptyDeviceAlerts = "No device alerts received yet"
)

// Renderer renders snapshots into the dashboard markup. It is stateless and
// safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

type caseCardsData struct {
	Cards []entity.CaseView
	Empty string
}

type alertCardsData struct {
	Cards []entity.AlertView
	Empty string
}

// RenderTab renders the card list for the named tab.
func (r *Renderer) RenderTab(tab string, snap usecase.Snapshot) (string, error) {
	if !usecase.ValidTab(tab) {
		return "", errors.Errorf("unknown tab %q", tab)
	}

	var buf strings.Builder

	if tab == usecase.TabDeviceAlerts {
		data := alertCardsData{Empty: emptyDeviceAlerts}
		for _, a := range snap.Alerts {
			if a.Resolved() {
				continue
			}
			data.Cards = append(data.Cards, a.View())
		}

		if err := alertCardsTemplate.Execute(&buf, data); err != nil {
			return "", errors.Wrap(err, "failed to render device alert cards")
		}

		return buf.String(), nil
	}

	data := caseCardsData{Cards: tabCards(tab, snap)}
	switch tab {
	case usecase.TabPending:
		data.Empty = emptyPending
	case usecase.TabSolved:
		data.Empty = emptySolved
	default:
		data.Empty = emptyAll
	}

	if err := caseCardsTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render case cards")
	}

	return buf.String(), nil
}

// tabCards selects and projects the records shown on a case tab. The solved
// tab also carries resolved device alerts, rendered through the case card
// projection.
func tabCards(tab string, snap usecase.Snapshot) []entity.CaseView {
	var cards []entity.CaseView

	switch tab {
	case usecase.TabPending:
		for _, c := range snap.Cases {
			if !c.Resolved() {
				cards = append(cards, c.View())
			}
		}
	case usecase.TabSolved:
		for _, c := range snap.Cases {
			if c.Resolved() {
				cards = append(cards, c.View())
			}
		}
		for _, a := range snap.Alerts {
			if a.Resolved() {
				cards = append(cards, entity.CaseViewOf(a.ID, a.Raw))
			}
		}
	default:
		for _, c := range snap.Cases {
			cards = append(cards, c.View())
		}
	}

	return cards
}

// RenderStats renders the stat cards fragment.
func (r *Renderer) RenderStats(stats entity.Stats) (string, error) {
	var buf strings.Builder
	if err := statsTemplate.Execute(&buf, stats); err != nil {
		return "", errors.Wrap(err, "failed to render stats")
	}

	return buf.String(), nil
}

// RenderCaseModal renders the case detail modal body.
func (r *Renderer) RenderCaseModal(c entity.Case) (string, error) {
	var buf strings.Builder
	if err := caseModalTemplate.Execute(&buf, c.Detail()); err != nil {
		return "", errors.Wrap(err, "failed to render case modal")
	}

	return buf.String(), nil
}

type alertModalData struct {
	View    entity.AlertView
	RawJSON string
}

// RenderAlertModal renders the device alert detail modal body, including the
// raw record dump.
func (r *Renderer) RenderAlertModal(a entity.DeviceAlert) (string, error) {
	var buf strings.Builder
	if err := alertModalTemplate.Execute(&buf, alertModalData{View: a.View(), RawJSON: a.RawJSON()}); err != nil {
		return "", errors.Wrap(err, "failed to render alert modal")
	}

	return buf.String(), nil
}

type pageData struct {
	Station   string
	Degraded  bool
	Stats     entity.Stats
	StatsHTML template.HTML
	TabHTML   template.HTML
}

// RenderPage renders the full dashboard page with the all-cases tab active.
func (r *Renderer) RenderPage(station string, snap usecase.Snapshot) (string, error) {
	statsHTML, err := r.RenderStats(snap.Stats())
	if err != nil {
		return "", err
	}

	tabHTML, err := r.RenderTab(usecase.TabAll, snap)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	err = pageTemplate.Execute(&buf, pageData{
		Station:   station,
		Degraded:  snap.Degraded,
		Stats:     snap.Stats(),
		StatsHTML: template.HTML(statsHTML),
		TabHTML:   template.HTML(tabHTML),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to render dashboard page")
	}

	return buf.String(), nil
}

type loginData struct {
	Error string
}

// RenderLogin renders the login page, optionally with an error banner.
func (r *Renderer) RenderLogin(errorMessage string) (string, error) {
	var buf strings.Builder
	if err := loginTemplate.Execute(&buf, loginData{Error: errorMessage}); err != nil {
		return "", errors.Wrap(err, "failed to render login page")
	}

	return buf.String(), nil
}
