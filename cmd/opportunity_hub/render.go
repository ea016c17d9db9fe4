package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/opportunity-hub/internal/filter"
	"github.com/jonathan/opportunity-hub/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderOpportunity writes one listing card.
func renderOpportunity(w io.Writer, o types.Opportunity, saved bool, now time.Time) {
	title := titleStyle.Render(o.Title)
	if saved {
		title += " " + savedStyle.Render("★ saved")
	}
	fmt.Fprintln(w, title)

	meta := []string{o.Organization, string(o.Type), string(o.Category), string(o.Level)}
	if o.Location != "" {
		meta = append(meta, o.Location)
	}
	fmt.Fprintln(w, mutedStyle.Render(strings.Join(meta, " · ")))

	deadline := o.Deadline
	if o.Expired(now) {
		deadline += " " + warnStyle.Render("(closed)")
	}
	pay := "Unpaid"
	if o.IsPaid {
		pay = "Paid"
	}
	line := fmt.Sprintf("%s %s   %s", labelStyle.Render("Deadline:"), valueStyle.Render(deadline), valueStyle.Render(pay))
	if o.IsVerified {
		line += "   " + valueStyle.Render("✓ verified")
	}
	fmt.Fprintln(w, line)

	if o.Description != "" {
		fmt.Fprintln(w, o.Description)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("ID:"), o.ID)
	fmt.Fprintln(w, mutedStyle.Render(o.URL))
	fmt.Fprintln(w)
}

// renderList writes the header counts followed by every visible card.
func renderList(w io.Writer, visible []types.Opportunity, total int, saved types.SavedSet, now time.Time) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Showing %d of %d opportunities", len(visible), total)))
	if len(visible) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No opportunities match the current filters."))
		return
	}
	for _, o := range visible {
		renderOpportunity(w, o, saved.Has(o.ID), now)
	}
}

// renderStats writes the collection summary.
func renderStats(w io.Writer, s filter.Stats) {
	fmt.Fprintf(w, "%s %d   %s %d   %s %d\n",
		labelStyle.Render("Total:"), s.Total,
		labelStyle.Render("Paid:"), s.Paid,
		labelStyle.Render("Verified:"), s.Verified,
	)
	for _, c := range s.Categories {
		fmt.Fprintf(w, "  %s %d\n", valueStyle.Render(string(c.Category)+":"), c.Count)
	}
}

// renderOptions writes one labelled option list.
func renderOptions(w io.Writer, label string, options []string) {
	fmt.Fprintln(w, labelStyle.Render(label))
	for _, o := range options {
		fmt.Fprintf(w, "  %s\n", valueStyle.Render(o))
	}
}
