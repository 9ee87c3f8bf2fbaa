// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// public_forms.go holds the three public form POST handlers. Responses
// are rendered directly and never cached: a failed submission re-renders
// the form with the visitor's input, a successful one shows a thank-you
// message.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"charitypress/internal/models"
	"charitypress/internal/render"
)

// renderForm renders a public form page bypassing the page cache.
func (p *Public) renderForm(w http.ResponseWriter, r *http.Request, name, title string, data map[string]any) {
	settings, err := p.stores.Settings.All(r.Context())
	if err != nil {
		settings = models.SiteSettings{}
	}
	html, err := p.renderer.PublicHTML(name, &render.PageData{
		Title:    title,
		Settings: settings,
		Data:     data,
	})
	if err != nil {
		slog.Error("form render failed", "form", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// DonateSubmit handles the donation inquiry form.
func (p *Public) DonateSubmit(w http.ResponseWriter, r *http.Request) {
	d := &models.DonationInquiry{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Phone:        optional(strings.TrimSpace(r.FormValue("phone"))),
		Email:        optional(strings.TrimSpace(r.FormValue("email"))),
		DonationType: models.DonationType(r.FormValue("donation_type")),
		Message:      optional(r.FormValue("message")),
	}

	errMsg := checkRules([]rule{
		{Label: "Name", Value: d.Name, Required: true, MaxLen: maxNameLen},
		{Label: "Phone", Value: deref(d.Phone), MaxLen: maxPhoneLen, Kind: "phone"},
		{Label: "Email", Value: deref(d.Email), MaxLen: maxEmailLen, Kind: "email"},
		{Label: "Donation type", Value: string(d.DonationType), Required: true,
			Choices: choiceStrings(models.DonationTypes)},
		{Label: "Message", Value: deref(d.Message), MaxLen: maxMessageLen},
	})
	if errMsg == "" && deref(d.Phone) == "" && deref(d.Email) == "" {
		errMsg = "Please provide a phone number or an email address."
	}

	if errMsg != "" {
		p.renderForm(w, r, "donate", "Donate", map[string]any{
			"Error": errMsg,
			"Item":  d,
		})
		return
	}

	if err := p.stores.Inbox.CreateDonation(r.Context(), d); err != nil {
		slog.Error("save donation inquiry failed", "error", err)
		p.renderForm(w, r, "donate", "Donate", map[string]any{
			"Error": "Something went wrong. Please try again.",
			"Item":  d,
		})
		return
	}

	p.renderForm(w, r, "donate", "Donate", map[string]any{"Success": true})
}

// VolunteerSubmit handles the volunteer application form. Phone and email
// are both required so the organization can reach applicants.
func (p *Public) VolunteerSubmit(w http.ResponseWriter, r *http.Request) {
	v := &models.VolunteerApplication{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Phone:        strings.TrimSpace(r.FormValue("phone")),
		Email:        strings.TrimSpace(r.FormValue("email")),
		Availability: optional(strings.TrimSpace(r.FormValue("availability"))),
		Message:      optional(r.FormValue("message")),
	}

	errMsg := checkRules([]rule{
		{Label: "Name", Value: v.Name, Required: true, MaxLen: maxNameLen},
		{Label: "Phone", Value: v.Phone, Required: true, MaxLen: maxPhoneLen, Kind: "phone"},
		{Label: "Email", Value: v.Email, Required: true, MaxLen: maxEmailLen, Kind: "email"},
		{Label: "Availability", Value: deref(v.Availability), MaxLen: maxNameLen},
		{Label: "Message", Value: deref(v.Message), MaxLen: maxMessageLen},
	})

	if errMsg != "" {
		p.renderForm(w, r, "volunteer", "Volunteer", map[string]any{
			"Error": errMsg,
			"Item":  v,
		})
		return
	}

	if err := p.stores.Inbox.CreateVolunteer(r.Context(), v); err != nil {
		slog.Error("save volunteer application failed", "error", err)
		p.renderForm(w, r, "volunteer", "Volunteer", map[string]any{
			"Error": "Something went wrong. Please try again.",
			"Item":  v,
		})
		return
	}

	p.renderForm(w, r, "volunteer", "Volunteer", map[string]any{"Success": true})
}

// ContactSubmit handles the contact form.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	m := &models.ContactMessage{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Subject: optional(strings.TrimSpace(r.FormValue("subject"))),
		Message: r.FormValue("message"),
	}

	errMsg := checkRules([]rule{
		{Label: "Name", Value: m.Name, Required: true, MaxLen: maxNameLen},
		{Label: "Email", Value: m.Email, Required: true, MaxLen: maxEmailLen, Kind: "email"},
		{Label: "Subject", Value: deref(m.Subject), MaxLen: maxTitleLen},
		{Label: "Message", Value: m.Message, Required: true, MaxLen: maxMessageLen},
	})

	if errMsg != "" {
		p.renderForm(w, r, "contact", "Contact", map[string]any{
			"Error": errMsg,
			"Item":  m,
		})
		return
	}

	if err := p.stores.Inbox.CreateContact(r.Context(), m); err != nil {
		slog.Error("save contact message failed", "error", err)
		p.renderForm(w, r, "contact", "Contact", map[string]any{
			"Error": "Something went wrong. Please try again.",
			"Item":  m,
		})
		return
	}

	p.renderForm(w, r, "contact", "Contact", map[string]any{"Success": true})
}
