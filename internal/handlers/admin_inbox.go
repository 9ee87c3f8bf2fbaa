// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_inbox.go holds the read-side handlers for the three public form
// inboxes. Submissions cannot be edited; admins read, export and delete.
package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"charitypress/internal/models"
	"charitypress/internal/render"
)

// --- Donation inquiries ---

// DonationsList renders the donation inquiry inbox, optionally filtered
// by donation type.
func (a *Admin) DonationsList(w http.ResponseWriter, r *http.Request) {
	donationType := models.DonationType(r.URL.Query().Get("type"))
	if donationType != "" && !models.ValidDonationType(donationType) {
		donationType = ""
	}

	inquiries, err := a.stores.Inbox.ListDonations(r.Context(), donationType)
	if err != nil {
		slog.Error("list donations failed", "error", err)
	}

	a.renderer.Page(w, r, "donations_list", &render.PageData{
		Title:   "Donation Inquiries",
		Section: "donations",
		Data: map[string]any{
			"Items":  inquiries,
			"Filter": string(donationType),
		},
	})
}

// DonationDelete removes a donation inquiry.
func (a *Admin) DonationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Inbox.DeleteDonation(r.Context(), id); err != nil {
		slog.Error("delete donation failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete inquiry.", "/admin/donations")
		return
	}

	a.invalidateAndAudit(r, "donation_inquiry", id, "delete")
	a.flashAndRedirect(w, r, "success", "Inquiry deleted.", "/admin/donations")
}

// DonationsExport streams the donation inbox as CSV.
func (a *Admin) DonationsExport(w http.ResponseWriter, r *http.Request) {
	inquiries, err := a.stores.Inbox.ListDonations(r.Context(), "")
	if err != nil {
		slog.Error("export donations failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	writeCSV(w, "donations", [][]string{{"name", "phone", "email", "type", "message", "created_at"}},
		func(cw *csv.Writer) error {
			for _, d := range inquiries {
				err := cw.Write([]string{
					d.Name, deref(d.Phone), deref(d.Email), string(d.DonationType),
					deref(d.Message), d.CreatedAt.Format(time.RFC3339),
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
}

// --- Volunteer applications ---

// VolunteersList renders the volunteer application inbox.
func (a *Admin) VolunteersList(w http.ResponseWriter, r *http.Request) {
	applications, err := a.stores.Inbox.ListVolunteers(r.Context())
	if err != nil {
		slog.Error("list volunteers failed", "error", err)
	}

	a.renderer.Page(w, r, "volunteers_list", &render.PageData{
		Title:   "Volunteer Applications",
		Section: "volunteers",
		Data:    map[string]any{"Items": applications},
	})
}

// VolunteerDelete removes a volunteer application.
func (a *Admin) VolunteerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Inbox.DeleteVolunteer(r.Context(), id); err != nil {
		slog.Error("delete volunteer failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete application.", "/admin/volunteers")
		return
	}

	a.invalidateAndAudit(r, "volunteer_application", id, "delete")
	a.flashAndRedirect(w, r, "success", "Application deleted.", "/admin/volunteers")
}

// VolunteersExport streams the volunteer inbox as CSV.
func (a *Admin) VolunteersExport(w http.ResponseWriter, r *http.Request) {
	applications, err := a.stores.Inbox.ListVolunteers(r.Context())
	if err != nil {
		slog.Error("export volunteers failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	writeCSV(w, "volunteers", [][]string{{"name", "phone", "email", "availability", "message", "created_at"}},
		func(cw *csv.Writer) error {
			for _, v := range applications {
				err := cw.Write([]string{
					v.Name, v.Phone, v.Email, deref(v.Availability),
					deref(v.Message), v.CreatedAt.Format(time.RFC3339),
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
}

// --- Contact messages ---

// ContactsList renders the contact message inbox.
func (a *Admin) ContactsList(w http.ResponseWriter, r *http.Request) {
	messages, err := a.stores.Inbox.ListContacts(r.Context())
	if err != nil {
		slog.Error("list contacts failed", "error", err)
	}

	a.renderer.Page(w, r, "contacts_list", &render.PageData{
		Title:   "Contact Messages",
		Section: "contacts",
		Data:    map[string]any{"Items": messages},
	})
}

// ContactShow renders one contact message and marks it read.
func (a *Admin) ContactShow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	m, err := a.stores.Inbox.FindContact(r.Context(), id)
	if err != nil {
		slog.Error("find contact failed", "error", err)
	}
	if m == nil {
		http.NotFound(w, r)
		return
	}

	if !m.IsRead {
		if err := a.stores.Inbox.MarkContactRead(r.Context(), id); err != nil {
			slog.Error("mark contact read failed", "error", err)
		}
	}

	a.renderer.Page(w, r, "contact_show", &render.PageData{
		Title:   "Contact Message",
		Section: "contacts",
		Data:    map[string]any{"Item": m},
	})
}

// ContactDelete removes a contact message.
func (a *Admin) ContactDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Inbox.DeleteContact(r.Context(), id); err != nil {
		slog.Error("delete contact failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete message.", "/admin/contacts")
		return
	}

	a.invalidateAndAudit(r, "contact_message", id, "delete")
	a.flashAndRedirect(w, r, "success", "Message deleted.", "/admin/contacts")
}

// ContactsExport streams the contact inbox as CSV.
func (a *Admin) ContactsExport(w http.ResponseWriter, r *http.Request) {
	messages, err := a.stores.Inbox.ListContacts(r.Context())
	if err != nil {
		slog.Error("export contacts failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	writeCSV(w, "contacts", [][]string{{"name", "email", "subject", "message", "read", "created_at"}},
		func(cw *csv.Writer) error {
			for _, m := range messages {
				err := cw.Write([]string{
					m.Name, m.Email, deref(m.Subject), m.Message,
					fmt.Sprintf("%t", m.IsRead), m.CreatedAt.Format(time.RFC3339),
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
}

// writeCSV sets download headers, writes the header rows, and hands the
// writer to fill for the data rows.
func writeCSV(w http.ResponseWriter, name string, headers [][]string, fill func(*csv.Writer) error) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	for _, h := range headers {
		if err := cw.Write(h); err != nil {
			slog.Error("csv header write failed", "error", err)
			return
		}
	}
	if err := fill(cw); err != nil {
		slog.Error("csv write failed", "error", err)
		return
	}
	cw.Flush()
}
