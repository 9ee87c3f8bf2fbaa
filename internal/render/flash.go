// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// flashCookie carries a pending flash across the post-redirect-get
// cycle. Scoped to /admin; public pages are cached and never flash.
const flashCookie = "cp_flash"

// SetFlash queues a one-shot notification for the next full admin page
// render. The flash rides a short-lived cookie so it survives the
// redirect without touching the session store.
func SetFlash(w http.ResponseWriter, f Flash) {
	value := base64.RawURLEncoding.EncodeToString([]byte(f.Type + "|" + f.Message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/admin",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads and clears the pending flash. A missing or mangled
// cookie yields no flashes.
func takeFlash(w http.ResponseWriter, r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	typ, msg, ok := strings.Cut(string(raw), "|")
	if !ok || msg == "" {
		return nil
	}
	return []Flash{{Type: typ, Message: msg}}
}
