package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/prefs"
)

type pageData struct {
	Snapshot    prefs.Snapshot
	Tags        prefs.Tags
	Page        content.Page
	Appearances []prefs.Appearance
	Displays    []prefs.DisplayMode
}

// preferencesUpdate is the PUT body. Missing fields keep their current value.
type preferencesUpdate struct {
	Appearance *string `json:"appearance"`
	Display    *string `json:"display"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(r)
	data := pageData{
		Snapshot:    snap,
		Tags:        prefs.ResolveTags(snap),
		Page:        s.profile.Select(snap.Display),
		Appearances: prefs.Appearances(),
		Displays:    prefs.DisplayModes(),
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html.tmpl", data); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.snapshot(r))
}

func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	defer r.Body.Close()

	var update preferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil && !errors.Is(err, io.EOF) {
		httpError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	if err := s.apply(update.Appearance, update.Display); err != nil {
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	}
	writeSnapshot(w, s.snapshot(r))
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	var appearance, display *string
	if v := r.PostForm.Get("appearance"); v != "" {
		appearance = &v
	}
	if v := r.PostForm.Get("display"); v != "" {
		display = &v
	}

	if err := s.apply(appearance, display); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// apply parses the supplied fields and sets them over the current
// preferences in one store update. Fields left nil keep their value. Either
// field failing to parse rejects the whole update.
func (s *Server) apply(appearance, display *string) error {
	var (
		a   prefs.Appearance
		d   prefs.DisplayMode
		err error
	)
	if appearance != nil {
		if a, err = prefs.ParseAppearance(*appearance); err != nil {
			return err
		}
	}
	if display != nil {
		if d, err = prefs.ParseDisplayMode(*display); err != nil {
			return err
		}
	}
	return s.store.Update(func(current prefs.Preferences) (prefs.Preferences, error) {
		if appearance != nil {
			current.Appearance = a
		}
		if display != nil {
			current.Display = d
		}
		return current, nil
	})
}

type snapshotResponse struct {
	prefs.Snapshot
	Tags []string `json:"tags"`
}

func writeSnapshot(w http.ResponseWriter, snap prefs.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snapshotResponse{
		Snapshot: snap,
		Tags:     prefs.ResolveTags(snap).List(),
	})
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
			"status":  code,
		},
	})
}
