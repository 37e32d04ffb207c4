package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iiroan/folio/internal/ambient"
	"github.com/iiroan/folio/internal/config"
	"github.com/iiroan/folio/internal/content"
	"github.com/iiroan/folio/internal/exec"
	"github.com/iiroan/folio/internal/platform"
	"github.com/iiroan/folio/internal/storage"
)

// probeKey is written and removed again by the storage check.
const probeKey = "folio-doctor-probe"

// Config validates the folio configuration file.
func Config(_ context.Context, configPath string) Result {
	result := Result{}
	name := filepath.Base(configPath)

	if _, err := os.Stat(configPath); err != nil {
		result.AddPending(name + " not found, using defaults")
		result.AddItem(StatusPending, name, "not found, using defaults")
		return result
	}

	loadedCfg, err := config.Load(configPath)
	if err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	if err := loadedCfg.Validate(); err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	result.AddItem(StatusSuccess, name, "")
	return result
}

// Storage opens the backend and round-trips a probe value through it.
func Storage(_ context.Context, kind, path string) Result {
	result := Result{}
	label := "storage (" + kind + ")"

	backend, err := storage.Open(kind, path)
	if err != nil {
		result.AddError(fmt.Sprintf("Storage: %v", err))
		result.AddItem(StatusError, label, err.Error())
		return result
	}
	defer backend.Close()

	if backend.Name() == storage.KindMemory {
		result.AddWarning("memory storage keeps preferences for one run only")
		result.AddItem(StatusWarning, label, "preferences are not kept between runs")
		return result
	}

	value := time.Now().UTC().Format(time.RFC3339Nano)
	if err := backend.Set(probeKey, value); err != nil {
		result.AddError(fmt.Sprintf("Storage: write failed: %v", err))
		result.AddItem(StatusError, label, "write failed: "+err.Error())
		return result
	}
	got, ok, err := backend.Get(probeKey)
	if delErr := backend.Delete(probeKey); delErr != nil && err == nil {
		err = delErr
	}
	if err != nil || !ok || got != value {
		msg := "read back a different value"
		if err != nil {
			msg = err.Error()
		}
		result.AddError("Storage: " + msg)
		result.AddItem(StatusError, label, msg)
		return result
	}
	result.AddItem(StatusSuccess, label, path)
	return result
}

// Content parses the content document, or the built-in one when path is empty.
func Content(_ context.Context, path string) Result {
	result := Result{}
	label := "content"
	if path == "" {
		label = "content (built-in)"
	}

	profile, err := content.Load(path)
	if err != nil {
		result.AddError(fmt.Sprintf("Content: %v", err))
		result.AddItem(StatusError, label, err.Error())
		return result
	}
	if len(profile.Projects) == 0 {
		result.AddWarning("content has no projects")
		result.AddItem(StatusWarning, label, "no projects")
		return result
	}
	result.AddItem(StatusSuccess, label, fmt.Sprintf("%s, %d projects", profile.Name, len(profile.Projects)))
	return result
}

// Detector is the part of ambient.Detector the ambient check needs.
type Detector interface {
	Detect() (dark bool, source ambient.Source)
}

// Ambient reports which signal a system appearance would follow.
func Ambient(_ context.Context, d Detector) Result {
	result := Result{}
	dark, source := d.Detect()
	scheme := "light"
	if dark {
		scheme = "dark"
	}
	if source == ambient.SourceDefault {
		result.AddPending("no colour scheme signal, system appearance assumes dark")
		result.AddItem(StatusPending, "ambient", "no signal, assuming "+scheme)
		return result
	}
	result.AddItem(StatusSuccess, "ambient", fmt.Sprintf("%s via %s", scheme, source))
	return result
}

// Opener checks that a browser opener exists on goos.
func Opener(_ context.Context, goos string) Result {
	result := Result{}
	name, _, err := platform.Opener(goos)
	if err != nil {
		result.AddPending(err.Error())
		result.AddItem(StatusPending, "browser opener", err.Error())
		return result
	}
	if !exec.CheckCommand(name) {
		result.AddWarning(name + " not installed, URLs are printed instead")
		result.AddItem(StatusWarning, "browser opener", name+" not installed")
		return result
	}
	result.AddItem(StatusSuccess, "browser opener", name)
	return result
}
