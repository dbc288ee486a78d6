// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package preferences

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bugunapp/bugun-server/internal/device"
	"github.com/bugunapp/bugun-server/internal/devicestate"
)

type GetPreferencesInput struct{}

type PreferencesResponse struct {
	DarkMode bool   `json:"darkMode" doc:"Whether the dark theme is selected"`
	Locale   string `json:"locale,omitempty" doc:"Selected language code, empty for device default"`
}

type GetPreferencesOutput struct {
	Body PreferencesResponse
}

type UpdatePreferencesInput struct {
	Body struct {
		DarkMode bool   `json:"darkMode" doc:"Whether the dark theme is selected"`
		Locale   string `json:"locale,omitempty" doc:"Selected language code, empty for device default"`
	}
}

type UpdatePreferencesOutput struct {
	Body PreferencesResponse
}

func NewHandler(store *devicestate.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store *devicestate.Store
}

// GetPreferences returns the device's saved UI preferences, defaults
// when none have been stored yet.
func (h *Handler) GetPreferences(ctx context.Context, _ *GetPreferencesInput) (*GetPreferencesOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}

	prefs, err := h.store.GetPreferences(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("preferences: reading preferences: %w", err)
	}
	return &GetPreferencesOutput{Body: PreferencesResponse{
		DarkMode: prefs.DarkMode,
		Locale:   prefs.Locale,
	}}, nil
}

// UpdatePreferences replaces the device's UI preferences.
func (h *Handler) UpdatePreferences(ctx context.Context, req *UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	deviceID := device.FromContext(ctx)
	if deviceID == "" {
		return nil, huma.Error400BadRequest("missing " + device.Header + " header")
	}

	prefs := devicestate.Preferences{
		DarkMode: req.Body.DarkMode,
		Locale:   req.Body.Locale,
	}
	if err := h.store.SetPreferences(ctx, deviceID, prefs); err != nil {
		return nil, fmt.Errorf("preferences: saving preferences: %w", err)
	}
	return &UpdatePreferencesOutput{Body: PreferencesResponse{
		DarkMode: prefs.DarkMode,
		Locale:   prefs.Locale,
	}}, nil
}
