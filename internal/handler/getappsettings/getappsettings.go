// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package getappsettings

import (
	"context"

	"github.com/bugunapp/bugun-server/internal/appstate"
	"github.com/bugunapp/bugun-server/internal/i18n"
)

type GetAppSettingsInput struct{}

type GetAppSettingsResponse struct {
	MaintenanceMode bool   `json:"maintenanceMode" doc:"Whether the app is in maintenance"`
	ContactEmail    string `json:"contactEmail" doc:"Support contact address"`
	StoreURL        string `json:"storeUrl" doc:"App store link for ratings and sharing"`

	// Strings are the UI strings for the request language.
	Strings map[string]string `json:"strings" doc:"Localized UI strings"`
}

type GetAppSettingsOutput struct {
	Body GetAppSettingsResponse
}

func NewHandler(state *appstate.State) *Handler {
	return &Handler{
		state: state,
	}
}

type Handler struct {
	state *appstate.State
}

// GetAppSettings returns the app settings plus the localization bundle
// for the request language, fetched together at app start.
func (h *Handler) GetAppSettings(ctx context.Context, _ *GetAppSettingsInput) (*GetAppSettingsOutput, error) {
	settings := h.state.Settings()
	return &GetAppSettingsOutput{Body: GetAppSettingsResponse{
		MaintenanceMode: settings.MaintenanceMode,
		ContactEmail:    settings.ContactEmail,
		StoreURL:        settings.StoreURL,
		Strings:         h.state.Strings(i18n.UserLanguage(ctx)),
	}}, nil
}
