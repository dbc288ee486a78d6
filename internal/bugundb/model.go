// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package bugundb

import "time"

// Category is a recipe category shown on the explore screen.
type Category struct {
	// Code is the unique identifier of the category.
	Code string `firestore:"code" json:"code"`

	// Name is the localized display name.
	Name LocalizedText `firestore:"name" json:"name"`

	// ImageURL is the URL of the category image.
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
}

// Country is a country whose dishes can be browsed.
type Country struct {
	// Code is the ISO country code.
	Code string `firestore:"code" json:"code"`

	// Name is the localized display name.
	Name LocalizedText `firestore:"name" json:"name"`

	// ImageURL is the URL of the flag or cover image.
	ImageURL string `firestore:"imageUrl" json:"imageUrl"`
}

// Suggestion is a pre-confirmed search term offered below the search bar.
type Suggestion struct {
	// Text is the localized suggestion text.
	Text LocalizedText `firestore:"text" json:"text"`
}

// Language holds the UI strings for one language.
type Language struct {
	// Code is the language code, e.g. "en" or "tr".
	Code string `firestore:"code" json:"code"`

	// Strings maps string keys to translated UI text.
	Strings map[string]string `firestore:"strings" json:"strings"`
}

// AppSettings is the single app-settings document.
type AppSettings struct {
	// MaintenanceMode hides the app behind a maintenance screen.
	MaintenanceMode bool `firestore:"maintenanceMode" json:"maintenanceMode"`

	// ContactEmail is shown on the settings screen.
	ContactEmail string `firestore:"contactEmail" json:"contactEmail"`

	// StoreURL is the external app-store link for ratings and sharing.
	StoreURL string `firestore:"storeUrl" json:"storeUrl"`
}

// IssueReport is a user-submitted problem report.
type IssueReport struct {
	// ID is the report identifier.
	ID string `firestore:"id" json:"id"`

	// Description is the free-form problem description.
	Description string `firestore:"description" json:"description"`

	// Email is an optional reply address.
	Email string `firestore:"email" json:"email"`

	// DeviceID identifies the submitting device.
	DeviceID string `firestore:"deviceId" json:"deviceId"`

	// CreatedAt is the time the report was received.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
