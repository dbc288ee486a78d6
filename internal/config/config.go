// Copyright (c) Bugun App (dev@bugunapp.dev)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Device struct {
	// DBPath is the filesystem path of the device-state database.
	DBPath string `koanf:"dbpath"`
}

type Rating struct {
	// TimeoutSeconds bounds one vote submission at the store boundary.
	TimeoutSeconds int `koanf:"timeoutseconds"`

	// PerDevicePerMinute is the vote rate limit per device.
	PerDevicePerMinute int `koanf:"perdeviceperminute"`
}

type Config struct {
	config.Common

	// Device is the configuration for device-state storage.
	Device Device `koanf:"device"`

	// Rating is the configuration for vote submission.
	Rating Rating `koanf:"rating"`
}
