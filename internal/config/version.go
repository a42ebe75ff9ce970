// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package config

import (
	"github.com/Masterminds/semver/v3"
	"github.com/samber/oops"
)

// CurrentVersion is the settings format this build writes.
const CurrentVersion = "1.0.0"

// supportedVersions is the range of settings formats this build reads.
const supportedVersions = ">= 1.0.0, < 2.0.0"

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return oops.Code("CONFIG_VERSION_UNSUPPORTED").
			With("version", v).
			Wrapf(err, "invalid settings version")
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return oops.Code("CONFIG_VERSION_UNSUPPORTED").Wrapf(err, "invalid version constraint")
	}
	if !constraint.Check(ver) {
		return oops.Code("CONFIG_VERSION_UNSUPPORTED").
			With("version", v).
			With("supported", supportedVersions).
			Hint("this build reads settings format " + CurrentVersion).
			Errorf("settings version %s is not supported", v)
	}
	return nil
}
