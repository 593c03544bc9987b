package config

import (
	"os"
	"strings"
)

// StrictPalletImmutability enables warehouse-grade guardrails:
// pallets that already have picking history cannot be relocated or adjusted;
// they must be released and re-received.
//
// Set via env:
// - STRICT_PALLET_IMMUTABLE=true
func StrictPalletImmutability() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("STRICT_PALLET_IMMUTABLE")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// CrossDockingEnabled allows release orders to reference inventory that is
// still on an unreceived arrival notice.
//
// Set via env:
// - CROSS_DOCKING_ENABLED=true
func CrossDockingEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CROSS_DOCKING_ENABLED")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
