package firestore

import "go.uber.org/fx"

// Module provides the Firestore-backed repositories
var Module = fx.Module("firestore",
	fx.Provide(
		NewFamilyRepository,
		NewCodeRepository,
		NewDeviceRepository,
	),
)
