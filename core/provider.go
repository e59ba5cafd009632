package core

import "github.com/google/wire"

// ProviderSet is the wire provider set for the core package
var ProviderSet = wire.NewSet(New)
