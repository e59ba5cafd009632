package logger

import "github.com/google/wire"

// ProviderSet is the wire provider set for the logger package.
// It expects a Source and Options from the caller's set.
var ProviderSet = wire.NewSet(New)
