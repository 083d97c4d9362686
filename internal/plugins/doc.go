// Package plugins resolves swappable face-swap implementations (extractors,
// converters, models and trainers) by short name.
//
// Implementations are grouped into modules named <Prefix>_<Name>, such as
// "Extract_hog" or "Model_Original", and each module exports factories under
// fixed symbol names. Modules are registered explicitly at startup; nothing
// is loaded until a command asks for it.
package plugins
