// Package catalog supplies the built-in device specifications and the
// file-based contributor.
//
// The built-in contributors (Robots, Cameras, Sensors, Construction)
// carry curated specs for common hardware. The generic camera entries double as fallback
// targets: a lookup for an unknown camera resolves to generic/ip-camera or
// generic/camera before a stub is synthesized.
//
// The file contributor loads additional spec documents from YAML files on
// disk, selected by glob patterns, and can watch those directories to
// trigger re-discovery when documents change.
package catalog
