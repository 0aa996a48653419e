// Package color converts between hex color strings and RGBA values.
//
// Two families of functions live here:
//
//   - HexToRGBA and RGBAToHex are lenient and never fail. Malformed hex
//     decodes to opaque black and out-of-range channels encode as-is.
//   - Parse, Lookup and Color.Hex are strict. Parse reports failures through
//     a foundation.Result so callers can tell black from garbage, and it
//     understands the #RGBA and #RRGGBBAA alpha forms. Color.Hex clamps
//     before encoding.
//
// Palette derives the brand shades written into the generated stylesheet.
//
// All functions are pure and safe for concurrent use.
package color
