// Package hugo turns a site configuration into a Hugo project.
//
// The generator runs a fixed series of stages (prepare, resolve_sidebar,
// resolve_edit_link, config, styles, widgets, data) over a shared state.
// Each stage is timed and classified; warnings are recorded on the Report
// and the run continues, fatal errors and cancellation stop it.
//
// Theme specifics live behind the theme.Theme interface; the built-in themes
// under themes/ register themselves on import.
package hugo
