// Package watch regenerates the site when the configuration file or an
// auto-sidebar directory changes on disk.
package watch
