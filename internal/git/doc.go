// Package git reads repository metadata with go-git to derive "edit this
// page" links:
//   - origin remote detection and normalisation to https
//   - forge detection from the remote host
//   - current branch lookup
package git
