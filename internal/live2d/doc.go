// Package live2d turns the live2d configuration into the options object of
// the oh-my-live2d widget and renders the partial that loads it in the browser.
package live2d
