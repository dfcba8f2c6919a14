// Package editor is the state container behind the QuoteCanvas front ends.
//
// An Editor owns the current quotecanvas.Card. Front ends change it through
// Apply and the upload helpers, draw from Preview, and trigger exports
// whose outcome comes back as a Notice. Exports work on a snapshot taken
// when they are requested, so edits made while one is running never race
// with it.
package editor
