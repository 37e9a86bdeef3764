// Package formatter evaluates parsed commands against a subway system and
// renders the results as plain text or JSON.
//
//   - result.go: command evaluation into Result values
//   - text.go: plain text rendering
//   - json.go: one JSON object per line
package formatter
