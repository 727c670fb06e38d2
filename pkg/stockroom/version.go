// Package stockroom holds module-wide metadata.
package stockroom

// Version is the stockroom release version.
const Version = "0.1.0"
