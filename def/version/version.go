// Package version defines the current b64 version number.
package version

// Number is the current b64 version number.
// We use semantic versioning (http://semver.org/).
const Number = "1.0.0"
