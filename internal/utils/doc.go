// Package utils provides small helpers shared across commands: input
// validation and best-effort SSH key file checks.
package utils
