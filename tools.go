//go:build tools

// Package tools pins the versions of code generators used via go:generate.
package tools

import (
	_ "github.com/matryer/moq"
)
