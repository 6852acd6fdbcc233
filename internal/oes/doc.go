// Package oes declares the canonical schema of Occupational Employment
// Statistics releases, the computed rules used to synthesize fields older
// releases lack, and the built-in release dialects.
package oes
