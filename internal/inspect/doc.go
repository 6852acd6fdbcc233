// Package inspect profiles raw tables before a dialect is written for them:
// null ratios, distinct counts, sample values and the canonical columns each
// raw header most resembles.
package inspect
