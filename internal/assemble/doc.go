// Package assemble turns byte ranges found by a segmentation scan into
// independent output strings.
package assemble
