// Package formats provides readers and writers for mesh file formats.
package formats

// Note: Wavefront OBJ (the subset towergen emits) is implemented in obj.go
