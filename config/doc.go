// Package config loads graph definitions from YAML files.
//
// A file lists nodes (with explicit positions or on an optional ring layout)
// and undirected edges between them:
//
//	hit_radius: 25
//	layout: {center: {x: 500, y: 400}, radius: 250}
//	nodes:
//	  - id: A
//	  - id: B
//	    x: 100
//	    y: 80
//	edges:
//	  - [A, B]
//
// Every failure to decode or validate a file is reported as an error matching
// ErrInvalidGraphFile.
package config
