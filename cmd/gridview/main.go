// Package main provides the gridview CLI for trying grid definitions
// outside a host application.
//
// Usage:
//
//	gridview measure scene.yaml      Measure a scene and report track sizes
//	gridview render scene.yaml       Draw the placed children as text
//	gridview check [path...]         Validate markup and scene files
//	gridview version                 Print version information
//
// Examples:
//
//	gridview measure --width exactly:320 scene.yaml
//	gridview measure --json scene.yaml
//	gridview check ./...             Recursively check all .xml and .yaml files
package main

func main() {
	Execute()
}
