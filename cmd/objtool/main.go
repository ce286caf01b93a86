// objtool is a CLI utility for inspecting OBJ meshes written by towergen.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/towergen/pkg/formats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "check":
		err = cmdCheck(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - towergen OBJ mesh utility

Usage:
  objtool <command> <file.obj>

Commands:
  info <file.obj>    Show element counts and bounding box
  check <file.obj>   Verify header counts, index ranges and normal slots

Examples:
  objtool info building_8_6_1_0.8.obj
  objtool check building_8_6_1_0.8.obj`)
}

func openArg(args []string, usage string) (*formats.OBJ, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	return formats.ReadOBJFile(args[0])
}

func cmdInfo(w io.Writer, args []string) error {
	obj, err := openArg(args, "objtool info <file.obj>")
	if err != nil {
		return err
	}

	header := func(n int) string {
		if n < 0 {
			return "-"
		}
		return fmt.Sprint(n)
	}

	fmt.Fprintf(w, "File:     %s\n", args[0])
	fmt.Fprintf(w, "Vertices: %d (header %s)\n", len(obj.Vertices), header(obj.Header.Vertices))
	fmt.Fprintf(w, "Normals:  %d (header %s)\n", len(obj.Normals), header(obj.Header.Normals))
	fmt.Fprintf(w, "Faces:    %d (header %s)\n", len(obj.Faces), header(obj.Header.Faces))

	b := obj.Bounds()
	size := b.Size()
	fmt.Fprintf(w, "Bounds:   min (%.4f, %.4f, %.4f) max (%.4f, %.4f, %.4f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(w, "Size:     %.4f x %.4f x %.4f\n", size.X, size.Y, size.Z)
	return nil
}

func cmdCheck(w io.Writer, args []string) error {
	obj, err := openArg(args, "objtool check <file.obj>")
	if err != nil {
		return err
	}
	if err := obj.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: OK (%d vertices, %d faces)\n", args[0], len(obj.Vertices), len(obj.Faces))
	return nil
}
