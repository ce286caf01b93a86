package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/towergen/pkg/building"
	"github.com/Faultbox/towergen/pkg/math"
)

// OBJ format errors.
var (
	ErrMalformedOBJ     = errors.New("malformed OBJ data")
	ErrNormalCount      = errors.New("normal count does not match face count")
	ErrHeaderMismatch   = errors.New("header count does not match element count")
	ErrIndexOutOfRange  = errors.New("face index out of range")
	ErrSharedNormalSlot = errors.New("face normal index does not match face position")
)

// objPrecision is the number of decimals written for coordinates.
const objPrecision = 4

// WriteOBJ writes the mesh as Wavefront OBJ text. Every face references
// its own normal: face k (1-based) uses normal k.
func WriteOBJ(w io.Writer, m *building.Mesh) error {
	if len(m.Normals) != len(m.Faces) {
		return fmt.Errorf("%w: %d normals, %d faces", ErrNormalCount, len(m.Normals), len(m.Faces))
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	fmt.Fprintf(bw, "# %d vertices\n", len(m.Vertices))
	for _, v := range m.Vertices {
		buf = appendVec(append(buf[:0], 'v'), v)
		bw.Write(buf)
	}

	fmt.Fprintf(bw, "# %d normals\n", len(m.Normals))
	for _, n := range m.Normals {
		buf = appendVec(append(buf[:0], 'v', 'n'), n)
		bw.Write(buf)
	}

	fmt.Fprintf(bw, "# %d faces\n", len(m.Faces))
	for i, f := range m.Faces {
		n := i + 1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			f.Indices[0]+1, n, f.Indices[1]+1, n, f.Indices[2]+1, n)
	}

	return bw.Flush()
}

// WriteOBJFile writes the mesh to path, replacing any existing file.
func WriteOBJFile(path string, m *building.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, m); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func appendVec(buf []byte, v math.Vec3) []byte {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		buf = append(buf, ' ')
		buf = appendCoord(buf, c)
	}
	return append(buf, '\n')
}

// appendCoord formats c with fixed precision. Negative zero prints as
// "0.0000".
func appendCoord(buf []byte, c float64) []byte {
	if c == 0 {
		c = 0
	}
	return strconv.AppendFloat(buf, c, 'f', objPrecision, 64)
}

// OBJFace is a parsed triangle. Indices are 0-based; a normal index of
// -1 means the face has no normal reference.
type OBJFace struct {
	Vertex [3]int
	Normal [3]int
}

// OBJHeader holds the counts announced by "# <n> vertices" style
// comments. A negative value means the comment was absent.
type OBJHeader struct {
	Vertices int
	Normals  int
	Faces    int
}

// OBJ is a parsed Wavefront OBJ file.
type OBJ struct {
	Header   OBJHeader
	Vertices []math.Vec3
	Normals  []math.Vec3
	Faces    []OBJFace
}

// ParseOBJ reads the triangle subset of Wavefront OBJ: "v", "vn" and
// "f" statements with "a", "a//n" or "a/t/n" references. Other
// statements are skipped.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{Header: OBJHeader{Vertices: -1, Normals: -1, Faces: -1}}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "#":
			obj.parseHeader(fields[1:])
		case "v":
			var v math.Vec3
			v, err = parseVec(fields[1:])
			obj.Vertices = append(obj.Vertices, v)
		case "vn":
			var n math.Vec3
			n, err = parseVec(fields[1:])
			obj.Normals = append(obj.Normals, n)
		case "f":
			var f OBJFace
			f, err = parseFace(fields[1:])
			obj.Faces = append(obj.Faces, f)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedOBJ, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return obj, nil
}

// ReadOBJFile parses the OBJ file at path.
func ReadOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseOBJ(f)
}

// parseHeader picks up count comments. The Spanish labels written by
// the original classroom tool are accepted too.
func (o *OBJ) parseHeader(fields []string) {
	if len(fields) != 2 {
		return
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	switch fields[1] {
	case "vertices":
		o.Header.Vertices = n
	case "normals", "normales":
		o.Header.Normals = n
	case "faces", "caras":
		o.Header.Faces = n
	}
}

func parseVec(fields []string) (math.Vec3, error) {
	if len(fields) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math.Vec3{}, err
		}
		c[i] = v
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseFace(fields []string) (OBJFace, error) {
	var f OBJFace
	if len(fields) != 3 {
		return f, fmt.Errorf("expected a triangle, got %d references", len(fields))
	}
	for i, ref := range fields {
		parts := strings.Split(ref, "/")
		if len(parts) > 3 {
			return f, fmt.Errorf("bad reference %q", ref)
		}

		v, err := parseIndex(parts[0])
		if err != nil {
			return f, fmt.Errorf("bad vertex reference %q: %v", ref, err)
		}
		f.Vertex[i] = v
		f.Normal[i] = -1

		if len(parts) == 3 && parts[2] != "" {
			n, err := parseIndex(parts[2])
			if err != nil {
				return f, fmt.Errorf("bad normal reference %q: %v", ref, err)
			}
			f.Normal[i] = n
		}
	}
	return f, nil
}

// parseIndex converts a 1-based OBJ index to 0-based. Relative
// (negative) indices are not supported.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("index %d must be positive", n)
	}
	return n - 1, nil
}

// Verify checks that the header comments match the element counts, all
// face references are in range and every face uses the normal slot
// matching its position. All problems found are returned joined.
func (o *OBJ) Verify() error {
	var errs []error

	checkHeader := func(name string, header, got int) {
		if header >= 0 && header != got {
			errs = append(errs, fmt.Errorf("%w: %s header says %d, found %d", ErrHeaderMismatch, name, header, got))
		}
	}
	checkHeader("vertex", o.Header.Vertices, len(o.Vertices))
	checkHeader("normal", o.Header.Normals, len(o.Normals))
	checkHeader("face", o.Header.Faces, len(o.Faces))

	for i, f := range o.Faces {
		for k := 0; k < 3; k++ {
			if f.Vertex[k] >= len(o.Vertices) {
				errs = append(errs, fmt.Errorf("%w: face %d vertex %d", ErrIndexOutOfRange, i+1, f.Vertex[k]+1))
			}
			if f.Normal[k] >= len(o.Normals) {
				errs = append(errs, fmt.Errorf("%w: face %d normal %d", ErrIndexOutOfRange, i+1, f.Normal[k]+1))
			}
			if f.Normal[k] != i {
				errs = append(errs, fmt.Errorf("%w: face %d uses normal %d", ErrSharedNormalSlot, i+1, f.Normal[k]+1))
			}
		}
	}
	return errors.Join(errs...)
}

// Bounds returns the bounding box of the parsed vertices.
func (o *OBJ) Bounds() building.Bounds {
	return building.ComputeBounds(o.Vertices)
}
