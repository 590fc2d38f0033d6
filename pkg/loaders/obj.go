// Package loaders reads external mesh files into the kernel's data types.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adamkw/go-scene-kernel/pkg/core"
)

// OBJData contains the raw data loaded from a Wavefront OBJ file
type OBJData struct {
	Vertices []core.Point3
	Faces    []int // zero-based triangle indices, 3 per triangle
}

// LoadOBJ loads vertex and face data from an OBJ file. Faces with more
// than three vertices are fan-triangulated; texture/normal references
// (v/vt/vn syntax) and unrelated record types are ignored.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data := &OBJData{}
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				coords[i], err = strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex coordinate %q", lineNo, fields[i+1])
				}
			}
			data.Vertices = append(data.Vertices, core.NewPoint3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, token := range fields[1:] {
				idx, err := parseFaceIndex(token, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				indices = append(indices, idx)
			}
			// Fan triangulation for polygons
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	return data, nil
}

// parseFaceIndex converts an OBJ face token (e.g. "3", "3/1", "3/1/2" or a
// negative relative index) into a zero-based vertex index
func parseFaceIndex(token string, vertexCount int) (int, error) {
	vertexPart := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		vertexPart = token[:slash]
	}
	idx, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", token)
	}
	if idx < 0 {
		idx = vertexCount + idx + 1
	}
	if idx < 1 || idx > vertexCount {
		return 0, fmt.Errorf("face index %q out of range", token)
	}
	return idx - 1, nil
}
