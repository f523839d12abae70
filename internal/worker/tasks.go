package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var inputExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// DirTasks pairs every image file directly inside inDir with an output path
// in outDir carrying the same base name. When ext is empty the input
// extension is kept, except WebP, which is written as PNG.
func DirTasks(inDir, outDir, ext string) ([]Task, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir: %w", err)
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var tasks []Task
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		inExt := strings.ToLower(filepath.Ext(name))
		if !inputExts[inExt] {
			continue
		}

		outExt := ext
		if outExt == "" {
			outExt = filepath.Ext(name)
			if inExt == ".webp" {
				outExt = ".png"
			}
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		tasks = append(tasks, Task{
			Input:  filepath.Join(inDir, name),
			Output: filepath.Join(outDir, base+outExt),
		})
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Input < tasks[j].Input })
	return tasks, nil
}
