package build

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyTree copies every file under src into dst, preserving relative
// layout and permissions. Returns the number of files copied.
func copyTree(fs afero.Fs, src, dst string) (int, error) {
	count := 0
	err := afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return fs.MkdirAll(target, info.Mode().Perm())
		}
		if err := copyFile(fs, path, target, info.Mode().Perm()); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(fs afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
