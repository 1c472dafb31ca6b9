package marketcache

import (
	"fmt"
	"io"
	"os"
)

// withConfigFile opens pathname for reading and hands it to callback. A
// directory is refused before callback runs. The error of callback wins over
// the error of closing the file.
func withConfigFile(pathname string, callback func(r io.Reader) error) (err error) {
	fh, err := os.Open(pathname)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := fh.Close(); err == nil {
			err = err2
		}
	}()

	fi, err := fh.Stat()
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", pathname)
	}
	return callback(fh)
}
