package assets

import (
	"bytes"

	"github.com/dchest/jsmin"
)

func minifyJS(src []byte) ([]byte, error) {
	minified, err := jsmin.Minify(src)
	if err != nil {
		return nil, err
	}

	return bytes.TrimSpace(minified), nil
}
