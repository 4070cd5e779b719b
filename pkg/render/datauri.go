package render

import (
	"encoding/base64"
	"strings"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

// DataURIPrefix starts every encoded piece.
const DataURIPrefix = "data:image/png;base64,"

// EncodeDataURI wraps PNG bytes as a data URI.
func EncodeDataURI(png []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(png)
}

// DecodeDataURI returns the PNG bytes inside a data URI produced by
// EncodeDataURI. Anything else is INVALID_INPUT.
func DecodeDataURI(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, DataURIPrefix)
	if !ok {
		return nil, moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "not a PNG data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, moodarterrors.Wrap(moodarterrors.ErrCodeInvalidInput, err, "decode data URI")
	}
	return data, nil
}
