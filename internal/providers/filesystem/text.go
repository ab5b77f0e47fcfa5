package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
)

// ErrInvalidEncoding is the cause of an IOError for content that is not UTF-8
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// IOError describes a file that could not be read as UTF-8 text
type IOError struct {
	Path    string
	Err     error
	Charset string // Detected charset, set only for ErrInvalidEncoding
	MIME    string // Detected MIME type, set only for ErrInvalidEncoding
}

func (e *IOError) Error() string {
	msg := fmt.Sprintf("read %s: %v", e.Path, e.Err)
	if e.Charset != "" || e.MIME != "" {
		msg += fmt.Sprintf(" (detected %s)", strings.Join(nonEmpty(e.Charset, e.MIME), ", "))
	}
	return msg
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadText returns the contents of path as a string
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return "", &IOError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		charset, mime := DetectEncoding(data)
		return "", &IOError{Path: path, Err: ErrInvalidEncoding, Charset: charset, MIME: mime}
	}

	return string(data), nil
}

// DetectEncoding guesses the charset and MIME type of data
func DetectEncoding(data []byte) (charset, mime string) {
	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil && result != nil {
		charset = strings.ToLower(result.Charset)
	}
	mime = mimetype.Detect(data).String()
	return charset, mime
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
