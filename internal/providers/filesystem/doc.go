// Package filesystem reads script sources and script-requested files as
// UTF-8 text.
//
// Every failure is reported as *IOError so callers can tell a missing or
// unreadable file apart from a script fault. Files that are not valid
// UTF-8 are rejected; the error names the charset and MIME type detected
// for the content to make the mistake obvious.
//
// Example Usage:
//
//	src, err := filesystem.ReadText("./done.js")
//	var ioErr *filesystem.IOError
//	if errors.As(err, &ioErr) {
//		logger.Error("Source unreadable", zap.String("path", ioErr.Path))
//	}
package filesystem
