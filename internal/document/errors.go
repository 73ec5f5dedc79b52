package document

// FileAccessError is the only domain error kind: the target file is
// missing, unreadable, or unwritable. Op is "read" or "write".
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// AccessError wraps err with the failed operation and target path.
func AccessError(op, path string, err error) *FileAccessError {
	return &FileAccessError{Op: op, Path: path, Err: err}
}
