package cli

import (
	"fmt"
	"os"

	"github.com/roach88/gentype/internal/record"
	"github.com/roach88/gentype/internal/types"
)

// LoadError reports a record file that could not be used.
type LoadError struct {
	Code    string
	Message string
	Path    string
	Err     error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadRecord reads a JSON type record.
func LoadRecord(path string) (record.Object, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "record file not found", Path: path}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Message: "failed to read record file", Path: path, Err: err}
	}
	rec, err := record.ParseObject(data)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidRecord, Message: "not a JSON record", Path: path, Err: err}
	}
	return rec, nil
}

// LoadType reads and decodes a type record. Object records carry their
// ancestors, so no class registry is consulted.
func LoadType(path string) (types.Type, error) {
	rec, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}
	t, err := record.Decoder{}.Decode(rec)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeInvalidRecord, Message: "record does not describe a type", Path: path, Err: err}
	}
	return t, nil
}

// failLoad reports a load error through the formatter with exit code 2.
func failLoad(f *OutputFormatter, err error) error {
	if le, ok := err.(*LoadError); ok {
		return f.Fail(ExitCommandError, le.Code, le.Path+": "+le.Message, le.Err)
	}
	return f.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
}
