package errors

import "errors"

// DumpInfo flattens an error chain for structured logging.
type DumpInfo struct {
	Code       string
	TopMessage string
	Chain      []string
}

// Dump walks the error chain and returns the pieces worth logging.
func Dump(err error) DumpInfo {
	info := DumpInfo{}
	if err == nil {
		return info
	}

	info.TopMessage = err.Error()
	if typed := As(err); typed != nil {
		info.Code = string(typed.Code())
	}

	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		info.Chain = append(info.Chain, cur.Error())
	}
	return info
}
