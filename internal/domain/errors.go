package domain

import "errors"

// ErrNotFound marks a lookup miss against a directory built for a single report
// (champion id, participant id).
var ErrNotFound = errors.New("not found")

// ErrMalformedRecord marks provider payloads that decode but do not have the shape the
// report needs (team count, participant grouping, empty version list).
var ErrMalformedRecord = errors.New("malformed record")
