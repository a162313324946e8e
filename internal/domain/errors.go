package domain

import "errors"

var (
	ErrRootNotFound     = errors.New("project root not found")
	ErrLocked           = errors.New("another docguard run holds the project lock")
	ErrInvalidVersion   = errors.New("invalid semantic version")
	ErrUnknownChange    = errors.New("unknown change kind")
	ErrNoProfiles       = errors.New("no signature profiles found")
	ErrNoDocuments      = errors.New("no versioned documents found")
	ErrUnknownChecklist = errors.New("unknown checklist")
	ErrOutsideProject   = errors.New("path is outside the project root")
)
