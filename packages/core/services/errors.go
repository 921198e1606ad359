package services

import "errors"

var (
	// ErrStoreUnavailable wraps any failure to read players or results.
	// Standings and pairings cannot be computed without a full snapshot.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrPlayerNotFound   = errors.New("player not found")
	ErrEmptyName        = errors.New("player name must not be empty")
	ErrSamePlayer       = errors.New("a player cannot play against themselves")
	ErrSnapshotNotFound = errors.New("no standings snapshot recorded")
)
