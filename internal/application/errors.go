package application

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTweetNotFound = errors.New("tweet not found")
	ErrNotOwner      = errors.New("tweet does not belong to this user")

	// ErrOrphanedTweet means a tweet's owner reference resolved to no user.
	// User deletion does not cascade, so this is reachable; it is a data
	// integrity fault, not a normal not-found.
	ErrOrphanedTweet = errors.New("tweet owner no longer exists")
)
