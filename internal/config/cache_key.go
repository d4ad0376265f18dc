package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding a user's active session JTI.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("session:%d", userID)
}

// SubjectDirectoryKey returns the cache key for the upstream subject directory.
func (r *CacheKeyStruct) SubjectDirectoryKey() string {
	return "catalog:subjects"
}

// SubjectInfoKey returns the cache key for a single subject's label.
func (r *CacheKeyStruct) SubjectInfoKey(code string) string {
	return fmt.Sprintf("catalog:subject:%s", code)
}

// FeedChannel returns the Redis PubSub channel carrying live community-feed
// events for one class.
func (r *CacheKeyStruct) FeedChannel(className string) string {
	return fmt.Sprintf("feed:%s:events", className)
}

var CacheKey = NewCacheKeyStruct()
