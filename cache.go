// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	helpCacheExpiration = 30 * time.Minute
	helpCacheCleanup    = 5 * time.Minute
)

// NewOptimizedHelpCache holds rendered shell help pages
func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func CacheHelpPage(c *cache.Cache, cmd string, helpTxt string) {
	c.Set(cmd, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, cmd string) string {
	val, ok := c.Get(cmd)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillHelpPage returns the rendered help page of a shell command,
// rendering and caching it on a miss
func GetOrFillHelpPage(c *cache.Cache, cmd string) (string, error) {
	if page := GetHelpPage(c, cmd); page != "" {
		return page, nil
	}

	page, err := renderCommandHelp(cmd)
	if err != nil {
		return "", err
	}
	CacheHelpPage(c, cmd, page)
	return page, nil
}
