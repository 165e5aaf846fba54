// Package repository provides model for repository.
package repository

import (
	"fmt"
	"os"

	"github.com/jiangxin/goconfig"
	log "github.com/sirupsen/logrus"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir. Running outside of a
// git worktree is not an error.
func OpenRepository(dir string) {
	if err := theRepository.Open(dir); err != nil {
		log.Debugf("no git repository found: %v", err)
	}
}

// Opened returns true if a repository was successfully opened (e.g. when running inside a git worktree).
// Outside a worktree the repository configuration file and git identity are not available.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// WorkDirOrCwd returns root dir of worktree when a repository is opened, otherwise the current working directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// UserIdent returns "user.name <user.email>" from git config, or "" when
// no repository is opened or user.name is not set.
func UserIdent() string {
	if !Opened() {
		return ""
	}
	cfg := theRepository.repository.Config()
	name := cfg.Get("user.name")
	if name == "" {
		return ""
	}
	email := cfg.Get("user.email")
	if email == "" {
		return name
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
