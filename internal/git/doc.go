// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers, aliases).
//
// # Repository Operations
//
// Repository and branch queries:
//
//   - [CurrentBranch], [IsDirty]: working tree state
//   - [OriginURL], [RepoName], [TopLevel], [CommonDir]: repository identity
//   - [FindBranches]: glob-based discovery across local and remote branches
//   - [FetchAll], [SubmoduleUpdate], [Switch]: mutating operations
//
// # Configuration
//
// [ConfigGet], [ConfigGetAll] and friends wrap `git config` with git's usual
// local/global resolution. A missing key yields the caller's default rather
// than an error; every other git failure surfaces as a [*CommandError].
//
// # Branch Descriptions
//
// Branch descriptions are stored under branch.<name>.description, the same
// key `git branch --edit-description` writes, so they travel with the
// repository config and need no extra state file.
package git
