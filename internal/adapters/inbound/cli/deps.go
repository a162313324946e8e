package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/backup"
	"github.com/openkraft/docguard/internal/adapters/outbound/config"
	"github.com/openkraft/docguard/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/docguard/internal/adapters/outbound/markdown"
	"github.com/openkraft/docguard/internal/adapters/outbound/runlock"
	"github.com/openkraft/docguard/internal/adapters/outbound/scanner"
	"github.com/openkraft/docguard/internal/adapters/outbound/textfile"
	"github.com/openkraft/docguard/internal/application"
	"github.com/openkraft/docguard/internal/domain"
)

func newEnv(cmd *cobra.Command) application.Env {
	return application.Env{Logger: newLogger(cmd)}
}

func newNamingService(cmd *cobra.Command) *application.NamingService {
	return application.NewNamingService(newEnv(cmd), scanner.New(), config.New(), gitinfo.New())
}

func newFixService(cmd *cobra.Command) *application.FixService {
	return application.NewFixService(newEnv(cmd), scanner.New(), config.New(), gitinfo.New(), backup.New())
}

func newVersionService(cmd *cobra.Command) *application.VersionService {
	return application.NewVersionService(newEnv(cmd), scanner.New(), config.New(), textfile.New())
}

func newSignatureService(cmd *cobra.Command) *application.SignatureService {
	return application.NewSignatureService(newEnv(cmd), scanner.New(), config.New(), markdown.New(), textfile.New())
}

func newChecklistService(cmd *cobra.Command) *application.ChecklistService {
	return application.NewChecklistService(newEnv(cmd), config.New(), markdown.New(), textfile.New())
}

// projectRoot resolves the optional [root] argument to an absolute path.
func projectRoot(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return abs, nil
}

func requireDir(root string) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
	}
	return nil
}

// withLock runs fn while holding the project run lock.
func withLock(root string, fn func() error) (err error) {
	if err := requireDir(root); err != nil {
		return err
	}
	lock, err := runlock.Acquire(root)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, lock.Release())
	}()
	return fn()
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
