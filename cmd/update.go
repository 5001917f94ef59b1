package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepository = "s0up4200/nomics"

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:         "update",
	Short:       "Update nomics to the latest release",
	Long:        `Check GitHub for a newer release of nomics and replace the running binary with it.`,
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE:        runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion(version)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepository)
	}

	out := cmd.OutOrStdout()
	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "Already up to date (%s)\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "Updated %s -> %s\n", current, latest.Version())
	return nil
}

// currentVersion parses the build version; development builds cannot update
func currentVersion(v string) (semver.Version, error) {
	if v == "" || v == "dev" {
		return semver.Version{}, fmt.Errorf("update is not available for development builds")
	}

	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid build version %q: %w", v, err)
	}
	return parsed, nil
}
