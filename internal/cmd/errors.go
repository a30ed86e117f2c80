package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/errors"
)

// flagError turns pflag parse failures into validation errors so they map
// to the usage exit code and carry a help hint.
func flagError(cmd *cobra.Command, err error) error {
	return errors.Wrap(errors.ErrCodeValidationFailed, "invalid flags", err).
		WithSuggestion(fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
}

// invalidResetLinkError reports a reset link without a token. cause may
// be nil.
func invalidResetLinkError(cause error) error {
	return errors.Wrap(errors.ErrCodeValidationFailed, "the reset link is invalid or has expired", cause).
		WithSuggestion("Request a new link: accountctl auth forgot-password")
}
